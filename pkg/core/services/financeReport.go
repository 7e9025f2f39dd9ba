package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/finance"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// FinanceStore defines the store interface needed by FinanceReport.
type FinanceStore interface {
	GetSessions(ctx context.Context) ([]db.TrainingSession, error)
}

// FinanceReport fetches a fresh session snapshot and recomputes the
// aggregate from scratch. Payments stay editable after completion, so
// nothing is cached between invocations.
func FinanceReport(ctx context.Context, store FinanceStore, logger *zap.Logger, defaultCost float64) (finance.Summary, error) {
	sessions, err := store.GetSessions(ctx)
	if err != nil {
		return finance.Summary{}, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	summary := finance.Summarize(sessions, defaultCost)
	logger.Info("Finance report computed",
		zap.Int("completed_sessions", summary.CompletedSessions),
		zap.Float64("revenue", summary.Revenue),
		zap.Float64("cost", summary.Cost),
		zap.Float64("profit", summary.Profit),
		zap.Int("pending", summary.PendingCount))
	return summary, nil
}
