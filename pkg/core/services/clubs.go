package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
)

// RegisterClub adds a club name to the flat registry. Name uniqueness
// is enforced by the store; a duplicate surfaces as a constraint
// violation with a user-actionable message.
func RegisterClub(ctx context.Context, store db.ClubStore, logger *zap.Logger, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("club name cannot be empty")
	}

	if err := store.AddClub(ctx, name); err != nil {
		if db.IsConstraintViolation(err) {
			return fmt.Errorf("a club named %q already exists: %w", name, err)
		}
		return fmt.Errorf("failed to add club: %w", err)
	}

	logger.Info("Club registered", zap.String("name", name))
	return nil
}

// ListClubs fetches the club registry.
func ListClubs(ctx context.Context, store db.ClubStore, logger *zap.Logger) ([]string, error) {
	clubs, err := store.GetClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}
	logger.Debug("Clubs fetched", zap.Int("count", len(clubs)))
	return clubs, nil
}
