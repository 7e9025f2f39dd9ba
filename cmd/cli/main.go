package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JocaCola1972/LevelUP-Treinos-sub000/internal/config"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/model"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/core/services"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/db"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/postgres"
	"github.com/JocaCola1972/LevelUP-Treinos-sub000/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg    *config.Config
	store  *postgres.DB
	logger *zap.Logger
	ctx    context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "treinos",
		Short: "LevelUP Treinos CLI - Manage training shifts, sessions and attendance",
		Long:  `A CLI tool for managing recurring training shifts, session lifecycle, attendance intentions and finance aggregates.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.logger != nil {
					app.logger.Sync()
				}
				if app.store != nil {
					app.store.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(nextTrainingCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(startSessionCmd())
	rootCmd.AddCommand(finalizeSessionCmd())
	rootCmd.AddCommand(editSessionCmd())
	rootCmd.AddCommand(logSessionCmd())
	rootCmd.AddCommand(hideSessionCmd())
	rootCmd.AddCommand(deleteSessionCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(rsvpCmd())
	rootCmd.AddCommand(rsvpCountCmd())
	rootCmd.AddCommand(financeCmd())
	rootCmd.AddCommand(addShiftCmd())
	rootCmd.AddCommand(listShiftsCmd())
	rootCmd.AddCommand(clubsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and the record store
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	// .env is optional; explicit environment variables still apply.
	godotenv.Load()

	app.cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	connString := app.cfg.DatabaseURL
	if fromEnv := os.Getenv("DATABASE_URL"); fromEnv != "" {
		connString = fromEnv
	}

	app.store, err = postgres.NewDB(app.ctx, connString)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.logger.Info("Database connected")

	return nil
}

// Command definitions

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.store.RunMigrations(app.ctx); err != nil {
				if db.IsSchemaMismatch(err) {
					return fmt.Errorf("schema mismatch, check migration files: %w", err)
				}
				return err
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}

func nextTrainingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nextTraining <member_id> <role>",
		Short: "Show a member's next upcoming training occurrence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(args[1])
			if err != nil {
				return err
			}

			occ, err := services.NextTraining(app.ctx, app.store, app.logger, args[0], role, time.Now())
			if err != nil {
				return err
			}
			if occ == nil {
				fmt.Println("No upcoming training.")
				return nil
			}

			fmt.Printf("\nNext training: %s\n", occ.Label)
			fmt.Printf("  Club:     %s\n", occ.ClubName)
			fmt.Printf("  Starts:   %s (%d min)\n", occ.StartsAt.Format("2006-01-02 15:04"), occ.DurationMinutes)
			fmt.Printf("  Going:    %d/%d\n", occ.GoingCount, occ.RosterSize)
			if occ.CallerAttending != nil {
				fmt.Printf("  You:      attending=%v\n", *occ.CallerAttending)
			} else {
				fmt.Printf("  You:      undecided\n")
			}
			return nil
		},
	}
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Show the organization-wide schedule for the next 7 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			occurrences, err := services.AdminSchedule(app.ctx, app.store, app.logger, app.cfg.ClosureRules, time.Now())
			if err != nil {
				return err
			}

			if len(occurrences) == 0 {
				fmt.Println("No occurrences in the next 7 days.")
				return nil
			}

			fmt.Printf("\n%d occurrences in the next 7 days:\n\n", len(occurrences))
			for _, occ := range occurrences {
				fmt.Printf("  %-9s %s  %-20s shift=%s\n",
					occ.Label,
					occ.StartsAt.Format("2006-01-02 15:04"),
					occ.ClubName,
					occ.ShiftID)
			}
			return nil
		},
	}
}

func startSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "startSession <shift_id>",
		Short: "Start an active session for a shift's current occurrence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := services.StartSession(app.ctx, app.store, app.logger, args[0], time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Session %s started for %s.\n", session.ID, session.Date.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func finalizeSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalizeSession <session_id>",
		Short: "Complete a session and freeze its attendee list (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := callerRole(cmd)
			if err != nil {
				return err
			}
			override, err := attendeeOverride(cmd)
			if err != nil {
				return err
			}

			session, err := services.FinalizeSession(app.ctx, app.store, app.logger, role, args[0], override)
			if err != nil {
				return err
			}
			fmt.Printf("Session %s finalized with %d attendees.\n", session.ID, len(session.AttendeeIDs))
			return nil
		},
	}
	cmd.Flags().String("as-role", string(model.RoleAdmin), "Caller role")
	cmd.Flags().String("attendees", "", "Comma-separated attendee override (skips RSVP snapshot)")
	return cmd
}

func editSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editSession <session_id>",
		Short: "Edit a session's descriptive fields (allowed after completion)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := services.SessionPatch{}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				patch.Notes = &v
			}
			if cmd.Flags().Changed("youtube") {
				v, _ := cmd.Flags().GetString("youtube")
				patch.YoutubeURL = &v
			}
			if cmd.Flags().Changed("turma") {
				v, _ := cmd.Flags().GetString("turma")
				patch.TurmaName = &v
			}
			if cmd.Flags().Changed("club") {
				v, _ := cmd.Flags().GetString("club")
				patch.ClubName = &v
			}
			if cmd.Flags().Changed("coach") {
				v, _ := cmd.Flags().GetString("coach")
				patch.CoachID = &v
			}
			if cmd.Flags().Changed("cost") {
				v, _ := cmd.Flags().GetFloat64("cost")
				patch.SessionCost = &v
			}
			if cmd.Flags().Changed("cost-paid") {
				v, _ := cmd.Flags().GetBool("cost-paid")
				patch.IsCostPaid = &v
			}
			if cmd.Flags().Changed("attendees") {
				v, _ := cmd.Flags().GetString("attendees")
				ids := splitIDs(v)
				patch.AttendeeIDs = &ids
			}
			if cmd.Flags().Changed("paid-by") {
				v, _ := cmd.Flags().GetString("paid-by")
				amount, _ := cmd.Flags().GetFloat64("paid-amount")
				patch.Payments = map[string]db.Payment{v: {Paid: true, Amount: amount}}
			}

			session, err := services.EditSession(app.ctx, app.store, app.logger, args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Session %s updated.\n", session.ID)
			return nil
		},
	}
	cmd.Flags().String("notes", "", "Session notes")
	cmd.Flags().String("youtube", "", "Video link")
	cmd.Flags().String("turma", "", "Display label")
	cmd.Flags().String("club", "", "Club name")
	cmd.Flags().String("coach", "", "Coach override")
	cmd.Flags().Float64("cost", 0, "Session cost")
	cmd.Flags().Bool("cost-paid", false, "Mark the session cost as settled")
	cmd.Flags().String("attendees", "", "Comma-separated attendee list")
	cmd.Flags().String("paid-by", "", "Record a payment for this member")
	cmd.Flags().Float64("paid-amount", 0, "Payment amount for --paid-by")
	return cmd
}

func logSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logSession <date> <time>",
		Short: "Log a past training retroactively as a completed session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateTime(args[0], args[1])
			if err != nil {
				return err
			}

			club, _ := cmd.Flags().GetString("club")
			turma, _ := cmd.Flags().GetString("turma")
			coach, _ := cmd.Flags().GetString("coach")
			attendees, _ := cmd.Flags().GetString("attendees")
			notes, _ := cmd.Flags().GetString("notes")
			youtube, _ := cmd.Flags().GetString("youtube")
			cost, _ := cmd.Flags().GetFloat64("cost")

			session, err := services.LogRetroactiveSession(app.ctx, app.store, app.logger, services.RetroactiveSessionInput{
				ClubName:    club,
				TurmaName:   turma,
				CoachID:     coach,
				Date:        date,
				AttendeeIDs: splitIDs(attendees),
				Notes:       notes,
				YoutubeURL:  youtube,
				SessionCost: cost,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Retroactive session %s logged for %s.\n", session.ID, session.Date.Format("2006-01-02 15:04"))
			return nil
		},
	}
	cmd.Flags().String("club", "", "Club name")
	cmd.Flags().String("turma", "", "Display label")
	cmd.Flags().String("coach", "", "Coach ID")
	cmd.Flags().String("attendees", "", "Comma-separated attendee list")
	cmd.Flags().String("notes", "", "Session notes")
	cmd.Flags().String("youtube", "", "Video link")
	cmd.Flags().Float64("cost", 0, "Session cost")
	return cmd
}

func hideSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hideSession <session_id> <user_id>",
		Short: "Hide a session from one user's history (does not affect others)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := services.HideSessionForCaller(app.ctx, app.store, app.logger, args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Session %s hidden for %s.\n", args[0], args[1])
			return nil
		},
	}
}

func deleteSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deleteSession <session_id>",
		Short: "Delete a session permanently for all viewers (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := callerRole(cmd)
			if err != nil {
				return err
			}
			if err := services.DeleteSession(app.ctx, app.store, app.logger, role, args[0]); err != nil {
				return err
			}
			fmt.Printf("Session %s deleted.\n", args[0])
			return nil
		},
	}
	cmd.Flags().String("as-role", string(model.RoleAdmin), "Caller role")
	return cmd
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <user_id> <role>",
		Short: "List the sessions visible to a user, newest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(args[1])
			if err != nil {
				return err
			}

			sessions, err := services.SessionHistory(app.ctx, app.store, app.logger, args[0], role)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No visible sessions.")
				return nil
			}

			fmt.Printf("\n%d sessions:\n\n", len(sessions))
			for _, s := range sessions {
				state := "scheduled"
				switch {
				case s.Completed:
					state = "completed"
				case s.IsActive:
					state = "active"
				}
				fmt.Printf("  %s  %-9s %-20s attendees=%d id=%s\n",
					s.Date.Format("2006-01-02 15:04"), state, s.ClubName, len(s.AttendeeIDs), s.ID)
			}
			return nil
		},
	}
}

func rsvpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rsvp <shift_id> <user_id> <date> <going|skip>",
		Short: "Record an attendance intention (repeating the same answer withdraws it)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[2])
			if err != nil {
				return err
			}

			var attending bool
			switch args[3] {
			case "going":
				attending = true
			case "skip":
				attending = false
			default:
				return fmt.Errorf("intention must be 'going' or 'skip', got %q", args[3])
			}

			removed, err := services.SetIntention(app.ctx, app.store, app.logger, args[0], args[1], date, attending)
			if err != nil {
				return err
			}
			if removed {
				fmt.Println("Intention withdrawn (back to undecided).")
			} else {
				fmt.Printf("Intention recorded: attending=%v.\n", attending)
			}
			return nil
		},
	}
}

func rsvpCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rsvpCount <shift_id> <date>",
		Short: "Show attending count vs roster size for a shift occurrence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[1])
			if err != nil {
				return err
			}

			shifts, err := app.store.GetShifts(app.ctx)
			if err != nil {
				return err
			}
			rsvps, err := app.store.GetRSVPs(app.ctx)
			if err != nil {
				return err
			}

			count := services.CountIntentions(args[0], date, shifts, rsvps)
			fmt.Printf("%d going of %d on the roster.\n", count.Going, count.RosterSize)
			return nil
		},
	}
}

func financeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finance",
		Short: "Show revenue, cost and profit over completed sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := services.FinanceReport(app.ctx, app.store, app.logger, app.cfg.DefaultSessionCost)
			if err != nil {
				return err
			}

			fmt.Printf("\nCompleted sessions: %d\n", summary.CompletedSessions)
			fmt.Printf("Revenue:  %.2f\n", summary.Revenue)
			fmt.Printf("Cost:     %.2f\n", summary.Cost)
			fmt.Printf("Profit:   %.2f\n", summary.Profit)
			fmt.Printf("Pending payments: %d\n", summary.PendingCount)
			return nil
		},
	}
}

func addShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addShift <day> <time> <duration_minutes>",
		Short: "Create a recurring or one-off shift template",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseWeekday(args[0])
			if err != nil {
				return err
			}
			hour, minute, err := parseClock(args[1])
			if err != nil {
				return err
			}
			duration, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("duration_minutes must be a number: %w", err)
			}

			coach, _ := cmd.Flags().GetString("coach")
			club, _ := cmd.Flags().GetString("club")
			students, _ := cmd.Flags().GetString("students")
			recurrence, _ := cmd.Flags().GetString("recurrence")

			shift := &db.Shift{
				DayOfWeek:       day,
				StartHour:       hour,
				StartMinute:     minute,
				DurationMinutes: duration,
				CoachID:         coach,
				StudentIDs:      splitIDs(students),
				Recurrence:      model.Recurrence(recurrence),
				ClubName:        club,
			}
			if cmd.Flags().Changed("start-date") {
				raw, _ := cmd.Flags().GetString("start-date")
				anchor, err := parseDate(raw)
				if err != nil {
					return err
				}
				shift.StartDate = &anchor
			}

			saved, err := services.SaveShift(app.ctx, app.store, app.logger, shift)
			if err != nil {
				return err
			}
			fmt.Printf("Shift %s created: %s %02d:%02d (%s).\n",
				saved.ID, saved.DayOfWeek, saved.StartHour, saved.StartMinute, saved.Recurrence)
			return nil
		},
	}
	cmd.Flags().String("coach", "", "Coach ID")
	cmd.Flags().String("club", "", "Club name")
	cmd.Flags().String("students", "", "Comma-separated roster")
	cmd.Flags().String("recurrence", string(model.RecurrenceWeekly), "ONE_OFF, WEEKLY or BIWEEKLY")
	cmd.Flags().String("start-date", "", "Anchor date (required for deterministic bi-weekly parity)")
	return cmd
}

func listShiftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listShifts",
		Short: "List all shift templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := services.ListShifts(app.ctx, app.store, app.logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d shifts:\n\n", len(shifts))
			for _, s := range shifts {
				anchor := "-"
				if s.StartDate != nil {
					anchor = s.StartDate.Format("2006-01-02")
				}
				fmt.Printf("  %-9s %02d:%02d %4dmin %-9s anchor=%-10s club=%-15s roster=%d id=%s\n",
					s.DayOfWeek, s.StartHour, s.StartMinute, s.DurationMinutes,
					s.Recurrence, anchor, s.ClubName, len(s.StudentIDs), s.ID)
			}
			return nil
		},
	}
}

func clubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clubs",
		Short: "Manage the club registry",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Register a club (names are unique)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RegisterClub(app.ctx, app.store, app.logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("Club %q registered.\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered clubs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clubs, err := services.ListClubs(app.ctx, app.store, app.logger)
			if err != nil {
				return err
			}
			for _, name := range clubs {
				fmt.Printf("- %s\n", name)
			}
			return nil
		},
	})

	return cmd
}

// Argument parsing helpers

func parseRole(raw string) (model.Role, error) {
	role := model.Role(strings.ToLower(raw))
	if !role.IsValid() {
		return "", fmt.Errorf("role must be admin, coach or student, got %q", raw)
	}
	return role, nil
}

func callerRole(cmd *cobra.Command) (model.Role, error) {
	raw, _ := cmd.Flags().GetString("as-role")
	return parseRole(raw)
}

func attendeeOverride(cmd *cobra.Command) ([]string, error) {
	if !cmd.Flags().Changed("attendees") {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString("attendees")
	return splitIDs(raw), nil
}

func parseWeekday(raw string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), raw) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", raw)
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}

func parseClock(raw string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return 0, 0, fmt.Errorf("time must be HH:MM: %w", err)
	}
	return t.Hour(), t.Minute(), nil
}

func parseDateTime(rawDate, rawTime string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", rawDate+" "+rawTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD HH:MM: %w", err)
	}
	return t, nil
}

func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
