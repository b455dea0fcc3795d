package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dxne-Dev/Bet-predict/internal/cli"
	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/config"
	"github.com/Dxne-Dev/Bet-predict/internal/gemini"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/oracle"
	"github.com/Dxne-Dev/Bet-predict/internal/sports"
	"github.com/Dxne-Dev/Bet-predict/internal/storage"
)

// initStorage initializes the history store with proper path expansion
// and auto-migration.
func initStorage(ctx context.Context) (*storage.SQLiteStore, error) {
	store, err := storage.NewSQLiteStore(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initOracle wires the Gemini collaborator and the store into the
// orchestration service.
func initOracle(ctx context.Context, store *storage.SQLiteStore) (*oracle.Service, error) {
	client, err := gemini.NewClient(ctx, config.Gemini())
	if err != nil {
		return nil, common.NewUserError("could not initialize the inference client (is GEMINI_API_KEY set?)", err)
	}
	return oracle.New(client, store), nil
}

// resolveSport validates a sport argument against the static catalog.
func resolveSport(idOrName string) (model.Sport, error) {
	sport, ok := sports.Find(idOrName)
	if !ok {
		names := make([]string, 0, len(sports.All()))
		for _, s := range sports.All() {
			names = append(names, s.ID)
		}
		return model.Sport{}, fmt.Errorf("%w: unknown sport %q (available: %s)",
			common.ErrInvalidInput, idOrName, strings.Join(names, ", "))
	}
	return sport, nil
}

// validateDate enforces the ISO calendar date precondition before any
// request is built.
func validateDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", common.ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: date must be formatted YYYY-MM-DD", common.ErrInvalidInput)
	}
	return nil
}

// printNoResult renders the not-found condition. It is deliberately
// informational, not an error banner: nothing scheduled is not a
// malfunction.
func printNoResult() {
	fmt.Println(cli.InfoStyle.Render("No qualifying result for these parameters. The model prefers abstaining over fabricating a forecast."))
}

// printSaved reports a persisted entry.
func printSaved(entry model.HistoryEntry) {
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Saved to history as %s", entry.ID)))
}

// confirmDestructive gates irreversible operations behind an explicit
// flag. Returns false when the caller must abort.
func confirmDestructive(force bool, action string) bool {
	if force {
		return true
	}
	fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("%s is irreversible. Re-run with --force to proceed.", action)))
	return false
}

func todayISO() string {
	return time.Now().Format("2006-01-02")
}

// printPredictions renders a prediction list.
func printPredictions(title string, predictions []model.Prediction) {
	fmt.Println(cli.TitleStyle.Render(title))
	for _, p := range predictions {
		fmt.Printf("%s %s\n", cli.SuccessStyle.Render("▸"), p.Market)
		fmt.Printf("  %s %s\n", p.Prediction, cli.SubtleStyle.Render(fmt.Sprintf("(confidence: %s)", p.Confidence)))
		if p.Justification != "" {
			fmt.Printf("  %s\n", cli.SubtleStyle.Render(p.Justification))
		}
	}
}

// printSlip renders one bet slip.
func printSlip(slip model.BetSlip) {
	fmt.Println(cli.TitleStyle.Render(slip.Title))
	for _, b := range slip.Bets {
		fmt.Printf("%s %s — %s: %s\n", cli.SuccessStyle.Render("▸"), b.Event, b.Market, b.Prediction)
		if b.Justification != "" {
			fmt.Printf("  %s\n", cli.SubtleStyle.Render(b.Justification))
		}
	}
	if slip.Analysis != "" {
		fmt.Printf("%s\n", cli.InfoStyle.Render(slip.Analysis))
	}
}

// runGenerating is the shared shape of every generating command: init
// the stack, run the operation, render the outcome, optionally save.
func runGenerating[T any](
	cmd *cobra.Command,
	save bool,
	op func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[T], error),
	render func(data T),
	record func(ctx context.Context, svc *oracle.Service, data T) (model.HistoryEntry, error),
) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	svc, err := initOracle(ctx, store)
	if err != nil {
		return err
	}

	outcome, err := op(ctx, svc)
	if err != nil {
		return renderFailure(err)
	}
	if !outcome.IsFound() {
		printNoResult()
		return nil
	}

	render(outcome.Data)

	if save {
		entry, err := record(ctx, svc, outcome.Data)
		if err != nil {
			return err
		}
		printSaved(entry)
	}
	return nil
}

// renderFailure maps the error taxonomy onto user-facing messages.
// Provider failures and schema violations suggest a retry; invalid
// input is the caller's mistake.
func renderFailure(err error) error {
	switch {
	case errors.Is(err, common.ErrSchemaViolation):
		return common.NewUserError("the provider returned data that breaks its contract; try again", err)
	case common.IsRetryable(err):
		return common.NewUserError("the inference provider could not be reached; try again in a moment", err)
	default:
		return err
	}
}
