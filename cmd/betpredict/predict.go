package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/oracle"
)

// eventFlags collects the shared flags of the single-event commands.
type eventFlags struct {
	sport string
	date  string
	teamA string
	teamB string
	save  bool
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sport, "sport", "", "sport id or name (see 'betpredict sports')")
	cmd.Flags().StringVar(&f.date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.teamA, "team-a", "", "home team name")
	cmd.Flags().StringVar(&f.teamB, "team-b", "", "away team name")
	cmd.Flags().BoolVar(&f.save, "save", true, "persist the result to history")
	_ = cmd.MarkFlagRequired("sport")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("team-a")
	_ = cmd.MarkFlagRequired("team-b")
}

// event builds and validates the transient query event. All
// preconditions are enforced here, before the request builder runs.
func (f *eventFlags) event() (model.Event, error) {
	sport, err := resolveSport(f.sport)
	if err != nil {
		return model.Event{}, err
	}
	if err := validateDate(f.date); err != nil {
		return model.Event{}, err
	}

	event := model.Event{
		ID:    uuid.NewString(),
		Sport: sport.Name,
		Date:  f.date,
		TeamA: model.Team{ID: "team-a", Name: f.teamA},
		TeamB: model.Team{ID: "team-b", Name: f.teamB},
	}
	if err := oracle.ValidateEvent(event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

func predictCmd() *cobra.Command {
	var flags eventFlags
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a single event",
		Long:  `Ask for 3-4 grounded predictions across distinct markets for one fixture.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			event, err := flags.event()
			if err != nil {
				return err
			}

			return runGenerating(cmd, flags.save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[[]model.Prediction], error) {
					return svc.SingleEventPredictions(ctx, event)
				},
				func(predictions []model.Prediction) {
					printPredictions(fmt.Sprintf("%s vs %s", event.TeamA.Name, event.TeamB.Name), predictions)
				},
				func(ctx context.Context, svc *oracle.Service, predictions []model.Prediction) (model.HistoryEntry, error) {
					label := fmt.Sprintf("%s vs %s (%s)", event.TeamA.Name, event.TeamB.Name, event.Date)
					return svc.Record(ctx, event.Sport, model.ModePro, model.EntrySingleEvent, label, predictions)
				},
			)
		},
	}
	flags.register(cmd)
	return cmd
}

func halftimeCmd() *cobra.Command {
	var flags eventFlags
	cmd := &cobra.Command{
		Use:   "halftime",
		Short: "Predict first-half markets for an event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			event, err := flags.event()
			if err != nil {
				return err
			}

			return runGenerating(cmd, flags.save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[[]model.Prediction], error) {
					return svc.FirstHalfPredictions(ctx, event)
				},
				func(predictions []model.Prediction) {
					printPredictions(fmt.Sprintf("First half: %s vs %s", event.TeamA.Name, event.TeamB.Name), predictions)
				},
				func(ctx context.Context, svc *oracle.Service, predictions []model.Prediction) (model.HistoryEntry, error) {
					label := fmt.Sprintf("First half: %s vs %s (%s)", event.TeamA.Name, event.TeamB.Name, event.Date)
					return svc.Record(ctx, event.Sport, model.ModePro, model.EntryFirstHalf, label, predictions)
				},
			)
		},
	}
	flags.register(cmd)
	return cmd
}
