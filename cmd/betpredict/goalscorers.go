package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dxne-Dev/Bet-predict/internal/cli"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/oracle"
)

func goalscorersCmd() *cobra.Command {
	var (
		date  string
		sport string
		save  bool
	)
	cmd := &cobra.Command{
		Use:   "goalscorers",
		Short: "Predict the top likely goalscorers of the day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateDate(date); err != nil {
				return err
			}
			if sport != oracle.GoalscorerFootball && sport != oracle.GoalscorerHockey {
				return fmt.Errorf("--sport must be %q or %q", oracle.GoalscorerFootball, oracle.GoalscorerHockey)
			}

			return runGenerating(cmd, save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[[]model.GoalscorerPrediction], error) {
					return svc.GoalscorerPredictions(ctx, date, sport)
				},
				func(scorers []model.GoalscorerPrediction) {
					fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Top goalscorers — %s", date)))
					for _, sc := range scorers {
						fmt.Printf("%s %s (%s)\n", cli.SuccessStyle.Render("▸"), sc.PlayerName, sc.TeamName)
						fmt.Printf("  %s — %s %s\n", sc.Match, sc.League,
							cli.SubtleStyle.Render(fmt.Sprintf("(confidence: %s)", sc.Confidence)))
						if sc.Justification != "" {
							fmt.Printf("  %s\n", cli.SubtleStyle.Render(sc.Justification))
						}
					}
				},
				func(ctx context.Context, svc *oracle.Service, scorers []model.GoalscorerPrediction) (model.HistoryEntry, error) {
					label := fmt.Sprintf("Goalscorers %s (%s)", sport, date)
					return svc.Record(ctx, sport, model.ModePro, model.EntryGoalscorer, label, scorers)
				},
			)
		},
	}
	cmd.Flags().StringVar(&date, "date", todayISO(), "target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sport, "sport", oracle.GoalscorerFootball, "football or hockey")
	cmd.Flags().BoolVar(&save, "save", true, "persist the result to history")
	return cmd
}
