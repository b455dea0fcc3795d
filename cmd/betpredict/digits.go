package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dxne-Dev/Bet-predict/internal/cli"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/oracle"
)

func digitsCmd() *cobra.Command {
	var (
		date string
		save bool
	)
	cmd := &cobra.Command{
		Use:   "digits",
		Short: "NBA digit-occurrence analysis for a slate",
		Long:  `For every NBA game of the night, predict the most frequent score digit and an estimated total, backed by recently observed results.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateDate(date); err != nil {
				return err
			}

			return runGenerating(cmd, save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[model.DigitResult], error) {
					return svc.DigitAnalysis(ctx, date)
				},
				func(result model.DigitResult) {
					fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("NBA digit analysis — %s", result.Date)))
					if result.GlobalTrend != "" {
						fmt.Println(cli.InfoStyle.Render(result.GlobalTrend))
					}
					for _, p := range result.Predictions {
						fmt.Printf("%s %s\n", cli.SuccessStyle.Render("▸"), p.Match)
						fmt.Printf("  digit %s · total %s %s\n", p.PredictedDigit, p.PredictedTotalScore,
							cli.SubtleStyle.Render(fmt.Sprintf("(confidence: %s)", p.Confidence)))
						if len(p.RecentScores) > 0 {
							fmt.Printf("  recent: %s\n", cli.SubtleStyle.Render(strings.Join(p.RecentScores, ", ")))
						}
						if p.Reasoning != "" {
							fmt.Printf("  %s\n", cli.SubtleStyle.Render(p.Reasoning))
						}
					}
				},
				func(ctx context.Context, svc *oracle.Service, result model.DigitResult) (model.HistoryEntry, error) {
					label := fmt.Sprintf("NBA digit analysis (%s)", date)
					return svc.Record(ctx, "Basketball", model.ModePro, model.EntryNbaDigit, label, result)
				},
			)
		},
	}
	cmd.Flags().StringVar(&date, "date", todayISO(), "target date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&save, "save", true, "persist the result to history")
	return cmd
}
