package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dxne-Dev/Bet-predict/internal/cli"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/oracle"
)

func bestChoiceCmd() *cobra.Command {
	var (
		sportArg string
		date     string
		save     bool
	)
	cmd := &cobra.Command{
		Use:   "bestchoice",
		Short: "Pro++ weighted best-choice analysis",
		Long: `Run the expert decision agent over a sport and date. Football is scored
on granular corner/card statistics plus a half-by-half match scenario;
other sports on raw performance, squad status and head-to-head context.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sport, err := resolveSport(sportArg)
			if err != nil {
				return err
			}
			if err := validateDate(date); err != nil {
				return err
			}

			return runGenerating(cmd, save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[model.BestChoiceAnalysis], error) {
					return svc.BestChoice(ctx, sport.Name, date)
				},
				func(analysis model.BestChoiceAnalysis) {
					fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Best choice — %s (%s)", sport.Name, date)))
					fmt.Println(analysis.Intro)
					fmt.Println()
					for _, rec := range analysis.Recommendations {
						fmt.Printf("%s %s\n", cli.SuccessStyle.Render("▸"), rec.Match)
						fmt.Printf("  %s → %s %s\n", rec.Market, rec.Choice,
							cli.SubtleStyle.Render(fmt.Sprintf("(confidence: %.0f/100)", rec.Confidence)))
						fmt.Printf("  %s\n", cli.SubtleStyle.Render(rec.Reasoning))
					}
					fmt.Println()
					fmt.Println(cli.InfoStyle.Render(analysis.Conclusion))
				},
				func(ctx context.Context, svc *oracle.Service, analysis model.BestChoiceAnalysis) (model.HistoryEntry, error) {
					label := fmt.Sprintf("Best choice %s (%s)", sport.Name, date)
					return svc.Record(ctx, sport.Name, model.ModeProPlus, model.EntryBestChoice, label, analysis)
				},
			)
		},
	}
	cmd.Flags().StringVar(&sportArg, "sport", "", "sport id or name")
	cmd.Flags().StringVar(&date, "date", todayISO(), "target date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&save, "save", true, "persist the result to history")
	_ = cmd.MarkFlagRequired("sport")
	return cmd
}
