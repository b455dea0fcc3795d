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

func prophecyCmd() *cobra.Command {
	var (
		date string
		save bool
	)
	cmd := &cobra.Command{
		Use:   "prophecy",
		Short: "Three Keys NBA prop audit",
		Long: `Apply the strict Three Keys filter (usage-rate hero, positional
weakness, historical scenario) to the night's NBA props. The model
abstains rather than force a pick when no candidate passes all keys.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateDate(date); err != nil {
				return err
			}

			return runGenerating(cmd, save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[model.ProphecyResult], error) {
					return svc.Prophecy(ctx, date)
				},
				func(result model.ProphecyResult) {
					fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("NBA prophecy — %s", result.Date)))
					for i, pick := range result.Picks {
						fmt.Printf("%s #%d %s — %s\n", cli.SuccessStyle.Render("▸"), i+1, pick.Player, pick.Match)
						fmt.Printf("  %s @ %s %s\n", pick.Bet, pick.Odds,
							cli.SubtleStyle.Render(fmt.Sprintf("(%s, %.0f%%)", pick.ConfidenceLevel, pick.ConfidencePercent)))
						fmt.Printf("  hero: %s — %s\n", pick.Hero.Usage, pick.Hero.Detail)
						fmt.Printf("  weakness: %s — %s\n", pick.Weakness.DvP, pick.Weakness.Detail)
						fmt.Printf("  scenario: %s — %s\n", pick.Scenario.History, pick.Scenario.Detail)
						if pick.Value.ValueEdge != "" {
							fmt.Printf("  value: %s estimated vs %s implied (edge %s)\n",
								pick.Value.EstimatedProbability, pick.Value.ImpliedOdds, pick.Value.ValueEdge)
						}
						if pick.Risks != "" {
							fmt.Printf("  %s\n", cli.WarningStyle.Render("risks: "+pick.Risks))
						}
					}
					if len(result.Sources) > 0 {
						fmt.Println(cli.SubtleStyle.Render("sources: " + strings.Join(result.Sources, ", ")))
					}
				},
				func(ctx context.Context, svc *oracle.Service, result model.ProphecyResult) (model.HistoryEntry, error) {
					label := fmt.Sprintf("NBA prophecy (%s)", date)
					return svc.Record(ctx, "Basketball", model.ModePro, model.EntryNbaProphecy, label, result)
				},
			)
		},
	}
	cmd.Flags().StringVar(&date, "date", todayISO(), "target date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&save, "save", true, "persist the result to history")
	return cmd
}
