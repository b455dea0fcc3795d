package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/oracle"
)

func ticketCmd() *cobra.Command {
	var (
		sportArg   string
		date       string
		eventCount int
		save       bool
	)
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Build a coherent accumulator ticket",
		Long:  `Find real fixtures for a sport and date and build a coherent bettor's ticket from them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sport, err := resolveSport(sportArg)
			if err != nil {
				return err
			}
			if err := validateDate(date); err != nil {
				return err
			}
			if err := oracle.ValidateEventCount(eventCount); err != nil {
				return err
			}

			dateRange := fmt.Sprintf("on %s", date)
			return runGenerating(cmd, save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[model.BetSlip], error) {
					return svc.BuildTicket(ctx, sport.Name, eventCount, dateRange)
				},
				printSlip,
				func(ctx context.Context, svc *oracle.Service, slip model.BetSlip) (model.HistoryEntry, error) {
					label := fmt.Sprintf("Ticket %s (%s)", sport.Name, date)
					return svc.Record(ctx, sport.Name, model.ModePro, model.EntryTicket, label, slip)
				},
			)
		},
	}
	cmd.Flags().StringVar(&sportArg, "sport", "", "sport id or name")
	cmd.Flags().StringVar(&date, "date", "", "target date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&eventCount, "events", 3, "number of fixtures on the ticket (2-10)")
	cmd.Flags().BoolVar(&save, "save", true, "persist the result to history")
	_ = cmd.MarkFlagRequired("sport")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func megaCmd() *cobra.Command {
	var (
		date string
		save bool
	)
	cmd := &cobra.Command{
		Use:   "mega",
		Short: "Generate three themed accumulator slips",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateDate(date); err != nil {
				return err
			}

			return runGenerating(cmd, save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[[]model.BetSlip], error) {
					return svc.MegaBets(ctx, date)
				},
				func(slips []model.BetSlip) {
					for _, slip := range slips {
						printSlip(slip)
						fmt.Println()
					}
				},
				func(ctx context.Context, svc *oracle.Service, slips []model.BetSlip) (model.HistoryEntry, error) {
					label := fmt.Sprintf("Mega bets (%s)", date)
					return svc.Record(ctx, "Multi-sport", model.ModePro, model.EntryMegaBets, label, slips)
				},
			)
		},
	}
	cmd.Flags().StringVar(&date, "date", todayISO(), "target date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&save, "save", true, "persist the result to history")
	return cmd
}

func recommendCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get today's safest recommended tickets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerating(cmd, save,
				func(ctx context.Context, svc *oracle.Service) (oracle.Outcome[[]model.BetSlip], error) {
					return svc.Recommendations(ctx)
				},
				func(slips []model.BetSlip) {
					for _, slip := range slips {
						printSlip(slip)
						fmt.Println()
					}
				},
				func(ctx context.Context, svc *oracle.Service, slips []model.BetSlip) (model.HistoryEntry, error) {
					label := fmt.Sprintf("AI recommendation (%s)", todayISO())
					return svc.Record(ctx, "Multi-sport", model.ModePro, model.EntryRecommendation, label, slips)
				},
			)
		},
	}
	cmd.Flags().BoolVar(&save, "save", true, "persist the result to history")
	return cmd
}
