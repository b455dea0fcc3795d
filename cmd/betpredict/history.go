package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dxne-Dev/Bet-predict/internal/cli"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect, verify and prune the prediction history",
	}
	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyVerifyCmd())
	cmd.AddCommand(historyDeleteCmd())
	cmd.AddCommand(historyClearCmd())
	cmd.AddCommand(historyResetCmd())
	return cmd
}

func historyListCmd() *cobra.Command {
	var modeArg string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored predictions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := model.Mode(modeArg)
			if !mode.Valid() {
				return fmt.Errorf("--mode must be %q or %q", model.ModePro, model.ModeProPlus)
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.ListByMode(ctx, mode)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render("History is empty for this mode."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tSPORT\tTYPE\tLABEL\tVERDICT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID,
					e.GeneratedAt().Format("2006-01-02 15:04"),
					e.Sport,
					e.Type,
					e.Label,
					renderVerdict(e.Verification),
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&modeArg, "mode", string(model.ModePro), "history mode (pro, proPlus)")
	return cmd
}

func renderVerdict(v *model.Verification) string {
	switch {
	case v == nil:
		return cli.SubtleStyle.Render("unverified")
	case v.IsSuccess == nil:
		return cli.WarningStyle.Render("pending")
	case *v.IsSuccess:
		return cli.SuccessStyle.Render("won")
	default:
		return cli.ErrorStyle.Render("lost")
	}
}

func historyVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Audit one stored prediction against real results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entry, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}

			svc, err := initOracle(ctx, store)
			if err != nil {
				return err
			}

			verification, err := svc.Verify(ctx, entry)
			if err != nil {
				return renderFailure(err)
			}

			fmt.Println(cli.TitleStyle.Render("Verification — " + entry.Label))
			fmt.Printf("verdict: %s\n", renderVerdict(&verification))
			fmt.Printf("results: %s\n", verification.ActualResults)
			fmt.Printf("analysis: %s\n", verification.Comparison)
			return nil
		},
	}
}

func historyDeleteCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmDestructive(force, "Deleting a history entry") {
				return nil
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Entry deleted."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation gate")
	return cmd
}

func historyClearCmd() *cobra.Command {
	var (
		modeArg string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all history entries of one mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := model.Mode(modeArg)
			if !mode.Valid() {
				return fmt.Errorf("--mode must be %q or %q", model.ModePro, model.ModeProPlus)
			}
			if !confirmDestructive(force, fmt.Sprintf("Clearing the %s history", mode)) {
				return nil
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ClearByMode(ctx, mode); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("History cleared for mode %s.", mode)))
			return nil
		},
	}
	cmd.Flags().StringVar(&modeArg, "mode", string(model.ModePro), "history mode (pro, proPlus)")
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation gate")
	return cmd
}

func historyResetCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Destroy every stored record and start fresh",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmDestructive(force, "Resetting the application erases every mode's history and") {
				return nil
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("All application data erased."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation gate")
	return cmd
}
