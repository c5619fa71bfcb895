package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage long-term goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(),
		newGoalDoneCmd(),
		newGoalRmCmd(),
		newGoalListCmd(),
	)
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <label>",
		Short: "Add a goal with the standard reward attached",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("label is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := a.svc.AddGoal(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconGoal+" Goal added:"), g.Label,
				ui.Muted.Render(fmt.Sprintf("(reward %d pts, id %s)", g.RewardPoints, g.ID)))
			return nil
		},
	}
}

func newGoalDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a goal and collect its reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := a.svc.CompleteGoal(ctx, args[0])
			if err != nil {
				return err
			}
			if !res.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No pending goal with that id."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Gold.Render(ui.IconTrophy+" "+res.Toast.Label),
				ui.Good.Render(fmt.Sprintf("+%d pts", res.Toast.Points)),
				ui.Muted.Render("+XP"))
			return nil
		},
	}
}

func newGoalRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.DeleteGoal(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Removed "+args[0]))
			return nil
		},
	}
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			goals := a.svc.Ledger().Goals
			fmt.Fprintln(out, ui.Heading(ui.IconGoal, "Metas"))
			if len(goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No goals yet. Add one with `disciplina goal add`."))
				return nil
			}
			for i := range goals {
				g := &goals[i]
				mark := ui.Warn.Render("pending")
				if g.Completed {
					mark = ui.Good.Render("done")
				}
				fmt.Fprintf(out, "- %s %s %s %s\n",
					mark, g.Label,
					ui.Muted.Render(fmt.Sprintf("(%d pts)", g.RewardPoints)),
					ui.Muted.Render("id "+g.ID))
			}
			return nil
		},
	}
}
