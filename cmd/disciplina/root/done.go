package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <mission>",
		Short: "Complete a mission for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("mission id or label is required")
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

			res, err := a.svc.CompleteMission(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !res.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already resolved today."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s +%d pts, +%d XP — %s\n",
				ui.Good.Render(ui.IconDone), res.Toast.Points, ledger.MissionXP, res.Toast.Label)
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					ui.BadgeLevelUp, ui.Muted.Render(fmt.Sprintf("now level %d", res.LevelAfter)))
			}
			return nil
		},
	}

	return cmd
}
