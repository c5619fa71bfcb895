package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newHardcoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hardcore",
		Short: "Toggle hardcore mode (penalties and strikes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			on, err := a.svc.ToggleHardcore(ctx)
			if err != nil {
				return err
			}
			if on {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconSkull+" Hardcore ON. Failures cost points and strikes."))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Hardcore off. Failures still log, without penalty."))
			}
			return nil
		},
	}

	return cmd
}
