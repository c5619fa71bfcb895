package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newSuggestCmd() *cobra.Command {
	var accept bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Draw a random mission suggestion",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.svc.SuggestMission()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Key.Render(ui.IconSparkle+" Sugestão:"), s.Label,
				ui.Muted.Render(fmt.Sprintf("(%d pts)", s.Points)))

			if !accept {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Run with --accept to add it."))
				return nil
			}
			m, err := a.svc.AddMission(ctx, s.Label, s.Points)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Added:"), m.Label)
			return nil
		},
	}

	cmd.Flags().BoolVar(&accept, "accept", false, "add the suggestion to your missions")
	return cmd
}
