package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newAddCmd() *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Add a custom daily mission",
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

			m, err := a.svc.AddMission(ctx, strings.Join(args, " "), points)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Added:"), m.Label,
				ui.Muted.Render(fmt.Sprintf("(%d pts, id %s)", m.Points, m.ID)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&points, "points", "p", 25, "point value of the mission")
	return cmd
}
