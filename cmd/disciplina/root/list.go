package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List today's missions and their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			l := a.svc.Ledger()
			today := a.svc.Today()

			status := map[string]ledger.LogStatus{}
			for i := range l.Logs {
				if l.Logs[i].Date == today {
					status[l.Logs[i].MissionID] = l.Logs[i].Status
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Missões de Hoje"))
			for i := range l.Missions {
				m := &l.Missions[i]
				fmt.Fprintf(out, "- %s %s %s %s\n",
					ui.StatusText(statusLabel(status[m.ID])),
					m.Label,
					ui.Muted.Render(fmt.Sprintf("(%d pts)", m.Points)),
					ui.Muted.Render("id "+m.ID))
			}
			return nil
		},
	}

	return cmd
}

func statusLabel(s ledger.LogStatus) string {
	if s == "" {
		return "pending"
	}
	return string(s)
}
