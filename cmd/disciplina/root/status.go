package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show points, level, streak and hardcore state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			l := a.svc.Ledger()
			level := ledger.LevelForXP(l.XP)
			progress := ledger.XPProgress(l.XP)
			toNext := ledger.XPToNext(l.XP)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Protocolo de Disciplina"))
			fmt.Fprintln(out, ui.LabelValue("Pontos", l.Points))
			fmt.Fprintln(out, ui.LabelValue("Nível", fmt.Sprintf("%d (%d XP, %d to next)", level, l.XP, toNext)))
			fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render("XP:"),
				ui.XPBar(progress, ledger.XPPerLevel, 20),
				ui.Muted.Render(fmt.Sprintf("%d/%d", progress, ledger.XPPerLevel)))
			fmt.Fprintf(out, "%s %s\n", ui.IconFire, ui.LabelValue("Streak", fmt.Sprintf("%d dias", a.svc.Streak())))

			if l.HardcoreMode {
				fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render("Hardcore:"), ui.Bad.Render("ON"),
					ui.StrikeDots(l.Strikes, ledger.StrikeLimit))
			} else {
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Hardcore:"), ui.Muted.Render("off"))
			}
			if l.LastResetDate != nil {
				fmt.Fprintln(out, ui.Muted.Render("Last protocol reset: "+*l.LastResetDate))
			}
			return nil
		},
	}

	return cmd
}
