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

func newFailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fail <mission>",
		Short: "Admit a failed mission for today",
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

			res, err := a.svc.FailMission(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !res.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already resolved today."))
				return nil
			}

			out := cmd.OutOrStdout()
			if res.ProtocolReset {
				fmt.Fprintln(out, ui.Bad.Render(ui.IconSkull+" RESET DO PROTOCOLO"))
				fmt.Fprintln(out, ui.Muted.Render("Três strikes. Pontos, XP e histórico zerados."))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", ui.Bad.Render(ui.IconFail+" Failed:"), res.Mission.Label)
			if res.Penalty > 0 {
				fmt.Fprintf(out, "%s -%d pts\n", ui.Warn.Render("Penalty:"), res.Penalty)
			}
			if a.svc.Ledger().HardcoreMode {
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Strikes:"), ui.StrikeDots(res.Strikes, ledger.StrikeLimit))
			}
			fmt.Fprintln(out, ui.Warn.Render(res.RealityCheck))
			return nil
		},
	}

	return cmd
}
