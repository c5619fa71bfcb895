package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop [redeem <id>]",
		Short: "Browse the reward shop or redeem an item",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if len(args) >= 2 && args[0] == "redeem" {
				r, err := a.svc.RedeemReward(ctx, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Gold.Render(r.Icon+" Redeemed:"), r.Label,
					ui.Bad.Render(fmt.Sprintf("-%d pts", r.Cost)),
					ui.Muted.Render(fmt.Sprintf("(balance %d)", a.svc.Ledger().Points)))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Loja de Recompensas"))
			fmt.Fprintln(out, ui.LabelValue("Saldo", a.svc.Ledger().Points))
			for _, r := range ledger.Rewards {
				afford := ui.Good.Render("ok")
				if a.svc.Ledger().Points < r.Cost {
					afford = ui.Bad.Render("short")
				}
				fmt.Fprintf(out, "- %s %s %s %s %s\n",
					r.Icon, r.Label,
					ui.Gold.Render(fmt.Sprintf("%d pts", r.Cost)),
					afford,
					ui.Muted.Render("id "+r.ID))
			}
			fmt.Fprintln(out, ui.Muted.Render("Redeem with `disciplina shop redeem <id>`."))
			return nil
		},
	}

	return cmd
}
