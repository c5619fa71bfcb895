package root

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
	"github.com/LuizDelio/Projeto-Disciplina/internal/timer"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newAlarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alarm",
		Short: "Manage wall-clock alarms",
	}

	cmd.AddCommand(
		newAlarmAddCmd(),
		newAlarmRmCmd(),
		newAlarmListCmd(),
		newAlarmWatchCmd(),
	)
	return cmd
}

func newAlarmAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <HH:MM> [label...]",
		Short: "Register a daily alarm",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("alarm time is required (HH:MM)")
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

			al, err := a.svc.AddAlarm(ctx, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconClock+" Alarm set:"), al.Time, al.Label,
				ui.Muted.Render("id "+al.ID))
			return nil
		},
	}
}

func newAlarmRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an alarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.RemoveAlarm(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Removed "+args[0]))
			return nil
		},
	}
}

func newAlarmListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List alarms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			alarms := a.svc.Ledger().Alarms
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Alarmes"))
			if len(alarms) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No alarms."))
				return nil
			}
			for i := range alarms {
				al := &alarms[i]
				state := ui.Good.Render("active")
				if !al.Active {
					state = ui.Muted.Render("off")
				}
				fmt.Fprintf(out, "- %s %s %s %s\n", al.Time, al.Label, state, ui.Muted.Render("id "+al.ID))
			}
			return nil
		},
	}
}

func newAlarmWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stay in the foreground and ring alarms as they come due",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			sched := timer.NewAlarmScheduler(
				func() []ledger.Alarm { return a.svc.Ledger().Alarms },
				func(al ledger.Alarm) {
					// Terminal bell plus a visible line.
					fmt.Fprintf(out, "\a%s %s %s\n", ui.Bad.Render(ui.IconClock+" ALARME"), al.Time, al.Label)
				},
				a.log,
			)
			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			fmt.Fprintln(out, ui.Muted.Render("Watching alarms. Ctrl+C to stop."))
			<-ctx.Done()
			return nil
		},
	}
}
