package root

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/timer"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newFocusCmd() *cobra.Command {
	var mode string
	var stopwatch bool

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a pomodoro countdown (focus sessions earn a bonus)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if stopwatch {
				return runStopwatch(ctx, cmd.OutOrStdout())
			}

			m := timer.PomodoroMode(mode)
			if !m.IsValid() {
				return fmt.Errorf("invalid mode %q: want focus, short or long", mode)
			}

			p := timer.NewPomodoro(a.cfg.PomodoroDurations())
			p.SetMode(m)
			p.Toggle()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTomato, "Pomodoro — "+string(m)))

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()

			for {
				fmt.Fprintf(out, "\r%s ", ui.Key.Render(timer.FormatClock(p.Remaining())))
				select {
				case <-ctx.Done():
					fmt.Fprintln(out, "\n"+ui.Muted.Render("Interrupted. No bonus."))
					return nil
				case <-ticker.C:
				}

				done, focusDone := p.Tick()
				if !done {
					continue
				}

				fmt.Fprintln(out, "\r"+ui.Good.Render("00:00"))
				if !focusDone {
					fmt.Fprintln(out, ui.Muted.Render("Break over."))
					return nil
				}
				toast, err := a.svc.CreditFocusBonus(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Good.Render(ui.IconBolt+" "+toast.Label),
					ui.Gold.Render(fmt.Sprintf("+%d pts", toast.Points)),
					ui.Muted.Render("+XP"))
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "focus", "countdown preset: focus, short or long")
	cmd.Flags().BoolVar(&stopwatch, "stopwatch", false, "count up instead of down (no bonus)")
	return cmd
}

// runStopwatch counts up until interrupted. Stopwatch time never earns a
// bonus; it is a measuring tool, not a commitment.
func runStopwatch(ctx context.Context, out io.Writer) error {
	sw := timer.NewStopwatch()
	sw.Start()

	fmt.Fprintln(out, ui.Heading(ui.IconTomato, "Cronômetro"))

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		fmt.Fprintf(out, "\r%s ", ui.Key.Render(timer.FormatElapsed(sw.Elapsed())))
		select {
		case <-ctx.Done():
			sw.Stop()
			fmt.Fprintf(out, "\r%s\n", ui.Good.Render(timer.FormatElapsed(sw.Elapsed())))
			return nil
		case <-ticker.C:
		}
	}
}
