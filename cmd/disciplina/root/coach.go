package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/coach"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

func newCoachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "AI coach: motivation, workout and diet plans",
	}

	cmd.AddCommand(
		newCoachMotivateCmd(),
		newCoachWorkoutCmd(),
		newCoachDietCmd(),
		newCoachProfileCmd(),
	)
	return cmd
}

// openCoach wires the Gemini client behind the coach facade. The API key
// comes from the environment (GEMINI_API_KEY or DISCIPLINA_GEMINI_API_KEY).
func openCoach(ctx context.Context, a *app) (*coach.Coach, error) {
	if a.cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	client, err := coach.NewGemini(ctx, a.cfg.GeminiAPIKey, a.cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	return coach.New(client, a.log), nil
}

func coachSnapshot(svc *ledger.Service) coach.Snapshot {
	l := svc.Ledger()
	return coach.Snapshot{
		Profile:  l.Profile,
		Points:   l.Points,
		XP:       l.XP,
		Level:    ledger.LevelForXP(l.XP),
		Streak:   svc.Streak(),
		Strikes:  l.Strikes,
		Hardcore: l.HardcoreMode,
		Missions: l.Missions,
	}
}

func newCoachMotivateCmd() *cobra.Command {
	var speak string

	cmd := &cobra.Command{
		Use:   "motivate",
		Short: "Get a motivational reality check",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := openCoach(ctx, a)
			if err != nil {
				return err
			}

			text, err := c.Motivate(ctx, coachSnapshot(a.svc))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCoach, "Coach"))
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if speak == "" {
				return nil
			}
			audio, err := c.Speak(ctx, text, "")
			if err != nil {
				return err
			}
			if err := os.WriteFile(speak, audio, 0o644); err != nil {
				return fmt.Errorf("write audio: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				ui.Muted.Render(fmt.Sprintf("Wrote %s (raw 24kHz 16-bit PCM)", speak)))
			return nil
		},
	}

	cmd.Flags().StringVar(&speak, "speak", "", "also synthesize speech and write the audio to this file")
	return cmd
}

func newCoachWorkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workout",
		Short: "Generate a workout plan for your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := openCoach(ctx, a)
			if err != nil {
				return err
			}

			plan, err := c.GenerateWorkout(ctx, coachSnapshot(a.svc))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCoach, "Plano de Treino — "+plan.Split))
			for _, day := range plan.Days {
				fmt.Fprintln(out, ui.H2.Render(day.Day+" — "+day.Focus))
				for _, ex := range day.Exercises {
					fmt.Fprintf(out, "- %s %s\n", ex.Name,
						ui.Muted.Render(fmt.Sprintf("%s x %s", ex.Sets, ex.Reps)))
					if ex.Tip != "" {
						fmt.Fprintln(out, "  "+ui.Muted.Render(ex.Tip))
					}
				}
			}
			return nil
		},
	}
}

func newCoachDietCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diet",
		Short: "Generate a diet plan for your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := openCoach(ctx, a)
			if err != nil {
				return err
			}

			plan, err := c.GenerateDiet(ctx, coachSnapshot(a.svc))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCoach, "Plano Alimentar"))
			fmt.Fprintln(out, ui.LabelValue("Calorias", plan.Calories))
			for _, meal := range plan.Meals {
				fmt.Fprintln(out, ui.Key.Render(meal.Name+":"))
				for _, item := range meal.Items {
					fmt.Fprintln(out, "  - "+item)
				}
			}
			return nil
		},
	}
}

func newCoachProfileCmd() *cobra.Command {
	var name, age, weight, height, tone string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the profile fed into coach prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := a.svc.Ledger().Profile
			changed := false
			for _, f := range []struct {
				flag string
				dst  *string
			}{
				{name, &p.Name},
				{age, &p.Age},
				{weight, &p.Weight},
				{height, &p.Height},
				{tone, &p.Tone},
			} {
				if f.flag != "" {
					*f.dst = f.flag
					changed = true
				}
			}
			if changed {
				if err := a.svc.UpdateProfile(ctx, p); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCoach, "Perfil"))
			fmt.Fprintln(out, ui.LabelValue("Nome", p.Name))
			fmt.Fprintln(out, ui.LabelValue("Idade", p.Age))
			fmt.Fprintln(out, ui.LabelValue("Peso", p.Weight))
			fmt.Fprintln(out, ui.LabelValue("Altura", p.Height))
			fmt.Fprintln(out, ui.LabelValue("Tom", p.Tone))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&age, "age", "", "age")
	cmd.Flags().StringVar(&weight, "weight", "", "weight")
	cmd.Flags().StringVar(&height, "height", "", "height")
	cmd.Flags().StringVar(&tone, "tone", "", "coach tone (brutal, mentor, sargento)")
	return cmd
}
