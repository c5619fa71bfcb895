package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "disciplina",
	Short:         "Protocolo de Disciplina — gamified personal discipline ledger",
	Long:          "Disciplina tracks daily missions, points, XP and streaks, punishes inactivity,\nand keeps a hardcore three-strike protocol over your own behavior.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newFailCmd(),
		newListCmd(),
		newRmCmd(),
		newSuggestCmd(),
		newGoalCmd(),
		newShopCmd(),
		newStatusCmd(),
		newHardcoreCmd(),
		newBoardCmd(),
		newFocusCmd(),
		newAlarmCmd(),
		newCoachCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconFail+" "+err.Error()))
		os.Exit(1)
	}
}
