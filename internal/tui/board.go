package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
)

// RunBoard opens the interactive mission dashboard.
func RunBoard(ctx context.Context, svc *ledger.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
