package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
	"github.com/LuizDelio/Projeto-Disciplina/internal/timer"
	"github.com/LuizDelio/Projeto-Disciplina/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *ledger.Service

	width  int
	height int

	selected int
	now      time.Time

	lastLog string
}

type completedMsg struct {
	res *ledger.CompleteResult
	err error
}

type failedMsg struct {
	res *ledger.FailResult
	err error
}

type tickMsg time.Time

func newBoardModel(ctx context.Context, svc *ledger.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		now:     time.Now(),
		lastLog: "Pronto.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd drives the day-boundary countdown. A single repeating tick is in
// flight at a time; it dies with the program when the view closes.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteMission(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) failCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.FailMission(m.ctx, id)
		return failedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Erro: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Applied {
			m.lastLog = "Missão já resolvida hoje."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("+%d pontos — %s", msg.res.Toast.Points, msg.res.Toast.Label)
		if msg.res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		return m, nil

	case failedMsg:
		if msg.err != nil {
			m.lastLog = "Erro: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Applied {
			m.lastLog = "Missão já resolvida hoje."
			return m, nil
		}
		if msg.res.ProtocolReset {
			m.lastLog = ui.IconSkull + " RESET DO PROTOCOLO. Comece de novo."
		} else {
			m.lastLog = msg.res.RealityCheck
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.svc.Ledger().Missions)-1 {
				m.selected++
			}
			return m, nil
		case "c", "enter":
			if mission := m.selectedMission(); mission != nil {
				return m, m.completeCmd(mission.ID)
			}
			return m, nil
		case "f":
			if mission := m.selectedMission(); mission != nil {
				return m, m.failCmd(mission.ID)
			}
			return m, nil
		}
	}

	return m, nil
}

func (m boardModel) selectedMission() *ledger.Mission {
	missions := m.svc.Ledger().Missions
	if m.selected < 0 || m.selected >= len(missions) {
		return nil
	}
	return &missions[m.selected]
}

func (m boardModel) View() string {
	l := m.svc.Ledger()
	today := m.now.Format(ledger.DateFormat)

	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconTarget, "Protocolo de Disciplina"))
	b.WriteString("\n")

	level := ledger.LevelForXP(l.XP)
	progress := ledger.XPProgress(l.XP)
	b.WriteString(fmt.Sprintf("%s  %s  %s %s\n",
		ui.LabelValue("Pontos", l.Points),
		ui.LabelValue("Nível", level),
		ui.XPBar(progress, ledger.XPPerLevel, 20),
		ui.Muted.Render(fmt.Sprintf("%d/%d XP", progress, ledger.XPPerLevel)),
	))

	streak := m.svc.Streak()
	line := fmt.Sprintf("%s %s", ui.IconFire, ui.LabelValue("Streak", fmt.Sprintf("%d dias", streak)))
	if l.HardcoreMode {
		line += "  " + ui.LabelValue("Strikes", ui.StrikeDots(l.Strikes, ledger.StrikeLimit))
	}
	line += "  " + ui.Muted.Render(ui.IconClock+" "+timer.FormatCountdown(timer.UntilMidnight(m.now)))
	b.WriteString(line + "\n\n")

	status := missionStatuses(l, today)
	for i := range l.Missions {
		mi := &l.Missions[i]
		cursor := "  "
		label := fmt.Sprintf("%s %s", mi.Label, ui.Muted.Render(fmt.Sprintf("(%d pts)", mi.Points)))
		if i == m.selected {
			cursor = ui.Key.Render("› ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, statusIcon(status[mi.ID]), label))
	}

	b.WriteString("\n" + ui.Muted.Render("c completar · f falhar · ↑/↓ navegar · q sair") + "\n")
	b.WriteString(ui.Panel.Render(m.lastLog) + "\n")

	return b.String()
}

func missionStatuses(l *ledger.Ledger, date string) map[string]ledger.LogStatus {
	out := map[string]ledger.LogStatus{}
	for i := range l.Logs {
		if l.Logs[i].Date == date {
			out[l.Logs[i].MissionID] = l.Logs[i].Status
		}
	}
	return out
}

func statusIcon(s ledger.LogStatus) string {
	switch s {
	case ledger.StatusCompleted:
		return ui.IconDone
	case ledger.StatusFailed:
		return ui.IconFail
	default:
		return ui.Muted.Render("·")
	}
}
