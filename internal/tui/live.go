// Package tui renders a live view of a running simulation: simulated
// time, instantaneous temperature and an ETA, updated as the step loop
// progresses.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bibber/internal/engine"
	"github.com/san-kum/bibber/internal/progress"
	"github.com/san-kum/bibber/internal/unit"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

const historyLen = 120

// Update is one progress sample pushed from the step loop.
type Update struct {
	Iteration   uint64
	SimTime     unit.Time
	Temperature float64
	ETA         time.Duration
}

// Observer forwards step samples into the TUI channel. Samples are
// dropped rather than blocking the integrator.
type Observer struct {
	ch    chan<- Update
	est   *progress.Estimator
	every uint64
}

// NewObserver samples every `every` steps against a totalSteps budget.
func NewObserver(ch chan<- Update, totalSteps int, every uint64) *Observer {
	if every == 0 {
		every = 10
	}
	return &Observer{ch: ch, est: progress.NewEstimator(totalSteps), every: every}
}

func (o *Observer) OnStep(u *engine.Universe) {
	if u.Iteration()%o.every != 0 {
		return
	}
	sample := Update{
		Iteration:   u.Iteration(),
		SimTime:     u.Time(),
		Temperature: u.Temperature(),
		ETA:         o.est.Remaining(int(u.Iteration())),
	}
	select {
	case o.ch <- sample:
	default:
	}
}

type doneMsg struct{}

type model struct {
	title   string
	end     unit.Time
	updates <-chan Update

	latest Update
	temps  []float64
	width  int
	done   bool
}

// New builds the live-view model. Closing the update channel signals
// completion and quits the view.
func New(title string, end unit.Time, updates <-chan Update) tea.Model {
	return model{
		title:   title,
		end:     end,
		updates: updates,
		temps:   make([]float64, 0, historyLen),
		width:   80,
	}
}

// Run blocks until the view quits.
func Run(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m model) Init() tea.Cmd { return m.listen() }

func (m model) listen() tea.Cmd {
	return func() tea.Msg {
		u, ok := <-m.updates
		if !ok {
			return doneMsg{}
		}
		return u
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case Update:
		m.latest = msg
		m.temps = append(m.temps, msg.Temperature)
		if len(m.temps) > historyLen {
			m.temps = m.temps[1:]
		}
		return m, m.listen()
	case doneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	s := titleStyle.Render(m.title) + "\n\n"

	if len(m.temps) >= 2 {
		w := m.width - 12
		if w > historyLen {
			w = historyLen
		}
		if w > 10 {
			s += asciigraph.Plot(m.temps,
				asciigraph.Height(10),
				asciigraph.Width(w),
				asciigraph.Caption("temperature (K)"),
			) + "\n\n"
		}
	}

	s += fmt.Sprintf("%s %s    %s %s    %s %s    %s %s\n",
		labelStyle.Render("t:"),
		valueStyle.Render(fmt.Sprintf("%.3f ps", m.latest.SimTime.AsPicoseconds())),
		labelStyle.Render("end:"),
		valueStyle.Render(fmt.Sprintf("%.3f ps", m.end.AsPicoseconds())),
		labelStyle.Render("step:"),
		valueStyle.Render(fmt.Sprintf("%d", m.latest.Iteration)),
		labelStyle.Render("eta:"),
		valueStyle.Render(m.latest.ETA.Round(time.Second).String()),
	)

	if m.done {
		s += doneStyle.Render("run finished") + "\n"
	} else {
		s += labelStyle.Render("q to quit") + "\n"
	}
	return s
}
