package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hemosim/internal/hemo"
)

const liveWindow = 120

type TickMsg time.Time

// Model replays a final-beat trace as an animated pressure strip with a
// metrics panel alongside, looping until quit.
type Model struct {
	trace   hemo.Trace
	metrics hemo.Metrics
	label   string
	head    int
	perTick int
	fps     int
	running bool
}

func NewModel(label string, trace hemo.Trace, metrics hemo.Metrics, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	perTick := len(trace) / (fps * 2)
	if perTick < 1 {
		perTick = 1
	}
	return Model{
		trace:   trace,
		metrics: metrics,
		label:   label,
		perTick: perTick,
		fps:     fps,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.head = 0
		}
	case TickMsg:
		if m.running && len(m.trace) > 0 {
			m.head = (m.head + m.perTick) % len(m.trace)
		}
		return m, tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.trace) == 0 {
		return "no trace\n"
	}

	window := make([]float64, 0, liveWindow)
	for i := m.head - liveWindow + 1; i <= m.head; i++ {
		idx := ((i % len(m.trace)) + len(m.trace)) % len(m.trace)
		window = append(window, m.trace[idx].ArterialPressure)
	}

	sample := m.trace[m.head]
	chart := asciigraph.Plot(window,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption("arterial pressure (mmHg)"),
	)

	status := fmt.Sprintf("phase %.2f  P_art %.1f  P_lv %.1f  V_lv %.1f",
		sample.CyclePhase, sample.ArterialPressure, sample.VentricularPressure, sample.VentricularVolume)

	left := graphStyle.Render(chart) + "\n" + valueStyle.Render(status)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, MetricsPanel(m.metrics))

	return headerStyle.Render("hemosim live — "+m.label) + "\n" +
		body + "\n" +
		helpStyle.Render("space pause · r restart · q quit") + "\n"
}

// Run plays the trace in an alternate-screen bubbletea program.
func Run(label string, trace hemo.Trace, metrics hemo.Metrics, fps int) error {
	p := tea.NewProgram(NewModel(label, trace, metrics, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
