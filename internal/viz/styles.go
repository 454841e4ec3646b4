package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hemosim/internal/hemo"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(6)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// MetricsPanel renders the nine summary metrics as a bordered panel.
func MetricsPanel(m hemo.Metrics) string {
	rows := []struct {
		label  string
		format string
		value  float64
	}{
		{"EDV", "%.1f mL", m.EDV},
		{"ESV", "%.1f mL", m.ESV},
		{"SV", "%.1f mL", m.SV},
		{"CO", "%.2f L/min", m.CO},
		{"MAP", "%.1f mmHg", m.MAP},
		{"SBP", "%.1f mmHg", m.SBP},
		{"DBP", "%.1f mmHg", m.DBP},
		{"PP", "%.1f mmHg", m.PP},
		{"EF", "%.1f %%", m.EF},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(fmt.Sprintf(row.format, row.value)))
		b.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
