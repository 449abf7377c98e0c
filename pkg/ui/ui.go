package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

type UI struct {
	enabled bool

	bold   lipgloss.Style
	dim    lipgloss.Style
	red    lipgloss.Style
	yellow lipgloss.Style
	green  lipgloss.Style
	gray   lipgloss.Style
	header lipgloss.Style
	border lipgloss.Style
}

func New(out io.Writer) UI {
	enabled := shouldStyle(out)
	r := lipgloss.NewRenderer(out)

	return UI{
		enabled: enabled,

		bold:   r.NewStyle().Bold(true),
		dim:    r.NewStyle().Faint(true),
		red:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		yellow: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		green:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		gray:   r.NewStyle().Foreground(lipgloss.Color("8")),
		header: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#559db6", Dark: "#a3ddef"}).Bold(true),
		border: r.NewStyle().Faint(true),
	}
}

func shouldStyle(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok || f == nil {
		return false
	}
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		return false
	}
	return true
}

func (u UI) Bold(s string) string { return u.render(u.bold, s) }
func (u UI) Dim(s string) string  { return u.render(u.dim, s) }

// Status renders a color badge, e.g. "Critical" in red.
func (u UI) Status(color models.StatusColor) string {
	switch color {
	case models.StatusColorRed:
		return u.render(u.red, color.Label())
	case models.StatusColorYellow:
		return u.render(u.yellow, color.Label())
	case models.StatusColorGreen:
		return u.render(u.green, color.Label())
	default:
		return u.render(u.gray, color.Label())
	}
}

// Table lays rows out under headers. Borders and header colors are only
// drawn for terminals.
func (u UI) Table(headers []string, rows [][]string) string {
	t := table.New().Headers(headers...).Rows(rows...)
	if !u.enabled {
		return t.Border(lipgloss.HiddenBorder()).String()
	}
	return t.
		Border(lipgloss.RoundedBorder()).
		BorderStyle(u.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return u.header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}

func (u UI) render(style lipgloss.Style, s string) string {
	if !u.enabled {
		return s
	}
	return style.Render(s)
}
