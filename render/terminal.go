package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/islands/grid"
)

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// TerminalOption configures Terminal.
type TerminalOption func(*terminalConfig)

type terminalConfig struct {
	plain bool
}

// WithPlain drops colours and the frame, leaving one line per row.
func WithPlain() TerminalOption {
	return func(c *terminalConfig) { c.plain = true }
}

// Terminal renders labeled as text, one symbol per cell separated by spaces:
// '~' for water, the island's symbol (1-9, then a-z, cycling) for labeled
// land, '#' for unlabeled land. Unless WithPlain is given, cells are coloured
// with the shared palette and the whole map is framed.
func Terminal(labeled [][]int, opts ...TerminalOption) (string, error) {
	if err := grid.ValidateShape(labeled); err != nil {
		return "", err
	}
	var cfg terminalConfig
	for _, o := range opts {
		o(&cfg)
	}

	styles := make(map[int]lipgloss.Style)
	lines := make([]string, len(labeled))
	for r, row := range labeled {
		var sb strings.Builder
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sym := string(cellRune(v))
			if cfg.plain {
				sb.WriteString(sym)
				continue
			}
			st, ok := styles[v]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(cellHex(v)))
				if v < 0 {
					st = st.Bold(true)
				}
				styles[v] = st
			}
			sb.WriteString(st.Render(sym))
		}
		lines[r] = sb.String()
	}

	body := strings.Join(lines, "\n")
	if cfg.plain {
		return body, nil
	}

	return frameStyle.Render(body), nil
}
