package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"weightlog/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	lossStyle   = numberStyle.Foreground(lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#4ADE80"})
	gainStyle   = numberStyle.Foreground(lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F97316"})
)

// Column indexes of the entry table.
const (
	colIndex = iota
	colDate
	colWeight
	colVariance
	colNotes
)

// Table renders entries as a bordered table. Row numbers are 1-based, matching
// the positions the edit and rm commands accept.
func Table(entries []domain.Entry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.Date,
			Weight(e.Weight),
			Variance(e.Variance),
			e.Notes,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Date", "Weight", "Change", "Notes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			switch col {
			case colIndex, colWeight:
				return numberStyle
			case colVariance:
				if row < 0 || row >= len(entries) || !entries[row].HasVariance() {
					return numberStyle
				}
				switch v := *entries[row].Variance; {
				case v < 0:
					return lossStyle
				case v > 0:
					return gainStyle
				}
				return numberStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}
