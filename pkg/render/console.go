package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/limaJavier/cycle-timetabling/pkg/model"
)

const DefaultCellWidth = 30

var (
	ColorHeader = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")

	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
)

// ConsoleView draws a schedule as a fixed-width grid: one column per group, a banner per day and one row per slot
type ConsoleView struct {
	CellWidth int // Zero means DefaultCellWidth
}

func NewConsoleView() *ConsoleView {
	return &ConsoleView{CellWidth: DefaultCellWidth}
}

func (view *ConsoleView) Show(w io.Writer, data ScheduleData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("invalid schedule data: %w", err)
	}

	width := view.CellWidth
	if width <= 0 {
		width = DefaultCellWidth
	}
	align := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }

	// Row layout: "|" + left margin + "|" + one cell and "|" per group
	total := 1 + width + 1 + (width+1)*len(data.Groups)
	separator := StyleDim.Render(strings.Repeat("-", total))

	out := bufio.NewWriter(w)

	//** Header
	out.WriteString(align(" ") + " |")
	for _, name := range data.GroupNames() {
		out.WriteString(align(StyleHeader.Render(name)) + "|")
	}
	out.WriteString("\n")

	//** Days
	for _, day := range model.Days() {
		out.WriteString(separator + "\n")
		out.WriteString("|" + lipgloss.PlaceHorizontal(total-2, lipgloss.Center, StyleHeader.Render(day.Label())) + "|\n")
		out.WriteString(separator + "\n")

		for slot := range data.LessonsPerDay {
			out.WriteString("|" + strings.Repeat(" ", width) + "|")
			for group := range data.Groups {
				out.WriteString(align(data.lesson(group, day, slot)) + "|")
			}
			out.WriteString("\n")
		}
	}

	return out.Flush()
}
