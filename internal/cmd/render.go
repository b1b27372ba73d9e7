package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Alia5/dactylkeys/keycode"
	"github.com/Alia5/dactylkeys/layout"
)

const cellWidth = 8

var (
	cellStyle     = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	changedStyle  = cellStyle.Foreground(lipgloss.Color("214")).Bold(true)
	reservedStyle = cellStyle.Faint(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	gap           = strings.Repeat(" ", 4)
)

// RenderKeymap draws km in its physical arrangement. Keys that differ from
// saved are highlighted; pass saved == km to disable highlighting.
func RenderKeymap(km, saved layout.Keymap) string {
	left := renderCluster(layout.LeftHand, km, saved, lipgloss.Left)
	right := renderCluster(layout.RightHand, km, saved, lipgloss.Right)
	leftThumb := renderCluster(layout.LeftThumb, km, saved, lipgloss.Right)
	rightThumb := renderCluster(layout.RightThumb, km, saved, lipgloss.Left)

	hands := lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
	thumbs := lipgloss.JoinHorizontal(lipgloss.Top, leftThumb, gap, rightThumb)
	thumbs = lipgloss.PlaceHorizontal(lipgloss.Width(hands), lipgloss.Center, thumbs)
	return lipgloss.JoinVertical(lipgloss.Left, hands, "", thumbs)
}

func renderCluster(c layout.Cluster, km, saved layout.Keymap, align lipgloss.Position) string {
	rows := c.Rows()
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, p := range row {
			cells = append(cells, renderCell(km.Get(p), saved.Get(p)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(align, lines...)
}

func renderCell(code, saved keycode.Code) string {
	label := displayLabel(code)
	switch {
	case code != saved:
		return changedStyle.Render(label)
	case code == keycode.Reserved:
		return reservedStyle.Render(label)
	default:
		return cellStyle.Render(label)
	}
}

// displayLabel shortens labels to fit a cell and shows unassigned keys as a dot.
func displayLabel(c keycode.Code) string {
	switch {
	case c == keycode.Reserved:
		return "·"
	case c == keycode.Empty:
		return "_"
	}
	label := c.Label()
	if r := []rune(label); len(r) > cellWidth-2 {
		label = string(r[:cellWidth-3]) + "…"
	}
	return label
}
