package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/hueblocks/internal/color"
	"github.com/alexisbeaulieu97/hueblocks/internal/palette"
	"github.com/alexisbeaulieu97/hueblocks/internal/session"
)

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	snap := m.session.Snapshot()

	header := m.renderHeader()
	footer := m.renderFooter(snap)
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := m.renderBlocks(snap.Blocks, bodyHeight)
	switch page := snap.Page.(type) {
	case session.TheorySelectorPage:
		body = m.renderPopup(body, bodyHeight, renderTheorySelector(page))
	case session.EditColorPage:
		body = m.renderPopup(body, bodyHeight, renderEditColor(page))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	return headerStyle.Width(m.width).Render(m.title)
}

// renderBlocks lays the blocks out in one row, splitting the width evenly
// and giving the remainder to the last block.
func (m Model) renderBlocks(blocks []palette.Block, height int) string {
	if len(blocks) == 0 {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, "No blocks")
	}

	each := m.width / len(blocks)
	cells := make([]string, 0, len(blocks))
	for i, b := range blocks {
		w := each
		if i == len(blocks)-1 {
			w = m.width - each*(len(blocks)-1)
		}
		cells = append(cells, renderBlock(b, w, height))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderBlock(b palette.Block, width, height int) string {
	rgb := b.RGB()
	fg := contrastText(rgb)

	lock := "Unlocked"
	if b.Locked {
		lock = "Locked"
	}

	lines := []string{
		fmt.Sprintf("RGB: %d, %d, %d", rgb.R, rgb.G, rgb.B),
		rgb.Hex(),
		"",
		lock,
		fmt.Sprintf("(toggle with ALT+%d)", b.ID),
		"",
		fmt.Sprintf("ID: %d", b.ID),
	}
	text := strings.Join(lines, "\n")

	bg := lipgloss.Color(rgb.Hex())
	if b.Selected {
		return selectedBlockStyle.
			Width(max(width-2, 0)).
			Height(max(height-2, 0)).
			Foreground(fg).
			Background(bg).
			BorderForeground(fg).
			BorderBackground(bg).
			Render(text)
	}

	return blockStyle.
		Width(width).
		Height(height).
		Foreground(fg).
		Background(bg).
		Render(text)
}

// contrastText picks black or white text for readability on c.
func contrastText(c color.RGB) lipgloss.Color {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 140 {
		return darkText
	}
	return lightText
}

// renderPopup centers content in a box drawn over the block row.
func (m Model) renderPopup(body string, height int, content string) string {
	box := popupBoxStyle.Render(content)
	x := max((m.width-lipgloss.Width(box))/2, 0)
	y := max((height-lipgloss.Height(box))/2, 0)
	return overlay(body, box, x, y)
}

// overlay writes fg over bg with its top-left corner at column x, row y.
// Cells of bg outside fg keep their text and styling.
func overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		base := bgLines[row]

		left := ansi.Truncate(base, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")

		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}

func renderTheorySelector(page session.TheorySelectorPage) string {
	var b strings.Builder
	b.WriteString(popupTitleStyle.Render("Select Theory"))
	b.WriteString("\n")

	for i, t := range palette.Theories() {
		if i == page.Highlighted() {
			b.WriteString(highlightedOptionStyle.Render("> " + t.String()))
		} else {
			b.WriteString(optionStyle.Render("  " + t.String()))
		}
		if i < len(palette.Theories())-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderEditColor(page session.EditColorPage) string {
	preview := page.Preview()
	prompt := "Enter HEX: " + inputStyle.Render("#"+page.Input()+"_")
	swatch := swatchStyle.Background(lipgloss.Color(preview.Hex())).Render("")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		popupTitleStyle.Render("Edit Color"),
		prompt,
		swatch,
		optionStyle.Render(preview.Hex()),
	)
}

func (m Model) renderFooter(snap session.Snapshot) string {
	left := "Theory: " + theoryLabelStyle.Render(snap.Theory.String())
	if snap.Status.Text != "" {
		style := statusStyle
		if snap.Status.Error {
			style = statusErrorStyle
		}
		left += "  " + style.Render(snap.Status.Text)
	}

	helpView := m.help.View(m.keys.forPage(snap.Page.Kind()))

	return footerStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, left, helpView))
}
