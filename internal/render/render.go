package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/toyrobot/internal/style"
)

// Page renders a page with the title at the top, the content block and the footer at the bottom.
// The content is rendered as is.
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	width = max(width, lipgloss.Width(title), lipgloss.Width(footer))

	renderedTopPattern := TopBar(width)
	renderedTitle := style.Title.Render(title)
	renderedFooter := FooterBar(footer, width)

	// Available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)
	centeredContent := lipgloss.PlaceVertical(max(availableHeight, 0), lipgloss.Center, renderedContent)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	return Center(view, termWidth, termHeight)
}

// TopBar renders the slash pattern drawn above every page.
func TopBar(width int) string {
	return style.TopPattern.Render(strings.Repeat("/", max(width, 0)))
}

// FooterBar renders the key hints padded with slashes up to width.
func FooterBar(hints string, width int) string {
	pad := width - lipgloss.Width(hints)
	if pad <= 0 {
		return style.Footer.Render(hints)
	}
	return style.Footer.Render(hints + " " + strings.Repeat("/", pad-1))
}

// Center places view in the middle of the terminal when its size is known.
func Center(view string, termWidth, termHeight int) string {
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
