package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pkgscout/pkg/rank"
)

// App wraps the Model with bubbletea components
type App struct {
	*Model
	filterInput textinput.Model
}

// NewApp creates a results browser for one query's ranked candidates
func NewApp(query string, candidates []rank.Candidate) *App {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 100
	ti.Width = 40

	return &App{
		Model:       NewModel(query, candidates),
		filterInput: ti,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		a.ready = true

	case tea.KeyMsg:
		// Handle filter input first
		if a.inputMode {
			switch msg.String() {
			case "enter":
				a.SetFilter(strings.TrimSpace(a.filterInput.Value()))
				a.inputMode = false
				a.filterInput.Blur()
			case "esc":
				a.inputMode = false
				a.filterInput.Blur()
			case "ctrl+c":
				a.quitting = true
				return a, tea.Quit
			default:
				var cmd tea.Cmd
				a.filterInput, cmd = a.filterInput.Update(msg)
				return a, cmd
			}
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			a.quitting = true
			return a, tea.Quit

		case key.Matches(msg, a.keys.Select):
			if c := a.SelectedCandidate(); c != nil {
				a.choice = c
				a.quitting = true
				return a, tea.Quit
			}

		case key.Matches(msg, a.keys.Details):
			a.ToggleDetails()

		case key.Matches(msg, a.keys.Back):
			a.GoBack()

		case key.Matches(msg, a.keys.Filter):
			if a.view == ViewResults {
				a.filterInput.SetValue(a.filterText)
				a.filterInput.Focus()
				a.inputMode = true
			}

		// Navigation
		case key.Matches(msg, a.keys.Up):
			a.MoveCursor(-1)
		case key.Matches(msg, a.keys.Down):
			a.MoveCursor(1)
		case key.Matches(msg, a.keys.PageUp):
			a.MoveCursor(-a.VisibleHeight())
		case key.Matches(msg, a.keys.PageDown):
			a.MoveCursor(a.VisibleHeight())
		case key.Matches(msg, a.keys.Top):
			a.GoToTop()
		case key.Matches(msg, a.keys.Bottom):
			a.GoToBottom()
		}
	}

	return a, nil
}

// View implements tea.Model
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderContent())
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the header bar
func (a *App) renderHeader() string {
	title := a.styles.Header.Render(fmt.Sprintf(" pkgscout - results for %q ", a.query))
	count := a.styles.Description.Render(fmt.Sprintf("%d candidates", len(a.ListItems())))

	// Pad to full width
	padding := a.width - lipgloss.Width(title) - lipgloss.Width(count) - 2
	if padding < 0 {
		padding = 0
	}

	return title + strings.Repeat(" ", padding) + count
}

// renderContent renders the main content area
func (a *App) renderContent() string {
	var content string
	switch a.view {
	case ViewDetails:
		content = a.renderDetails()
	default:
		content = a.renderResults()
	}

	// Account for header and footer
	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 2).
		Render(content)
}

// renderResults renders the candidate list
func (a *App) renderResults() string {
	var b strings.Builder

	if a.inputMode {
		b.WriteString(a.styles.InputPrompt.Render("Filter: "))
		b.WriteString(a.filterInput.View())
		b.WriteString("\n\n")
	} else {
		title := "Select a package"
		if a.filterText != "" {
			title += fmt.Sprintf(" - filter: %s", a.filterText)
		}
		b.WriteString(a.styles.Title.Render(title))
		b.WriteString("\n\n")
	}

	items := a.ListItems()
	if len(items) == 0 {
		b.WriteString(a.styles.Description.Render("No candidates match"))
		return b.String()
	}

	// Calculate visible range
	visibleHeight := a.VisibleHeight()
	start := a.scroll
	end := a.scroll + visibleHeight
	if end > len(items) {
		end = len(items)
	}

	// Render visible items
	for i := start; i < end; i++ {
		b.WriteString(a.renderCandidateLine(items[i], i == a.cursor))
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(items) > visibleHeight {
		scrollPct := float64(a.scroll) / float64(len(items)-visibleHeight) * 100
		b.WriteString(a.styles.Description.Render(fmt.Sprintf("\n  %.0f%% (%d/%d)", scrollPct, a.cursor+1, len(items))))
	}

	return b.String()
}

// renderCandidateLine renders a single candidate line
func (a *App) renderCandidateLine(c rank.Candidate, selected bool) string {
	// Cursor indicator
	cursor := "  "
	if selected {
		cursor = a.styles.ListItemSelected.Render("> ")
	}

	// Candidate name
	name := lipgloss.NewStyle().Foreground(ColorText).Render(c.Record.Name)
	if selected {
		name = a.styles.PackageName.Render(c.Record.Name)
	}

	// Source badge and score
	source := SourceBadge(c.Record.Source)
	score := a.styles.Score.Render(fmt.Sprintf("%d", c.Score))

	// Description (truncated)
	maxDescWidth := a.width - lipgloss.Width(cursor) - lipgloss.Width(name) - lipgloss.Width(source) - lipgloss.Width(score) - 12
	desc := c.Record.Description
	if len(desc) > maxDescWidth && maxDescWidth > 3 {
		desc = desc[:maxDescWidth-3] + "..."
	}

	return fmt.Sprintf("%s%-25s %s %s %s", cursor, name, source, score, a.styles.PackageDesc.Render(desc))
}

// renderDetails renders the detail view for the selected candidate
func (a *App) renderDetails() string {
	var b strings.Builder

	c := a.SelectedCandidate()
	if c == nil {
		b.WriteString(a.styles.Error.Render("No candidate selected"))
		return b.String()
	}

	// Header
	b.WriteString(a.styles.Title.Render(c.Record.Name))
	b.WriteString(" ")
	b.WriteString(SourceBadge(c.Record.Source))
	b.WriteString("\n\n")

	// Score
	b.WriteString(a.styles.Subtitle.Render("Score: "))
	b.WriteString(a.styles.Score.Render(fmt.Sprintf("%d", c.Score)))
	b.WriteString("\n\n")

	// Description
	b.WriteString(a.styles.Subtitle.Render("Description"))
	b.WriteString("\n")
	desc := c.Record.Description
	if desc == "" {
		desc = "(no description)"
	}
	b.WriteString(a.styles.PackageDesc.Width(60).Render(desc))
	b.WriteString("\n\n")

	// Actions
	b.WriteString(a.styles.Subtitle.Render("Actions"))
	b.WriteString("\n")
	b.WriteString("  [enter] Install\n")
	b.WriteString("  [i] Back to results\n")

	return b.String()
}

// renderFooter renders the footer bar
func (a *App) renderFooter() string {
	bindings := a.keys.ResultsHelp()
	if a.view == ViewDetails {
		bindings = a.keys.DetailsHelp()
	}

	var hints []string
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, a.styles.HelpKey.Render(h.Key)+a.styles.HelpSep.String()+a.styles.HelpDesc.Render(h.Desc))
	}

	return a.styles.Footer.
		Width(a.width).
		Render(strings.Join(hints, "  "))
}

// Run opens the results browser and returns the chosen candidate, or nil
// when the user quit without choosing
func Run(query string, candidates []rank.Candidate) (*rank.Candidate, error) {
	app := NewApp(query, candidates)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return app.Choice(), nil
}
