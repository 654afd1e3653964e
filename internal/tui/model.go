package tui

import (
	"strings"

	"pkgscout/pkg/rank"
)

// View represents what the browser is showing
type View int

const (
	ViewResults View = iota
	ViewDetails
)

// Model holds the browser state
type Model struct {
	// Input
	query      string
	candidates []rank.Candidate

	// Core state
	ready    bool
	quitting bool

	// Dimensions
	width  int
	height int

	// Navigation
	view   View
	cursor int
	scroll int

	// Filtering
	filterText string
	inputMode  bool

	// The candidate picked with enter, nil until then
	choice *rank.Candidate

	// Styles and keys
	styles *Styles
	keys   KeyMap
}

// NewModel creates a browser model over ranked candidates
func NewModel(query string, candidates []rank.Candidate) *Model {
	return &Model{
		query:      query,
		candidates: candidates,
		styles:     DefaultStyles(),
		keys:       DefaultKeyMap(),
	}
}

// SetSize sets the terminal size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// VisibleHeight returns the height available for list content
func (m *Model) VisibleHeight() int {
	// Account for header (1), title (2), scroll indicator (2), footer (1)
	return m.height - 6
}

// ListItems returns the candidates matching the current filter
func (m *Model) ListItems() []rank.Candidate {
	if m.filterText == "" {
		return m.candidates
	}

	needle := strings.ToLower(m.filterText)
	var filtered []rank.Candidate
	for _, c := range m.candidates {
		if strings.Contains(strings.ToLower(c.Record.Name), needle) ||
			strings.Contains(strings.ToLower(c.Record.Description), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// SelectedCandidate returns the candidate under the cursor
func (m *Model) SelectedCandidate() *rank.Candidate {
	items := m.ListItems()
	if m.cursor >= 0 && m.cursor < len(items) {
		return &items[m.cursor]
	}
	return nil
}

// Choice returns the candidate picked with enter, or nil when the browser
// was quit without choosing
func (m *Model) Choice() *rank.Candidate {
	return m.choice
}

// MoveCursor moves the cursor by delta, clamping to valid range
func (m *Model) MoveCursor(delta int) {
	items := m.ListItems()
	if len(items) == 0 {
		return
	}

	newPos := m.cursor + delta
	if newPos < 0 {
		newPos = 0
	}
	if newPos >= len(items) {
		newPos = len(items) - 1
	}
	m.cursor = newPos

	// Adjust scroll to keep cursor visible
	visibleHeight := m.VisibleHeight()
	if newPos < m.scroll {
		m.scroll = newPos
	} else if newPos >= m.scroll+visibleHeight {
		m.scroll = newPos - visibleHeight + 1
	}
}

// GoToTop moves cursor to the top
func (m *Model) GoToTop() {
	m.cursor = 0
	m.scroll = 0
}

// GoToBottom moves cursor to the bottom
func (m *Model) GoToBottom() {
	items := m.ListItems()
	if len(items) == 0 {
		return
	}
	m.cursor = len(items) - 1

	visibleHeight := m.VisibleHeight()
	if len(items) > visibleHeight {
		m.scroll = len(items) - visibleHeight
	}
}

// SetFilter applies a filter and resets the viewport
func (m *Model) SetFilter(text string) {
	m.filterText = text
	m.cursor = 0
	m.scroll = 0
}

// ToggleDetails flips between the results list and the detail view
func (m *Model) ToggleDetails() {
	if m.view == ViewDetails {
		m.view = ViewResults
		return
	}
	if m.SelectedCandidate() != nil {
		m.view = ViewDetails
	}
}

// GoBack returns to the results list
func (m *Model) GoBack() {
	m.view = ViewResults
}
