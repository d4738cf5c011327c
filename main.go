package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgeraads/cityclock/clock"
	"github.com/rgeraads/cityclock/config"
	"github.com/rgeraads/cityclock/directory"
	"github.com/rgeraads/cityclock/registry"
)

// viewState represents the current view state
type viewState int

const (
	viewMain viewState = iota
	viewAdd
	viewDelete
	viewDiff
	viewConfirm
)

// tickMsg is sent every second to update the clocks
type tickMsg time.Time

// cityClock pairs a registry entry with its resolved clock. A nil clock
// with a non-nil err renders as an error card instead of a time.
type cityClock struct {
	name string
	clk  *clock.Clock
	err  error
}

// model represents the application state
type model struct {
	// Core data
	reg    *registry.Registry
	clocks []cityClock

	// View state
	state    viewState
	viewport viewport.Model
	ready    bool
	notice   string
	width    int
	height   int
	quitting bool

	// Add mode state
	nameInput          textinput.Model
	tzInput            textinput.Model
	addFocus           int // 0 = name field, 1 = timezone field
	suggestions        []directory.Entry
	selectedSuggestion int
	justEnteredAddMode bool // Flag to prevent initial key from appearing in input

	// Delete mode state
	deleteList     []string
	deleteSelected map[int]bool
	deleteCursor   int

	// Diff mode state
	diffCursor int
	diffFirst  int // index of the first picked city, -1 when unset
	diffSecond int // index of the second picked city, -1 when unset

	// Confirm mode state
	confirmMsg    string
	confirmAction func() error
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			// Reserve space for the command bar (1 newline + 1 bar line)
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.YPosition = 0
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}

	case tickMsg:
		cmds = append(cmds, tickCmd())
	}

	// Update sub-components based on state
	if m.state == viewAdd {
		// Skip the first update cycle so the key that opened the view does
		// not appear in the input field
		if !m.justEnteredAddMode {
			m.nameInput, cmd = m.nameInput.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			m.tzInput, cmd = m.tzInput.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			m.suggestions = directory.Search(m.nameInput.Value(), 8)
			if m.selectedSuggestion >= len(m.suggestions) {
				m.selectedSuggestion = 0
			}
		} else {
			m.justEnteredAddMode = false
		}
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input based on current view state
func (m *model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.state {
	case viewMain:
		return m.handleMainKeys(msg)
	case viewAdd:
		return m.handleAddKeys(msg)
	case viewDelete:
		return m.handleDeleteKeys(msg)
	case viewDiff:
		return m.handleDiffKeys(msg)
	case viewConfirm:
		return m.handleConfirmKeys(msg)
	}
	return nil
}

// handleMainKeys handles keys in main view
func (m *model) handleMainKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return tea.Quit

	case "a":
		// Enter add mode
		m.state = viewAdd
		m.notice = ""
		m.nameInput.Reset()
		m.tzInput.Reset()
		m.suggestions = nil
		m.selectedSuggestion = 0
		m.addFocus = 0
		m.justEnteredAddMode = true
		m.tzInput.Blur()
		m.nameInput.Focus()
		return textinput.Blink

	case "d":
		// Enter delete mode
		m.state = viewDelete
		m.notice = ""
		m.deleteList = nil
		for _, city := range m.reg.Cities() {
			m.deleteList = append(m.deleteList, city.Name)
		}
		m.deleteSelected = make(map[int]bool)
		m.deleteCursor = 0

	case "t":
		// Enter time-difference mode
		if m.reg.Len() < 2 {
			m.notice = "At least two cities are needed to compare"
			return nil
		}
		m.state = viewDiff
		m.notice = ""
		m.diffCursor = 0
		m.diffFirst = -1
		m.diffSecond = -1
	}

	return nil
}

// handleAddKeys handles keys in add view
func (m *model) handleAddKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Cancel and return to main
		m.state = viewMain
		m.notice = ""
		return nil

	case "tab":
		// Switch between the name and timezone fields
		if m.addFocus == 0 {
			m.addFocus = 1
			m.nameInput.Blur()
			m.tzInput.Focus()
		} else {
			m.addFocus = 0
			m.tzInput.Blur()
			m.nameInput.Focus()
		}
		return textinput.Blink

	case "up":
		if m.selectedSuggestion > 0 {
			m.selectedSuggestion--
		}

	case "down":
		if m.selectedSuggestion < len(m.suggestions)-1 {
			m.selectedSuggestion++
		}

	case "enter":
		m.submitAdd()
	}

	return nil
}

// submitAdd validates the add form and adds the city to the registry.
// An empty timezone field falls back to the highlighted suggestion.
func (m *model) submitAdd() {
	name := strings.TrimSpace(m.nameInput.Value())
	tz := strings.TrimSpace(m.tzInput.Value())

	if tz == "" && m.selectedSuggestion < len(m.suggestions) {
		tz = m.suggestions[m.selectedSuggestion].Timezone
	}

	if name == "" || tz == "" {
		m.notice = "Enter both a city name and a timezone"
		return
	}

	if err := m.reg.Add(name, tz); err != nil {
		switch {
		case errors.Is(err, registry.ErrDuplicateName):
			m.notice = fmt.Sprintf("'%s' is already on the list", name)
		case errors.Is(err, clock.ErrInvalidTimezone):
			m.notice = fmt.Sprintf("'%s' is not a valid IANA timezone", tz)
		default:
			m.notice = err.Error()
		}
		return
	}

	m.rebuildClocks()
	m.state = viewMain
	m.notice = fmt.Sprintf("Added '%s'", name)
}

// handleDeleteKeys handles keys in delete view
func (m *model) handleDeleteKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Cancel and return to main
		m.state = viewMain
		m.notice = ""
		return nil

	case "up":
		if m.deleteCursor > 0 {
			m.deleteCursor--
		}

	case "down":
		if m.deleteCursor < len(m.deleteList)-1 {
			m.deleteCursor++
		}

	case " ":
		// Toggle selection
		m.deleteSelected[m.deleteCursor] = !m.deleteSelected[m.deleteCursor]

	case "enter":
		// Collect selected city names
		var toDelete []string
		for idx := range m.deleteSelected {
			if m.deleteSelected[idx] {
				toDelete = append(toDelete, m.deleteList[idx])
			}
		}

		if len(toDelete) == 0 {
			m.notice = "No cities selected"
			return nil
		}

		// Set up confirmation
		m.state = viewConfirm
		if len(toDelete) == 1 {
			m.confirmMsg = fmt.Sprintf("Remove '%s'? (y/n)", toDelete[0])
		} else {
			m.confirmMsg = fmt.Sprintf("Remove %d selected cities? (y/n)", len(toDelete))
		}
		m.confirmAction = func() error {
			m.reg.Remove(toDelete)
			return nil
		}
	}

	return nil
}

// handleDiffKeys handles keys in the time-difference view
func (m *model) handleDiffKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Return to main
		m.state = viewMain
		m.notice = ""
		return nil

	case "up":
		if m.diffCursor > 0 {
			m.diffCursor--
		}

	case "down":
		if m.diffCursor < m.reg.Len()-1 {
			m.diffCursor++
		}

	case "enter":
		if m.diffFirst >= 0 && m.diffSecond >= 0 {
			// Result on screen, start a fresh comparison
			m.diffFirst = -1
			m.diffSecond = -1
			return nil
		}
		if m.diffFirst < 0 {
			m.diffFirst = m.diffCursor
			return nil
		}
		if m.diffCursor == m.diffFirst {
			m.notice = "Choose two different cities"
			return nil
		}
		m.diffSecond = m.diffCursor
		m.notice = ""
	}

	return nil
}

// handleConfirmKeys handles keys in confirm view
func (m *model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y":
		// Confirm action
		if err := m.confirmAction(); err != nil {
			m.notice = err.Error()
			m.state = viewMain
			return nil
		}
		m.rebuildClocks()
		m.state = viewMain

	case "n", "esc":
		// Cancel and return to main
		m.state = viewMain
	}

	return nil
}

// rebuildClocks recreates the clock list from the current registry state.
// Resolution failures are kept per entry so one bad zone cannot take the
// whole view down.
func (m *model) rebuildClocks() {
	m.clocks = buildClocks(m.reg)
}

// buildClocks resolves every registry entry into a clock
func buildClocks(reg *registry.Registry) []cityClock {
	var clocks []cityClock
	for _, city := range reg.Cities() {
		clk, err := clock.New(city.Name, city.Timezone)
		clocks = append(clocks, cityClock{name: city.Name, clk: clk, err: err})
	}
	return clocks
}

// View renders the UI
func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if !m.ready {
		return "Initializing..."
	}

	switch m.state {
	case viewMain:
		return m.renderMain()
	case viewAdd:
		return m.renderAdd()
	case viewDelete:
		return m.renderDelete()
	case viewDiff:
		return m.renderDiff()
	case viewConfirm:
		return m.renderConfirm()
	}

	return ""
}

// renderMain renders the main clock view
func (m model) renderMain() string {
	content := renderClocks(m.clocks, m.width)
	m.viewport.SetContent(content)

	commandBar := m.renderCommandBar()

	return fmt.Sprintf("%s\n%s", m.viewport.View(), commandBar)
}

// renderAdd renders the add city view
func (m model) renderAdd() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Add City"))
	b.WriteString("\n\n")

	b.WriteString("City name:\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString("Timezone (e.g. America/Los_Angeles):\n")
	b.WriteString(m.tzInput.View())
	b.WriteString("\n\n")

	// Suggestions from the city directory
	if len(m.suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for i, e := range m.suggestions {
			line := fmt.Sprintf("  %s, %s (%s)", e.Name, e.CountryCode, e.Timezone)
			if i == m.selectedSuggestion {
				line = highlightStyle.Render("> " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else if len(strings.TrimSpace(m.nameInput.Value())) < directory.MinQueryLength {
		b.WriteString(dimStyle.Render("Type at least 3 characters for suggestions..."))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tab: Switch Field | ↑/↓: Suggestion | Enter: Add | ESC: Cancel"))

	return b.String()
}

// renderDelete renders the delete city view
func (m model) renderDelete() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Remove Cities"))
	b.WriteString("\n\n")

	for i, cityName := range m.deleteList {
		checkbox := " "
		if m.deleteSelected[i] {
			checkbox = "x"
		}
		line := fmt.Sprintf("  [%s] %s", checkbox, cityName)

		if i == m.deleteCursor {
			line = highlightStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓: Navigate | Space: Toggle | Enter: Remove | ESC: Cancel"))

	return b.String()
}

// renderDiff renders the time-difference view
func (m model) renderDiff() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Time Difference"))
	b.WriteString("\n\n")

	cities := m.reg.Cities()

	if m.diffFirst >= 0 && m.diffSecond >= 0 {
		b.WriteString(m.renderDiffResult(cities))
	} else {
		if m.diffFirst < 0 {
			b.WriteString("Pick the first city:\n\n")
		} else {
			b.WriteString(fmt.Sprintf("First: %s\nPick the second city:\n\n", cities[m.diffFirst].Name))
		}

		for i, city := range cities {
			marker := " "
			if i == m.diffFirst {
				marker = "*"
			}
			line := fmt.Sprintf(" %s %s (%s)", marker, city.Name, city.Timezone)

			if i == m.diffCursor {
				line = highlightStyle.Render("> " + line)
			} else {
				line = "  " + line
			}

			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.diffFirst >= 0 && m.diffSecond >= 0 {
		b.WriteString(dimStyle.Render("Enter: Compare Again | ESC: Back"))
	} else {
		b.WriteString(dimStyle.Render("↑/↓: Navigate | Enter: Pick | ESC: Back"))
	}

	return b.String()
}

// renderDiffResult renders the signed difference between the two picked
// cities, in both directions.
func (m model) renderDiffResult(cities []registry.City) string {
	first := cities[m.diffFirst]
	second := cities[m.diffSecond]

	a, errA := clock.New(first.Name, first.Timezone)
	b, errB := clock.New(second.Name, second.Timezone)
	if errA != nil || errB != nil {
		return noticeStyle.Render("Timezone data is unavailable for the selected cities") + "\n"
	}

	d := clock.OffsetBetween(a, b, time.Now())

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s is ", second.Name))
	out.WriteString(highlightStyle.Render(clock.FormatOffset(d)))
	out.WriteString(fmt.Sprintf(" ahead of %s.\n\n", first.Name))
	out.WriteString(dimStyle.Render(fmt.Sprintf("(In other words, %s is %s behind %s.)",
		first.Name, clock.FormatOffset(-d), second.Name)))
	out.WriteString("\n")

	return out.String()
}

// renderConfirm renders the confirmation dialog
func (m model) renderConfirm() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Confirm"))
	b.WriteString("\n\n")

	b.WriteString(m.confirmMsg)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("y: Yes | n/ESC: No"))

	return b.String()
}

// renderCommandBar renders the command bar at the bottom
func (m model) renderCommandBar() string {
	barItemStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	commands := "a: Add City | d: Remove Cities | t: Time Difference | q: Quit"
	leftContent := barItemStyle.Render(commands)

	// Right side: last notice, or the city count
	status := m.notice
	if status == "" {
		status = fmt.Sprintf("%d cities", m.reg.Len())
	}
	rightContent := barItemStyle.Render(status)

	// Push the right content to the edge
	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(rightContent)
	spacingWidth := m.width - leftWidth - rightWidth
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := strings.Repeat(" ", spacingWidth)

	barStyle := lipgloss.NewStyle().Background(lipgloss.Color("235"))
	return barStyle.Render(leftContent + spacing + rightContent)
}

// Shared styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(1, 0)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// tickCmd returns a command that sends a tick message every second
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// renderClocks renders all clocks in a grid layout, in registry order
func renderClocks(clocks []cityClock, width int) string {
	if len(clocks) == 0 {
		helpStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center).
			Padding(2, 4)
		return helpStyle.Render("Press 'a' to add a new city")
	}

	// Calculate grid dimensions
	numClocks := len(clocks)
	cols := calculateColumns(clocks, width)
	rows := (numClocks + cols - 1) / cols // Ceiling division

	// Each card has: border (2) + padding (4) + margins (1 left + 1 right)
	cardOverhead := 8

	// Distribute available width equally among cards
	widthPerCard := width / cols

	cardWidth := widthPerCard - cardOverhead
	if cardWidth < 20 {
		cardWidth = 20 // Minimum width for readability
	}

	var clockCards []string
	for _, cc := range clocks {
		clockCards = append(clockCards, renderClockCard(cc, cardWidth))
	}

	var rowsContent []string
	for row := 0; row < rows; row++ {
		var rowCards []string
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx < len(clockCards) {
				rowCards = append(rowCards, clockCards[idx])
			}
		}
		if len(rowCards) > 0 {
			rowContent := lipgloss.JoinHorizontal(lipgloss.Top, rowCards...)
			rowsContent = append(rowsContent, rowContent)
		}
	}

	return strings.Join(rowsContent, "\n")
}

// renderClockCard renders a single clock card
func renderClockCard(cc cityClock, width int) string {
	cardTitleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Align(lipgloss.Center).
		Width(width).
		PaddingTop(1).
		PaddingBottom(1)

	timeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Align(lipgloss.Center).
		Width(width).
		MarginBottom(1)

	dateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Align(lipgloss.Center).
		Width(width).
		PaddingBottom(1)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 2).
		Margin(1, 1, 0, 1) // Top, Right, Bottom, Left margins

	title := cardTitleStyle.Render(strings.ToUpper(cc.name))

	var timeStr, dateStr string
	if cc.err != nil {
		timeStr = timeStyle.Render("--:--:--")
		dateStr = dateStyle.Render("time unavailable")
	} else {
		timeStr = timeStyle.Render(cc.clk.FormatTime())
		dateStr = dateStyle.Render(cc.clk.FormatDateWithOffset())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		timeStr,
		dateStr,
	)

	return cardStyle.Render(content)
}

// calculateColumns determines the number of columns based on terminal width and city name lengths
func calculateColumns(clocks []cityClock, width int) int {
	// Find the longest city name (uppercase)
	maxCityNameLen := 0
	for _, cc := range clocks {
		cityNameLen := len(strings.ToUpper(cc.name))
		if cityNameLen > maxCityNameLen {
			maxCityNameLen = cityNameLen
		}
	}

	// Minimum content width needed:
	// - Date line is typically ~27 chars: "2025-12-03 - UTC+01:00"
	// - City name needs to fit
	minContentWidth := maxCityNameLen
	if minContentWidth < 27 {
		minContentWidth = 27
	}

	// Account for: border (2), padding left/right (4), margins left/right (2)
	minCardWidth := minContentWidth + 8

	// Try 4 columns first (default preference)
	if width >= minCardWidth*4 {
		return 4
	}

	// Fall back to 2 columns
	if width >= minCardWidth*2 {
		return 2
	}

	// Last resort: 1 column
	return 1
}

// newRegistry builds the session registry from the optional seed file,
// falling back to the built-in default set.
func newRegistry() (*registry.Registry, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return registry.New(registry.DefaultSeed())
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return registry.New(registry.DefaultSeed())
	}
	return registry.New(cfg.Seed())
}

func main() {
	reg, err := newRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize text inputs for the add view
	nameInput := textinput.New()
	nameInput.Placeholder = "City name..."
	nameInput.CharLimit = 50
	nameInput.Width = 50

	tzInput := textinput.New()
	tzInput.Placeholder = "Area/City..."
	tzInput.CharLimit = 50
	tzInput.Width = 50

	m := model{
		reg:            reg,
		clocks:         buildClocks(reg),
		state:          viewMain,
		nameInput:      nameInput,
		tzInput:        tzInput,
		deleteSelected: make(map[int]bool),
		diffFirst:      -1,
		diffSecond:     -1,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
