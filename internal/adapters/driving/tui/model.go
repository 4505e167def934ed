package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// mode identifies which surface of the picker has input focus.
type mode int

const (
	// modeList navigates the candidate list.
	modeList mode = iota

	// modeSearch edits a replacement query.
	modeSearch

	// modeManual edits a hand-entered part number.
	modeManual
)

// model is the per-component picker. It terminates with exactly one
// choice event in m.event, or none when the program was killed from
// outside.
type model struct {
	styles *Styles
	keys   *KeyMap

	comp       *domain.SymbolComponent
	query      string
	candidates []domain.Candidate

	cursor int
	mode   mode
	input  textinput.Model
	note   string

	event domain.ChoiceEvent
	width int
}

func newModel(s *Styles, k *KeyMap, comp *domain.SymbolComponent, query string, candidates []domain.Candidate) model {
	if s == nil {
		s = DefaultStyles()
	}
	if k == nil {
		k = DefaultKeyMap()
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return model{
		styles:     s,
		keys:       k,
		comp:       comp,
		query:      query,
		candidates: candidates,
		input:      ti,
		width:      80,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch, modeManual:
			return m.updateInput(msg)
		}
	}
	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.event = domain.ChoiceQuit{}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Skip):
		m.event = domain.ChoiceSkip{}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if len(m.candidates) == 0 {
			return m, nil
		}
		m.event = domain.ChoiceSelect{Index: m.cursor + 1}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.note = ""
		m.input.Placeholder = "search terms"
		m.input.SetValue(m.query)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Manual):
		m.mode = modeManual
		m.note = ""
		m.input.Placeholder = "C12345"
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	// Digits select a candidate directly.
	if idx, err := strconv.Atoi(msg.String()); err == nil && idx >= 1 && idx <= len(m.candidates) {
		m.event = domain.ChoiceSelect{Index: idx}
		return m, tea.Quit
	}

	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.event = domain.ChoiceQuit{}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.note = ""
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		value := strings.TrimSpace(m.input.Value())
		if m.mode == modeSearch {
			if value == "" {
				m.note = "Empty search, try again."
				return m, nil
			}
			m.event = domain.ChoiceRequery{Query: value}
			return m, tea.Quit
		}
		id, ok := domain.NormalizeSupplierID(value)
		if !ok {
			m.note = fmt.Sprintf("%q doesn't look like a part number.", value)
			return m, nil
		}
		m.event = domain.ChoiceManual{ID: id}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s  %s  %s", m.comp.Reference, m.comp.Value, m.comp.Footprint)))
	b.WriteString("\n")

	if len(m.candidates) == 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("No candidates for %q.", m.query)))
	} else {
		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Candidates for %q:", m.query)))
	}
	b.WriteString("\n\n")

	for i, c := range m.candidates {
		line := fmt.Sprintf("%2d. %-10s %-22s %-18s %s", i+1, c.ID, c.MfrPart, c.Manufacturer, stockAndPrice(c))
		if i == m.cursor && m.mode == modeList {
			b.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
		if c.Description != "" {
			b.WriteString(m.styles.Muted.Render("      " + c.Description))
			b.WriteString("\n")
		}
	}

	switch m.mode {
	case modeSearch:
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("New search: "))
		b.WriteString(m.styles.InputField.Render(m.input.View()))
		b.WriteString("\n")
	case modeManual:
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Part number: "))
		b.WriteString(m.styles.InputField.Render(m.input.View()))
		b.WriteString("\n")
	}

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.note))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == modeList {
		b.WriteString(m.helpView(m.keys.ListHelp()))
	} else {
		b.WriteString(m.helpView(m.keys.InputHelp()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m model) helpView(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}

func stockAndPrice(c domain.Candidate) string {
	var parts []string
	if c.Stock > 0 {
		parts = append(parts, fmt.Sprintf("stock %d", c.Stock))
	}
	if c.Price > 0 {
		parts = append(parts, "$"+strconv.FormatFloat(c.Price, 'f', -1, 64))
	}
	return strings.Join(parts, "  ")
}
