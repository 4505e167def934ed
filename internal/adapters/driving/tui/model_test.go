package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

func pickerComponent() *domain.SymbolComponent {
	return &domain.SymbolComponent{
		Reference: "R1",
		Value:     "10k",
		Footprint: "Resistor_SMD:R_0603_1608Metric",
	}
}

func pickerCandidates() []domain.Candidate {
	return []domain.Candidate{
		{ID: "C25804", MfrPart: "0603WAF1002T5E", Manufacturer: "UNI-ROYAL", Description: "10k 1% thick film resistor", Stock: 79847, Price: 0.0069},
		{ID: "C11702", MfrPart: "0603WAF1001T5E", Manufacturer: "UNI-ROYAL", Description: "1k 1% thick film resistor", Stock: 50000, Price: 0.0062},
		{ID: "C4190", MfrPart: "RC0603FR-0710KL", Manufacturer: "YAGEO", Description: "10k 1% thick film resistor"},
	}
}

func newPicker() model {
	return newModel(nil, nil, pickerComponent(), "10k 0603", pickerCandidates())
}

// press feeds key messages through Update and returns the final model
// plus the command from the last message.
func press(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		var ok bool
		m, ok = updated.(model)
		require.True(t, ok)
	}
	return m, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_Defaults(t *testing.T) {
	m := newPicker()

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 0, m.cursor)
	assert.Nil(t, m.event)
	assert.NotNil(t, m.styles)
	assert.NotNil(t, m.keys)
}

func TestModel_SelectWithEnter(t *testing.T) {
	m, cmd := press(t, newPicker(),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, domain.ChoiceSelect{Index: 2}, m.event)
	assert.NotNil(t, cmd, "selection should quit the program")
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m, _ := press(t, newPicker(), tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	assert.Equal(t, 2, m.cursor)
}

func TestModel_VimNavigation(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("j"), keyRunes("j"), keyRunes("k"))

	assert.Equal(t, 1, m.cursor)
	assert.Nil(t, m.event)
}

func TestModel_DigitSelectsDirectly(t *testing.T) {
	m, cmd := press(t, newPicker(), keyRunes("2"))

	assert.Equal(t, domain.ChoiceSelect{Index: 2}, m.event)
	assert.NotNil(t, cmd)
}

func TestModel_DigitOutOfRangeIgnored(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("9"))

	assert.Nil(t, m.event)
}

func TestModel_Skip(t *testing.T) {
	m, cmd := press(t, newPicker(), keyRunes("s"))

	assert.Equal(t, domain.ChoiceSkip{}, m.event)
	assert.NotNil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("q"))
	assert.Equal(t, domain.ChoiceQuit{}, m.event)

	m, _ = press(t, newPicker(), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, domain.ChoiceQuit{}, m.event)
}

func TestModel_EnterWithoutCandidatesDoesNothing(t *testing.T) {
	m := newModel(nil, nil, pickerComponent(), "10k 0603", nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.event)
}

func TestModel_SearchFlow(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("/"))

	assert.Equal(t, modeSearch, m.mode)
	assert.Equal(t, "10k 0603", m.input.Value(), "input starts from the current query")

	m, cmd := press(t, m, keyRunes("x"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, domain.ChoiceRequery{Query: "10k 0603x"}, m.event)
	assert.NotNil(t, cmd)
}

func TestModel_EmptySearchShowsNote(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("/"))
	m.input.SetValue("   ")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.event)
	assert.Equal(t, "Empty search, try again.", m.note)
	assert.Equal(t, modeSearch, m.mode)
}

func TestModel_EscReturnsToList(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("/"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeList, m.mode)
	assert.Nil(t, m.event)
}

func TestModel_ManualFlow(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("m"))

	assert.Equal(t, modeManual, m.mode)
	assert.Empty(t, m.input.Value())

	m, cmd := press(t, m, keyRunes("c4190"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, domain.ChoiceManual{ID: "C4190"}, m.event)
	assert.NotNil(t, cmd)
}

func TestModel_ManualInvalidShowsNote(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("m"), keyRunes("4190"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.event)
	assert.Contains(t, m.note, "doesn't look like a part number")
	assert.Equal(t, modeManual, m.mode)
}

func TestModel_SkipKeyTypesIntoInput(t *testing.T) {
	// In an input mode "s" and "q" are text, not commands.
	m, _ := press(t, newPicker(), keyRunes("/"), keyRunes("sq"))

	assert.Nil(t, m.event)
	assert.Equal(t, "10k 0603sq", m.input.Value())
}

func TestModel_View(t *testing.T) {
	m := newPicker()
	view := m.View()

	assert.Contains(t, view, "R1  10k  Resistor_SMD:R_0603_1608Metric")
	assert.Contains(t, view, `Candidates for "10k 0603":`)
	assert.Contains(t, view, "C25804")
	assert.Contains(t, view, "stock 79847")
	assert.Contains(t, view, "10k 1% thick film resistor")
	assert.Contains(t, view, "skip")
}

func TestModel_ViewWithoutCandidates(t *testing.T) {
	m := newModel(nil, nil, pickerComponent(), "10k 0603", nil)
	view := m.View()

	assert.Contains(t, view, `No candidates for "10k 0603".`)
}

func TestModel_ViewShowsInputs(t *testing.T) {
	m, _ := press(t, newPicker(), keyRunes("/"))
	assert.Contains(t, m.View(), "New search:")

	m, _ = press(t, newPicker(), keyRunes("m"))
	assert.Contains(t, m.View(), "Part number:")
}

func TestNewChooser(t *testing.T) {
	chooser := NewChooser()

	require.NotNil(t, chooser)
	assert.NotNil(t, chooser.styles)
	assert.NotNil(t, chooser.keys)
}

func TestStockAndPrice(t *testing.T) {
	assert.Equal(t, "stock 12  $0.5", stockAndPrice(domain.Candidate{Stock: 12, Price: 0.5}))
	assert.Equal(t, "stock 12", stockAndPrice(domain.Candidate{Stock: 12}))
	assert.Equal(t, "", stockAndPrice(domain.Candidate{}))
}
