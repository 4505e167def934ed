// Package tui implements the full-screen interactive picker using
// bubbletea. It presents one component's candidates at a time and
// feeds the resolution engine the same choice events the line prompt
// produces.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
)

// Ensure Chooser implements the interface.
var _ driven.Chooser = (*Chooser)(nil)

// Chooser runs a full-screen picker program per component.
type Chooser struct {
	styles *Styles
	keys   *KeyMap
}

// NewChooser creates a picker with the default theme and keys.
func NewChooser() *Chooser {
	return &Chooser{
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
	}
}

// Choose presents the candidates and blocks until the picker
// produces an event.
func (c *Chooser) Choose(ctx context.Context, comp *domain.SymbolComponent, query string, candidates []domain.Candidate) (domain.ChoiceEvent, error) {
	m := newModel(c.styles, c.keys, comp, query, candidates)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	fm, ok := final.(model)
	if !ok || fm.event == nil {
		return nil, errors.New("picker closed without a choice")
	}
	return fm.event, nil
}
