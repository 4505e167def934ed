package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
)

// Ensure PromptChooser implements the interface.
var _ driven.Chooser = (*PromptChooser)(nil)

// PromptChooser collects interactive choices over a line-based
// terminal prompt. Input the chooser cannot parse re-prompts without
// advancing, so the resolution engine only ever sees valid events.
type PromptChooser struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPromptChooser creates a chooser reading from in and prompting on
// out.
func NewPromptChooser(in io.Reader, out io.Writer) *PromptChooser {
	return &PromptChooser{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Choose presents the candidates and blocks until the input parses as
// a choice event.
func (p *PromptChooser) Choose(ctx context.Context, comp *domain.SymbolComponent, query string, candidates []domain.Candidate) (domain.ChoiceEvent, error) {
	p.printCandidates(comp, query, candidates)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(candidates) > 0 {
			fmt.Fprintf(p.out, "Select [1-%d], s=new search, m=manual, k=skip, q=quit: ", len(candidates))
		} else {
			fmt.Fprint(p.out, "s=new search, m=manual, k=skip, q=quit: ")
		}

		input, err := p.readLine()
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(input) {
		case "s":
			fmt.Fprint(p.out, "New search terms: ")
			terms, err := p.readLine()
			if err != nil {
				return nil, err
			}
			if terms == "" {
				fmt.Fprintln(p.out, "Empty search, try again.")
				continue
			}
			return domain.ChoiceRequery{Query: terms}, nil

		case "m":
			fmt.Fprint(p.out, "Part number: ")
			raw, err := p.readLine()
			if err != nil {
				return nil, err
			}
			id, ok := domain.NormalizeSupplierID(raw)
			if !ok {
				fmt.Fprintf(p.out, "%q doesn't look like a part number.\n", raw)
				continue
			}
			return domain.ChoiceManual{ID: id}, nil

		case "k":
			return domain.ChoiceSkip{}, nil

		case "q":
			return domain.ChoiceQuit{}, nil

		default:
			idx, convErr := strconv.Atoi(input)
			if convErr != nil || idx < 1 || idx > len(candidates) {
				fmt.Fprintf(p.out, "Can't make sense of %q.\n", input)
				continue
			}
			return domain.ChoiceSelect{Index: idx}, nil
		}
	}
}

func (p *PromptChooser) printCandidates(comp *domain.SymbolComponent, query string, candidates []domain.Candidate) {
	fmt.Fprintf(p.out, "\n%s  %s  %s\n", comp.Reference, comp.Value, comp.Footprint)

	if len(candidates) == 0 {
		fmt.Fprintf(p.out, "No candidates for %q.\n", query)
		return
	}

	fmt.Fprintf(p.out, "Candidates for %q:\n", query)
	for i, c := range candidates {
		fmt.Fprintf(p.out, "  [%d] %-10s %-22s %-18s %s\n", i+1, c.ID, c.MfrPart, c.Manufacturer, stockAndPrice(c))
		if c.Description != "" {
			fmt.Fprintf(p.out, "      %s\n", c.Description)
		}
	}
}

// readLine reads one trimmed input line. A final line without a
// trailing newline still counts.
func (p *PromptChooser) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
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
