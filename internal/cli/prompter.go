package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openburn/motordoc/pkg/ports"
	"golang.org/x/term"
)

// TerminalPrompter asks the Save/Discard/Cancel question on the
// terminal. On a non-interactive stdin it always answers Cancel, so
// scripted invocations can never silently discard unsaved work.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer

	// interactive overrides TTY detection in tests.
	interactive func() bool
}

// NewTerminalPrompter creates a prompter over Stdin/Stderr.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{
		in:  os.Stdin,
		out: os.Stderr,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// ConfirmDiscard implements ports.Prompter.
func (p *TerminalPrompter) ConfirmDiscard(ctx context.Context) (ports.Choice, error) {
	if !p.interactive() {
		return ports.ChoiceCancel, nil
	}

	fmt.Fprint(p.out, "The current design has unsaved changes. [s]ave, [d]iscard, or [c]ancel? ")

	reader := bufio.NewReader(p.in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return ports.ChoiceCancel, fmt.Errorf("failed to read answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "s", "save":
			return ports.ChoiceSave, nil
		case "d", "discard":
			return ports.ChoiceDiscard, nil
		case "c", "cancel", "":
			return ports.ChoiceCancel, nil
		default:
			fmt.Fprint(p.out, "Please answer s, d or c: ")
		}
	}
}
