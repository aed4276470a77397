package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/openburn/motordoc/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string, interactive bool) (*TerminalPrompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &TerminalPrompter{
		in:          strings.NewReader(input),
		out:         out,
		interactive: func() bool { return interactive },
	}, out
}

func TestTerminalPrompter_NonInteractiveCancels(t *testing.T) {
	p, out := newTestPrompter("s\n", false)

	choice, err := p.ConfirmDiscard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ports.ChoiceCancel, choice)
	assert.Empty(t, out.String(), "should not prompt without a terminal")
}

func TestTerminalPrompter_Answers(t *testing.T) {
	cases := []struct {
		input string
		want  ports.Choice
	}{
		{"s\n", ports.ChoiceSave},
		{"save\n", ports.ChoiceSave},
		{"D\n", ports.ChoiceDiscard},
		{"c\n", ports.ChoiceCancel},
		{"\n", ports.ChoiceCancel},
	}

	for _, tc := range cases {
		p, _ := newTestPrompter(tc.input, true)

		choice, err := p.ConfirmDiscard(context.Background())

		require.NoError(t, err)
		assert.Equal(t, tc.want, choice, "input %q", tc.input)
	}
}

func TestTerminalPrompter_RepromptsOnGarbage(t *testing.T) {
	p, out := newTestPrompter("what\nd\n", true)

	choice, err := p.ConfirmDiscard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ports.ChoiceDiscard, choice)
	assert.Contains(t, out.String(), "Please answer")
}
