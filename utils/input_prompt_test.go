package utils

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputPrompt(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  2  \n"))

	choice, err := InputPrompt("Choose mode [1/2/3]: ", reader)
	require.NoError(t, err)
	assert.Equal(t, "2", choice)
}

func TestConfirmPrompt(t *testing.T) {
	cases := []struct {
		input    string
		accepted bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false}, // EOF counts as rejection
	}

	for _, tc := range cases {
		reader := bufio.NewReader(strings.NewReader(tc.input))
		accepted, err := ConfirmPrompt("Remove them?", reader)
		require.NoError(t, err)
		assert.Equal(t, tc.accepted, accepted, "input %q", tc.input)
	}
}
