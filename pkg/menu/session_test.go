package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rootView     = "\nMain Menu\n1. Settings\n2. Media\n"
	settingsView = "\nSettings\n1. Display Settings\n2. Audio Settings\n"
	displayView  = "\nDisplay Settings\n"
)

func navigate(t *testing.T, input string) (*Navigator, string) {
	t.Helper()
	n := newTestNavigator(t)

	var out bytes.Buffer
	require.NoError(t, n.Navigate(context.Background(), strings.NewReader(input), &out))

	return n, out.String()
}

func TestNavigate_DownDownBack(t *testing.T) {
	n, out := navigate(t, "1\n1\n4\n")

	want := rootView + Prompt + settingsView + Prompt + displayView + Prompt
	assert.Equal(t, want, out)
	assert.Equal(t, 3, strings.Count(out, Prompt))
	assert.Equal(t, "Display Settings", current(t, n).Title)
}

func TestNavigate_BackImmediately(t *testing.T) {
	_, out := navigate(t, "4\n")

	assert.Equal(t, rootView+Prompt, out)
}

func TestNavigate_UpFromDepth(t *testing.T) {
	n, out := navigate(t, "3\n3\n2\n4\n")

	want := rootView + Prompt + settingsView + Prompt + displayView + Prompt + rootView + Prompt
	assert.Equal(t, want, out)
	assert.True(t, n.AtRoot())
	assert.Equal(t, 0, n.Selection())
}

func TestNavigate_DownAtLeafIsSilent(t *testing.T) {
	n, out := navigate(t, "1 1 1 4")

	want := rootView + Prompt + settingsView + Prompt + displayView + Prompt + displayView + Prompt
	assert.Equal(t, want, out)
	assert.NotContains(t, out, InvalidMessage)
	assert.Equal(t, "Display Settings", current(t, n).Title)
}

func TestNavigate_InvalidChoices(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown number", input: "9\n4\n"},
		{name: "zero", input: "0\n4\n"},
		{name: "negative", input: "-3\n4\n"},
		{name: "not a number", input: "abc\n4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, out := navigate(t, tt.input)

			want := rootView + Prompt + InvalidMessage + rootView + Prompt
			assert.Equal(t, want, out)
			assert.True(t, n.AtRoot())
		})
	}
}

func TestNavigate_EndOfInput(t *testing.T) {
	n, out := navigate(t, "1\n")

	assert.Equal(t, rootView+Prompt+settingsView+Prompt, out)
	assert.Equal(t, "Settings", current(t, n).Title)
}

func TestNavigate_EmptyInput(t *testing.T) {
	_, out := navigate(t, "")

	assert.Equal(t, rootView+Prompt, out)
}

func TestNavigate_ReadErrorEndsSession(t *testing.T) {
	n := newTestNavigator(t)

	var out bytes.Buffer
	err := n.Navigate(context.Background(), failingReader{err: errors.New("boom")}, &out)

	require.NoError(t, err, "a failed read ends the session like back")
	assert.Equal(t, rootView+Prompt, out.String())
}

func TestNavigate_ReadErrorAfterChoice(t *testing.T) {
	in := io.MultiReader(strings.NewReader("1 "), failingReader{err: errors.New("boom")})

	var out bytes.Buffer
	err := newTestNavigator(t).Navigate(context.Background(), in, &out)

	require.NoError(t, err)
	assert.Equal(t, rootView+Prompt+settingsView+Prompt, out.String())
}

func TestNavigate_OversizedToken(t *testing.T) {
	tests := map[string]string{
		"letters": strings.Repeat("x", 70000),
		"digits":  strings.Repeat("1", 70000),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			n, out := navigate(t, token+"\n4\n")

			want := rootView + Prompt + InvalidMessage + rootView + Prompt
			assert.Equal(t, want, out)
			assert.True(t, n.AtRoot())
		})
	}
}

func TestNavigate_TrailingGarbageRejected(t *testing.T) {
	_, out := navigate(t, "1abc\n4\n")

	assert.Equal(t, rootView+Prompt+InvalidMessage+rootView+Prompt, out)
}

func TestNavigate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newTestNavigator(t).Navigate(ctx, strings.NewReader("1\n"), &out)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestNavigate_WriteError(t *testing.T) {
	err := newTestNavigator(t).Navigate(context.Background(), strings.NewReader("4"), failingWriter{})
	assert.Error(t, err)
}
