package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Choice is a numeric option entered at the prompt.
type Choice int

const (
	// ChoiceDown descends into the selected sub-item.
	ChoiceDown Choice = 1
	// ChoiceUp returns to the root item, whatever the current depth.
	ChoiceUp Choice = 2
	// ChoiceEnter descends into the selected sub-item, same as ChoiceDown.
	ChoiceEnter Choice = 3
	// ChoiceBack ends the session.
	ChoiceBack Choice = 4
)

// ErrMalformedChoice is returned for input that is not an integer.
var ErrMalformedChoice = errors.New("malformed choice")

// Valid reports whether c is one of the known options.
func (c Choice) Valid() bool {
	return c >= ChoiceDown && c <= ChoiceBack
}

// String returns the action name used in logs and metric labels.
func (c Choice) String() string {
	switch c {
	case ChoiceDown:
		return "down"
	case ChoiceUp:
		return "up"
	case ChoiceEnter:
		return "enter"
	case ChoiceBack:
		return "back"
	default:
		return "invalid"
	}
}

// ParseChoice parses a single token into a Choice.
// Any integer parses, known or not; use Valid to check it.
func ParseChoice(token string) (Choice, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedChoice, token)
	}
	return Choice(n), nil
}

// MaxTokenLen bounds the number of bytes kept from a single token.
// Longer tokens are drained and reported as malformed.
const MaxTokenLen = 64

// ChoiceReader reads whitespace-separated choices from a stream.
// Several choices may share a line. Each token must be a whole integer:
// "1abc" is rejected as one malformed token rather than read as 1.
type ChoiceReader struct {
	r   *bufio.Reader
	err error // deferred read error, reported after the pending token
}

// NewChoiceReader returns a reader over r.
func NewChoiceReader(r io.Reader) *ChoiceReader {
	return &ChoiceReader{r: bufio.NewReader(r)}
}

// Next blocks until the next token is available and parses it.
// A malformed or oversized token is consumed and reported as ErrMalformedChoice
// so the caller can re-prompt. io.EOF is returned once the input is exhausted;
// any other read failure is wrapped.
func (r *ChoiceReader) Next() (Choice, error) {
	token, overflow, err := r.token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("failed to read choice: %w", err)
	}

	if overflow {
		return 0, fmt.Errorf("%w: token longer than %d bytes", ErrMalformedChoice, MaxTokenLen)
	}

	return ParseChoice(token)
}

// token skips leading whitespace and returns the next word. An error is only
// returned when no token was started; otherwise it is kept for the next call.
func (r *ChoiceReader) token() (string, bool, error) {
	if r.err != nil {
		return "", false, r.err
	}

	var (
		buf      []byte
		started  bool
		overflow bool
	)

	for {
		b, err := r.r.ReadByte()
		if err != nil {
			if !started {
				return "", false, err
			}
			r.err = err
			return string(buf), overflow, nil
		}

		if isSpace(b) {
			if started {
				return string(buf), overflow, nil
			}
			continue
		}

		started = true
		if len(buf) < MaxTokenLen {
			buf = append(buf, b)
		} else {
			overflow = true
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
