package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const (
	// Prompt is written after every menu display.
	Prompt = "\nChoose an option (1 to navigate down, 2 to navigate up, 3 to enter, 4 to go back): "

	// InvalidMessage is written when a choice is unknown or not a number.
	InvalidMessage = "Invalid option, please choose a valid number.\n"
)

// Navigate runs the interactive loop: it displays the current item, prompts,
// reads one choice from in and applies it, until the back choice is entered
// or in is exhausted or fails. All of those end the session with a nil error
// and no further output; only write and navigation failures are returned.
// The context is checked between iterations only; a pending read is not
// interrupted.
func (n *Navigator) Navigate(ctx context.Context, in io.Reader, out io.Writer) error {
	r := NewChoiceReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := n.Display(out); err != nil {
			return err
		}

		if _, err := io.WriteString(out, Prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		c, err := r.Next()
		switch {
		case errors.Is(err, io.EOF):
			slog.Debug("input closed, ending session")
			return nil
		case errors.Is(err, ErrMalformedChoice):
			slog.Debug("discarding malformed choice", "error", err)
			n.counter.Increment(Choice(0).String())
			if err := writeInvalid(out); err != nil {
				return err
			}
			continue
		case err != nil:
			slog.Warn("input failed, ending session", "error", err)
			return nil
		}

		if !c.Valid() {
			slog.Debug("unknown choice", "choice", int(c))
			n.counter.Increment(c.String())
			if err := writeInvalid(out); err != nil {
				return err
			}
			continue
		}

		next, err := n.Apply(c)
		if err != nil {
			return err
		}
		if !next {
			slog.Debug("back chosen, ending session")
			return nil
		}
	}
}

func writeInvalid(out io.Writer) error {
	if _, err := io.WriteString(out, InvalidMessage); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}
