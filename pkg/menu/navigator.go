package menu

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/mchmarny/menunav/pkg/metric"
)

// Navigator tracks a position in a menu tree.
//
// The current item is kept as an index path from the root item rather than a
// pointer, so it always resolves against the tree the navigator owns.
// A Navigator is not safe for concurrent use.
type Navigator struct {
	menu      *Menu
	path      []int
	selection int
	counter   metric.IncrementalCounter
}

// Option is a functional option for configuring the Navigator.
type Option func(*Navigator)

// WithCounter records every dispatched choice on c, labeled by action.
func WithCounter(c metric.IncrementalCounter) Option {
	return func(n *Navigator) {
		if c != nil {
			n.counter = c
		}
	}
}

// NewNavigator returns a navigator positioned at the root item of m with selection 0.
func NewNavigator(m *Menu, opts ...Option) (*Navigator, error) {
	if _, err := m.Root(); err != nil {
		return nil, err
	}

	n := &Navigator{
		menu:    m,
		counter: metric.Nop(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// Current returns the item currently displayed.
// It fails with ErrInvalidPath only if the tree no longer holds the recorded path.
func (n *Navigator) Current() (*Item, error) {
	item, err := n.menu.Resolve(n.path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current item %v: %w", n.path, err)
	}
	return item, nil
}

// Path returns a copy of the index path of the current item.
func (n *Navigator) Path() []int {
	return slices.Clone(n.path)
}

// AtRoot reports whether the current item is the root item.
func (n *Navigator) AtRoot() bool {
	return len(n.path) == 0
}

// Selection returns the index of the sub-item the next descent targets.
func (n *Navigator) Selection() int {
	return n.selection
}

// Select sets the index of the sub-item the next descent targets.
// The index is checked only when a descent uses it.
func (n *Navigator) Select(i int) {
	n.selection = i
}

// Display writes the current item's title followed by its sub-items, numbered from 1.
func (n *Navigator) Display(w io.Writer) error {
	cur, err := n.Current()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", cur.Title); err != nil {
		return fmt.Errorf("failed to write menu: %w", err)
	}

	for i, item := range cur.Items {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, item.Title); err != nil {
			return fmt.Errorf("failed to write menu: %w", err)
		}
	}

	return nil
}

// Down descends into the selected sub-item and resets the selection.
// It reports false, leaving state unchanged, when the selection is out of range
// (which is always the case on a leaf).
func (n *Navigator) Down() (bool, error) {
	cur, err := n.Current()
	if err != nil {
		return false, err
	}

	if n.selection < 0 || n.selection >= len(cur.Items) {
		slog.Debug("selection out of range",
			"item", cur.Title,
			"selection", n.selection,
			"items", len(cur.Items))
		return false, nil
	}

	n.path = append(n.path, n.selection)
	n.selection = 0

	slog.Debug("descended", "item", cur.Items[n.path[len(n.path)-1]].Title, "depth", len(n.path))

	return true, nil
}

// Enter has the same effect as Down.
func (n *Navigator) Enter() (bool, error) {
	return n.Down()
}

// Up returns to the root item and resets the selection, regardless of depth.
func (n *Navigator) Up() {
	n.path = n.path[:0]
	n.selection = 0

	slog.Debug("returned to root")
}

// Apply dispatches a single choice and reports whether the session continues.
// Unknown choices leave state unchanged.
func (n *Navigator) Apply(c Choice) (bool, error) {
	n.counter.Increment(c.String())

	switch c {
	case ChoiceDown:
		if _, err := n.Down(); err != nil {
			return false, err
		}
	case ChoiceUp:
		n.Up()
	case ChoiceEnter:
		if _, err := n.Enter(); err != nil {
			return false, err
		}
	case ChoiceBack:
		return false, nil
	}

	return true, nil
}
