package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

var (
	// ErrEmptyMenu is returned when a menu has no top-level item to start from.
	ErrEmptyMenu = errors.New("menu has no top-level item")

	// ErrInvalidPath is returned when an index path does not resolve to an item.
	ErrInvalidPath = errors.New("invalid menu path")
)

// Menu represents the root menu structure.
type Menu struct {
	// Title of the menu
	Title string `json:"title"`

	// Version of the menu
	Version string `json:"version,omitempty"`

	// Items is the list of top-level menu items.
	// Navigation starts at the first one.
	Items []Item `json:"items,omitempty"`
}

// Default builds the built-in menu tree.
func Default(version string) *Menu {
	settings := NewItem("Settings")
	settings.AddItem(NewItem("Display Settings")).
		AddItem(NewItem("Audio Settings"))

	media := NewItem("Media")
	media.AddItem(NewItem("Radio")).
		AddItem(NewItem("Bluetooth Audio"))

	top := NewItem("Main Menu")
	top.AddItem(settings).AddItem(media)

	return &Menu{
		Title:   top.Title,
		Version: version,
		Items:   []Item{top},
	}
}

// Root returns the top-level item navigation starts from.
func (m *Menu) Root() (*Item, error) {
	if m == nil || len(m.Items) == 0 {
		return nil, ErrEmptyMenu
	}
	return &m.Items[0], nil
}

// Resolve walks an index path from the root item and returns the item it names.
// An empty path resolves to the root item.
func (m *Menu) Resolve(path []int) (*Item, error) {
	item, err := m.Root()
	if err != nil {
		return nil, err
	}

	for depth, idx := range path {
		if idx < 0 || idx >= len(item.Items) {
			return nil, fmt.Errorf("%w: index %d at depth %d", ErrInvalidPath, idx, depth)
		}
		item = &item.Items[idx]
	}

	return item, nil
}

// Walk visits the root item and everything below it depth-first, in append order.
// The path handed to fn is relative to the root item and must not be retained.
func (m *Menu) Walk(fn func(path []int, item *Item)) {
	root, err := m.Root()
	if err != nil {
		return
	}
	walkItem(nil, root, fn)
}

func walkItem(path []int, item *Item, fn func(path []int, item *Item)) {
	fn(path, item)
	for i := range item.Items {
		walkItem(append(path, i), &item.Items[i], fn)
	}
}

// Handler returns an HTTP handler that responds with the menu structure as JSON.
func (m *Menu) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("handling menu request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		data, err := json.Marshal(m)
		if err != nil {
			slog.Error("failed to encode menu", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			slog.Error("failed to write menu response", "error", err)
		}
	})
}
