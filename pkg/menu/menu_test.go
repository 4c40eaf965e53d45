package menu

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m := Default("v1.2.3")

	assert.Equal(t, "Main Menu", m.Title)
	assert.Equal(t, "v1.2.3", m.Version)
	require.Len(t, m.Items, 1)

	var titles []string
	m.Walk(func(_ []int, item *Item) {
		titles = append(titles, item.Title)
	})

	assert.Equal(t, []string{
		"Main Menu",
		"Settings",
		"Display Settings",
		"Audio Settings",
		"Media",
		"Radio",
		"Bluetooth Audio",
	}, titles)
}

func TestMenu_Resolve(t *testing.T) {
	m := Default("")

	tests := []struct {
		name  string
		path  []int
		title string
		err   bool
	}{
		{name: "root", path: nil, title: "Main Menu"},
		{name: "settings", path: []int{0}, title: "Settings"},
		{name: "media", path: []int{1}, title: "Media"},
		{name: "bluetooth", path: []int{1, 1}, title: "Bluetooth Audio"},
		{name: "out of range", path: []int{2}, err: true},
		{name: "negative", path: []int{-1}, err: true},
		{name: "below leaf", path: []int{0, 0, 0}, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := m.Resolve(tt.path)
			if tt.err {
				require.ErrorIs(t, err, ErrInvalidPath)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, item.Title)
		})
	}
}

func TestMenu_ResolveEmpty(t *testing.T) {
	_, err := (&Menu{Title: "empty"}).Resolve(nil)
	assert.ErrorIs(t, err, ErrEmptyMenu)

	var m *Menu
	_, err = m.Root()
	assert.ErrorIs(t, err, ErrEmptyMenu)
}

func TestMenu_WalkPathsResolve(t *testing.T) {
	m := Default("")

	m.Walk(func(path []int, item *Item) {
		got, err := m.Resolve(slices.Clone(path))
		require.NoError(t, err)
		assert.Same(t, item, got)
	})
}

func TestMenu_Handler(t *testing.T) {
	m := Default("v1")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got Menu
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *m, got)
}

func TestMenu_HandlerRejectsWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	Default("").Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
