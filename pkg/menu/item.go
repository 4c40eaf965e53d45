package menu

// Item represents an individual entry in the menu tree, which may contain sub-items.
type Item struct {
	// Title is the display name of the menu item.
	Title string `json:"title"`

	// Items are the sub-items of this menu item, in the order they were added.
	Items []Item `json:"items,omitempty"`
}

// NewItem returns a leaf item with the given title.
func NewItem(title string) Item {
	return Item{Title: title}
}

// AddItem appends a sub-item and returns the receiver so trees can be built inline.
// The sub-item is copied; the parent owns it from here on.
func (i *Item) AddItem(item Item) *Item {
	i.Items = append(i.Items, item)
	return i
}

// IsLeaf reports whether the item has no sub-items.
func (i *Item) IsLeaf() bool {
	return len(i.Items) == 0
}
