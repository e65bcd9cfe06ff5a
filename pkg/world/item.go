package world

import "slices"

// Item is a portable object. An item is either in exactly one place or in
// the player's inventory.
type Item struct {
	Name        string
	Description string
}

// NewItem creates an item.
func NewItem(name, description string) *Item {
	return &Item{Name: name, Description: description}
}

// removeItem deletes item (by identity) from items, reporting whether it was present.
func removeItem(items []*Item, item *Item) ([]*Item, bool) {
	i := slices.Index(items, item)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

// findItem returns the first item whose name contains target, ignoring case.
func findItem(items []*Item, target string) *Item {
	for _, it := range items {
		if ContainsFold(it.Name, target) {
			return it
		}
	}
	return nil
}

// ItemNames returns the names of items in order.
func ItemNames(items []*Item) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
