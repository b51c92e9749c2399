package models

type CartEntry struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Cart keeps entries in insertion order; numbered cart listings depend on it.
type Cart struct {
	Entries []CartEntry
}

// Add appends the item with quantity 1, or bumps the quantity when an entry
// with the same item name already exists.
func (c *Cart) Add(item MenuItem) {
	for i := range c.Entries {
		if c.Entries[i].Item.Name == item.Name {
			c.Entries[i].Quantity++
			return
		}
	}
	c.Entries = append(c.Entries, CartEntry{Item: item, Quantity: 1})
}

// Remove deletes the entry at index (zero-based) and reports whether the
// index was in range. The cart is untouched on an out-of-range index.
func (c *Cart) Remove(index int) (CartEntry, bool) {
	if index < 0 || index >= len(c.Entries) {
		return CartEntry{}, false
	}
	removed := c.Entries[index]
	c.Entries = append(c.Entries[:index], c.Entries[index+1:]...)
	return removed, true
}

func (c *Cart) Total() int {
	total := 0
	for _, entry := range c.Entries {
		total += entry.Item.Price * entry.Quantity
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

func (c *Cart) Size() int {
	return len(c.Entries)
}
