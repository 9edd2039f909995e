package models

// Cart maps a product ID to a size label to a positive quantity.
// A quantity dropping to zero removes the size entry, and a product
// whose last size is removed disappears from the cart entirely, so an
// empty size map never survives a mutation.
type Cart map[string]map[string]int

// NewCart returns an empty cart.
func NewCart() Cart {
	return make(Cart)
}

// Add increments the quantity for (itemID, size) by one, creating the
// intermediate size map if needed.
func (c Cart) Add(itemID, size string) {
	if c[itemID] == nil {
		c[itemID] = make(map[string]int)
	}
	c[itemID][size]++
}

// Has reports whether (itemID, size) is currently in the cart.
func (c Cart) Has(itemID, size string) bool {
	sizes, ok := c[itemID]
	if !ok {
		return false
	}
	_, ok = sizes[size]
	return ok
}

// SetQuantity sets the absolute quantity for (itemID, size). A quantity
// of zero or less removes the entry and prunes the product key if no
// sizes remain.
func (c Cart) SetQuantity(itemID, size string, quantity int) {
	sizes, ok := c[itemID]
	if !ok {
		return
	}
	if quantity <= 0 {
		delete(sizes, size)
		if len(sizes) == 0 {
			delete(c, itemID)
		}
		return
	}
	sizes[size] = quantity
}

// Count returns the total number of units across all products and sizes.
func (c Cart) Count() int {
	total := 0
	for _, sizes := range c {
		for _, qty := range sizes {
			total += qty
		}
	}
	return total
}

// Clone returns a deep copy of the cart.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for itemID, sizes := range c {
		copied := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			copied[size] = qty
		}
		out[itemID] = copied
	}
	return out
}
