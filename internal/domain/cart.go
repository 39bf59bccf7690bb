package domain

import "github.com/google/uuid"

// CartItem is one cart line: a product plus the identity of the line
// itself. Two additions of the same product yield two lines with
// distinct CartIDs, removable independently of each other.
type CartItem struct {
	Product
	CartID string `json:"cartId"`
}

// Cart is the ordered sequence of lines a user has added. Display
// order equals add order. A Cart is owned by a single session and is
// not safe for concurrent use.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends a new line with a freshly generated identity and
// returns it. The line identity is never derived from the product id.
func (c *Cart) Add(p Product) CartItem {
	item := CartItem{
		Product: p.Clone(),
		CartID:  uuid.NewString(),
	}
	c.items = append(c.items, item)
	return item
}

// Remove deletes the line with the given identity. Removing an absent
// identity is a no-op, not an error.
func (c *Cart) Remove(cartID string) {
	for i, item := range c.items {
		if item.CartID == cartID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the current lines in add order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total recomputes the sum of line prices from the live sequence on
// every call. There is no separately maintained running counter to
// drift out of sync.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Price
	}
	return total
}
