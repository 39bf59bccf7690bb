package service

import "digisure/internal/domain"

// Navigator is the view layer's router, an external collaborator. The
// checkout action signals navigation intent through it without this
// package knowing anything about pages or routes.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) {
	f(path)
}

// CartPath is where the checkout action sends the user.
const CartPath = "/cart"

// CartSession owns the cart and the transient "added to cart"
// notification for one user session. It is created once per session
// and torn down with it; like the cart it wraps, it is owned by a
// single goroutine and requires no locking.
type CartSession struct {
	cart         *domain.Cart
	notification domain.Notification
	navigator    Navigator
}

// NewCartSession creates a session with an empty cart. The navigator
// may be nil when no view layer is attached, e.g. in tests.
func NewCartSession(navigator Navigator) *CartSession {
	return &CartSession{
		cart:      domain.NewCart(),
		navigator: navigator,
	}
}

// Add appends a cart line and surfaces the notification for the added
// product. A second add replaces any currently visible notification;
// nothing is queued.
func (s *CartSession) Add(p domain.Product) domain.CartItem {
	item := s.cart.Add(p)
	notified := item.Product.Clone()
	s.notification = domain.Notification{
		Visible: true,
		Product: &notified,
	}
	return item
}

// Remove drops the line with the given identity; absent identities
// are ignored.
func (s *CartSession) Remove(cartID string) {
	s.cart.Remove(cartID)
}

// CompleteOrder empties the cart after a successful order
// submission. The notification slot is left alone.
func (s *CartSession) CompleteOrder() {
	s.cart.Clear()
}

func (s *CartSession) Items() []domain.CartItem {
	return s.cart.Items()
}

func (s *CartSession) Len() int {
	return s.cart.Len()
}

func (s *CartSession) Total() int {
	return s.cart.Total()
}

// Notification returns the current state of the single-slot
// acknowledgment.
func (s *CartSession) Notification() domain.Notification {
	return s.notification
}

// DismissNotification hides the acknowledgment without touching the
// cart.
func (s *CartSession) DismissNotification() {
	s.notification = domain.Notification{}
}

// Checkout hides the notification and signals navigation intent to
// the view layer. Cart contents are untouched; clearing happens only
// after a successful order submission.
func (s *CartSession) Checkout() {
	s.DismissNotification()
	if s.navigator != nil {
		s.navigator.NavigateTo(CartPath)
	}
}
