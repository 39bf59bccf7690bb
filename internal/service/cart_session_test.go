package service

import (
	"testing"

	"digisure/internal/domain"
	"digisure/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, extID string) domain.Product {
	t.Helper()
	for _, p := range repository.SeedCatalog() {
		if p.ID == extID {
			return p
		}
	}
	t.Fatalf("no seed product with id %s", extID)
	return domain.Product{}
}

func TestCartSession_AddShowsNotification(t *testing.T) {
	session := NewCartSession(nil)
	course := seedProduct(t, "c1")

	item := session.Add(course)

	assert.NotEmpty(t, item.CartID)
	assert.Equal(t, 1, session.Len())

	n := session.Notification()
	require.True(t, n.Visible)
	require.NotNil(t, n.Product)
	assert.Equal(t, "c1", n.Product.ID)
}

func TestCartSession_SecondAddOverwritesNotification(t *testing.T) {
	session := NewCartSession(nil)

	session.Add(seedProduct(t, "c1"))
	session.Add(seedProduct(t, "d1"))

	n := session.Notification()
	require.True(t, n.Visible)
	require.NotNil(t, n.Product)
	assert.Equal(t, "d1", n.Product.ID, "last added product wins the slot")
	assert.Equal(t, 2, session.Len(), "both lines stay in the cart")
}

func TestCartSession_DismissHidesNotification(t *testing.T) {
	session := NewCartSession(nil)
	session.Add(seedProduct(t, "a1"))

	session.DismissNotification()

	n := session.Notification()
	assert.False(t, n.Visible)
	assert.Nil(t, n.Product)
	assert.Equal(t, 1, session.Len(), "dismissal never touches cart contents")
}

func TestCartSession_CheckoutSignalsNavigationIntent(t *testing.T) {
	var visited []string
	session := NewCartSession(NavigatorFunc(func(path string) {
		visited = append(visited, path)
	}))

	session.Add(seedProduct(t, "c1"))
	session.Checkout()

	assert.Equal(t, []string{CartPath}, visited)
	assert.False(t, session.Notification().Visible)
	assert.Equal(t, 1, session.Len(), "checkout does not clear the cart")
}

func TestCartSession_CheckoutWithoutNavigator(t *testing.T) {
	session := NewCartSession(nil)
	session.Add(seedProduct(t, "c1"))

	assert.NotPanics(t, session.Checkout)
}

func TestCartSession_CompleteOrderEmptiesCart(t *testing.T) {
	session := NewCartSession(nil)
	session.Add(seedProduct(t, "c1"))
	session.Add(seedProduct(t, "a1"))

	session.CompleteOrder()

	assert.Zero(t, session.Len())
	assert.Empty(t, session.Items())
	// Only the cart is affected; the acknowledgment stays as-is.
	assert.True(t, session.Notification().Visible)
}

func TestCartSession_TotalMatchesContents(t *testing.T) {
	session := NewCartSession(nil)

	course := session.Add(seedProduct(t, "c1"))
	session.Add(seedProduct(t, "d1"))

	assert.Equal(t, 3998, session.Total())

	session.Remove(course.CartID)
	assert.Equal(t, 499, session.Total())

	session.CompleteOrder()
	assert.Equal(t, 0, session.Total())
	assert.Empty(t, session.Items())
}
