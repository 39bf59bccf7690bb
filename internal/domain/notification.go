package domain

// Notification is the single-slot "added to cart" acknowledgment.
// Every add overwrites the slot with the new product; notifications
// are never queued or merged. This state is process-local UI state and
// is intentionally not persisted.
type Notification struct {
	Visible bool     `json:"show"`
	Product *Product `json:"product"`
}
