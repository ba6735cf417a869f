package entity

import "time"

// Activity is a prepend-only record of a storefront user action, shown on the
// profile page.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
