package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item of the store catalogue shown to the model as context.
// Prices are in minor currency units.
type Product struct {
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceMinor  int64     `json:"price_minor"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	UpdatedAt   time.Time `json:"-"`
}

// Conversation is a stored chat thread. Turns are oldest first and are kept
// as received; they are normalized only when sent to the model.
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Turns     []RawTurn `json:"turns"`
}
