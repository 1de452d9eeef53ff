package models

import "time"

type ServiceType string

const (
	ServiceConsultation      ServiceType = "consultation"
	ServiceTour              ServiceType = "tour"
	ServiceRelocationPackage ServiceType = "relocation_package"
)

// CartItem is one purchasable service line in a user's cart. At most one line
// exists per ID; adding the same ID again bumps Quantity.
type CartItem struct {
	ID          string      `json:"id" bson:"id"`
	Name        string      `json:"name" bson:"name"`
	City        string      `json:"city" bson:"city"`
	Image       string      `json:"image" bson:"image"`
	Price       int         `json:"price" bson:"price"`
	Type        ServiceType `json:"type" bson:"type"`
	Description string      `json:"description" bson:"description"`
	Quantity    int         `json:"quantity" bson:"quantity"`
}

// SavedItem is a neighborhood bookmarked from the swipe deck.
type SavedItem struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	City        string    `json:"city" bson:"city"`
	Image       string    `json:"image" bson:"image"`
	Description string    `json:"description" bson:"description"`
	SavedAt     time.Time `json:"saved_at" bson:"saved_at"`
}

// Cart is the persisted per-user cart document, keyed by user ID. Totals are
// derived in memory and never stored.
type Cart struct {
	UserID     string      `json:"user_id" bson:"_id"`
	Items      []CartItem  `json:"items" bson:"items"`
	SavedItems []SavedItem `json:"saved_items" bson:"saved_items"`
	UpdatedAt  time.Time   `json:"updated_at" bson:"updated_at"`
}
