package models

import "time"

// CheckoutForm carries the billing and payment fields collected at checkout.
// Card fields are validated but only a masked copy is ever persisted.
type CheckoutForm struct {
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	ZipCode    string `json:"zip_code" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
	NameOnCard string `json:"name_on_card" binding:"required"`
}

// CustomerInfo is the persisted slice of the checkout form.
type CustomerInfo struct {
	Email      string `json:"email" bson:"email"`
	FirstName  string `json:"first_name" bson:"first_name"`
	LastName   string `json:"last_name" bson:"last_name"`
	Address    string `json:"address" bson:"address"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	ZipCode    string `json:"zip_code" bson:"zip_code"`
	CardLast4  string `json:"card_last4" bson:"card_last4"`
	NameOnCard string `json:"name_on_card" bson:"name_on_card"`
}

const OrderStatusConfirmed = "confirmed"

// Order is written once per successful checkout. Subtotal, ServiceFee, Tax and
// Total are each rounded independently at creation time and stored as-is.
type Order struct {
	ID           string       `json:"id" bson:"_id"`
	OrderNumber  string       `json:"order_number" bson:"order_number"`
	UserID       string       `json:"user_id" bson:"user_id"`
	Items        []CartItem   `json:"items" bson:"items"`
	Subtotal     int          `json:"subtotal" bson:"subtotal"`
	ServiceFee   int          `json:"service_fee" bson:"service_fee"`
	Tax          int          `json:"tax" bson:"tax"`
	Total        int          `json:"total" bson:"total"`
	CustomerInfo CustomerInfo `json:"customer_info" bson:"customer_info"`
	Status       string       `json:"status" bson:"status"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
}
