package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a buyer's reservation of a product. Paid starts false and flips
// to true exactly once, when a payment confirmation lands.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	ProductID     string             `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName   string             `bson:"productName" json:"productName"`
	Price         float64            `bson:"price" json:"price"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
