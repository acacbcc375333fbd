package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only transaction record. Each Payment references
// exactly one Booking through BookedID.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookedID      string             `bson:"bookedId" json:"bookedId" validate:"required"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId" validate:"required"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
