package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a second-hand listing. The numeric-looking fields arrive as
// multipart form values and are stored as sent; Image holds the decoded
// upload bytes.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Seller        string             `bson:"seller" json:"seller"`
	ProductName   string             `bson:"productName" json:"productName" validate:"required"`
	Category      string             `bson:"category" json:"category" validate:"required"`
	Location      string             `bson:"location" json:"location"`
	ResalePrice   string             `bson:"resalePrice" json:"resalePrice"`
	OriginalPrice string             `bson:"originalPrice" json:"originalPrice"`
	Years         string             `bson:"years" json:"years"`
	Time          string             `bson:"time" json:"time"`
	Image         []byte             `bson:"image" json:"image,omitempty"`
}
