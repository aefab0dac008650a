package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Image is one catalog image of a product
type Image struct {
	Src     string `bson:"src"`
	SrcWebp string `bson:"srcWebp"`
	Width   int    `bson:"width"`
	Height  int    `bson:"height"`
	Alt     string `bson:"alt"`
}

// Product is the persisted catalog entry referenced by order line items.
// It is owned by the catalog system, this service only reads it.
type Product struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Images []Image            `bson:"images"`
}
