package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// financial status
const (
	FinancialStatusUnpaid = "unpaid"
	FinancialStatusPaid   = "paid"
)

// fulfillment status
const (
	FulfillmentStatusUnfulfilled = "unfulfilled"
	FulfillmentStatusFulfilled   = "fulfilled"
)

// order bucket is derived from the status pair:
// pending - not paid and not fulfilled
// completed - paid and fulfilled
// orders matching exactly one of the two are listed in neither bucket
const (
	OrderBucketPending   = "pending"
	OrderBucketCompleted = "completed"
)

// BucketFromStatus maps the status query parameter to an order bucket.
// Anything except "completed" selects the pending bucket.
func BucketFromStatus(status string) string {
	if status == OrderBucketCompleted {
		return OrderBucketCompleted
	}
	return OrderBucketPending
}

// LineItem is one purchased unit within an order
type LineItem struct {
	ID            string             `bson:"id"`
	Title         string             `bson:"title"`
	Brand         string             `bson:"brand"`
	Price         float64            `bson:"price"`
	Grams         int                `bson:"grams"`
	Quantity      int                `bson:"quantity"`
	DisplayAmount string             `bson:"displayAmount"`
	Unit          string             `bson:"unit"`
	ProductID     primitive.ObjectID `bson:"productId"`
}

// Discount is an optional discount reference on an order
type Discount struct {
	Code string `bson:"code"`
}

// Address is the order shipping address
type Address struct {
	Address1 string `bson:"address1"`
}

// Order is the persisted order document
type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	OrderNumber         string             `bson:"orderNumber"`
	FinancialStatus     string             `bson:"financialStatus"`
	FulfillmentStatus   string             `bson:"fulfillmentStatus"`
	TotalShippingPrice  float64            `bson:"totalShippingPrice"`
	TotalTax            float64            `bson:"totalTax"`
	TotalLineItemsPrice float64            `bson:"totalLineItemsPrice"`
	TotalDiscounts      float64            `bson:"totalDiscounts"`
	SubtotalPrice       float64            `bson:"subtotalPrice"`
	TotalPrice          float64            `bson:"totalPrice"`
	TotalWeight         int                `bson:"totalWeight"`
	Discount            *Discount          `bson:"discount,omitempty"`
	LineItems           []LineItem         `bson:"lineItems"`
	ShippingAddress     Address            `bson:"shippingAddress"`
	UserID              primitive.ObjectID `bson:"userId"`
	CreatedAt           time.Time          `bson:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt"`
}
