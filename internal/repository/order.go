package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopkit/adminpanel/internal/models"
	"github.com/shopkit/adminpanel/internal/repository/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository implements order access over the orders collection
type OrderRepository struct {
	orders *mongo.Collection
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *mongodb.DB) *OrderRepository {
	return &OrderRepository{orders: db.Collection("orders")}
}

// bucketFilter builds the status filter for an order bucket.
// Pending deliberately uses a $ne pair, so a half-completed order
// (paid but unfulfilled) matches neither bucket.
func bucketFilter(bucket string) bson.M {
	if bucket == models.OrderBucketCompleted {
		return bson.M{"$and": bson.A{
			bson.M{"financialStatus": models.FinancialStatusPaid},
			bson.M{"fulfillmentStatus": models.FulfillmentStatusFulfilled},
		}}
	}
	return bson.M{"$and": bson.A{
		bson.M{"financialStatus": bson.M{"$ne": models.FinancialStatusPaid}},
		bson.M{"fulfillmentStatus": bson.M{"$ne": models.FulfillmentStatusFulfilled}},
	}}
}

// GetOrderByID returns order by id
func (or *OrderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order := models.Order{}
	err := or.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

// GetOrders returns bucket orders newest-first by id
func (or *OrderRepository) GetOrders(ctx context.Context, bucket string, skip, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "_id", Value: -1}})

	cur, err := or.orders.Find(ctx, bucketFilter(bucket), opts)
	if err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// CountOrders returns the number of bucket orders
func (or *OrderRepository) CountOrders(ctx context.Context, bucket string) (int64, error) {
	return or.orders.CountDocuments(ctx, bucketFilter(bucket))
}

// CompleteOrder marks order as paid and fulfilled regardless of prior
// state. A missing order is not an error, matching findByIdAndUpdate.
func (or *OrderRepository) CompleteOrder(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"financialStatus":   models.FinancialStatusPaid,
		"fulfillmentStatus": models.FulfillmentStatusFulfilled,
		"updatedAt":         time.Now(),
	}}

	_, err := or.orders.UpdateByID(ctx, id, update)
	return err
}
