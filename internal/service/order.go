package service

import (
	"context"
	"errors"

	"github.com/shopkit/adminpanel/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// orders list shows the first page only
const (
	orderPageSkip  = 0
	orderPageLimit = 35
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	// GetOrders returns bucket orders newest-first by id
	GetOrders(ctx context.Context, bucket string, skip, limit int64) ([]models.Order, error)
	// CountOrders returns the number of bucket orders
	CountOrders(ctx context.Context, bucket string) (int64, error)
	// CompleteOrder marks order as paid and fulfilled
	CompleteOrder(ctx context.Context, id primitive.ObjectID) error
}

// ProductRepository is interface for reading referenced products
type ProductRepository interface {
	// GetProductsByIDs returns products matching any of the given ids
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
}

// UserRepository is interface for reading referenced users
type UserRepository interface {
	// GetUserByID returns user by id
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// OrderService assembles order views and mutates order status
type OrderService struct {
	orders   OrderRepository
	products ProductRepository
	users    UserRepository
}

// NewOrderService creates new OrderService instance
func NewOrderService(orders OrderRepository, products ProductRepository, users UserRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		users:    users,
	}
}

// ListOrders returns the first page of bucket orders as assembled views
// together with the total bucket count. An order whose user no longer
// exists is dropped from the listing, not an error.
func (os *OrderService) ListOrders(ctx context.Context, status string) (*models.OrderListing, error) {
	bucket := models.BucketFromStatus(status)

	orders, err := os.orders.GetOrders(ctx, bucket, orderPageSkip, orderPageLimit)
	if err != nil {
		return nil, err
	}

	views := []models.OrderView{}
	for _, order := range orders {
		view, err := os.orderView(ctx, &order)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		views = append(views, *view)
	}

	count, err := os.orders.CountOrders(ctx, bucket)
	if err != nil {
		return nil, err
	}

	return &models.OrderListing{
		Orders: views,
		Count:  count,
		Status: status,
	}, nil
}

// OrderView fetches one order and assembles its view. Unlike ListOrders
// a missing user is an error here.
func (os *OrderService) OrderView(ctx context.Context, id string) (*models.OrderView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidOrderID
	}

	order, err := os.orders.GetOrderByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	return os.orderView(ctx, order)
}

// CompleteOrder sets order status to paid and fulfilled
func (os *OrderService) CompleteOrder(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidOrderID
	}

	return os.orders.CompleteOrder(ctx, oid)
}

// orderView resolves order references and assembles the view
func (os *OrderService) orderView(ctx context.Context, order *models.Order) (*models.OrderView, error) {
	ids := make([]primitive.ObjectID, 0, len(order.LineItems))
	seen := make(map[primitive.ObjectID]struct{}, len(order.LineItems))
	for _, item := range order.LineItems {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := os.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	user, err := os.users.GetUserByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	return AssembleOrderView(order, products, user)
}
