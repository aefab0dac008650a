package repository

import (
	"context"

	"github.com/shopkit/adminpanel/internal/models"
	"github.com/shopkit/adminpanel/internal/repository/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepository implements read access to the products collection
type ProductRepository struct {
	products *mongo.Collection
}

// NewProductRepository creates new ProductRepository instance
func NewProductRepository(db *mongodb.DB) *ProductRepository {
	return &ProductRepository{products: db.Collection("products")}
}

// GetProductsByIDs returns products matching any of the given ids
func (pr *ProductRepository) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	cur, err := pr.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
