package service

import (
	"github.com/shopkit/adminpanel/internal/datefmt"
	"github.com/shopkit/adminpanel/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssembleOrderView builds the render-ready order view from a raw order
// plus its referenced products and user. It is a pure transformation over
// already-fetched data and is shared by the list and notify flows.
//
// A line item whose product is not among products is a data-integrity
// fault and yields a MissingProductError.
func AssembleOrderView(order *models.Order, products []models.Product, user *models.User) (*models.OrderView, error) {
	productByID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	lineItems := make([]models.LineItemView, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		product, ok := productByID[item.ProductID]
		if !ok {
			return nil, &models.MissingProductError{ProductID: item.ProductID.Hex()}
		}

		images := make([]models.ImageView, 0, len(product.Images))
		for _, img := range product.Images {
			images = append(images, models.ImageView{
				Src:     img.Src,
				SrcWebp: img.SrcWebp,
				Width:   img.Width,
				Height:  img.Height,
				Alt:     img.Alt,
			})
		}

		var image *models.ImageView
		if len(images) > 0 {
			image = &images[0]
		}

		lineItems = append(lineItems, models.LineItemView{
			ID:            item.ID,
			Title:         item.Title,
			Brand:         item.Brand,
			Price:         item.Price,
			Grams:         item.Grams,
			Quantity:      item.Quantity,
			DisplayAmount: item.DisplayAmount,
			Unit:          item.Unit,
			ProductID:     item.ProductID.Hex(),
			Image:         image,
			Images:        images,
		})
	}

	var discount *models.DiscountView
	if order.Discount != nil {
		discount = &models.DiscountView{Code: order.Discount.Code}
	}

	return &models.OrderView{
		ID:                  order.ID.Hex(),
		OrderNumber:         order.OrderNumber,
		Date:                datefmt.FullDate(order.CreatedAt),
		FinancialStatus:     order.FinancialStatus,
		FulfillmentStatus:   order.FulfillmentStatus,
		TotalShippingPrice:  order.TotalShippingPrice,
		TotalTax:            order.TotalTax,
		TotalLineItemsPrice: order.TotalLineItemsPrice,
		TotalDiscounts:      order.TotalDiscounts,
		SubtotalPrice:       order.SubtotalPrice,
		TotalPrice:          order.TotalPrice,
		TotalWeight:         order.TotalWeight,
		Discount:            discount,
		LineItems:           lineItems,
		ShippingAddress:     models.AddressView{Address1: order.ShippingAddress.Address1},
		Customer: models.CustomerView{
			ID:     user.ID.Hex(),
			Phone:  user.Phone,
			Locale: user.Locale,
		},
	}, nil
}
