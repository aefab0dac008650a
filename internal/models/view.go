package models

// Render-ready projections of persisted documents. Views are assembled
// fresh on every request and never stored.

// ImageView is a product image in the output shape
type ImageView struct {
	Src     string
	SrcWebp string
	Width   int
	Height  int
	Alt     string
}

// LineItemView is a line item with its product images resolved.
// Image is the first of Images, or nil when the product has none.
type LineItemView struct {
	ID            string
	Title         string
	Brand         string
	Price         float64
	Grams         int
	Quantity      int
	DisplayAmount string
	Unit          string
	ProductID     string
	Image         *ImageView
	Images        []ImageView
}

// CustomerView is the customer summary resolved from the order user
type CustomerView struct {
	ID     string
	Phone  string
	Locale string
}

// DiscountView is the discount summary, present only when the order
// carries a discount
type DiscountView struct {
	Code string
}

// AddressView is the shipping address in the output shape
type AddressView struct {
	Address1 string
}

// OrderView is the denormalized order consumed by the templates
type OrderView struct {
	ID                  string
	OrderNumber         string
	Date                string
	FinancialStatus     string
	FulfillmentStatus   string
	TotalShippingPrice  float64
	TotalTax            float64
	TotalLineItemsPrice float64
	TotalDiscounts      float64
	SubtotalPrice       float64
	TotalPrice          float64
	TotalWeight         int
	Discount            *DiscountView
	LineItems           []LineItemView
	ShippingAddress     AddressView
	Customer            CustomerView
}

// OrderListing is the data for the orders list page
type OrderListing struct {
	Orders []OrderView
	Count  int64
	Status string
}
