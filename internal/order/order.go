package order

import "time"

// LineItem is a snapshot of a catalog product taken at order time. Unlike
// product.Product, Quantity here is the ordered amount, not catalog stock.
// The field names match the catalog record so the wire format is unchanged.
type LineItem struct {
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	Category    string  `json:"category" bson:"category"`
}

// Order is an immutable purchase record in the `orders` collection. It is
// written once, after every referenced product resolved; partial orders are
// never persisted.
type Order struct {
	ID          string     `json:"order_id" bson:"order_id"`
	UserID      string     `json:"user_id" bson:"user_id"`
	Items       []LineItem `json:"items" bson:"items"`
	TotalAmount float64    `json:"total_amount" bson:"total_amount"`
	Timestamp   time.Time  `json:"timestamp" bson:"timestamp"`
}

// ItemInput is a single requested line in an incoming order. It exists only
// in the request; the persisted order carries resolved LineItem snapshots.
type ItemInput struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// Summary aggregates a user's orders. It is derived on demand by the storage
// engine and never persisted.
type Summary struct {
	UserID      string  `json:"user_id" bson:"_id"`
	TotalOrders int64   `json:"total_orders" bson:"total_orders"`
	TotalValue  float64 `json:"total_value" bson:"total_value"`
}
