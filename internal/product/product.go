package product

// Product represents a sellable catalog record stored in the `products`
// collection. Name acts as the lookup key for orders but is not enforced
// unique; Quantity is stock on hand, not an ordered amount.
type Product struct {
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	Category    string  `json:"category" bson:"category"`
}
