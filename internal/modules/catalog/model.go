package catalog

// Product is one catalog record, persisted as id,name,category,price,quantity.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Categories is the fixed closed set of product categories.
var Categories = []string{
	"Electronics",
	"Groceries",
	"Clothing",
	"Home & Kitchen",
	"Sports",
}

// ValidCategory reports whether c is in the fixed category set.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// UpsertProductRequest is the payload for creating or updating a product.
type UpsertProductRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
