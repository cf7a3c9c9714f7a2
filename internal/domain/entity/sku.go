package entity

// SKU is a catalog product entry. SKUs are reference data and never change
// after seeding.
type SKU struct {
	ID          string  `json:"id"` // Stable product code, e.g. "SKU001".
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`         // Price per packet.
	BoxPrice    float64 `json:"box_price"`     // Price per box. Not used in order totals.
	CostPerUnit float64 `json:"cost_per_unit"` // Internal cost per packet.
}

// DefaultSKUs returns the catalog seeded into an empty store.
func DefaultSKUs() []SKU {
	const packetsPerBox = 12

	skus := []SKU{
		{ID: "SKU001", Name: "Product A", Description: "A high-quality product for everyday use", Price: 250, CostPerUnit: 200},
		{ID: "SKU002", Name: "Product B", Description: "Premium product with extra features", Price: 350, CostPerUnit: 280},
		{ID: "SKU003", Name: "Product C", Description: "Economy version for budget-conscious customers", Price: 150, CostPerUnit: 100},
		{ID: "SKU004", Name: "Product D", Description: "Specialized product for specific needs", Price: 450, CostPerUnit: 380},
	}
	for i := range skus {
		skus[i].BoxPrice = skus[i].Price * packetsPerBox
	}

	return skus
}
