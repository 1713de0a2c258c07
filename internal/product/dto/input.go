package dto

type CreateProductInput struct {
	SKU          string
	Barcode      string
	Name         string
	CostPrice    float64
	SellingPrice float64
	TaxRate      float64
	Stock        int64
	ReorderLevel int64
	Unit         string
}

// UpdateProductInput carries no Code on purpose: the stored code is locked
// and any caller-supplied value is discarded. Nil fields keep the stored
// value; updates are partial.
type UpdateProductInput struct {
	ID           int64
	SKU          *string
	Barcode      *string
	Name         *string
	CostPrice    *float64
	SellingPrice *float64
	TaxRate      *float64
	Stock        *int64
	ReorderLevel *int64
	Unit         *string
	IsActive     *bool
}

type AttributeRow struct {
	AttributeID int64
	Value       string
}

type ImageRow struct {
	Title       string
	Description string
	URL         string
}
