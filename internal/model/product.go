package model

// Product is the catalog record behind every admin screen. Code is assigned
// once at creation and never changes afterwards; deletion is a soft delete
// via IsActive.
type Product struct {
	ID           int64   `db:"id" json:"id"`
	Code         string  `db:"code" json:"code"`
	SKU          string  `db:"sku" json:"sku"`
	Barcode      string  `db:"barcode" json:"barcode"`
	Name         string  `db:"name" json:"name"`
	CostPrice    float64 `db:"cost_price" json:"cost_price"`
	SellingPrice float64 `db:"selling_price" json:"selling_price"`
	TaxRate      float64 `db:"tax_rate" json:"tax_rate"`
	Stock        int64   `db:"stock" json:"stock"`
	ReorderLevel int64   `db:"reorder_level" json:"reorder_level"`
	Unit         string  `db:"unit" json:"unit"`
	IsActive     bool    `db:"is_active" json:"is_active"`
}

// ProductAttribute links a product to a master attribute with a free-form
// value. Duplicate (product, attribute) rows are allowed.
type ProductAttribute struct {
	ID          int64  `db:"id" json:"id"`
	ProductID   int64  `db:"product_id" json:"product_id"`
	AttributeID int64  `db:"attribute_id" json:"attribute_id"`
	Value       string `db:"value" json:"value"`
}

type ProductImage struct {
	ID          int64  `db:"id" json:"id"`
	ProductID   int64  `db:"product_id" json:"product_id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	URL         string `db:"url" json:"url"`
}

type ProductDescription struct {
	ID          int64  `db:"id" json:"id"`
	ProductID   int64  `db:"product_id" json:"product_id"`
	Description string `db:"description" json:"description"`
}

type ProductKeyword struct {
	ID        int64  `db:"id" json:"id"`
	ProductID int64  `db:"product_id" json:"product_id"`
	Keyword   string `db:"keyword" json:"keyword"`
}
