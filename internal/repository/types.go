package repository

// ProductListFilter narrows the catalog listing.
type ProductListFilter struct {
	Page       int
	PageSize   int
	BrandID    uint
	Search     string
	MinPrice   string
	MaxPrice   string
	SortOrder  string
	OnlyActive bool
	WithBrand  bool
}

// OrderListFilter narrows the order listing.
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
}

// ReviewListFilter narrows the review listing.
type ReviewListFilter struct {
	Page         int
	PageSize     int
	ProductID    uint
	ApprovedOnly bool
}
