package constants

// User roles.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Cart item statuses.
const (
	CartItemStatusActive    = "active"
	CartItemStatusCancelled = "cancelled"
)

// Product sort keys accepted by the catalog listing.
const (
	ProductSortNewest    = "newest"
	ProductSortPriceAsc  = "price_asc"
	ProductSortPriceDesc = "price_desc"
)

// Queue names and task types.
const (
	QueueDefault          = "default"
	TaskOrderConfirmation = "order:confirmation_email"
)

// Cache defaults.
const (
	RedisPrefixDefault = "nc"
)

// Review ratings.
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)
