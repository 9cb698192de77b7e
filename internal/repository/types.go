package repository

// ProductListFilter narrows product listings.
type ProductListFilter struct {
	CategoryID    uint
	ChefID        uint
	Keyword       string
	OnlyAvailable bool
	Page          int
	PageSize      int
}

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	UserID   uint
	Status   string
	OrderNo  string
	Page     int
	PageSize int
}

// ReviewListFilter narrows review listings.
type ReviewListFilter struct {
	ProductID uint
	UserID    uint
	Page      int
	PageSize  int
}
