package repoargs

import "github.com/shopspring/decimal"

type CreateEstablishment struct {
	OwnerClientID int64
	Name          string
	Description   string
	Category      string
	Address       string
}

type UpdateEstablishment struct {
	Name        *string
	Description *string
	Category    *string
	Address     *string
}

// EstablishmentFilter - фильтры публичного списка заведений. Search ищет по имени
// без учета регистра.
type EstablishmentFilter struct {
	Category string
	Search   string
}

type EstablishmentSummary struct {
	ID   int64
	Name string
}

type CreateProduct struct {
	EstablishmentID int64
	Name            string
	Description     string
	Price           decimal.Decimal
	IsActive        bool
}

type UpdateProduct struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	IsActive    *bool
}
