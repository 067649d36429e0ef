package domain

import "github.com/shopspring/decimal"

const (
	LabelProductName  = "Название"
	LabelProductPrice = "Цена"
)

type Product struct {
	ID    int64           `db:"id" json:"id" yaml:"id"`
	Name  string          `db:"name" json:"name" yaml:"name"`
	Price decimal.Decimal `db:"price" json:"price" yaml:"price"`
}

func NewProduct(name string, price decimal.Decimal) *Product {
	return &Product{
		Name:  name,
		Price: price,
	}
}

// Fields returns the product as an ordered label/value list. The price is
// rendered with two decimals.
func (p *Product) Fields() []Field {
	return []Field{
		{Label: LabelProductName, Value: p.Name},
		{Label: LabelProductPrice, Value: p.Price.StringFixed(2)},
	}
}
