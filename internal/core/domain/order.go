package domain

import "time"

const (
	LabelOrderClient   = "Клиент"
	LabelOrderProduct  = "Товар"
	LabelOrderQuantity = "Количество"
)

// OrderDateLayout is the UTC text layout of orders.order_date.
const OrderDateLayout = "2006-01-02 15:04:05"

// Order is the persisted order row. ClientID and ProductID are plain
// references; the store does not check that they exist.
type Order struct {
	ID        int64     `db:"id" json:"id" yaml:"id"`
	ClientID  int64     `db:"client_id" json:"client_id" yaml:"client_id"`
	ProductID int64     `db:"product_id" json:"product_id" yaml:"product_id"`
	Quantity  int       `db:"quantity" json:"quantity" yaml:"quantity"`
	OrderDate time.Time `db:"order_date" json:"order_date" yaml:"order_date"`
}

// NewOrder builds an order placed at the given moment. A zero time means now.
// The date is kept in UTC at second precision, which is what the store holds.
func NewOrder(clientID, productID int64, quantity int, placedAt time.Time) *Order {
	if placedAt.IsZero() {
		placedAt = time.Now()
	}
	return &Order{
		ClientID:  clientID,
		ProductID: productID,
		Quantity:  quantity,
		OrderDate: placedAt.UTC().Truncate(time.Second),
	}
}

// OrderDetail is an order joined with the names it references. Names are
// empty when the referenced row no longer exists.
type OrderDetail struct {
	Order       `yaml:",inline"`
	ClientName  string `db:"client_name" json:"client_name" yaml:"client_name"`
	ProductName string `db:"product_name" json:"product_name" yaml:"product_name"`
}

func (o *OrderDetail) Fields() []Field {
	return []Field{
		{Label: LabelOrderClient, Value: o.ClientName},
		{Label: LabelOrderProduct, Value: o.ProductName},
		{Label: LabelOrderQuantity, Value: o.Quantity},
	}
}
