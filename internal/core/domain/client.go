package domain

// Serialization labels shared by display and CSV export.
const (
	LabelClientName  = "Имя"
	LabelClientEmail = "E-mail"
	LabelClientPhone = "Номер телефона"
)

type Client struct {
	ID    int64  `db:"id" json:"id" yaml:"id"`
	Name  string `db:"name" json:"name" yaml:"name"`
	Email string `db:"email" json:"email" yaml:"email"` // unique in the store
	Phone string `db:"phone" json:"phone" yaml:"phone"`
}

func NewClient(name, email, phone string) *Client {
	return &Client{
		Name:  name,
		Email: email,
		Phone: phone,
	}
}

// Fields returns the client as an ordered label/value list.
func (c *Client) Fields() []Field {
	return []Field{
		{Label: LabelClientName, Value: c.Name},
		{Label: LabelClientEmail, Value: c.Email},
		{Label: LabelClientPhone, Value: c.Phone},
	}
}
