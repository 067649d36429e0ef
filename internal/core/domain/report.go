package domain

// ClientOrderCount is one row of the per-client order aggregate.
type ClientOrderCount struct {
	Name   string `db:"name" json:"name" yaml:"name"`
	Orders int    `db:"order_count" json:"orders" yaml:"orders"`
	Units  int    `db:"units" json:"units" yaml:"units"`
}

// DailyOrderCount is the number of orders placed on one calendar day
// (YYYY-MM-DD, UTC).
type DailyOrderCount struct {
	Day    string `db:"day" json:"day" yaml:"day"`
	Orders int    `db:"order_count" json:"orders" yaml:"orders"`
}

// CoPurchase is a pair of distinct clients that ordered the same product.
type CoPurchase struct {
	SourceID int64  `db:"source_id"`
	Source   string `db:"source"`
	TargetID int64  `db:"target_id"`
	Target   string `db:"target"`
}
