package models

import "time"

// Order is one synthetic sales record written to the fixture workbook.
type Order struct {
	OrderID       string    `json:"order_id" yaml:"order_id"`
	CustomerName  string    `json:"customer_name" yaml:"customer_name"`
	Category      string    `json:"category" yaml:"category"`
	ProductName   string    `json:"product_name" yaml:"product_name"`
	Quantity      int       `json:"quantity" yaml:"quantity"`
	UnitPrice     float64   `json:"unit_price" yaml:"unit_price"`
	TotalAmount   float64   `json:"total_amount" yaml:"total_amount"`
	OrderDate     time.Time `json:"order_date" yaml:"order_date"`
	Region        string    `json:"region" yaml:"region"`
	Status        string    `json:"status" yaml:"status"`
	PaymentMethod string    `json:"payment_method" yaml:"payment_method"`
	ShippingCost  float64   `json:"shipping_cost" yaml:"shipping_cost"`
}

// DateLayout is the layout used for order dates in written fixtures.
const DateLayout = "2006-01-02"

// Row returns the order as spreadsheet cell values in column order.
func (o Order) Row() []interface{} {
	return []interface{}{
		o.OrderID,
		o.CustomerName,
		o.Category,
		o.ProductName,
		o.Quantity,
		o.UnitPrice,
		o.TotalAmount,
		o.OrderDate.Format(DateLayout),
		o.Region,
		o.Status,
		o.PaymentMethod,
		o.ShippingCost,
	}
}
