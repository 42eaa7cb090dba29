package order

import "time"

type Order struct {
	ID                    int64
	CustomerID            int64
	RestaurantID          int64
	Items                 []OrderItem
	TotalAmount           float64
	Status                Status
	CreatedAt             time.Time
	EstimatedDeliveryTime *time.Time
	DeliveryAddress       string
	SpecialInstructions   string
}

// OrderItem is a snapshot of the menu item at order time. It keeps its own
// name and price so later menu edits never change historical orders.
type OrderItem struct {
	ID                  int64
	OrderID             int64
	ItemName            string
	Quantity            int
	Price               float64
	SpecialInstructions string
}

// ItemParams is what a caller supplies per line item when placing an order.
type ItemParams struct {
	ItemName            string
	Quantity            int
	Price               float64
	SpecialInstructions string
}
