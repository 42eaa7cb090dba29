package review

import "time"

type Review struct {
	ID           int64
	RestaurantID int64
	CustomerID   int64
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
