package favorite

type Favorite struct {
	ID           int64
	UserID       int64
	RestaurantID int64
	IsActive     bool
}
