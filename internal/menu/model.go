package menu

type Menu struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	IsActive     bool
	FileRef      string
	Items        []MenuItem
}

type MenuItem struct {
	ID          int64
	MenuID      int64
	Name        string
	Description string
	Price       float64
	ImageRef    string
	IsAvailable bool
}

// ItemParams is the caller-supplied shape for creating or updating an item.
// Nil fields on update are left unchanged.
type ItemParams struct {
	Name        *string
	Description *string
	Price       *float64
	ImageRef    *string
	IsAvailable *bool
}
