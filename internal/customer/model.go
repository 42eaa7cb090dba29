package customer

type Customer struct {
	ID                   int64
	UserID               int64
	Address              string
	DeliveryInstructions string
	LoyaltyPoints        int
	IsActive             bool
}

// ProfileParams carries a partial profile update; nil fields are left as-is.
type ProfileParams struct {
	Address              *string
	DeliveryInstructions *string
}
