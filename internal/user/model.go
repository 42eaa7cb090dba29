package user

import "time"

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleRestaurant Role = "RESTAURANT"
	RoleAdmin      Role = "ADMIN"
)

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	Phone     string
	Role      Role
	CreatedAt time.Time
}

// RegisterParams carries everything a registration request may supply.
// Restaurant fields are only read when Role is RESTAURANT; Address doubles
// as the customer delivery address for CUSTOMER registrations.
type RegisterParams struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	Role        Role
	Address     string
	CuisineType string
}
