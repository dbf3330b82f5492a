package models

// StaffRole enumerates the positions a staff member can hold.
// Free-text roles are rejected at the service boundary.
type StaffRole string

const (
	StaffRoleServer  StaffRole = "server"
	StaffRoleCook    StaffRole = "cook"
	StaffRoleCashier StaffRole = "cashier"
	StaffRoleManager StaffRole = "manager"
)

// Valid reports whether the role is one of the closed set.
func (r StaffRole) Valid() bool {
	switch r {
	case StaffRoleServer, StaffRoleCook, StaffRoleCashier, StaffRoleManager:
		return true
	}
	return false
}

// StaffStatus marks whether a staff member is currently employed.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
)

// Valid reports whether the status is one of the closed set.
func (s StaffStatus) Valid() bool {
	return s == StaffStatusActive || s == StaffStatusInactive
}

// StaffMember represents an employee record in the local collection.
type StaffMember struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      StaffRole   `json:"role"`
	Salary    int64       `json:"salary"`
	Status    StaffStatus `json:"status"`
	StartDate string      `json:"start_date"` // YYYY-MM-DD
}
