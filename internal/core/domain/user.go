package domain

// UserRole is the staff role assigned to a console user.
type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleFrontDesk    UserRole = "FRONT_DESK"
	RoleHousekeeping UserRole = "HOUSEKEEPING"
	RoleMaintenance  UserRole = "MAINTENANCE"
	RoleGuest        UserRole = "GUEST"
)

// Valid reports whether r is one of the roles the backend knows.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleFrontDesk, RoleHousekeeping, RoleMaintenance, RoleGuest:
		return true
	}
	return false
}

// User is a staff account managed under /api/admin/users. Timestamps are
// kept as the backend formats them; it emits zoneless local times.
type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Name      string   `json:"name"`
	Surname   string   `json:"surname"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Role      UserRole `json:"role"`
	Active    bool     `json:"active"`
	FullName  string   `json:"fullName"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type CreateUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Surname  string   `json:"surname"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Role     UserRole `json:"role"`
}

// UpdateUserRequest sends only the fields that are set.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Surname  *string `json:"surname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type UserStatistics struct {
	TotalUsers         int64 `json:"totalUsers"`
	ActiveUsers        int64 `json:"activeUsers"`
	InactiveUsers      int64 `json:"inactiveUsers"`
	AdministratorCount int64 `json:"administratorCount"`
	FrontDeskCount     int64 `json:"frontDeskCount"`
	HousekeepingCount  int64 `json:"housekeepingCount"`
	MaintenanceCount   int64 `json:"maintenanceCount"`
}

// UserFilter narrows the user list. A nil field means "no filter"; a
// non-nil false Active is a real filter.
type UserFilter struct {
	Role   *UserRole
	Active *bool
}
