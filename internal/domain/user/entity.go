package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Tenant administrator - full access
	RoleSupervisor Role = "supervisor" // Can manage shop-floor records
	RoleOperator   Role = "operator"   // Records production logs
	RoleInspector  Role = "inspector"  // Records inspection results
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleSupervisor),
	string(RoleOperator),
	string(RoleInspector),
}

type User struct {
	ID           string
	TenantID     string
	Role         Role
	EmployeeCode string
	Name         string
	Phone        *string
	Email        *string
	PasswordHash string
	IsVerified   bool
	IsActive     bool
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user is a tenant administrator.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanRecordInspections checks if the user may submit inspection results.
func (u *User) CanRecordInspections() bool {
	return u.Role == RoleInspector || u.Role == RoleSupervisor || u.Role == RoleAdmin
}

// CanRecordProduction checks if the user may submit production logs.
func (u *User) CanRecordProduction() bool {
	return u.Role == RoleOperator || u.Role == RoleSupervisor || u.Role == RoleAdmin
}
