package tenant

import "time"

// Tenant is an isolated customer organization. Every shift, inspection and
// production row is partitioned by tenant.
type Tenant struct {
	ID         string
	TenantName string
	TenantCode string
	Address    string
	IsVerified bool
	IsActive   bool
	CreatedBy  string
	UpdatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
