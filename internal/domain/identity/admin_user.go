package identity

import (
	"strings"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Role of an admin user. The dashboard only distinguishes staff from
// owners for future use; both see the same data today.
type Role string

const (
	RoleStaff Role = "staff"
	RoleOwner Role = "owner"
)

// AdminUser is a staff credential for the dashboard surface.
type AdminUser struct {
	shared.BaseEntity
	Username     string
	PasswordHash string
	DisplayName  string
	Role         Role
	IsActive     bool
	LastLoginAt  *time.Time
	LastLoginIP  string
}

// NewAdminUser creates an active admin user with a bcrypt-hashed password.
func NewAdminUser(username, password string, role Role) (*AdminUser, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if len(username) < 3 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Username must be at least 3 characters")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	return &AdminUser{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *AdminUser) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin stores the time and source address of a successful login.
func (u *AdminUser) RecordLogin(ip string) {
	now := time.Now()
	u.LastLoginAt = &now
	u.LastLoginIP = ip
	u.Touch()
}

// GetDisplayNameOrUsername returns the display name, falling back to the
// username.
func (u *AdminUser) GetDisplayNameOrUsername() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
