// Package entity defines the domain entities of the marketplace: the four
// credentialed account types (User, Admin, Merchant, Shop) built on a shared
// Account record, and the transaction entities that reference them.
package entity

import "time"

// Role represents account roles in the system
type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RoleMerchant Role = "merchant"
	RoleShop     Role = "shop"
)

// Valid reports whether the role is part of the closed role set
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleMerchant, RoleShop:
		return true
	}
	return false
}

// Address is the embedded postal address shape shared by users and shops
type Address struct {
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"house_number,omitempty"`
	Landmark    string `json:"landmark,omitempty"`
}

// Account is the common shape of every credentialed entity: identity fields,
// credential hash, verification flags and the soft-delete flag. PasswordHash,
// IsActive and PasscodeSecret never appear in external representations.
type Account struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	PasswordHash    string    `json:"-"`
	Role            Role      `json:"role"`
	IsEmailVerified bool      `json:"is_email_verified"`
	IsPhoneVerified bool      `json:"is_phone_verified"`
	IsActive        bool      `json:"-"`
	PasscodeSecret  string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GetAccount returns the embedded account record. Account types get this
// method by embedding, which is what lets the generic lifecycle machinery
// reach the shared fields.
func (a *Account) GetAccount() *Account {
	return a
}

// Credentialed constrains the pointer types that carry an embedded Account
// (e.g. *User, *Shop). It is a type constraint only, never a value type.
type Credentialed interface {
	comparable
	GetAccount() *Account
}

// VerificationChannel names the identifier being verified by a passcode flow
type VerificationChannel string

const (
	ChannelEmail        VerificationChannel = "email"
	ChannelPhone        VerificationChannel = "phone"
	ChannelRegistration VerificationChannel = "registration"
)
