package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// UserScope represents the user category
type UserScope string

const (
	ScopeIndividual UserScope = "individual"
	ScopeEnterprise UserScope = "enterprise"
)

// Valid reports whether the scope is one of the recognized values
func (s UserScope) Valid() bool {
	return s == ScopeIndividual || s == ScopeEnterprise
}

// User represents a registered user. The scope value determines which of the
// optional field groups is expected to be populated; storage does not enforce
// this.
type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Scope     UserScope `json:"scope"`
	CreatedAt time.Time `json:"createdAt"`

	// Individual fields (empty when scope is 'enterprise')
	FirstName null.String `json:"firstName,omitempty"`
	LastName  null.String `json:"lastName,omitempty"`
	Mobile    null.String `json:"mobile,omitempty"`

	// Enterprise fields (empty when scope is 'individual')
	CompanyName    null.String `json:"companyName,omitempty"`
	CompanyWebsite null.String `json:"companyWebsite,omitempty"`
	Phone          null.String `json:"phone,omitempty"`
}

// UserProjection is the public view returned by the register and login
// endpoints. Optional profile fields are never exposed through it.
type UserProjection struct {
	ID    uint      `json:"id"`
	Email string    `json:"email"`
	Scope UserScope `json:"scope"`
}

// Projection returns the public view of the user
func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:    u.ID,
		Email: u.Email,
		Scope: u.Scope,
	}
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email string `json:"email" binding:"required,email"`
	Scope string `json:"scope" binding:"required,oneof=individual enterprise"`

	// Individual fields
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mobile    string `json:"mobile"`

	// Enterprise fields
	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website"`
	Phone          string `json:"phone"`
}

// LoginInput represents input for login. There is no credential beyond the
// email; login is an existence lookup, not an authentication boundary.
type LoginInput struct {
	Email string `json:"email" binding:"required,email"`
}
