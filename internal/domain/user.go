package domain

import (
	"context"
	"time"
)

// Role is the application role of a user.
type Role string

const (
	RolePlayer    Role = "PLAYER"
	RoleOrganizer Role = "ORGANIZER"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Role         Role      `json:"role"`
	Enabled      bool      `json:"enabled"`
	GameID       *string   `json:"game_id,omitempty"`
	InGameName   *string   `json:"in_game_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new enabled User with the given fields. ID is typically set by the repository on create.
func NewUser(username, email, phone string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		Username:    username,
		Email:       email,
		PhoneNumber: phone,
		Role:        role,
		Enabled:     true,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Principal is the authenticated identity attached to a request. Every service
// operation that needs authorization takes it as an explicit argument.
type Principal struct {
	UserID   string
	Username string
	Role     Role
}

// IsAdmin reports whether the principal has the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanOrganize reports whether the principal may create and manage events.
func (p Principal) CanOrganize() bool {
	return p.Role == RoleOrganizer || p.Role == RoleAdmin
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, username string, role Role, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// SignUpInput carries the fields accepted at signup.
type SignUpInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Password    string
	Role        Role
	GameID      string
	InGameName  string
}

// AuthResult is returned by signup and login.
// swagger:model AuthResult
type AuthResult struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	User      *User  `json:"user"`
}

// UserService defines signup, login and principal lookup.
type UserService interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// ResolvePrincipal loads the identity and role for a verified token subject.
	// Unknown or disabled users yield ErrInvalidCredentials.
	ResolvePrincipal(ctx context.Context, userID string) (Principal, error)
}
