package model

import "time"

// Role is the authorization level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is a registered account. Password holds the bcrypt hash and is never
// serialised.
type User struct {
	ID        int64     `db:"id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CreateUserDTO is the public registration payload. It carries no role;
// new accounts are always USER.
type CreateUserDTO struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateRoleDTO changes the role of an existing account.
type UpdateRoleDTO struct {
	Role Role `json:"role" validate:"required,oneof=USER ADMIN"`
}
