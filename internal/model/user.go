package model

// User role constants
const (
	RoleDoctor   = "doctor"
	RoleNurse    = "nurse"
	RolePatient  = "patient"
	RoleLab      = "lab"
	RolePharmacy = "pharmacy"
	RoleAdmin    = "admin"
)

// User represents an account in the user directory. The role is fixed
// at signup; no route mutates it afterwards.
type User struct {
	Base
	Role         string  `json:"role" db:"role"`
	FullName     string  `json:"full_name" db:"full_name"`
	Email        string  `json:"email" db:"email"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Phone        *string `json:"phone,omitempty" db:"phone"`
	Gender       *string `json:"gender,omitempty" db:"gender"`
	DateOfBirth  *string `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Address      *string `json:"address,omitempty" db:"address"`
	IsActive     bool    `json:"is_active" db:"is_active"`
}

// SignupRequest represents account creation parameters
type SignupRequest struct {
	Role     string `json:"role" binding:"required,oneof=doctor nurse patient lab pharmacy admin"`
	FullName string `json:"full_name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries form-encoded credentials. The username field
// holds the account email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is returned on successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
