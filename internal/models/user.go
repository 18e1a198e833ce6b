package models

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a console account. PasswordHash never leaves the process.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

// UserInput carries the fields required to create a user.
type UserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Password    string `json:"password"`
}

// UserUpdate is a partial-field update. Nil fields are left unchanged.
type UserUpdate struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Role        *string `json:"role"`
}
