package domain

import "time"

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // unique, compared exactly as stored
	Phone        string // optional
	PasswordHash string // bcrypt digest, never leaves the service layer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile is the external representation of a user. It deliberately has
// no password field.
type UserProfile struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

func (u User) Profile() UserProfile {
	return UserProfile{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

// DefaultOrganisationName is the name of the organisation created alongside
// a newly registered user.
func DefaultOrganisationName(firstName string) string {
	return firstName + "'s Organisation"
}
