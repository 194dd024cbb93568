package service

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/aussiebroadwan/tenancy/pkg/cryptox"
)

const (
	msgFirstNameRequired = "First name is required"
	msgLastNameRequired  = "Last name is required"
	msgInvalidEmail      = "Invalid email format"
	msgPasswordRequired  = "Password is required"
	msgPasswordTooLong   = "Password must be at most 72 bytes"
	msgEmailTaken        = "Email already exists"
	msgNameRequired      = "Name is required"
	msgUserIDRequired    = "User ID is required"
)

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName, validation.Required.Error(msgFirstNameRequired)),
		validation.Field(&in.LastName, validation.Required.Error(msgLastNameRequired)),
		validation.Field(&in.Email,
			validation.Required.Error(msgInvalidEmail),
			is.Email.Error(msgInvalidEmail),
		),
		validation.Field(&in.Password,
			validation.Required.Error(msgPasswordRequired),
			validation.By(passwordFitsHasher),
		),
	)
}

// LoginInput is the body of a login request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error(msgInvalidEmail),
			is.Email.Error(msgInvalidEmail),
		),
		validation.Field(&in.Password, validation.Required.Error(msgPasswordRequired)),
	)
}

// CreateOrganisationInput is the body of an organisation create request.
type CreateOrganisationInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (in CreateOrganisationInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error(msgNameRequired)),
	)
}

// AddMemberInput is the body of an add-member request.
type AddMemberInput struct {
	UserID string `json:"userId"`
}

func (in AddMemberInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.UserID, validation.Required.Error(msgUserIDRequired)),
	)
}

func passwordFitsHasher(value any) error {
	s, _ := value.(string)
	if len(s) > cryptox.MaxPasswordBytes {
		return errors.New(msgPasswordTooLong)
	}
	return nil
}
