package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SignupForm carries the /signup form fields.
type SignupForm struct {
	Email           string `form:"email"`
	Username        string `form:"username"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (f SignupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 120),
		),
		validation.Field(&f.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 80).Error("username must be 3-80 characters"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 128).Error("password must be at least 6 characters"),
		),
		validation.Field(&f.ConfirmPassword,
			validation.Required.Error("please confirm your password"),
			validation.By(func(interface{}) error {
				if f.ConfirmPassword != f.Password {
					return errPasswordMismatch
				}
				return nil
			}),
		),
	)
}

var errPasswordMismatch = validation.NewError("validation_passwords_match", "passwords must match")

// LoginForm carries the /login form fields. Remember is the raw checkbox
// value; browsers send "on" when checked and omit the field otherwise.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Remember string `form:"remember"`
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}

// RememberMe reports whether the remember-me checkbox was ticked.
func (f LoginForm) RememberMe() bool {
	return f.Remember != "" && f.Remember != "false"
}
