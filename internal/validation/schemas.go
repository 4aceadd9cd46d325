package validation

import "github.com/logbook/api/internal/core/domain"

const minPasswordLength = 6

// SignupPayload is the schema for user creation.
type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p SignupPayload) Validate() Result {
	var r Result
	r.check("name", p.Name, Required())
	r.check("email", p.Email, Required(), Email())
	r.check("password", p.Password, Required(), MinLength(minPasswordLength))
	return r
}

// SigninPayload is the schema for authentication. Restore reuses it: a
// restore request re-authenticates the account's credentials.
type SigninPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p SigninPayload) Validate() Result {
	var r Result
	r.check("email", p.Email, Required(), Email())
	r.check("password", p.Password, Required())
	return r
}

// UpdatePayload is the schema for profile updates. Any subset of name,
// email and the password triplet may be present; pointer fields
// distinguish "absent" from "blank". A password change requires all three
// password fields with newPassword equal to confirmPassword.
type UpdatePayload struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	OldPassword     *string `json:"oldPassword"`
	NewPassword     *string `json:"newPassword"`
	ConfirmPassword *string `json:"confirmPassword"`
}

// ChangesPassword reports whether any password field is present.
func (p UpdatePayload) ChangesPassword() bool {
	return p.OldPassword != nil || p.NewPassword != nil || p.ConfirmPassword != nil
}

func (p UpdatePayload) Validate() Result {
	var r Result

	if p.Name == nil && p.Email == nil && !p.ChangesPassword() {
		r.Errors = append(r.Errors, FieldError{Field: "body", Message: "at least one field is required"})
		return r
	}

	if p.Name != nil {
		r.check("name", *p.Name, Required())
	}
	if p.Email != nil {
		r.check("email", *p.Email, Required(), Email())
	}

	if p.ChangesPassword() {
		if p.OldPassword == nil || p.NewPassword == nil || p.ConfirmPassword == nil {
			r.Errors = append(r.Errors, FieldError{Field: "password", Message: "oldPassword, newPassword and confirmPassword are all required"})
			return r
		}
		r.check("oldPassword", *p.OldPassword, Required())
		r.check("newPassword", *p.NewPassword, Required(), MinLength(minPasswordLength))
		if *p.NewPassword != *p.ConfirmPassword {
			r.Errors = append(r.Errors, FieldError{Field: "confirmPassword", Message: "must match newPassword"})
		}
	}

	return r
}

// LogPayload is the schema for log submission.
type LogPayload struct {
	Level             string `json:"level"`
	Description       string `json:"description"`
	SenderApplication string `json:"senderApplication"`
	SendDate          string `json:"sendDate"`
	Environment       string `json:"environment"`
}

func (p LogPayload) Validate() Result {
	var r Result
	r.check("level", p.Level, Required())
	r.check("description", p.Description, Required())
	r.check("senderApplication", p.SenderApplication, Required())
	r.check("sendDate", p.SendDate, Required(), DateTime(domain.SendDateLayout))
	r.check("environment", p.Environment, Required())
	return r
}
