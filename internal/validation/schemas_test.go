package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSignupPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload SignupPayload
		ok      bool
	}{
		{"valid", SignupPayload{Name: "User Example", Email: "user@email.com", Password: "123456"}, true},
		{"missing name", SignupPayload{Email: "user@email.com", Password: "123456"}, false},
		{"missing email", SignupPayload{Name: "User Example", Password: "123456"}, false},
		{"malformed email", SignupPayload{Name: "User Example", Email: "useremail.com", Password: "123456"}, false},
		{"missing password", SignupPayload{Name: "User Example", Email: "user@email.com"}, false},
		{"short password", SignupPayload{Name: "User Example", Email: "user@email.com", Password: "12345"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.payload.Validate().OK())
		})
	}
}

func TestSigninPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload SigninPayload
		ok      bool
	}{
		{"valid", SigninPayload{Email: "user@email.com", Password: "123456"}, true},
		{"blank email", SigninPayload{Password: "123456"}, false},
		{"malformed email", SigninPayload{Email: "useremail.com", Password: "123456"}, false},
		{"blank password", SigninPayload{Email: "user@email.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.payload.Validate().OK())
		})
	}
}

func TestUpdatePayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload UpdatePayload
		ok      bool
	}{
		{"name only", UpdatePayload{Name: strPtr("New Name")}, true},
		{"email only", UpdatePayload{Email: strPtr("new@email.com")}, true},
		{"name and email", UpdatePayload{Name: strPtr("New Name"), Email: strPtr("new@email.com")}, true},
		{
			"full password change",
			UpdatePayload{OldPassword: strPtr("123456"), NewPassword: strPtr("12345678"), ConfirmPassword: strPtr("12345678")},
			true,
		},
		{"no fields at all", UpdatePayload{}, false},
		{"blank name", UpdatePayload{Name: strPtr("")}, false},
		{"malformed email", UpdatePayload{Email: strPtr("not-an-email")}, false},
		{
			"password change missing confirmation",
			UpdatePayload{OldPassword: strPtr("123456"), NewPassword: strPtr("12345678")},
			false,
		},
		{
			"confirmation does not match",
			UpdatePayload{OldPassword: strPtr("123456"), NewPassword: strPtr("12345678"), ConfirmPassword: strPtr("87654321")},
			false,
		},
		{
			"short new password",
			UpdatePayload{OldPassword: strPtr("123456"), NewPassword: strPtr("123"), ConfirmPassword: strPtr("123")},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.payload.Validate().OK())
		})
	}
}

func TestUpdatePayloadChangesPassword(t *testing.T) {
	assert.False(t, UpdatePayload{Name: strPtr("x")}.ChangesPassword())
	assert.True(t, UpdatePayload{OldPassword: strPtr("x")}.ChangesPassword())
	assert.True(t, UpdatePayload{NewPassword: strPtr("x")}.ChangesPassword())
	assert.True(t, UpdatePayload{ConfirmPassword: strPtr("x")}.ChangesPassword())
}

func TestLogPayloadValidate(t *testing.T) {
	valid := LogPayload{
		Level:             "FATAL",
		Description:       "Application down",
		SenderApplication: "App_1",
		SendDate:          "10/10/2019 15:00",
		Environment:       "production",
	}

	t.Run("valid", func(t *testing.T) {
		assert.True(t, valid.Validate().OK())
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, mutate := range []func(*LogPayload){
			func(p *LogPayload) { p.Level = "" },
			func(p *LogPayload) { p.Description = "" },
			func(p *LogPayload) { p.SenderApplication = "" },
			func(p *LogPayload) { p.SendDate = "" },
			func(p *LogPayload) { p.Environment = "" },
		} {
			p := valid
			mutate(&p)
			assert.False(t, p.Validate().OK())
		}
	})

	t.Run("impossible calendar date", func(t *testing.T) {
		p := valid
		p.SendDate = "25/25/2019 25:00"
		assert.False(t, p.Validate().OK())
	})

	t.Run("date without time", func(t *testing.T) {
		p := valid
		p.SendDate = "10/10/2019"
		assert.False(t, p.Validate().OK())
	})
}
