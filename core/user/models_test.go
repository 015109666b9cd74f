package user

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SetAndCheckPassword(t *testing.T) {
	var usr User
	require.NoError(t, usr.SetPassword("s3cr3t!"))

	assert.NotEmpty(t, usr.PasswordHash)
	assert.NotContains(t, string(usr.PasswordHash), "s3cr3t!")

	assert.NoError(t, usr.CheckPassword("s3cr3t!"))
	assert.Error(t, usr.CheckPassword("wrong"))
	assert.Error(t, usr.CheckPassword(""))
}

func TestNewUser_Validate(t *testing.T) {
	tests := []struct {
		name       string
		data       NewUser
		wantFields []string // fields expected to fail validation
	}{
		{
			name: "ok",
			data: NewUser{Name: "Alex", Email: "alex@example.com", Password: "secret1", Role: RoleStudent},
		},
		{
			name: "role is normalized",
			data: NewUser{Name: "Alex", Email: "alex@example.com", Password: "secret1", Role: "  Teacher "},
		},
		{
			name:       "all missing",
			data:       NewUser{},
			wantFields: []string{"name", "email", "password", "role"},
		},
		{
			name:       "missing password",
			data:       NewUser{Name: "Alex", Email: "alex@example.com", Role: RoleStudent},
			wantFields: []string{"password"},
		},
		{
			name:       "invalid email",
			data:       NewUser{Name: "Alex", Email: "nope", Password: "secret1", Role: RoleStudent},
			wantFields: []string{"email"},
		},
		{
			name:       "unknown role",
			data:       NewUser{Name: "Alex", Email: "alex@example.com", Password: "secret1", Role: "wizard"},
			wantFields: []string{"role"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "want validator.ValidationErrors, got %T", err)
			fields := make([]string, 0, len(vErrs))
			for _, vErr := range vErrs {
				fields = append(fields, vErr.Field())
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestCredentials_Validate(t *testing.T) {
	creds := Credentials{Email: " alex@example.com ", Password: "secret1"}
	require.NoError(t, creds.Validate())
	assert.Equal(t, "alex@example.com", creds.Email) // trimmed, case kept as given

	assert.Error(t, (&Credentials{Password: "secret1"}).Validate())
	assert.Error(t, (&Credentials{Email: "alex@example.com"}).Validate())
}
