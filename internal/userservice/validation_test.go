package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blogway/internal/common"
)

func TestValidateName(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected map[string]string
	}{
		{name: "valid name", value: "John", expected: map[string]string{}},
		{name: "empty name", value: "", expected: map[string]string{"first_name": "must be provided"}},
		{name: "too short", value: "Jo", expected: map[string]string{"first_name": "must be between 3 and 50 characters long"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateName(v, tc.value, "first_name")
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		expected map[string]string
	}{
		{name: "valid email", email: "john.doe@example.com", expected: map[string]string{}},
		{name: "empty email", email: "", expected: map[string]string{"email": "must be provided"}},
		{name: "missing domain", email: "john@", expected: map[string]string{"email": "must be a valid email address"}},
		{name: "missing at sign", email: "john.example.com", expected: map[string]string{"email": "must be a valid email address"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		expected map[string]string
	}{
		{name: "valid password", password: "secret1", expected: map[string]string{}},
		{name: "minimum length", password: "secret", expected: map[string]string{}},
		{name: "empty password", password: "", expected: map[string]string{"password": "must be provided"}},
		{name: "too short", password: "abc12", expected: map[string]string{"password": "must be between 6 and 72 characters long"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}
