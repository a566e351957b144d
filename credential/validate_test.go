package credential

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{email: "a@b.com", valid: true},
		{email: "first.last-x_y@mail.example.co", valid: true},
		{email: "A9@sub-domain.example.io", valid: true},
		{email: "not-an-email"},
		{email: ""},
		{email: "a@b"},
		{email: "a@b.c"},
		{email: "@b.com"},
		{email: "a b@c.com"},
		{email: "a+tag@b.com"},
		{email: "a@b..com"},
	}
	for _, testCase := range testCases {
		err := ValidateEmail(testCase.email)
		if testCase.valid {
			assert.NoError(t, err, testCase.email)
			continue
		}
		assert.Error(t, err, testCase.email)
		var validationErr *ValidationError
		assert.True(t, errors.As(err, &validationErr), testCase.email)
		assert.True(t, errors.Is(err, ErrInvalidEmail), testCase.email)
	}
}

func TestCredentials_Validate(t *testing.T) {
	credentials := &Credentials{Email: "a@b", Password: "pw"}
	err := credentials.Validate()
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "email", validationErr.Field)
	assert.True(t, errors.Is(err, ErrInvalidEmail))

	assert.NoError(t, (&Credentials{Email: "a@b.com"}).Validate())
}
