package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,role"`
	Score int    `json:"score" validate:"gte=1,lte=5"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signupPayload{
		Email: "ana@example.com",
		Role:  "venue",
		Score: 3,
	}))

	err := v.Validate(&signupPayload{
		Email: "not-an-email",
		Role:  "dj",
		Score: 9,
	})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)

	// Field names come from the JSON tags.
	assert.Contains(t, ve.Errors, "email")
	assert.Contains(t, ve.Errors, "role")
	assert.Contains(t, ve.Errors, "score")
	assert.Equal(t, "Must be one of: performer, distributor, venue, admin", ve.Errors["role"])
}

func TestValidateRoleAliases(t *testing.T) {
	v := New()

	for _, role := range []string{"performer", "distributor", "venue", "admin", "Venue"} {
		assert.NoError(t, v.Validate(&signupPayload{
			Email: "ana@example.com",
			Role:  role,
			Score: 3,
		}), "role %q should be accepted", role)
	}
}
