package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	UserType string `form:"user_type" validate:"required,is-user-type"`
	Email    string `form:"email" validate:"required,email"`
}

type statusForm struct {
	Company     string `form:"company_status" validate:"omitempty,is-company-status"`
	Job         string `json:"job_status" validate:"omitempty,is-job-status"`
	Application string `form:"status" validate:"omitempty,is-application-status"`
}

func TestValidate_UsesFormNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{UserType: "admin", Email: "nope"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be one of: seeker, company", vErr.Errors["user_type"])
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])

	assert.NoError(t, v.Validate(&registerForm{UserType: "seeker", Email: "a@x.com"}))
	assert.NoError(t, v.Validate(&registerForm{UserType: "company", Email: "a@x.com"}))
}

func TestValidate_StatusRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&statusForm{Company: "Approved", Job: "Hidden", Application: "Accepted"}))
	assert.NoError(t, v.Validate(&statusForm{}))

	err := v.Validate(&statusForm{Company: "approved", Job: "Deleted", Application: "Maybe"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Len(t, vErr.Errors, 3)
	assert.Contains(t, vErr.Errors["job_status"], "Published")
	assert.Contains(t, vErr.Errors["status"], "Accepted")
}
