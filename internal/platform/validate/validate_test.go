// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukavetter/torqline/internal/platform/apperr"
	"github.com/lukavetter/torqline/internal/platform/validate"
)

/*
TestIsUUID pins the identifier shape accepted by every catalog operation:
8-4-4-4-12 hex groups, version nibble 1-5, variant nibble 8/9/a/b,
case-insensitive.
*/
func TestIsUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"valid_v4", "3f0b2d85-9204-4d8e-8c73-4c5e0f1a2b34", true},
		{"valid_v1", "c2d7ce06-11d7-1e06-8c0c-8e41a9168e5d", true},
		{"uppercase_accepted", "3F0B2D85-9204-4D8E-8C73-4C5E0F1A2B34", true},
		{"mixed_case_accepted", "3f0B2d85-9204-4D8e-8c73-4c5e0f1a2b34", true},
		{"variant_b_accepted", "3f0b2d85-9204-4d8e-bc73-4c5e0f1a2b34", true},
		{"version_zero_rejected", "3f0b2d85-9204-0d8e-8c73-4c5e0f1a2b34", false},
		{"version_seven_rejected", "018f4c2e-9204-7d8e-8c73-4c5e0f1a2b34", false},
		{"bad_variant_rejected", "3f0b2d85-9204-4d8e-7c73-4c5e0f1a2b34", false},
		{"missing_group", "3f0b2d85-9204-4d8e-8c73", false},
		{"non_hex", "3f0b2d85-9204-4d8e-8c73-4c5e0f1a2bzz", false},
		{"no_hyphens", "3f0b2d8592044d8e8c734c5e0f1a2b34", false},
		{"surrounding_text", "id=3f0b2d85-9204-4d8e-8c73-4c5e0f1a2b34", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, validate.IsUUID(tt.value))
		})
	}
}

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Luka", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_True checks the consent-style boolean rule.
*/
func TestValidator_True(t *testing.T) {
	v := &validate.Validator{}
	v.True("consent", false, "Consent is required")

	err := v.Err()
	require.NotNil(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "consent", ae.Details[0].Field)
	assert.Equal(t, "Consent is required", ae.Details[0].Message)

	v = &validate.Validator{}
	v.True("consent", true, "Consent is required")
	assert.Nil(t, v.Err())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("name", "Luka Vetter").
		MaxLen("name", "Luka Vetter", 200).
		Email("email", "luka@example.com").
		True("consent", true, "Consent is required").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_CollectsAllFailures verifies that every failed rule produces
its own field entry in a single error.
*/
func TestValidator_CollectsAllFailures(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("name", "").
		Required("email", "").
		True("consent", false, "Consent is required").
		Err()

	require.NotNil(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
