package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		opts    StringOptions
		wantMsg string
	}{
		{"valid", "hello", StringOptions{}, ""},
		{"missing required", nil, StringOptions{}, "name is required"},
		{"empty required", "", StringOptions{}, "name is required"},
		{"missing optional", nil, StringOptions{Optional: true}, ""},
		{"empty optional", "", StringOptions{Optional: true}, ""},
		{"wrong type number", float64(42), StringOptions{}, "name must be a string"},
		{"wrong type bool", true, StringOptions{}, "name must be a string"},
		{"too short", "a", StringOptions{MinLength: 2}, "name must be at least 2 characters"},
		{"too long", "abcdef", StringOptions{MaxLength: 5}, "name must be at most 5 characters"},
		{"at min bound", "ab", StringOptions{MinLength: 2}, ""},
		{"at max bound", "abcde", StringOptions{MaxLength: 5}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := String(tt.value, "name", tt.opts)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, "name", err.Field)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		opts    NumberOptions
		wantMsg string
	}{
		{"valid", float64(3), NumberOptions{}, ""},
		{"missing required", nil, NumberOptions{}, "score is required"},
		{"missing optional", nil, NumberOptions{Optional: true}, ""},
		{"wrong type string", "3", NumberOptions{}, "score must be a number"},
		{"wrong type bool", false, NumberOptions{}, "score must be a number"},
		{"below min", float64(0), NumberOptions{Min: Bound(1), Max: Bound(5)}, "score must be at least 1"},
		{"above max", float64(6), NumberOptions{Min: Bound(1), Max: Bound(5)}, "score must be at most 5"},
		{"at min bound", float64(1), NumberOptions{Min: Bound(1), Max: Bound(5)}, ""},
		{"at max bound", float64(5), NumberOptions{Min: Bound(1), Max: Bound(5)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Number(tt.value, "score", tt.opts)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, "score", err.Field)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestEmail(t *testing.T) {
	valid := []string{
		"demo@example.com",
		"a.b@sub.domain.org",
		"user+tag@example.co",
	}
	for _, email := range valid {
		t.Run(email, func(t *testing.T) {
			assert.Nil(t, Email(email, "email"))
		})
	}

	invalid := []string{
		"no-at-sign.com",
		"no-domain-dot@example",
		"two@@example.com",
		"white space@example.com",
		"user@doma in.com",
		"@example.com",
		"user@",
	}
	for _, email := range invalid {
		t.Run(email, func(t *testing.T) {
			err := Email(email, "email")
			require.NotNil(t, err)
			assert.Equal(t, "email", err.Field)
			assert.Equal(t, "email must be a valid email address", err.Message)
		})
	}

	t.Run("missing", func(t *testing.T) {
		err := Email(nil, "email")
		require.NotNil(t, err)
		assert.Equal(t, "email is required", err.Message)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := Email(float64(1), "email")
		require.NotNil(t, err)
		assert.Equal(t, "email must be a string", err.Message)
	})
}

func TestCollect(t *testing.T) {
	a := &FieldError{Field: "name", Message: "name is required"}
	b := &FieldError{Field: "score", Message: "score must be a number"}

	t.Run("keeps declaration order and drops passes", func(t *testing.T) {
		errs := Collect(a, nil, b)
		require.Len(t, errs, 2)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "score", errs[1].Field)
	})

	t.Run("all passing yields empty", func(t *testing.T) {
		assert.Empty(t, Collect(nil, nil))
	})
}
