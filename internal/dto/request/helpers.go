package request

// Coercion helpers for validated loose JSON values. Call only after Validate
// has passed, so the type assertions below cannot misfire.

func StringValue(v any) string {
	s, _ := v.(string)
	return s
}

// OptionalString maps absent and empty values to nil (stored as NULL).
func OptionalString(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func IntValue(v any) int {
	// encoding/json decodes numbers as float64
	f, _ := v.(float64)
	return int(f)
}

func OptionalInt(v any) *int {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}
