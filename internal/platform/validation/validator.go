package validation

// Validator checks a struct against its validation tags and returns
// field-level messages, or nil when the struct is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
