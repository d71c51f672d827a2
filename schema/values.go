package schema

// StringValue reads a string out of a validated configuration. It returns ""
// when the key is absent, which for a validated config means the field was
// optional with no default.
func StringValue(cfg map[string]interface{}, key string) string {
	s, _ := cfg[key].(string)
	return s
}

// IntValue reads an integer out of a validated configuration.
func IntValue(cfg map[string]interface{}, key string) int {
	n, _ := cfg[key].(int)
	return n
}
