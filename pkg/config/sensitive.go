package config

// SensitiveString is a string that must never appear in logs or rendered
// output. The stringer returns a redacted placeholder; call Value for the
// underlying secret.
type SensitiveString string

const redactedPlaceholder = "[REDACTED]"

func (s SensitiveString) String() string {
	if s == "" {
		return ""
	}
	return redactedPlaceholder
}

// Value returns the underlying secret value.
func (s SensitiveString) Value() string {
	return string(s)
}

// IsSet reports whether a secret was provided.
func (s SensitiveString) IsSet() bool {
	return s != ""
}

func (s SensitiveString) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SensitiveString) UnmarshalText(text []byte) error {
	*s = SensitiveString(text)
	return nil
}
