package utils

// MaskSecret returns a display-safe form of a secret value: the first 8 and
// last 4 characters when the value is long enough to keep some entropy
// hidden, otherwise a fixed mask. Matches the registrar dashboard's own
// key display format.
func MaskSecret(s string) string {
	if len(s) <= 12 {
		return "***"
	}
	return s[:8] + "..." + s[len(s)-4:]
}
