package validation

const cepLength = 8

// ValidCEP reports whether raw is exactly eight ASCII digits.
func ValidCEP(raw string) bool {
	if len(raw) != cepLength {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}
