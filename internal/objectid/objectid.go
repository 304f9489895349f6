package objectid

// IsValid reports whether s looks like a Mongo ObjectId: exactly 24
// hexadecimal characters. The backend keys every record by ObjectId, so
// lookups for anything else are guaranteed misses and are never sent.
func IsValid(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
