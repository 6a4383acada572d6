package blob

import (
	"fmt"
	"time"
)

// SanitizeFileName replaces every character outside [A-Za-z0-9._-] with an
// underscore so the result is safe inside an object key.
func SanitizeFileName(name string) string {
	out := []byte(name)
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

// BuildObjectKey constructs the object key for one uploaded case document:
// "<caseID>/<epochMillis>_<sanitizedFileName>". The millisecond timestamp
// keeps two uploads of the same original name in the same case from
// colliding.
func BuildObjectKey(caseID, fileName string, now time.Time) string {
	return fmt.Sprintf("%s/%d_%s", SanitizeFileName(caseID), now.UnixMilli(), SanitizeFileName(fileName))
}
