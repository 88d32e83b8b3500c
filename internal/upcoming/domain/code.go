package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CodePrefix is the namespace for upcoming project codes.
const CodePrefix = "UP"

// FormatCode renders a sequence number as an external code: UP001, UP002, …
// Numbers are zero-padded to three digits; larger numbers render in full.
func FormatCode(n int64) string {
	return fmt.Sprintf("%s%03d", CodePrefix, n)
}

// ParseCodeNumber extracts the numeric suffix of a code in the UP namespace.
// Returns 0 and false for codes outside the namespace or with a suffix that
// is not a plain integer; callers fall back to numbering from 1.
func ParseCodeNumber(code string) (int64, bool) {
	suffix, ok := strings.CutPrefix(code, CodePrefix)
	if !ok || suffix == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
