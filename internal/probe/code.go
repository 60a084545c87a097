package probe

import "strings"

// NormalizeCode strips the dots of a hierarchical NACE code so that
// "01.11" and "0111" compare equal.
func NormalizeCode(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), ".", "")
}
