// Package branch provides branch classification, name synthesis and
// sanitization for the shipit workflow.
package branch

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// defaultBranches is the fixed set of long-lived integration branches.
// Anything else, including the empty string, is a feature branch.
var defaultBranches = map[string]struct{}{
	"main":     {},
	"master":   {},
	"bullseye": {},
}

// IsDefault reports whether name is one of the long-lived default branches.
func IsDefault(name string) bool {
	_, ok := defaultBranches[name]
	return ok
}

// Sanitize turns an arbitrary string into a safe git ref component:
// every rune outside [A-Za-z0-9] becomes '-', then the whole string is
// lowercased. The transform is idempotent.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz"

// DefaultName synthesizes a branch name suggestion from the current unix
// timestamp and a short random suffix. Valid by construction; sanitizing
// it is a no-op.
func DefaultName() string {
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return fmt.Sprintf("%d-%s", time.Now().Unix(), suffix)
}
