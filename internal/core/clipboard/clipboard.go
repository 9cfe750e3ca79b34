// Package clipboard copies text to the system clipboard, best-effort.
package clipboard

import "github.com/atotto/clipboard"

// Copier copies text to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// System is the real clipboard backed by the platform clipboard.
type System struct{}

// Copy implements Copier. Callers treat failures as non-fatal; headless
// environments routinely have no clipboard at all.
func (System) Copy(text string) error {
	return clipboard.WriteAll(text)
}
