package message

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed messages.txt
var defaultPool []byte

// Seed writes the embedded default pool to path unless a pool already
// exists there. Run during first-time setup so the funny path works out
// of the box; the operator is free to edit the file afterwards.
func Seed(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, defaultPool, 0o644); err != nil {
		return fmt.Errorf("failed to seed message pool: %w", err)
	}
	return nil
}
