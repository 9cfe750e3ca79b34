// Package message chooses commit messages for the shipit workflow.
//
// Direct commits on a feature branch use either the literal "wip" or a
// random line from a curated pool of funny messages. Commits that open a
// new feature branch always carry operator-supplied text.
package message

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/aki/shipit/internal/core/interaction"
)

// PoolFile is the filename of the funny message pool, relative to $HOME.
// First-run setup seeds it from the embedded default pool.
const PoolFile = ".shipit.messages"

// Kind selects which workflow path the message is for.
type Kind int

const (
	// Direct is a wip commit on the current feature branch.
	Direct Kind = iota
	// Feature is the first commit on a freshly cut feature branch.
	Feature
)

// Provider resolves commit messages from configuration, the funny pool
// and the operator.
type Provider struct {
	poolPath string
	ask      interaction.Interactor

	// pick selects an index in [0,n); tests pin it for determinism.
	pick func(n int) int
}

// NewProvider creates a Provider reading the funny pool from poolPath.
func NewProvider(poolPath string, ask interaction.Interactor) *Provider {
	return &Provider{
		poolPath: poolPath,
		ask:      ask,
		pick:     rand.Intn,
	}
}

// PoolPath returns the standard location of the funny message pool.
func PoolPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, PoolFile), nil
}

// Choose resolves the commit message for the given workflow path.
//
// Feature messages are required free text from the operator. Direct
// messages are "wip", or a random pool line when funny is set; a missing
// pool is an error with no fallback.
func (p *Provider) Choose(kind Kind, funny bool) (string, error) {
	if kind == Feature {
		return p.ask.Input("Commit message", "", true)
	}

	if !funny {
		return "wip", nil
	}

	lines, err := p.loadPool()
	if err != nil {
		return "", err
	}
	return lines[p.pick(len(lines))], nil
}

// loadPool reads the pool file, dropping blank lines and '#' comments.
func (p *Provider) loadPool() ([]string, error) {
	data, err := os.ReadFile(p.poolPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read message pool %s: %w", p.poolPath, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("message pool %s contains no messages", p.poolPath)
	}

	return lines, nil
}
