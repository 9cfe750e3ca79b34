// Package interaction defines the operator interaction capability used by
// the workflow engine. The concrete terminal implementation lives in
// internal/cli/prompt; tests substitute a scripted implementation.
package interaction

// Interactor asks the operator questions and returns typed answers.
// Both calls block until the operator responds.
type Interactor interface {
	// Confirm asks a yes/no question. An empty answer selects def.
	Confirm(question string, def bool) (bool, error)

	// Input asks for free text. An empty answer selects def; when required
	// is set and no default exists, the question is asked again until a
	// non-empty answer arrives.
	Input(question, def string, required bool) (string, error)
}
