// Package conflict decides what happens when a scaffold target already
// exists: keep it, replace it, review a diff first, or cancel the run.
package conflict

import (
	"errors"
	"fmt"
	"os"
)

// Decision is the outcome of resolving one collision.
type Decision int

const (
	Skip Decision = iota
	Overwrite
	Cancel
)

// Strategy resolves a collision for one path.
type Strategy interface {
	Decide(path string, existing, incoming []byte) (Decision, error)
}

// Resolver wraps the strategy selected from CLI flags.
type Resolver struct {
	strategy Strategy
}

// NewResolver picks a strategy from the --force/--skip/--diff flags.
// The flags are mutually exclusive.
func NewResolver(force, skip, diff bool) (*Resolver, error) {
	n := 0
	for _, set := range []bool{force, skip, diff} {
		if set {
			n++
		}
	}
	if n > 1 {
		return nil, errors.New("--force, --skip and --diff are mutually exclusive")
	}

	var s Strategy
	switch {
	case force:
		s = forceStrategy{}
	case skip:
		s = skipStrategy{}
	case diff:
		s = &diffStrategy{}
	default:
		s = &menuStrategy{}
	}
	return &Resolver{strategy: s}, nil
}

// NewResolverWith wraps a custom strategy. Tests use this to drive the
// engine with canned decisions.
func NewResolverWith(s Strategy) *Resolver {
	return &Resolver{strategy: s}
}

// Resolve decides what to do with the collision at path.
func (r *Resolver) Resolve(path string, existing, incoming []byte) (Decision, error) {
	return r.strategy.Decide(path, existing, incoming)
}

// forceStrategy always overwrites.
type forceStrategy struct{}

func (forceStrategy) Decide(string, []byte, []byte) (Decision, error) {
	return Overwrite, nil
}

// skipStrategy always keeps the existing file.
type skipStrategy struct{}

func (skipStrategy) Decide(string, []byte, []byte) (Decision, error) {
	return Skip, nil
}

// diffStrategy shows the diff up front, then hands over to the menu.
type diffStrategy struct{}

func (s *diffStrategy) Decide(path string, existing, incoming []byte) (Decision, error) {
	if err := showDiff(path, existing, incoming); err != nil {
		return Cancel, err
	}
	menu := &menuStrategy{}
	return menu.Decide(path, existing, incoming)
}

// menuStrategy runs the interactive menu, re-showing it after each diff
// review until the operator commits to a decision.
type menuStrategy struct{}

func (s *menuStrategy) Decide(path string, existing, incoming []byte) (Decision, error) {
	info, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return Cancel, fmt.Errorf("stat %s: %w", path, err)
	}

	for {
		choice, err := runMenu(path, info)
		if err != nil {
			return Cancel, err
		}
		if choice != choiceShowDiff {
			return choice.decision(), nil
		}
		if err := showDiff(path, existing, incoming); err != nil {
			return Cancel, err
		}
	}
}
