// Package prompt models the interactive question/answer flow.
//
// Questions are plain descriptors consumed by a Provider, so the same flow
// can be driven by a human at a terminal or by a scripted set of answers in
// tests. Control suspends at each question until the provider answers;
// aborting at any question abandons the whole request.
package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAborted is returned when the operator cancels a prompt (EOF, interrupt,
// or a scripted provider running out of answers). Callers must abandon the
// request without side effects.
var ErrAborted = errors.New("prompt aborted")

// maxAttempts bounds re-prompting on invalid answers so a misbehaving
// provider cannot loop forever.
const maxAttempts = 3

// Question describes one input request.
type Question struct {
	Message  string
	Default  string
	Choices  []string              // when set, the answer must be one of these
	Validate func(string) error    // optional extra validation
}

// Provider supplies answers to questions.
type Provider interface {
	// Ask returns the raw answer for q. Implementations return ErrAborted
	// when the operator cancels.
	Ask(q Question) (string, error)

	// Confirm asks a yes/no question.
	Confirm(message string, defaultYes bool) (bool, error)
}

// Collector runs validated questions against a provider, re-prompting on
// invalid answers.
type Collector struct {
	provider Provider
}

// NewCollector wraps a provider.
func NewCollector(p Provider) *Collector {
	return &Collector{provider: p}
}

// Confirm passes a yes/no question straight through to the provider.
func (c *Collector) Confirm(message string, defaultYes bool) (bool, error) {
	return c.provider.Confirm(message, defaultYes)
}

// Ask asks q until the answer validates, up to maxAttempts.
func (c *Collector) Ask(q Question) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		answer, err := c.provider.Ask(q)
		if err != nil {
			return "", err
		}

		if err := validateAnswer(q, answer); err != nil {
			q.Message = fmt.Sprintf("%v. %s", err, q.Message)
			continue
		}
		return answer, nil
	}
	return "", fmt.Errorf("no valid answer after %d attempts: %w", maxAttempts, ErrAborted)
}

// Name asks for a non-empty item name. An existing non-blank value is
// returned as-is without prompting.
func (c *Collector) Name(current string) (string, error) {
	if strings.TrimSpace(current) != "" {
		return current, nil
	}
	return c.Ask(Question{
		Message:  "Name",
		Validate: NonEmpty,
	})
}

// Type asks for a generator type chosen from choices. An existing value is
// returned as-is; validating it against the registry is the engine's job.
func (c *Collector) Type(current string, choices []string) (string, error) {
	if current != "" {
		return current, nil
	}
	return c.Ask(Question{
		Message: fmt.Sprintf("Type (%s)", strings.Join(choices, ", ")),
		Choices: choices,
	})
}

// OutputDir asks for the destination directory, defaulting to def.
func (c *Collector) OutputDir(current, def string) (string, error) {
	if current != "" {
		return current, nil
	}
	return c.Ask(Question{
		Message: "Output directory",
		Default: def,
	})
}

// NonEmpty rejects blank answers.
func NonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value must not be empty")
	}
	return nil
}

func validateAnswer(q Question, answer string) error {
	if len(q.Choices) > 0 {
		ok := false
		for _, choice := range q.Choices {
			if answer == choice {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%q is not one of the choices", answer)
		}
	}
	if q.Validate != nil {
		return q.Validate(answer)
	}
	return nil
}
