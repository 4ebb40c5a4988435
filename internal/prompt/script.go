package prompt

// Script is a Provider that replays canned answers in order. It drives the
// engine in tests and in non-interactive invocations where every input was
// supplied up front. Running out of answers aborts, matching an operator
// walking away mid-flow.
type Script struct {
	answers []string
}

// NewScript creates a provider that will return the given answers in order.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

// Ask pops the next answer; an empty answer falls back to the default.
func (s *Script) Ask(q Question) (string, error) {
	answer, err := s.next()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return q.Default, nil
	}
	return answer, nil
}

// Confirm pops the next answer and interprets it as yes/no.
func (s *Script) Confirm(message string, defaultYes bool) (bool, error) {
	answer, err := s.next()
	if err != nil {
		return false, err
	}
	switch answer {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *Script) next() (string, error) {
	if len(s.answers) == 0 {
		return "", ErrAborted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}
