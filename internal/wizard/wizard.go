// Package wizard collects the stack configuration through an ordered
// sequence of interactive steps. Steps run strictly in order with no
// backward navigation; the first failure or cancellation terminates
// the whole run, and a cancelled run leaves nothing behind.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is the terminal outcome of a run the user backed out
// of. It is not a processing failure: callers report it quietly and
// write nothing.
var ErrCancelled = errors.New("setup cancelled")

// Step is one named stage of the wizard. A step either advances the
// session's answers or ends the run.
type Step struct {
	Name string
	Run  func(s *Session) error
}

// Session carries the partial answers through the step sequence.
type Session struct {
	Answers   Answers
	Detection DetectionResult

	// runForm and out are swapped out by tests; forms otherwise run
	// against the real terminal and notices go to stdout.
	runForm func(*huh.Form) error
	out     io.Writer
}

// NewSession creates a session seeded with the wizard defaults.
func NewSession(detection DetectionResult) *Session {
	return &Session{
		Answers:   DefaultAnswers(),
		Detection: detection,
		runForm:   func(f *huh.Form) error { return f.Run() },
		out:       os.Stdout,
	}
}

// form runs a huh form and translates a user abort into ErrCancelled.
func (s *Session) form(groups ...*huh.Group) error {
	if err := s.runForm(huh.NewForm(groups...)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

// Run executes the given steps in order and returns the completed
// answers. A step that conditionally has nothing to ask still runs
// (and still counts); only an error stops the sequence.
func Run(s *Session, steps []Step) (*Answers, error) {
	for _, step := range steps {
		if err := step.Run(s); err != nil {
			if errors.Is(err, ErrCancelled) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return &s.Answers, nil
}

// Steps returns the canonical step sequence.
func Steps() []Step {
	return []Step{
		{"welcome", stepWelcome},
		{"choose-media-server", stepMediaServer},
		{"choose-request-manager", stepRequestManager},
		{"choose-download-method", stepDownloadMethod},
		{"choose-downloader", stepDownloader},
		{"choose-gateway", stepGateway},
		{"choose-dashboard", stepDashboard},
		{"choose-extras", stepExtras},
		{"configure-vpn", stepVPN},
		{"detect-transcoding", stepTranscoding},
		{"set-identity", stepIdentity},
		{"confirm-summary", stepSummary},
	}
}
