package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-containerregistry/pkg/name"
)

// SessionStatus is the last status a training session was observed in.
type SessionStatus string

const (
	// This session is registered but no trainer has reported yet.
	SessionWaiting SessionStatus = "waiting"

	// The trainer is actively training.
	SessionTraining SessionStatus = "training"

	// The trainer is paused by an operator.
	SessionPaused SessionStatus = "paused"

	// The trainer finished, or was stopped by an operator.
	SessionCompleted SessionStatus = "completed"

	// The trainer reported an error.
	SessionErrored SessionStatus = "errored"
)

func (s SessionStatus) String() string {
	return string(s)
}

// Terminal tells whether the session will not report any further progress.
func (s SessionStatus) Terminal() bool {
	return s == SessionCompleted || s == SessionErrored
}

func AsSessionStatus(status string) (SessionStatus, error) {
	switch status {
	case string(SessionWaiting):
		return SessionWaiting, nil
	case string(SessionTraining):
		return SessionTraining, nil
	case string(SessionPaused):
		return SessionPaused, nil
	case string(SessionCompleted):
		return SessionCompleted, nil
	case string(SessionErrored):
		return SessionErrored, nil
	default:
		return "", fmt.Errorf("%w: unknown session status: %s", ErrInvalidSession, status)
	}
}

// TrainingSession is the registry record of one model-training run.
type TrainingSession struct {
	Id        int
	ModelName string

	// Image is the trainer container image, normalized to a fully
	// qualified reference (registry/repository:tag).
	Image string

	// ServerURL is where the trainer serves its telemetry channel.
	ServerURL string

	Status    SessionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s TrainingSession) Equal(o TrainingSession) bool {
	return s.Id == o.Id &&
		s.ModelName == o.ModelName &&
		s.Image == o.Image &&
		s.ServerURL == o.ServerURL &&
		s.Status == o.Status &&
		s.CreatedAt.Equal(o.CreatedAt) &&
		s.UpdatedAt.Equal(o.UpdatedAt)
}

// TrainingSessionParam is what a caller specifies to register a session.
type TrainingSessionParam struct {
	ModelName string
	Image     string
	ServerURL string
}

var (
	ErrInvalidSession  = errors.New("invalid training session")
	ErrSessionNotFound = errors.New("training session not found")
)

// Validate normalizes the param or reports ErrInvalidSession.
//
// The trainer image is parsed as a container image reference and
// normalized; the server URL must be absolute with a ws/wss scheme.
func (p TrainingSessionParam) Validate() (TrainingSessionParam, error) {
	p.ModelName = strings.TrimSpace(p.ModelName)
	if p.ModelName == "" {
		return p, fmt.Errorf("%w: model name is required", ErrInvalidSession)
	}

	ref, err := name.ParseReference(p.Image, name.WithDefaultTag("latest"))
	if err != nil {
		return p, fmt.Errorf("%w: trainer image: %s", ErrInvalidSession, err)
	}
	p.Image = ref.Name()

	u, err := url.Parse(p.ServerURL)
	if err != nil || u.Host == "" {
		return p, fmt.Errorf("%w: server url is not absolute: %s", ErrInvalidSession, p.ServerURL)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return p, fmt.Errorf("%w: server url scheme should be ws or wss: %s", ErrInvalidSession, p.ServerURL)
	}

	return p, nil
}
