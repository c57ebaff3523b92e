package db

import (
	"context"

	types "github.com/matkb/matkb/pkg/domain"
)

type TrainingInterface interface {
	// Register a new training session, starting in SessionWaiting.
	//
	// Args
	//
	// - context.Context
	//
	// - TrainingSessionParam: specification of the session
	//
	// Return
	//
	// - int: id of the registered session
	//
	// - error: ErrInvalidSession when the param does not validate.
	Register(context.Context, types.TrainingSessionParam) (int, error)

	// Get retrieves one session by id.
	//
	// Return: error: ErrSessionNotFound.
	Get(ctx context.Context, id int) (types.TrainingSession, error)

	// Find retrieves all sessions, newest first.
	Find(context.Context) ([]types.TrainingSession, error)

	// UpdateStatus records the status a trainer was last observed in.
	//
	// Terminal sessions stay terminal; updating one is refused with
	// ErrInvalidSession.
	UpdateStatus(ctx context.Context, id int, status types.SessionStatus) error

	// Delete removes a session record.
	//
	// Return: error: ErrSessionNotFound.
	Delete(ctx context.Context, id int) error
}
