// Package training binds registered training sessions to live telemetry
// channels.
package training

import (
	"context"
	"log"
	"sync"

	types "github.com/matkb/matkb/pkg/domain"
	kdb "github.com/matkb/matkb/pkg/domain/training/db"
	"github.com/matkb/matkb/pkg/domain/training/telemetry"
)

// Watcher holds at most one telemetry client per registered session.
//
// Attaching is idempotent so that repeated dashboard visits share a
// channel instead of piling connections on the trainer.
type Watcher struct {
	registry  kdb.TrainingInterface
	newClient func() *telemetry.Client
	logger    *log.Logger

	mu      sync.Mutex
	clients map[int]*telemetry.Client
}

type WatcherOption func(*Watcher) *Watcher

// WithClientFactory replaces how telemetry clients are built, for tests.
func WithClientFactory(f func() *telemetry.Client) WatcherOption {
	return func(w *Watcher) *Watcher {
		w.newClient = f
		return w
	}
}

func WithWatcherLogger(l *log.Logger) WatcherOption {
	return func(w *Watcher) *Watcher {
		w.logger = l
		return w
	}
}

func NewWatcher(registry kdb.TrainingInterface, options ...WatcherOption) *Watcher {
	w := &Watcher{
		registry:  registry,
		newClient: func() *telemetry.Client { return telemetry.New() },
		logger:    log.Default(),
		clients:   map[int]*telemetry.Client{},
	}
	for _, opt := range options {
		w = opt(w)
	}
	return w
}

// Attach opens (or reuses) the telemetry channel of a session.
//
// The session must exist in the registry; its server URL decides where
// to dial. Attaching an already watched session returns the existing
// client untouched, whatever state it is in.
func (w *Watcher) Attach(ctx context.Context, sessionId int) (*telemetry.Client, error) {
	ses, err := w.registry.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if cli, ok := w.clients[sessionId]; ok {
		return cli, nil
	}

	cli := w.newClient()
	cli.Connect(ctx, ses.ServerURL)
	w.clients[sessionId] = cli
	return cli, nil
}

// Get returns the watched client of a session, if any.
func (w *Watcher) Get(sessionId int) (*telemetry.Client, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cli, ok := w.clients[sessionId]
	return cli, ok
}

// Reconnect asks an already watched session to dial again.
//
// This is the manual reconnect path: nothing in this package retries on
// its own.
func (w *Watcher) Reconnect(ctx context.Context, sessionId int) error {
	ses, err := w.registry.Get(ctx, sessionId)
	if err != nil {
		return err
	}

	w.mu.Lock()
	cli, ok := w.clients[sessionId]
	w.mu.Unlock()
	if !ok {
		return types.ErrSessionNotFound
	}

	cli.Connect(ctx, ses.ServerURL)
	return nil
}

// Detach closes the telemetry channel of a session and forgets it.
//
// Detaching a session that is not watched does nothing.
func (w *Watcher) Detach(sessionId int) {
	w.mu.Lock()
	cli, ok := w.clients[sessionId]
	delete(w.clients, sessionId)
	w.mu.Unlock()

	if ok {
		cli.Disconnect()
	}
}

// DetachAll closes every watched channel. Called on daemon shutdown.
func (w *Watcher) DetachAll() {
	w.mu.Lock()
	clients := w.clients
	w.clients = map[int]*telemetry.Client{}
	w.mu.Unlock()

	for _, cli := range clients {
		cli.Disconnect()
	}
}

// FoldStatus writes the trainer status last seen on the telemetry
// channel back into the session registry.
//
// Sessions without a snapshot yet are left as they are. Registry errors
// are logged, not propagated: folding is best effort bookkeeping.
func (w *Watcher) FoldStatus(ctx context.Context, sessionId int) {
	w.mu.Lock()
	cli, ok := w.clients[sessionId]
	w.mu.Unlock()
	if !ok {
		return
	}

	latest := cli.Latest()
	if latest == nil {
		return
	}

	status, ok := asSessionStatus(latest.Status)
	if !ok {
		return
	}
	if err := w.registry.UpdateStatus(ctx, sessionId, status); err != nil {
		w.logger.Printf("fold status of session %d: %s", sessionId, err)
	}
}

func asSessionStatus(st telemetry.TrainerStatus) (types.SessionStatus, bool) {
	switch st {
	case telemetry.StatusTraining:
		return types.SessionTraining, true
	case telemetry.StatusPaused:
		return types.SessionPaused, true
	case telemetry.StatusCompleted:
		return types.SessionCompleted, true
	case telemetry.StatusErrored:
		return types.SessionErrored, true
	}
	return "", false
}
