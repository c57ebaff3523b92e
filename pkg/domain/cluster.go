package domain

import (
	"errors"
	"time"
)

// PodSummary is the row shown in the admin pod table.
type PodSummary struct {
	Name  string
	Phase string

	// ReadyContainers of TotalContainers are passing their readiness checks.
	ReadyContainers int
	TotalContainers int

	Restarts  int
	Node      string
	StartedAt *time.Time
}

func (p PodSummary) Equal(o PodSummary) bool {
	startEq := (p.StartedAt == nil && o.StartedAt == nil) ||
		(p.StartedAt != nil && o.StartedAt != nil && p.StartedAt.Equal(*o.StartedAt))

	return p.Name == o.Name &&
		p.Phase == o.Phase &&
		p.ReadyContainers == o.ReadyContainers &&
		p.TotalContainers == o.TotalContainers &&
		p.Restarts == o.Restarts &&
		p.Node == o.Node &&
		startEq
}

// EventSummary is the row shown in the admin event table.
type EventSummary struct {
	Type    string
	Reason  string
	Message string

	// Object is "Kind/name" the event is about.
	Object string

	Count    int
	LastSeen time.Time
}

func (e EventSummary) Equal(o EventSummary) bool {
	return e.Type == o.Type &&
		e.Reason == o.Reason &&
		e.Message == o.Message &&
		e.Object == o.Object &&
		e.Count == o.Count &&
		e.LastSeen.Equal(o.LastSeen)
}

var (
	ErrPodNotFound        = errors.New("pod not found")
	ErrDeploymentNotFound = errors.New("deployment not found")
)
