package backend

import (
	"fmt"
	"time"
)

type Marshalled[S any] interface {
	trySeal(string) S
}

// seal marshalled object.
//
// this function CAN CAUSE PANIC if misconfiguration is found.
//
// All types named `pkg/configs/backend.XxxMarshall` are `Marshalled[*Xxx]` .
func TrySeal[S any](conf Marshalled[S]) S {
	return conf.trySeal("(root)")
}

type BackendConfigMarshall struct {
	Port    int32                       `yaml:"port"`
	Cluster *MatkbClusterConfigMarshall `yaml:"cluster"`
}

var _ Marshalled[*BackendConfig] = &BackendConfigMarshall{}

func (b *BackendConfigMarshall) trySeal(path string) *BackendConfig {
	return &BackendConfig{
		port:    required(b.Port, path+".port"),
		cluster: nonnil(b.Cluster, path+".cluster").trySeal(path + ".cluster"),
	}
}

// Configuration of the matkb deployment.
//
// This type is marshalling value and mutable.
// Consider to use immutable version, `MatkbClusterConfig`.
// You can get `MatkbClusterConfig` instance with `TrySeal()`.
type MatkbClusterConfigMarshall struct {
	Namespace string                   `yaml:"namespace"`
	Database  string                   `yaml:"database"`
	Flux      *FluxConfigMarshall      `yaml:"flux,omitempty"`
	Telemetry *TelemetryConfigMarshall `yaml:"telemetry,omitempty"`
}

func (km *MatkbClusterConfigMarshall) trySeal(path string) *MatkbClusterConfig {
	flux := km.Flux
	if flux == nil {
		flux = &FluxConfigMarshall{}
	}
	telemetry := km.Telemetry
	if telemetry == nil {
		telemetry = &TelemetryConfigMarshall{}
	}
	return &MatkbClusterConfig{
		namespace: required(km.Namespace, path+".namespace"),
		database:  required(km.Database, path+".database"),
		flux:      flux.trySeal(path + ".flux"),
		telemetry: telemetry.trySeal(path + ".telemetry"),
	}
}

type FluxConfigMarshall struct {
	PollInterval string `yaml:"pollInterval,omitempty"`
}

func (fm *FluxConfigMarshall) trySeal(path string) *FluxConfig {
	interval := 30 * time.Second
	if fm.PollInterval != "" {
		parsed, err := time.ParseDuration(fm.PollInterval)
		if err != nil {
			panic(fmt.Errorf("%s.pollInterval can not be parsed: %w", path, err))
		}
		if parsed <= 0 {
			panic(path + ".pollInterval should be positive")
		}
		interval = parsed
	}
	return &FluxConfig{pollInterval: interval}
}

type TelemetryConfigMarshall struct {
	Origin string `yaml:"origin,omitempty"`
}

func (tm *TelemetryConfigMarshall) trySeal(string) *TelemetryConfig {
	return &TelemetryConfig{origin: tm.Origin}
}

func nonnil[T any](v *T, path string) *T {
	if v == nil {
		panic(path + " is required")
	}
	return v
}

func required[T comparable](v T, path string) T {
	if v == *new(T) {
		panic(path + " is required")
	}
	return v
}
