package backend

import (
	"time"
)

type BackendConfig struct {
	port    int32
	cluster *MatkbClusterConfig
}

func (c *BackendConfig) Port() int32 {
	return c.port
}

func (c *BackendConfig) Cluster() *MatkbClusterConfig {
	return c.cluster
}

// Configuration for the matkb deployment.
//
// to get `MatkbClusterConfig` instance, use `MatkbClusterConfigMarshall.TrySeal()` .
type MatkbClusterConfig struct {
	namespace string
	database  string
	flux      *FluxConfig
	telemetry *TelemetryConfig
}

// k8s namespace where matkb is deploied.
func (k *MatkbClusterConfig) Namespace() string {
	return k.namespace
}

// Connection string for database.
func (k *MatkbClusterConfig) Database() string {
	return k.database
}

// Configuration for the GitOps status monitor.
func (k *MatkbClusterConfig) Flux() *FluxConfig {
	return k.flux
}

// Configuration for trainer telemetry channels.
func (k *MatkbClusterConfig) Telemetry() *TelemetryConfig {
	return k.telemetry
}

type FluxConfig struct {
	pollInterval time.Duration
}

// How often the cluster is polled for rollout status.
func (f *FluxConfig) PollInterval() time.Duration {
	return f.pollInterval
}

type TelemetryConfig struct {
	origin string
}

// Origin header sent when dialing trainers. Empty means none.
func (t *TelemetryConfig) Origin() string {
	return t.origin
}
