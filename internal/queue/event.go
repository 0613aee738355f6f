// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"os"
	"time"

	"github.com/iliyamo/branch-deploy-status/internal/deployment"
)

// DeploymentStartedEvent is published once when an instance starts serving.
// Consumers can track which branch each host is running without polling
// /version.
type DeploymentStartedEvent struct {
	Version     string `json:"version"`
	Branch      string `json:"branch"`
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Hostname    string `json:"hostname"`
	StartedAt   string `json:"started_at"`
}

// NewDeploymentStartedEvent fills the event from the identity of this process.
func NewDeploymentStartedEvent(id deployment.Identity, port int, at time.Time) DeploymentStartedEvent {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return DeploymentStartedEvent{
		Version:     id.Version(),
		Branch:      id.Branch,
		Environment: id.Environment().String(),
		Port:        port,
		Hostname:    host,
		StartedAt:   at.UTC().Format(time.RFC3339),
	}
}
