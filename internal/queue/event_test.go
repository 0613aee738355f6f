package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/branch-deploy-status/internal/deployment"
)

func TestNewDeploymentStartedEvent(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	ev := NewDeploymentStartedEvent(deployment.NewIdentity("main"), 3000, at)

	assert.Equal(t, "1.0.0", ev.Version)
	assert.Equal(t, "main", ev.Branch)
	assert.Equal(t, "production", ev.Environment)
	assert.Equal(t, 3000, ev.Port)
	assert.NotEmpty(t, ev.Hostname)
	assert.Equal(t, "2025-01-02T03:04:05Z", ev.StartedAt)

	bs, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"started_at":"2025-01-02T03:04:05Z"`)
}
