package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// isoMillis matches the ISO-8601 form used by JavaScript's toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

// now is swapped in tests.
var now = time.Now

func timestamp() string { return now().UTC().Format(isoMillis) }

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health is the liveness probe used by load balancers and deploy pipelines.
// It always answers 200 with a fresh timestamp.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "hello world",
		Timestamp: timestamp(),
	})
}
