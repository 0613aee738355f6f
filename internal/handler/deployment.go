package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/branch-deploy-status/internal/deployment"
)

// DeploymentHandler serves the routes that describe the running deployment.
type DeploymentHandler struct {
	Identity deployment.Identity
}

// NewDeploymentHandler constructs a DeploymentHandler for the given identity.
func NewDeploymentHandler(id deployment.Identity) *DeploymentHandler {
	return &DeploymentHandler{Identity: id}
}

// VersionResponse is the /version payload.
type VersionResponse struct {
	Version     string `json:"version"`
	Branch      string `json:"branch"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// Version reports application version, branch and derived environment.
func (h *DeploymentHandler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, VersionResponse{
		Version:     h.Identity.Version(),
		Branch:      h.Identity.Branch,
		Environment: h.Identity.Environment().String(),
		Timestamp:   timestamp(),
	})
}

// statusPage is the data passed to the status page template.
type statusPage struct {
	Branch      string
	Version     string
	Environment string
	Production  bool
}

// Home renders the human-readable status page.
func (h *DeploymentHandler) Home(c echo.Context) error {
	env := h.Identity.Environment()
	return c.Render(http.StatusOK, StatusTemplate, statusPage{
		Branch:      h.Identity.Branch,
		Version:     h.Identity.Version(),
		Environment: env.Label(),
		Production:  env == deployment.Production,
	})
}
