package configurator

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/filterlab/cmd/web/session"
	"thirdcoast.systems/filterlab/pkg/filters"
)

// StateResponse is the JSON view of a session's filter settings.
type StateResponse struct {
	Config     filters.Config `json:"config"`
	Expression string         `json:"expression"`
	Display    string         `json:"display"`
}

// HandleState returns the session's settings and both projections as JSON.
func HandleState(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg := loadSession(c, sm)
		return c.JSON(http.StatusOK, StateResponse{
			Config:     cfg,
			Expression: filters.ToFilterExpression(cfg),
			Display:    filters.ToDisplayRepresentation(cfg),
		})
	}
}
