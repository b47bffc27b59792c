// Package configurator serves the image filter preview page and the
// datastar endpoints its sliders post to.
package configurator

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/filterlab/cmd/web/session"
	"thirdcoast.systems/filterlab/cmd/web/templates"
	"thirdcoast.systems/filterlab/pkg/filters"
)

func HandlePage(sm *session.Manager, imageURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg := loadSession(c, sm)
		return templates.ConfiguratorPage(cfg, imageURL).Render(c.Request().Context(), c.Response())
	}
}

// loadSession reads the session's settings for handlers that do not save
// them. An undecodable cookie is dropped so later requests start clean.
func loadSession(c echo.Context, sm *session.Manager) filters.Config {
	cfg, err := sm.Load(c.Request())
	if err != nil {
		if clearErr := sm.Clear(c.Response().Writer, c.Request()); clearErr != nil {
			slog.Error("failed to clear filter session", "error", clearErr)
		}
	}
	return cfg
}
