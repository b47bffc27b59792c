package configurator

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/filterlab/cmd/web/handlers/common"
	"thirdcoast.systems/filterlab/cmd/web/session"
	"thirdcoast.systems/filterlab/pkg/filters"
)

func HandleReset(sm *session.Manager, imageURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Save below overwrites an undecodable cookie, so the load error is moot.
		loaded, _ := sm.Load(c.Request())
		store := filters.NewStoreFrom(loaded)
		cfg := store.Reset()
		if err := sm.Save(c.Response().Writer, c.Request(), cfg); err != nil {
			slog.Error("failed to save filter session", "error", err)
			return common.ErrInternal("failed to save settings")
		}
		return patchState(c, cfg, imageURL)
	}
}
