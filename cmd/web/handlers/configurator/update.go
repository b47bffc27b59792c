package configurator

import (
	"encoding/json"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"thirdcoast.systems/filterlab/cmd/web/handlers/common"
	"thirdcoast.systems/filterlab/cmd/web/session"
	"thirdcoast.systems/filterlab/cmd/web/templates"
	"thirdcoast.systems/filterlab/pkg/filters"
)

// HandleUpdate applies one slider change to the session's settings and
// patches the clamped signal, the preview and the settings dump back.
//
// The slider posts only its own signal (filterSignals include /^param$/).
func HandleUpdate(sm *session.Manager, imageURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		param, err := common.RequireParameterParam(c, "param")
		if err != nil {
			return err
		}

		// IMPORTANT: ReadSignals MUST happen BEFORE NewSSE.
		// NewSSE flushes response headers which closes the request body.
		signals := map[string]any{}
		if err := datastar.ReadSignals(c.Request(), &signals); err != nil {
			slog.Warn("failed to read filter signals", "param", param.String(), "error", err)
			return common.ErrBadRequest("invalid signals")
		}
		value, err := common.SignalInt(signals, param.String())
		if err != nil {
			return common.ErrBadRequest(param.String() + ": " + err.Error())
		}

		loaded, _ := sm.Load(c.Request())
		store := filters.NewStoreFrom(loaded)
		cfg, err := store.Update(param.String(), value)
		if err != nil {
			return common.ErrBadRequest(err.Error())
		}

		// The cookie must be written before the SSE stream flushes headers.
		if err := sm.Save(c.Response().Writer, c.Request(), cfg); err != nil {
			slog.Error("failed to save filter session", "error", err)
			return common.ErrInternal("failed to save settings")
		}

		slog.Debug("filter updated",
			"param", param.String(),
			"requested", value,
			"stored", cfg.Get(param),
			"session_created", sm.CreatedAt(c.Request()),
		)

		return patchState(c, cfg, imageURL, param)
	}
}

// patchState streams the current settings to the page. Only the signals named
// in only are patched; with none given, all five are.
func patchState(c echo.Context, cfg filters.Config, imageURL string, only ...filters.Parameter) error {
	common.SetSSEHeaders(c)
	sse := datastar.NewSSE(c.Response().Writer, c.Request())

	params := only
	if len(params) == 0 {
		params = filters.Parameters()
	}
	patch := make(map[string]int, len(params))
	for _, p := range params {
		patch[p.String()] = cfg.Get(p)
	}
	signalsJSON, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	_ = sse.PatchSignals(signalsJSON)

	_ = sse.PatchElementTempl(
		templates.PreviewImage(cfg, imageURL),
		datastar.WithSelectorID(templates.PreviewImageID),
	)
	_ = sse.PatchElementTempl(
		templates.SettingsDump(cfg),
		datastar.WithSelectorID(templates.SettingsDumpID),
	)
	return nil
}
