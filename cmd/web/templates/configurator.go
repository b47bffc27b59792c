// Package templates holds the templ components rendered by the web handlers.
// Run `templ generate` after editing a .templ file.
package templates

import (
	"encoding/json"

	"github.com/a-h/templ"
	"thirdcoast.systems/filterlab/pkg/filters"
)

const (
	PreviewImageID = "preview-image"
	SettingsDumpID = "settings-dump"
)

// Signals returns the initial datastar signal set for the page: one signal per
// parameter plus the local-only _tab signal.
func Signals(cfg filters.Config) string {
	signals := map[string]any{"_tab": string(filters.TabAdjustments)}
	for _, p := range filters.Parameters() {
		signals[p.String()] = cfg.Get(p)
	}
	b, _ := json.Marshal(signals)
	return string(b)
}

func previewAttrs(cfg filters.Config, imageURL string) templ.Attributes {
	return templ.Attributes{
		"src":   imageURL,
		"style": "filter: " + filters.ToFilterExpression(cfg),
	}
}

func tabActiveExpr(tab filters.Tab) string {
	return "$_tab === '" + string(tab) + "'"
}

func tabSelectExpr(tab filters.Tab) string {
	return "$_tab = '" + string(tab) + "'"
}
