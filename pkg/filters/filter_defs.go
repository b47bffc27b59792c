package filters

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tab groups sliders into the two panels of the configurator.
type Tab string

const (
	TabAdjustments Tab = "adjustments"
	TabFilters     Tab = "filters"
)

// Tabs returns the panels in display order.
func Tabs() []Tab {
	return []Tab{TabAdjustments, TabFilters}
}

// Label returns the tab heading.
func (t Tab) Label() string {
	return title(string(t))
}

// Icon returns the Font-Awesome icon name shown on the tab trigger.
func (t Tab) Icon() string {
	switch t {
	case TabAdjustments:
		return "sliders"
	case TabFilters:
		return "palette"
	default:
		return "sliders"
	}
}

// ParamDef describes the slider bound to one parameter.
type ParamDef struct {
	Param   Parameter
	Key     string
	Label   string
	Icon    string
	Tab     Tab
	Domain  Domain
	Step    int
	Default int
}

// title upper-cases the first letter of s. A Caser is stateful, so each call
// gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Parameters returns all parameters in canonical order.
func Parameters() []Parameter {
	return []Parameter{Brightness, Contrast, Saturation, Blur, Sepia}
}

// Definition returns the slider definition for p.
func Definition(p Parameter) ParamDef {
	return ParamDef{
		Param:   p,
		Key:     p.String(),
		Label:   title(p.String()),
		Icon:    iconForParameter(p),
		Tab:     tabForParameter(p),
		Domain:  DomainOf(p),
		Step:    1,
		Default: DefaultConfig().Get(p),
	}
}

// Definitions returns every slider definition in canonical order.
func Definitions() []ParamDef {
	params := Parameters()
	defs := make([]ParamDef, 0, len(params))
	for _, p := range params {
		defs = append(defs, Definition(p))
	}
	return defs
}

// ParamsForTab returns the slider definitions shown on tab t.
func ParamsForTab(t Tab) []ParamDef {
	var defs []ParamDef
	for _, d := range Definitions() {
		if d.Tab == t {
			defs = append(defs, d)
		}
	}
	return defs
}

func tabForParameter(p Parameter) Tab {
	switch p {
	case Blur, Sepia:
		return TabFilters
	default:
		return TabAdjustments
	}
}

func iconForParameter(p Parameter) string {
	switch p {
	case Brightness:
		return "sun"
	case Contrast:
		return "circle-half-stroke"
	case Saturation:
		return "palette"
	case Blur:
		return "droplet"
	case Sepia:
		return "image"
	default:
		return "sliders"
	}
}

// ---------------------------------------------------------------------------
// Template helpers
// ---------------------------------------------------------------------------

// FmtNum formats a float for use in HTML attributes (no trailing zeros).
func FmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// UpdateActionURL returns the SSE endpoint that applies a slider change.
func UpdateActionURL(p Parameter) string {
	return fmt.Sprintf("/api/filters/%s", p.String())
}

// ResetActionURL is the SSE endpoint that restores the defaults.
const ResetActionURL = "/api/filters/reset"

// SliderInputExpr returns the DataStar expression for a slider input event.
// Only the slider's own signal is sent; the server answers with the clamped
// value and the re-rendered preview.
func SliderInputExpr(p Parameter) string {
	return fmt.Sprintf(
		"@post('%s',{filterSignals:{include:/^%s$/}})",
		UpdateActionURL(p), p.String(),
	)
}

// ResetExpr returns the DataStar expression for the reset button.
func ResetExpr() string {
	return fmt.Sprintf("@post('%s',{filterSignals:{include:/^$/}})", ResetActionURL)
}

// SliderReadoutExpr returns a data-text expression for the value readout
// next to a slider.
func SliderReadoutExpr(p Parameter) string {
	return fmt.Sprintf("$%s", p.String())
}
