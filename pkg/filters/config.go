// Package filters holds the image filter state: five clamped integer
// parameters and their projections into a CSS filter expression and a
// human-readable settings dump.
package filters

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parameter identifies one of the five adjustable filter fields.
type Parameter int

const (
	Brightness Parameter = iota
	Contrast
	Saturation
	Blur
	Sepia
)

var parameterNames = [...]string{
	Brightness: "brightness",
	Contrast:   "contrast",
	Saturation: "saturation",
	Blur:       "blur",
	Sepia:      "sepia",
}

// String returns the wire name of the parameter ("brightness", "blur", ...).
func (p Parameter) String() string {
	if p < 0 || int(p) >= len(parameterNames) {
		return "Parameter(" + strconv.Itoa(int(p)) + ")"
	}
	return parameterNames[p]
}

// Valid reports whether p is one of the five known parameters.
func (p Parameter) Valid() bool {
	return p >= Brightness && p <= Sepia
}

// ErrInvalidParameter is matched by every *InvalidParameterError.
var ErrInvalidParameter = errors.New("invalid filter parameter")

// InvalidParameterError reports an update naming an unknown field.
type InvalidParameterError struct {
	Name string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid filter parameter %q", e.Name)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// ParseParameter maps a wire name to its Parameter. Matching is exact.
func ParseParameter(name string) (Parameter, error) {
	for i, n := range parameterNames {
		if n == name {
			return Parameter(i), nil
		}
	}
	return 0, &InvalidParameterError{Name: name}
}

// Domain is a closed integer interval.
type Domain struct {
	Min int
	Max int
}

// Clamp constrains v to [d.Min, d.Max].
func (d Domain) Clamp(v int) int {
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Contains reports whether v lies inside the domain.
func (d Domain) Contains(v int) bool {
	return v >= d.Min && v <= d.Max
}

// DomainOf returns the permitted interval for p.
func DomainOf(p Parameter) Domain {
	switch p {
	case Brightness, Contrast, Saturation:
		return Domain{Min: 0, Max: 200}
	case Blur:
		return Domain{Min: 0, Max: 20}
	case Sepia:
		return Domain{Min: 0, Max: 100}
	default:
		return Domain{}
	}
}

// Config is an immutable snapshot of the filter settings. Field order is the
// canonical order used by both projections.
type Config struct {
	Brightness int `json:"brightness"`
	Contrast   int `json:"contrast"`
	Saturation int `json:"saturation"`
	Blur       int `json:"blur"`
	Sepia      int `json:"sepia"`
}

// DefaultConfig returns the settings a fresh session starts with.
func DefaultConfig() Config {
	return Config{
		Brightness: 100,
		Contrast:   100,
		Saturation: 100,
		Blur:       0,
		Sepia:      0,
	}
}

// Get returns the value of field p, or 0 for an unknown parameter.
func (c Config) Get(p Parameter) int {
	switch p {
	case Brightness:
		return c.Brightness
	case Contrast:
		return c.Contrast
	case Saturation:
		return c.Saturation
	case Blur:
		return c.Blur
	case Sepia:
		return c.Sepia
	default:
		return 0
	}
}

// With returns a copy of c with field p set to value clamped into its domain.
func (c Config) With(p Parameter, value int) (Config, error) {
	if !p.Valid() {
		return c, &InvalidParameterError{Name: p.String()}
	}
	value = DomainOf(p).Clamp(value)
	switch p {
	case Brightness:
		c.Brightness = value
	case Contrast:
		c.Contrast = value
	case Saturation:
		c.Saturation = value
	case Blur:
		c.Blur = value
	case Sepia:
		c.Sepia = value
	}
	return c, nil
}

// Clamped returns c with every field forced into its domain.
func (c Config) Clamped() Config {
	for _, p := range Parameters() {
		c, _ = c.With(p, c.Get(p))
	}
	return c
}

// Update applies a named parameter change. On error cfg is returned as is.
func Update(cfg Config, name string, value int) (Config, error) {
	p, err := ParseParameter(name)
	if err != nil {
		return cfg, err
	}
	return cfg.With(p, value)
}

// ToFilterExpression renders cfg as a CSS filter chain. Blur is stored in
// tenths of a pixel.
func ToFilterExpression(cfg Config) string {
	var b strings.Builder
	b.WriteString("brightness(")
	b.WriteString(strconv.Itoa(cfg.Brightness))
	b.WriteString("%) contrast(")
	b.WriteString(strconv.Itoa(cfg.Contrast))
	b.WriteString("%) saturate(")
	b.WriteString(strconv.Itoa(cfg.Saturation))
	b.WriteString("%) blur(")
	b.WriteString(FmtNum(float64(cfg.Blur) / 10))
	b.WriteString("px) sepia(")
	b.WriteString(strconv.Itoa(cfg.Sepia))
	b.WriteString("%)")
	return b.String()
}

// ToDisplayRepresentation renders cfg as two-space indented JSON in
// canonical field order.
func ToDisplayRepresentation(cfg Config) string {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		// Config is five ints; marshalling cannot fail.
		return fmt.Sprintf("%+v", cfg)
	}
	return string(out)
}
