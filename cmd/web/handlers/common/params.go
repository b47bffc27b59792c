package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/filterlab/pkg/filters"
)

// RequireParameterParam extracts a filter parameter route parameter or
// returns a 400 error carrying the InvalidParameterError text.
func RequireParameterParam(c echo.Context, param string) (filters.Parameter, error) {
	p, err := filters.ParseParameter(c.Param(param))
	if err != nil {
		return p, echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return p, nil
}
