package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"mimarfolio/internal/errors"
)

// respondError maps a domain error onto an HTTP response. Unknown errors are
// logged server-side and leave the caller with a generic 500.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// parseID parses the :id route parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid id",
		Code:  "INVALID_ID",
	})
}

// boolQuery returns a pointer to true when the query parameter equals "true",
// matching the public filter convention (?featured=true, ?active=true,
// ?read=false). Any other value leaves the filter unset.
func boolQuery(c echo.Context, name, want string) *bool {
	if c.QueryParam(name) != want {
		return nil
	}
	v := want == "true"
	return &v
}

// limitQuery parses an optional positive result-count limit; malformed values
// are ignored.
func limitQuery(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
