package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-registry/internal/query"
)

// ErrorMessages aggregates every violated rule of a request body so clients
// see all problems at once instead of fixing them one at a time.
type ErrorMessages struct {
	Messages []string `json:"messages"`
}

func (e *ErrorMessages) add(msg string) { e.Messages = append(e.Messages, msg) }

var errBadPage = errors.New("invalid page")

// pageFromQuery maps the optional ?page= parameter onto the explicit
// PageRequest variant: absent means a full unpaginated scan, a positive
// integer selects that window, anything else is a client error.
func pageFromQuery(c echo.Context) (query.PageRequest, error) {
	raw := strings.TrimSpace(c.QueryParam("page"))
	if raw == "" {
		return query.NoPage(), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return query.NoPage(), errBadPage
	}
	return query.PageOf(n), nil
}
