package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PageParams carries cursor pagination parameters extracted from a request.
type PageParams struct {
	Limit  int
	Cursor string
}

// GetPageParams reads "limit" and "cursor" query parameters. A zero limit is
// left for the repository layer to default.
func GetPageParams(c echo.Context) PageParams {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 || limit > 100 {
		limit = 0
	}

	return PageParams{
		Limit:  limit,
		Cursor: c.QueryParam("cursor"),
	}
}
