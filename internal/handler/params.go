package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/koperasindo/koperasi-api/internal/repository"
)

// listParams reads the shared listing query parameters. Defaults: page 1,
// limit 10.
func listParams(c *gin.Context) repository.ListParams {
	p := repository.ListParams{
		Page:   intQuery(c, "page"),
		Limit:  intQuery(c, "limit"),
		Search: c.Query("search"),
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

// intQuery reads an integer query parameter, 0 when absent or malformed.
func intQuery(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

// idParam reads the :id path parameter. ok is false for non-numeric ids.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
