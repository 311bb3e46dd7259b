package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/httperr"
)

func parseIDParam(c *gin.Context, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, message)
		return 0, false
	}
	return uint(id), true
}

func parseNamedIDParam(c *gin.Context, name, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, message)
		return 0, false
	}
	return uint(id), true
}

// respondError maps store and business errors to the boundary statuses:
// missing rows become 404, ownership violations 403, every other rule
// violation 400.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, notFoundMessage)
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		switch be.Code {
		case "not_owner":
			httperr.Forbidden(c, be.Error())
		default:
			httperr.BadRequest(c, be.Error())
		}
		return
	}

	httperr.Internal(c, "Internal server error")
}
