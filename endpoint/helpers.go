package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/clinicore/hpms/middleware"
	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// helper: ensure DB is available in context or respond with server error
func ensureDB(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

// helper: get and validate numeric id param from path
func getIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid id",
			Err: fmt.Errorf("id must be a positive integer, got %q", raw),
		})
		return 0, false
	}
	return uint(id), true
}

// helper: pick the (field, q) search pair off the query string
func getSearchParams(c *gin.Context) (field, query string) {
	return c.Query("field"), c.Query("q")
}

// respondError maps model error kinds onto the API response helpers:
// ErrNotFound -> 404, ErrValidation -> 400, anything else -> 500.
func respondError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: msg, Err: err})
	case errors.Is(err, model.ErrValidation):
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: msg, Err: err})
	}
}
