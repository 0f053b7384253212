package api

import (
	"strconv"

	"github.com/northcart/northcart/internal/constants"
	"github.com/northcart/northcart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getUserID reads the authenticated user id the middleware stored on the
// context, responding on failure.
func getUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "Unauthorized")
		return 0, false
	}
	uid, ok := value.(uint)
	if !ok || uid == 0 {
		response.Unauthorized(c, "Unauthorized")
		return 0, false
	}
	return uid, true
}

// isAdmin reports whether the middleware marked the request as admin.
func isAdmin(c *gin.Context) bool {
	value, exists := c.Get("user_role")
	if !exists {
		return false
	}
	role, ok := value.(string)
	return ok && role == constants.RoleAdmin
}

// parseIDParam parses a numeric path parameter, responding 400 with the
// given message on malformed input.
func parseIDParam(c *gin.Context, name, invalidMessage string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, invalidMessage)
		return 0, false
	}
	return uint(id), true
}

// parsePaging reads page/limit query values with the storefront defaults.
func parsePaging(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	return page, limit
}
