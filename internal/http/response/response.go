package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenericErrorMessage is the fallback body for unexpected failures.
const GenericErrorMessage = "Your request could not be processed. Please try again."

// OK writes a 200 with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// BadRequest writes a 400 with an error field.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, attachRequestID(c, gin.H{"error": msg}))
}

// Unauthorized writes a 401 with an error field.
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, attachRequestID(c, gin.H{"error": msg}))
}

// Forbidden writes a 403 with an error field.
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, attachRequestID(c, gin.H{"error": msg}))
}

// NotFound writes a 404 with a message field.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, attachRequestID(c, gin.H{"message": msg}))
}

// Conflict writes a 409 with an error field.
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, attachRequestID(c, gin.H{"error": msg}))
}

// TooManyRequests writes a 429 with an error field.
func TooManyRequests(c *gin.Context, msg string) {
	c.JSON(http.StatusTooManyRequests, attachRequestID(c, gin.H{"error": msg}))
}

// InternalError writes a 400 with the generic fallback message, matching
// the storefront contract for unexpected failures.
func InternalError(c *gin.Context) {
	BadRequest(c, GenericErrorMessage)
}

func attachRequestID(c *gin.Context, body gin.H) gin.H {
	if c == nil {
		return body
	}
	value, ok := c.Get("request_id")
	if !ok {
		return body
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return body
	}
	if _, exists := body["request_id"]; !exists {
		body["request_id"] = id
	}
	return body
}
