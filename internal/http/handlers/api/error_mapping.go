package api

import (
	"errors"
	"net/http"

	"github.com/northcart/northcart/internal/http/response"
	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a service sentinel to an HTTP response. A rule
// with verbatim set responds with the wrapped error's full text, keeping
// the per-product detail of validation failures.
type mappedHandlerError struct {
	target   error
	status   int
	verbatim bool
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError) {
	for _, rule := range rules {
		if !errors.Is(err, rule.target) {
			continue
		}
		msg := rule.target.Error()
		if rule.verbatim {
			msg = err.Error()
		}
		switch rule.status {
		case http.StatusNotFound:
			response.NotFound(c, msg)
		case http.StatusForbidden:
			response.Forbidden(c, msg)
		case http.StatusConflict:
			response.Conflict(c, msg)
		default:
			response.BadRequest(c, msg)
		}
		return
	}
	logger.Errorw("request_failed", "path", c.FullPath(), "error", err)
	response.InternalError(c)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, status: http.StatusBadRequest},
	{target: service.ErrCartNotFound, status: http.StatusNotFound},
	{target: service.ErrInvalidCartItem, status: http.StatusBadRequest},
	{target: service.ErrProductNotFound, status: http.StatusNotFound},
	{target: service.ErrProductInactive, status: http.StatusBadRequest},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, status: http.StatusNotFound},
	{target: service.ErrCartNotFound, status: http.StatusNotFound},
	{target: service.ErrItemNotFound, status: http.StatusNotFound},
	{target: service.ErrInvalidCartItem, status: http.StatusBadRequest},
	{target: service.ErrInvalidPrice, status: http.StatusBadRequest, verbatim: true},
	{target: service.ErrInvalidQuantity, status: http.StatusBadRequest, verbatim: true},
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, status: http.StatusNotFound},
	{target: service.ErrInvalidProductInput, status: http.StatusBadRequest},
	{target: service.ErrInvalidPrice, status: http.StatusBadRequest, verbatim: true},
	{target: service.ErrInvalidQuantity, status: http.StatusBadRequest, verbatim: true},
	{target: service.ErrSlugTaken, status: http.StatusConflict},
	{target: service.ErrBrandNotFound, status: http.StatusNotFound},
}

var brandErrorRules = []mappedHandlerError{
	{target: service.ErrBrandNotFound, status: http.StatusNotFound},
	{target: service.ErrSlugTaken, status: http.StatusConflict},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrReviewNotFound, status: http.StatusNotFound},
	{target: service.ErrProductNotFound, status: http.StatusNotFound},
	{target: service.ErrInvalidRating, status: http.StatusBadRequest},
	{target: service.ErrNotResourceOwner, status: http.StatusForbidden},
}

var wishlistErrorRules = []mappedHandlerError{
	{target: service.ErrWishlistInvalid, status: http.StatusBadRequest},
	{target: service.ErrProductNotFound, status: http.StatusNotFound},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, status: http.StatusBadRequest},
	{target: service.ErrEmailExists, status: http.StatusBadRequest},
	{target: service.ErrInvalidCredential, status: http.StatusBadRequest},
	{target: service.ErrPasswordTooWeak, status: http.StatusBadRequest, verbatim: true},
}
