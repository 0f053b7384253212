package api

import "github.com/northcart/northcart/internal/provider"

// Handler serves the storefront and admin JSON API.
type Handler struct {
	*provider.Container
}

// New creates the API handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
