package handler

import (
	"context"
	"net/http"

	"biolink/internal/model"
	"biolink/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedirectHandler records bio-link visits and forwards the visitor
type RedirectHandler struct {
	tracker     service.TrackingServiceInterface
	redirectURL string
	async       bool
}

// NewRedirectHandler creates a new RedirectHandler.
// With async set, visits are recorded after the redirect has been written.
func NewRedirectHandler(tracker service.TrackingServiceInterface, redirectURL string, async bool) *RedirectHandler {
	return &RedirectHandler{
		tracker:     tracker,
		redirectURL: redirectURL,
		async:       async,
	}
}

// Redirect handles GET /
// @Summary Track a visit and redirect
// @Description Records the visit and redirects to the configured destination
// @Tags tracker
// @Success 302
// @Router / [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	req := service.NewVisitRequest(c.Request.Header, c.Request.RemoteAddr)

	if h.async {
		ctx := context.WithoutCancel(c.Request.Context())
		go h.track(ctx, req)
	} else {
		h.track(c.Request.Context(), req)
	}

	c.Redirect(http.StatusFound, h.redirectURL)
}

// RedirectFallback answers with the plain redirect; used as the recovery fallback on GET /
func (h *RedirectHandler) RedirectFallback(c *gin.Context) {
	c.Redirect(http.StatusFound, h.redirectURL)
}

// track never lets a tracking failure reach the visitor
func (h *RedirectHandler) track(ctx context.Context, req *model.VisitRequest) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("error", r).Msg("Panic while tracking visit")
		}
	}()

	if _, err := h.tracker.Track(ctx, req); err != nil {
		log.Debug().Err(err).Msg("Visit not recorded")
	}
}
