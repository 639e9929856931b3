package lookup

import (
	"context"
	"net/http"
	"strings"

	directorytransport "whocallsme_backend/internal/directory/transport"
	"whocallsme_backend/internal/whatsapp"
	"whocallsme_backend/platform/httpkit"
	"whocallsme_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// CommentFeed fetches the comment feed behind a directory listing.
type CommentFeed interface {
	Comments(ctx context.Context, postID string) ([]directorytransport.Comment, error)
}

// Registry is the on-demand messaging registry lookup.
type Registry interface {
	Lookup(ctx context.Context, full string) (*whatsapp.Result, error)
}

// Handler exposes the lookup endpoints.
type Handler struct {
	svc      *Service
	comments CommentFeed
	registry Registry
	val      *validator.Validator
}

// NewHandler creates a new lookup handler.
func NewHandler(svc *Service, comments CommentFeed, registry Registry, val *validator.Validator) *Handler {
	return &Handler{
		svc:      svc,
		comments: comments,
		registry: registry,
		val:      val,
	}
}

// LookupRequest represents the query parameters of the main lookup.
type LookupRequest struct {
	Number string `form:"number" binding:"required"`
}

// Lookup handles GET /api/v1/lookup?number=...
func (h *Handler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'number' is required")
		return
	}

	// Rejected before any network call: input with no digits at all
	// cannot name a number.
	if err := h.val.Var(req.Number, "phone_input"); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'number' must contain digits")
		return
	}

	httpkit.OK(c, h.svc.Lookup(c.Request.Context(), req.Number))
}

// Comments handles GET /api/v1/lookup/comments?post_id=...
// A missing post_id yields an empty array, not an error: there is
// nothing to fetch, which callers treat the same as a listing with no
// comments.
func (h *Handler) Comments(c *gin.Context) {
	postID := strings.TrimSpace(c.Query("post_id"))
	if postID == "" {
		httpkit.OK(c, []directorytransport.Comment{})
		return
	}

	comments, err := h.comments.Comments(c.Request.Context(), postID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, comments)
}

// WhatsApp handles GET /api/v1/lookup/whatsapp?number=...
func (h *Handler) WhatsApp(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'number' is required")
		return
	}

	result, err := h.registry.Lookup(c.Request.Context(), strings.TrimSpace(req.Number))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
