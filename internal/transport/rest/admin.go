package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
	"github.com/socialblog/backend/pkg/ctxutil"
)

type moderationService interface {
	BlockPost(ctx context.Context, postID uuid.UUID) error
	UnblockPost(ctx context.Context, postID uuid.UUID) error
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	posts moderationService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(posts moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		posts: posts,
		log:   logger.With("handler", "admin"),
	}
}

// BlockPost hides a post from non-admin readers.
// POST /admin/posts/{id}/block
func (h *AdminHandler) BlockPost(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true)
}

// UnblockPost makes a blocked post visible again.
// POST /admin/posts/{id}/unblock
func (h *AdminHandler) UnblockPost(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false)
}

func (h *AdminHandler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool) {
	if !h.requireAdmin(w, r) {
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if blocked {
		err = h.posts.BlockPost(r.Context(), postID)
	} else {
		err = h.posts.UnblockPost(r.Context(), postID)
	}
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "post not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "admin access required")
	default:
		h.log.ErrorContext(r.Context(), "set blocked", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
