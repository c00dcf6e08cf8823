package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

const defaultNotificationLimit = 200

// ListNotifications handles GET /api/notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < defaultNotificationLimit {
			limit = n
		}
	}

	rows, err := s.notifications.List(c.Request.Context(), act.ID, limit)
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]notificationJSON, 0, len(rows))
	for _, n := range rows {
		items = append(items, toNotificationJSON(n))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UnreadNotifications handles GET /api/notifications/unread_count.
func (s *Server) UnreadNotifications(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	count, err := s.notifications.UnreadCount(c.Request.Context(), act.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /api/notifications/:id/read. Marking an
// already read notification succeeds; foreign ids are invisible.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "notification")
	if !ok {
		return
	}

	marked, err := s.notifications.MarkRead(c.Request.Context(), id, act.ID)
	if err != nil {
		fail(c, err)
		return
	}
	if !marked {
		fail(c, apperrors.NotFound(apperrors.CodeNotFound, "notification not found"))
		return
	}
	c.Status(http.StatusNoContent)
}
