package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oaflow.io/oaflow/internal/attachments"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

type uploadBody struct {
	Filename      string  `json:"filename"`
	ContentType   *string `json:"content_type"`
	ContentBase64 string  `json:"content_base64"`
}

// UploadAttachment handles POST /api/requests/:id/attachments.
func (s *Server) UploadAttachment(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}

	var body uploadBody
	if !bindJSON(c, &body) {
		return
	}
	if strings.TrimSpace(body.Filename) == "" || body.ContentBase64 == "" {
		fail(c, apperrors.BadRequest(apperrors.CodeMissingFields, "filename and content_base64 are required"))
		return
	}

	att, err := s.attachments.Upload(c.Request.Context(), act, attachments.UploadInput{
		RequestID:     id,
		Filename:      body.Filename,
		ContentType:   body.ContentType,
		ContentBase64: body.ContentBase64,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAttachmentJSON(att))
}

// DownloadAttachment handles GET /api/attachments/:id/download.
func (s *Server) DownloadAttachment(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "attachment")
	if !ok {
		return
	}

	att, data, err := s.attachments.Open(c.Request.Context(), act, id)
	if err != nil {
		fail(c, err)
		return
	}

	contentType := strings.TrimSpace(att.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	// Strip characters that could break out of the header value.
	safe := strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(att.Filename)

	c.Header("Content-Disposition", `attachment; filename="`+safe+`"`)
	c.Data(http.StatusOK, contentType, data)
}
