// Package attachments stores request attachments as uuid-keyed blobs on
// disk with their metadata rows in the database.
package attachments

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/attachment"
	"oaflow.io/oaflow/internal/config"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
	"oaflow.io/oaflow/internal/pkg/metrics"
	"oaflow.io/oaflow/internal/workflow"
)

const keyAttempts = 5

// Store writes attachment blobs under a base directory and their metadata
// through ent.
type Store struct {
	client   *ent.Client
	dir      string
	maxBytes int64
}

// NewStore creates an attachment store from the attachments config.
func NewStore(client *ent.Client, cfg config.AttachmentsConfig) *Store {
	return &Store{client: client, dir: cfg.Dir, maxBytes: cfg.MaxBytes}
}

// UploadInput is one base64-encoded attachment upload.
type UploadInput struct {
	RequestID     int
	Filename      string
	ContentType   *string
	ContentBase64 string
}

// Upload decodes, size-checks and persists an attachment. Only the request
// owner or an admin may upload.
func (s *Store) Upload(ctx context.Context, actor workflow.Actor, in UploadInput) (*ent.Attachment, error) {
	req, err := s.client.Request.Get(ctx, in.RequestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrRequestNotFound()
		}
		return nil, err
	}
	if !actor.IsAdmin() && req.UserID != actor.ID {
		return nil, apperrors.ErrNotAuthorized()
	}

	data, err := base64.StdEncoding.DecodeString(in.ContentBase64)
	if err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidPayload, "content_base64 is not valid base64")
	}
	if int64(len(data)) > s.maxBytes {
		return nil, apperrors.BadRequest(apperrors.CodeTooLarge, "attachment exceeds the size limit")
	}

	safeName := SanitizeFilename(in.Filename)
	reqDir := filepath.Join(s.dir, strconv.Itoa(in.RequestID))
	if err := os.MkdirAll(reqDir, 0o755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "create attachment directory", 500)
	}

	key, err := writeBlob(reqDir, data)
	if err != nil {
		return nil, err
	}
	storagePath := fmt.Sprintf("%d/%s", in.RequestID, key)

	create := s.client.Attachment.Create().
		SetRequestID(in.RequestID).
		SetUploadedBy(actor.ID).
		SetFilename(safeName).
		SetSizeBytes(int64(len(data))).
		SetStoragePath(storagePath)
	if in.ContentType != nil && strings.TrimSpace(*in.ContentType) != "" {
		create = create.SetContentType(strings.TrimSpace(*in.ContentType))
	}
	att, err := create.Save(ctx)
	if err != nil {
		_ = os.Remove(filepath.Join(reqDir, key))
		return nil, err
	}
	metrics.AttachmentBytes.Add(float64(len(data)))
	return att, nil
}

// writeBlob writes data under a fresh uuid key, retrying on the unlikely
// key collision.
func writeBlob(dir string, data []byte) (string, error) {
	for i := 0; i < keyAttempts; i++ {
		key := strings.ReplaceAll(uuid.NewString(), "-", "")
		path := filepath.Join(dir, key)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", apperrors.Wrap(err, apperrors.CodeStorageError, "write attachment blob", 500)
		}
		return key, nil
	}
	return "", apperrors.Internal(apperrors.CodeStorageError, "could not allocate an attachment key")
}

// Open returns the attachment metadata and blob content for download.
// Only the request owner or an admin may download; paths escaping the base
// directory are rejected.
func (s *Store) Open(ctx context.Context, actor workflow.Actor, attachmentID int) (*ent.Attachment, []byte, error) {
	att, err := s.client.Attachment.Get(ctx, attachmentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.NotFound(apperrors.CodeNotFound, "attachment not found")
		}
		return nil, nil, err
	}
	req, err := s.client.Request.Get(ctx, att.RequestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.ErrRequestNotFound()
		}
		return nil, nil, err
	}
	if !actor.IsAdmin() && req.UserID != actor.ID {
		return nil, nil, apperrors.ErrNotAuthorized()
	}

	base, err := filepath.Abs(s.dir)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.CodeStorageError, "resolve attachment directory", 500)
	}
	full, err := filepath.Abs(filepath.Join(base, filepath.FromSlash(att.StoragePath)))
	if err != nil || !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return nil, nil, apperrors.Forbidden(apperrors.CodeNotAuthorized, "attachment path is outside the store")
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, apperrors.NotFound(apperrors.CodeNotFound, "attachment blob is missing")
		}
		return nil, nil, apperrors.Wrap(err, apperrors.CodeStorageError, "read attachment blob", 500)
	}
	return att, data, nil
}

// ListForRequest returns a request's attachments in upload order. The
// caller is expected to have checked request visibility already.
func (s *Store) ListForRequest(ctx context.Context, requestID int) ([]*ent.Attachment, error) {
	return s.client.Attachment.Query().
		Where(attachment.RequestIDEQ(requestID)).
		Order(ent.Asc(attachment.FieldID)).
		All(ctx)
}

// SanitizeFilename reduces an upload's filename to a safe basename:
// alphanumerics plus space, dot, underscore and hyphen, trimmed of leading
// and trailing dots and spaces, capped at 200 characters.
func SanitizeFilename(filename string) string {
	name := strings.ReplaceAll(filename, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "file"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), " .")
	if out == "" {
		return "file"
	}
	if runes := []rune(out); len(runes) > 200 {
		out = string(runes[:200])
	}
	return out
}
