package attachments

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/request"
	"oaflow.io/oaflow/internal/config"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
	"oaflow.io/oaflow/internal/testutil"
	"oaflow.io/oaflow/internal/workflow"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report.pdf":                "report.pdf",
		"../../etc/passwd":          "passwd",
		`C:\temp\notes.txt`:         "notes.txt",
		"  spaced name.doc  ":       "spaced name.doc",
		"weird<>:|?.bin":            "weird_____.bin",
		"...dots...":                "dots",
		"":                          "file",
		"///":                       "file",
		strings.Repeat("a", 300):    strings.Repeat("a", 200),
		"受理单.pdf":                   "受理单.pdf",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}

func newStore(t *testing.T) (*ent.Client, *Store, *ent.User, *ent.User, *ent.Request) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, "attachments")
	ctx := context.Background()

	admin := testutil.CreateUser(t, client, "admin", testutil.WithRole("admin"))
	owner := testutil.CreateUser(t, client, "owner")

	req, err := client.Request.Create().
		SetUserID(owner.ID).
		SetRequestType("generic").
		SetTitle("t").
		SetBody("b").
		SetStatus(request.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	store := NewStore(client, config.AttachmentsConfig{
		Dir:      t.TempDir(),
		MaxBytes: 64,
	})
	return client, store, admin, owner, req
}

func asActor(u *ent.User) workflow.Actor {
	return workflow.Actor{ID: u.ID, Username: u.Username, Role: u.Role, Dept: u.Dept, ManagerID: u.ManagerID}
}

func TestUploadAndDownloadRoundTrip(t *testing.T) {
	_, store, _, owner, req := newStore(t)
	ctx := context.Background()

	content := []byte("hello attachments")
	ctype := "text/plain"
	att, err := store.Upload(ctx, asActor(owner), UploadInput{
		RequestID:     req.ID,
		Filename:      "../notes.txt",
		ContentType:   &ctype,
		ContentBase64: base64.StdEncoding.EncodeToString(content),
	})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", att.Filename)
	assert.Equal(t, int64(len(content)), att.SizeBytes)
	assert.True(t, strings.HasPrefix(att.StoragePath, fmt.Sprintf("%d/", req.ID)),
		"storage path is request-scoped: %s", att.StoragePath)

	got, data, err := store.Open(ctx, asActor(owner), att.ID)
	require.NoError(t, err)
	assert.Equal(t, att.ID, got.ID)
	assert.Equal(t, content, data)
}

func TestUploadValidation(t *testing.T) {
	_, store, _, owner, req := newStore(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, asActor(owner), UploadInput{
		RequestID: req.ID, Filename: "x", ContentBase64: "not-base64!!!",
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidPayload, appErr.Code)

	big := base64.StdEncoding.EncodeToString(make([]byte, 65))
	_, err = store.Upload(ctx, asActor(owner), UploadInput{
		RequestID: req.ID, Filename: "x", ContentBase64: big,
	})
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTooLarge, appErr.Code)

	_, err = store.Upload(ctx, asActor(owner), UploadInput{
		RequestID: req.ID + 1000, Filename: "x", ContentBase64: base64.StdEncoding.EncodeToString([]byte("ok")),
	})
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUploadAuthorization(t *testing.T) {
	client, store, admin, _, req := newStore(t)
	ctx := context.Background()

	stranger := testutil.CreateUser(t, client, "stranger")
	payload := base64.StdEncoding.EncodeToString([]byte("x"))

	_, err := store.Upload(ctx, asActor(stranger), UploadInput{
		RequestID: req.ID, Filename: "x", ContentBase64: payload,
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotAuthorized, appErr.Code)

	att, err := store.Upload(ctx, asActor(admin), UploadInput{
		RequestID: req.ID, Filename: "by-admin", ContentBase64: payload,
	})
	require.NoError(t, err)

	_, _, err = store.Open(ctx, asActor(stranger), att.ID)
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotAuthorized, appErr.Code)
}

func TestOpenRejectsEscapingPaths(t *testing.T) {
	client, store, _, owner, req := newStore(t)
	ctx := context.Background()

	att, err := client.Attachment.Create().
		SetRequestID(req.ID).
		SetUploadedBy(owner.ID).
		SetFilename("evil").
		SetSizeBytes(1).
		SetStoragePath("../../etc/passwd").
		Save(ctx)
	require.NoError(t, err)

	_, _, err = store.Open(ctx, asActor(owner), att.ID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotAuthorized, appErr.Code)
}

func TestListForRequest(t *testing.T) {
	_, store, _, owner, req := newStore(t)
	ctx := context.Background()

	for _, name := range []string{"a.txt", "b.txt"} {
		_, err := store.Upload(ctx, asActor(owner), UploadInput{
			RequestID: req.ID, Filename: name,
			ContentBase64: base64.StdEncoding.EncodeToString([]byte(name)),
		})
		require.NoError(t, err)
	}

	atts, err := store.ListForRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, atts, 2)
	assert.Equal(t, "a.txt", atts[0].Filename)
	assert.Equal(t, "b.txt", atts[1].Filename)

	entries, err := os.ReadDir(filepath.Join(store.dir, strconv.Itoa(req.ID)))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
