package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/eventdesk/server/internal/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeFileStore mirrors the adapter contract: append-only inserts, retrieval
// picks the record with the greatest uploaded_at for the parent.
type fakeFileStore struct {
	records map[string][]models.FileRecord
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{records: make(map[string][]models.FileRecord)}
}

func (f *fakeFileStore) Insert(_ context.Context, parentID string, rec *models.FileRecord) (primitive.ObjectID, error) {
	stored := *rec
	stored.ID = primitive.NewObjectID()
	f.records[parentID] = append(f.records[parentID], stored)
	return stored.ID, nil
}

func (f *fakeFileStore) FindLatestByParent(_ context.Context, parentID string) (*models.FileRecord, error) {
	var latest *models.FileRecord
	for i := range f.records[parentID] {
		rec := &f.records[parentID][i]
		if latest == nil || rec.UploadedAt.After(latest.UploadedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := *latest
	return &out, nil
}

func newPosterRouter(store models.FileStore) *gin.Engine {
	r := gin.New()
	RegisterFiles(r.Group("/"), "upload_event_poster", "event_poster", "event_id", &FileResource{
		Label:         "Event poster",
		NotFoundLabel: "Poster",
		Store:         store,
	})
	return r
}

func multipartUpload(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadStoresRecord(t *testing.T) {
	store := newFakeFileStore()
	r := newPosterRouter(store)

	body, contentType := multipartUpload(t, "poster.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	req := httptest.NewRequest(http.MethodPost, "/upload_event_poster/evt-1", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Message != "Event poster uploaded" {
		t.Errorf("message = %q", env.Message)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}
	if len(created.ID) != 24 {
		t.Errorf("id %q is not a 24-char hex id", created.ID)
	}

	recs := store.records["evt-1"]
	if len(recs) != 1 {
		t.Fatalf("stored %d records, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Filename != "poster.png" || rec.ContentType != "image/png" {
		t.Errorf("stored metadata mismatch: %+v", rec)
	}
	if !bytes.Equal(rec.Content, []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("stored bytes mismatch: %v", rec.Content)
	}
	if rec.UploadedAt.IsZero() || rec.UploadedAt.Location() != time.UTC {
		t.Errorf("uploaded_at not a UTC timestamp: %v", rec.UploadedAt)
	}
}

func TestUploadWithoutFile(t *testing.T) {
	r := newPosterRouter(newFakeFileStore())

	req := httptest.NewRequest(http.MethodPost, "/upload_event_poster/evt-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestRetrieveMissingReturnsNotFound(t *testing.T) {
	r := newPosterRouter(newFakeFileStore())

	req := httptest.NewRequest(http.MethodGet, "/event_poster/evt-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Error != "Poster not found" {
		t.Errorf("error = %q, want %q", env.Error, "Poster not found")
	}
}

func TestRetrieveReturnsLatestUpload(t *testing.T) {
	store := newFakeFileStore()
	r := newPosterRouter(store)

	upload := func(filename, contentType string, content []byte) {
		body, ct := multipartUpload(t, filename, contentType, content)
		req := httptest.NewRequest(http.MethodPost, "/upload_event_poster/evt-1", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("upload %s failed: %d %s", filename, w.Code, w.Body.String())
		}
		// Keep uploaded_at strictly increasing.
		time.Sleep(2 * time.Millisecond)
	}

	upload("old.png", "image/png", []byte("old bytes"))
	upload("new.jpg", "image/jpeg", []byte("new bytes"))

	req := httptest.NewRequest(http.MethodGet, "/event_poster/evt-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("retrieve status = %d", w.Code)
	}
	if got := w.Body.String(); got != "new bytes" {
		t.Errorf("body = %q, want the later upload", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Content-Type = %q, want image/jpeg", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `inline; filename="new.jpg"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestRetrieveIsolatesParents(t *testing.T) {
	store := newFakeFileStore()
	r := newPosterRouter(store)

	body, ct := multipartUpload(t, "a.png", "image/png", []byte("for evt-1"))
	req := httptest.NewRequest(http.MethodPost, "/upload_event_poster/evt-1", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	req = httptest.NewRequest(http.MethodGet, "/event_poster/evt-2", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("retrieve for a different parent returned %d, want 404", w.Code)
	}
}
