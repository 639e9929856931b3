package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	directorytransport "whocallsme_backend/internal/directory/transport"
	"whocallsme_backend/internal/whatsapp"
	"whocallsme_backend/platform/apperr"
	"whocallsme_backend/platform/logger"
	"whocallsme_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type stubComments struct {
	comments []directorytransport.Comment
	err      error
	gotPost  string
}

func (s *stubComments) Comments(ctx context.Context, postID string) ([]directorytransport.Comment, error) {
	s.gotPost = postID
	return s.comments, s.err
}

type stubRegistry struct {
	result *whatsapp.Result
	err    error
}

func (s *stubRegistry) Lookup(ctx context.Context, full string) (*whatsapp.Result, error) {
	return s.result, s.err
}

func newTestRouter(comments CommentFeed, registry Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.New("development")
	svc := NewService(&stubDirectory{listing: testListing()}, &stubReputation{result: testReputation()}, log)
	h := NewHandler(svc, comments, registry, validator.New())

	engine := gin.New()
	group := engine.Group("/api/v1/lookup")
	group.GET("", h.Lookup)
	group.GET("/comments", h.Comments)
	group.GET("/whatsapp", h.WhatsApp)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestLookupEndpoint_CombinedRecord(t *testing.T) {
	engine := newTestRouter(&stubComments{}, &stubRegistry{})

	rec := doRequest(t, engine, "/api/v1/lookup?number=%2B351912345678")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	for _, field := range []string{"display_number", "full_number", "post_id", "directory", "reputation"} {
		if _, ok := payload[field]; !ok {
			t.Fatalf("missing field %q in %s", field, rec.Body.String())
		}
	}
}

func TestLookupEndpoint_MissingNumberRejected(t *testing.T) {
	engine := newTestRouter(&stubComments{}, &stubRegistry{})

	rec := doRequest(t, engine, "/api/v1/lookup")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLookupEndpoint_DigitlessNumberRejected(t *testing.T) {
	engine := newTestRouter(&stubComments{}, &stubRegistry{})

	rec := doRequest(t, engine, "/api/v1/lookup?number=abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCommentsEndpoint_MissingPostIDYieldsEmptyArray(t *testing.T) {
	engine := newTestRouter(&stubComments{}, &stubRegistry{})

	rec := doRequest(t, engine, "/api/v1/lookup/comments")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestCommentsEndpoint_ReturnsFeed(t *testing.T) {
	comments := &stubComments{comments: []directorytransport.Comment{
		{Author: "Ana", Date: "2024-05-17", Text: "Hello world !"},
	}}
	engine := newTestRouter(comments, &stubRegistry{})

	rec := doRequest(t, engine, "/api/v1/lookup/comments?post_id=42")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if comments.gotPost != "42" {
		t.Fatalf("expected post id 42 passed through, got %q", comments.gotPost)
	}

	var feed []directorytransport.Comment
	if err := json.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(feed) != 1 || feed[0].Author != "Ana" {
		t.Fatalf("unexpected feed %+v", feed)
	}
}

func TestCommentsEndpoint_UpstreamFailureIsBadGateway(t *testing.T) {
	engine := newTestRouter(&stubComments{err: apperr.Unavailable("comment feed unavailable", nil)}, &stubRegistry{})

	rec := doRequest(t, engine, "/api/v1/lookup/comments?post_id=42")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestWhatsAppEndpoint_MissingNumberRejected(t *testing.T) {
	engine := newTestRouter(&stubComments{}, &stubRegistry{})

	rec := doRequest(t, engine, "/api/v1/lookup/whatsapp")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWhatsAppEndpoint_ReturnsRegistryResult(t *testing.T) {
	registered := true
	engine := newTestRouter(&stubComments{}, &stubRegistry{result: &whatsapp.Result{Registered: &registered, URL: "https://wa.me/351912345678"}})

	rec := doRequest(t, engine, "/api/v1/lookup/whatsapp?number=351912345678")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var result whatsapp.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if result.Registered == nil || !*result.Registered {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestWhatsAppEndpoint_UpstreamFailureIsBadGateway(t *testing.T) {
	engine := newTestRouter(&stubComments{}, &stubRegistry{err: apperr.Unavailable("registry unavailable", nil)})

	rec := doRequest(t, engine, "/api/v1/lookup/whatsapp?number=351912345678")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
