// Package integration provides helpers and integration tests for the
// reservation system. Integration tests verify that components work together
// correctly: HTTP handlers, use cases, the repository, and mock gateways.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/fastflight/fastflight-reservation-system/internal/adapter/http"
	"github.com/fastflight/fastflight-reservation-system/internal/repository"
	"github.com/fastflight/fastflight-reservation-system/internal/usecase"
	"github.com/fastflight/fastflight-reservation-system/test/mock"
)

// TestServer wires the full stack over an in-memory store and mock gateways.
type TestServer struct {
	Echo      *echo.Echo
	Store     *repository.MemoryStore
	Repo      *repository.Repository
	Searcher  *mock.Searcher
	Concierge *mock.Concierge
}

// NewTestServer creates a test server with fresh state.
func NewTestServer() *TestServer {
	store := repository.NewMemoryStore()
	repo := repository.New(store)
	searcher := mock.NewSearcher()
	concierge := mock.NewConcierge()

	handler := httpAdapter.NewHandler(
		usecase.NewFlightSearchUseCase(searcher, repo),
		usecase.NewBookingUseCase(repo, nil),
		usecase.NewAlertUseCase(repo, nil),
		usecase.NewChatUseCase(concierge),
		usecase.NewProfileUseCase(repo),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:      e,
		Store:     store,
		Repo:      repo,
		Searcher:  searcher,
		Concierge: concierge,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code int
	Body []byte
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{Code: rec.Code, Body: rec.Body.Bytes()}
}

// Parse decodes the response body into out.
func (r *Response) Parse(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// FutureDate returns a date string 30 days in the future in YYYY-MM-DD format.
func FutureDate() string {
	return time.Now().AddDate(0, 0, 30).Format("2006-01-02")
}

// DefaultSearchRequest returns a valid search request body.
func DefaultSearchRequest() map[string]interface{} {
	return map[string]interface{}{
		"origin":        "Mumbai",
		"destination":   "London",
		"departureDate": FutureDate(),
		"travelers":     1,
	}
}
