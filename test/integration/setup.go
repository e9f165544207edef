// Package integration provides helpers and integration tests for the flight
// deal finder. Integration tests verify that components work together
// correctly, including HTTP handlers, the search use case, the route store,
// and mock flight sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flightfinder/flightfinder/internal/adapter/http"
	"github.com/flightfinder/flightfinder/internal/adapter/routecache"
	"github.com/flightfinder/flightfinder/internal/domain"
	"github.com/flightfinder/flightfinder/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo   *echo.Echo
	Routes *routecache.Store
}

// NewTestServer creates a test server backed by the given flight source and
// an in-memory route store.
func NewTestServer(t *testing.T, source domain.FlightSource) *TestServer {
	t.Helper()

	routes, err := routecache.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { routes.Close() })

	finder := usecase.NewSkiplaggedFinder(routes)
	uc := usecase.NewSearchUseCase(source, finder, nil, zerolog.Nop(), nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHandler(uc, finder, routes)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:   e,
		Routes: routes,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
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

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponseDTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origins           []string               `json:"origins"`
	Destination       string                 `json:"destination"`
	DepartDate        string                 `json:"departDate"`
	ReturnDate        string                 `json:"returnDate,omitempty"`
	Cabin             string                 `json:"cabin,omitempty"`
	IncludeSkiplagged bool                   `json:"includeSkiplagged,omitempty"`
	Limit             int                    `json:"limit,omitempty"`
	Filters           map[string]interface{} `json:"filters,omitempty"`
}

// DefaultSearchRequest returns a valid round-trip search request body.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origins:     []string{"JFK"},
		Destination: "YAO",
		DepartDate:  "2026-09-15",
		ReturnDate:  "2026-09-25",
	}
}

// DefaultSearchParams returns valid round-trip parameters for driving the
// use case directly.
func DefaultSearchParams() domain.SearchParams {
	return domain.SearchParams{
		Origins:     []string{"JFK"},
		Destination: "YAO",
		DepartDate:  "2026-09-15",
		ReturnDate:  "2026-09-25",
	}
}

// CreateUseCase creates a use case over the given source with no hidden-city
// expansion and default configuration.
func CreateUseCase(source domain.FlightSource) usecase.SearchUseCase {
	return usecase.NewSearchUseCase(source, nil, nil, zerolog.Nop(), nil)
}

// CreateUseCaseWithConfig creates a use case with custom timeouts.
func CreateUseCaseWithConfig(source domain.FlightSource, config *usecase.Config) usecase.SearchUseCase {
	return usecase.NewSearchUseCase(source, nil, nil, zerolog.Nop(), config)
}
