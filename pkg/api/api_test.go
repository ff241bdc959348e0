package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"travelrest/pkg/events"
	"travelrest/pkg/hotel"
	"travelrest/pkg/logger"
	"travelrest/pkg/metrics"
	"travelrest/pkg/order"
	"travelrest/pkg/store"
	"travelrest/pkg/store/memory"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

type brokenRepo struct{ err error }

func (b brokenRepo) Save(context.Context, hotel.Hotel) error { return b.err }
func (b brokenRepo) Get(context.Context, string) (hotel.Hotel, error) {
	return hotel.Hotel{}, b.err
}
func (b brokenRepo) List(context.Context) ([]hotel.Hotel, error) { return nil, b.err }

type fixture struct {
	router    *Router
	hotels    *memory.Repository[hotel.Hotel]
	publisher *recordingPublisher
	metrics   *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		hotels:    memory.New[hotel.Hotel](),
		publisher: &recordingPublisher{},
		metrics:   metrics.New(prometheus.NewRegistry()),
	}
	f.router = newTestRouter(f.hotels, f.publisher, f.metrics)
	return f
}

func newTestRouter(hotels store.Repository[hotel.Hotel], pub events.Publisher, m *metrics.Metrics) *Router {
	log := logger.New(io.Discard, logger.LevelDebug, "test", nil)
	router := NewRouter(log, noop.NewTracerProvider().Tracer("test"), m)
	router.Register(Route{Name: "health", Method: http.MethodGet, Pattern: "/health", Handler: Health})
	router.Register(NewResource(ResourceConfig[hotel.Hotel, hotel.Representation]{
		Name:      "hotels",
		Repo:      hotels,
		Project:   hotel.Project,
		Normalize: hotel.Normalize,
		Publisher: pub,
		Metrics:   m,
		Log:       log,
	}, router).Routes()...)
	router.Register(NewResource(ResourceConfig[order.Order, order.Representation]{
		Name:      "orders",
		Repo:      memory.New[order.Order](),
		Project:   order.Project,
		Normalize: order.Normalize,
		Publisher: pub,
		Metrics:   m,
		Log:       log,
	}, router).Routes()...)
	return router
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(method, target, rdr))
	return rr
}

func TestGetMissingHotel(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/hotels/42", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestPostThenGetHotel(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodPost, "/hotels", `{"id":"42","location":"Paris"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/hotels/42", rr.Header().Get("Location"))
	assert.Empty(t, rr.Body.String())

	rr = f.do(http.MethodGet, "/hotels/42", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Paris", body["location"])
}

func TestGetReturnsOnlyWhitelistedFields(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.hotels.Save(context.Background(), hotel.Hotel{
		ID:       "7",
		Name:     "Grand Hotel",
		Location: "Lisbon",
		Items:    []hotel.Item{{Name: "single room", Quantity: 1, Price: 90}},
		Payment:  &hotel.Payment{CardNumber: "4111111111111111", CardholderName: "Ana", ExpiryMonth: 1, ExpiryYear: 2030, Amount: 90},
	}))

	rr := f.do(http.MethodGet, "/hotels/7", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"items", "location", "payment"}, keys)
}

func TestPostLocationMatchesCanonicalURI(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodPost, "/hotels", `{"location":"Oslo"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	location := rr.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/hotels/"))
	id := strings.TrimPrefix(location, "/hotels/")

	want, err := f.router.URIFor("hotels.get", "id", id)
	require.NoError(t, err)
	assert.Equal(t, want, location)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, location, "").Code)
}

func TestPostPublishesCreatedEvent(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/hotels", `{"id":"42"}`).Code)

	require.Len(t, f.publisher.events, 1)
	ev := f.publisher.events[0]
	assert.Equal(t, "hotels.created", ev.Type)
	assert.Equal(t, "42", ev.ID)
	assert.Equal(t, "/hotels/42", ev.Location)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.EventsPublished.WithLabelValues("hotels.created", "ok")))
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker down")

	rr := f.do(http.MethodPost, "/hotels", `{"id":"1"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.EventsPublished.WithLabelValues("hotels.created", "failed")))
}

func TestPostRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"id":`},
		{name: "wrong type", body: `{"id":42}`},
		{name: "invalid item", body: `{"id":"1","items":[{"name":"suite","quantity":0}]}`},
		{name: "unaddressable id", body: `{"id":"a/b"}`},
		{name: "dot id", body: `{"id":"."}`},
		{name: "dot dot id", body: `{"id":".."}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			rr := f.do(http.MethodPost, "/hotels", tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)

			list, err := f.hotels.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestStorageFailures(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	router := newTestRouter(brokenRepo{err: errors.New("db down")}, events.Nop{}, m)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/hotels/1", nil),
		httptest.NewRequest(http.MethodPost, "/hotels", strings.NewReader(`{"id":"1"}`)),
		httptest.NewRequest(http.MethodGet, "/hotels", nil),
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, req.Method+" "+req.URL.Path)
	}
}

func TestIndexListsLinks(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/hotels", `{"id":"b"}`).Code)
	require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/hotels", `{"id":"a"}`).Code)

	rr := f.do(http.MethodGet, "/hotels", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var links []Link
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &links))
	assert.Equal(t, []Link{{ID: "a", Href: "/hotels/a"}, {ID: "b", Href: "/hotels/b"}}, links)
}

func TestOrdersResource(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodPost, "/orders", `{"id":"9","location":"takeAway","items":[{"name":"latte","size":"large","quantity":2}]}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/orders/9", rr.Header().Get("Location"))

	rr = f.do(http.MethodGet, "/orders/9", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var rep order.Representation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rep))
	assert.Equal(t, order.StatusUnpaid, rep.Status)
	assert.Equal(t, "takeAway", rep.Location)
	require.Len(t, rep.Items, 1)
	assert.Equal(t, 2, rep.Items[0].Quantity)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/orders/10", "").Code)
}

func TestUnsupportedMethod(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodDelete, "/hotels/42", "").Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.HTTPRequestsTotal.WithLabelValues("DELETE", "unmatched", "405")))
}

func TestUnknownPathIsObserved(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.New(prometheus.NewRegistry())
	router := NewRouter(logger.New(&buf, logger.LevelInfo, "test", nil), noop.NewTracerProvider().Tracer("test"), m)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rooms/1", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Contains(t, buf.String(), `"msg":"request completed"`)
	assert.Contains(t, buf.String(), `"path":"/rooms/1"`)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Status: UP", rr.Body.String())

	f.do(http.MethodGet, "/hotels/42", "")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.HTTPRequestsTotal.WithLabelValues("GET", "/hotels/{id}", "404")))
}

func TestURIForUnknownRoute(t *testing.T) {
	f := newFixture(t)
	_, err := f.router.URIFor("rooms.get", "id", "1")
	assert.Error(t, err)
}

func TestURIForRejectsPathsTheRouterRedirects(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{".", ".."} {
		_, err := f.router.URIFor("hotels.get", "id", id)
		assert.Error(t, err, id)
	}
	for _, id := range []string{"a b", "é", "x.y", "..a"} {
		uri, err := f.router.URIFor("hotels.get", "id", id)
		require.NoError(t, err, id)
		rr := f.do(http.MethodGet, uri, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, id)
		assert.Empty(t, rr.Body.String(), id)
	}
}

func TestIndexSkipsUnaddressableEntities(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.hotels.Save(context.Background(), hotel.Hotel{ID: ".."}))
	require.NoError(t, f.hotels.Save(context.Background(), hotel.Hotel{ID: "ok"}))

	rr := f.do(http.MethodGet, "/hotels", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var links []Link
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &links))
	assert.Equal(t, []Link{{ID: "ok", Href: "/hotels/ok"}}, links)
}

type failingWriter struct {
	header http.Header
	status int
}

func (w *failingWriter) Header() http.Header       { return w.header }
func (w *failingWriter) WriteHeader(code int)      { w.status = code }
func (w *failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection closed") }

func TestWriteJSONLogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelDebug, "test", nil)
	w := &failingWriter{header: http.Header{}}

	writeJSON(context.Background(), log, w, http.StatusOK, []Link{{ID: "1", Href: "/hotels/1"}})

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, "application/json", w.header.Get("Content-Type"))
	assert.Contains(t, buf.String(), `"msg":"encode response"`)
	assert.Contains(t, buf.String(), "connection closed")
}

func TestWriteJSONUnencodableValue(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelDebug, "test", nil)
	rr := httptest.NewRecorder()

	writeJSON(context.Background(), log, rr, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), `"msg":"encode response"`)
}

func TestRecoverMiddleware(t *testing.T) {
	f := newFixture(t)
	f.router.Register(Route{Name: "boom", Method: http.MethodGet, Pattern: "/boom", Handler: func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}})

	rr := f.do(http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
