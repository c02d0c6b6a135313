package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/graphdl/taskparse"
)

func TestMain(m *testing.M) {
	logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestService() *service {
	return newService(taskparse.NewDefault(), DefaultConfig())
}

func getJSON(t *testing.T, h http.HandlerFunc, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestHandleParse(t *testing.T) {
	svc := newTestService()

	var resp parseResponse
	rec := getJSON(t, svc.handleParse(),
		"/api/parse?statement="+url.QueryEscape("Develop or implement plans for sustainable regeneration"), &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Statement.HasConjunction)
	require.Len(t, resp.Statement.Expansions, 2)
	assert.Equal(t, "Develop", resp.Statement.Expansions[0].Predicate)
	assert.Equal(t, "implement", resp.Statement.Expansions[1].Predicate)
	assert.Equal(t,
		"[develop.Plans.for.SustainableRegeneration, implement.Plans.for.SustainableRegeneration]",
		resp.GraphDL)
}

func TestHandleParse_MissingParam(t *testing.T) {
	svc := newTestService()

	var resp errorResponse
	rec := getJSON(t, svc.handleParse(), "/api/parse", &resp)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "statement")
}

func TestHandleParse_MethodNotAllowed(t *testing.T) {
	svc := newTestService()

	req := httptest.NewRequest(http.MethodPost, "/api/parse?statement=x", nil)
	rec := httptest.NewRecorder()
	svc.handleParse()(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleParseBatch(t *testing.T) {
	svc := newTestService()

	body := `{"statements":[
		"Develop plans",
		"Collect, analyze, and report data",
		"Review applications"
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/parse/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	svc.handleParseBatch()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp batchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Results, 3)

	// Results come back in request order regardless of parse order.
	assert.Equal(t, "Develop plans", resp.Results[0].Statement.Original)
	assert.Equal(t, "[collect.Data, analyze.Data, report.Data]", resp.Results[1].GraphDL)
	assert.Equal(t, "review.Applications", resp.Results[2].GraphDL)
}

func TestHandleParseBatch_TooLarge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BatchLimit = 2
	svc := newService(taskparse.NewDefault(), cfg)

	body := `{"statements":["a","b","c"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/parse/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	svc.handleParseBatch()(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleParseBatch_BadBody(t *testing.T) {
	svc := newTestService()

	req := httptest.NewRequest(http.MethodPost, "/api/parse/batch", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	svc.handleParseBatch()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGraphDL(t *testing.T) {
	svc := newTestService()

	var resp graphdlResponse
	rec := getJSON(t, svc.handleGraphDL(),
		"/api/graphdl?statement="+url.QueryEscape("Collect, analyze, and report data"), &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[collect.Data, analyze.Data, report.Data]", resp.GraphDL)
}

func TestHandleExpand(t *testing.T) {
	svc := newTestService()

	var resp expandResponse
	rec := getJSON(t, svc.handleExpand(),
		"/api/expand?phrase="+url.QueryEscape("Excavating and Loading Machine"), &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Excavating Machine", "Loading Machine"}, resp.Alternatives)
}

func TestHandleTitles(t *testing.T) {
	svc := newTestService()

	var resp titlesResponse
	rec := getJSON(t, svc.handleTitles(),
		"/api/titles?title="+url.QueryEscape("Engineers, Civil"), &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Civil Engineers"}, resp.Titles)
}

func TestHandleUnknownWords(t *testing.T) {
	svc := newTestService()

	// Two parses of the same statement double every unknown word count.
	target := "/api/parse?statement=" + url.QueryEscape("Develop plans for sustainable regeneration")
	getJSON(t, svc.handleParse(), target, nil)
	getJSON(t, svc.handleParse(), target, nil)

	var resp unknownWordsResponse
	rec := getJSON(t, svc.handleUnknownWords(), "/api/unknown-words", &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, resp.Distinct, 3)
	assert.Contains(t, resp.Report, "plans\t2\tverb")
	assert.Contains(t, resp.Report, "sustainable\t2\tverb")
}

func TestHandleHealthz(t *testing.T) {
	svc := newTestService()

	var resp healthResponse
	rec := getJSON(t, svc.handleHealthz(), "/healthz", &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Status)
	assert.Greater(t, resp.Lexicon["verbs"], 0)
}

func TestWithRequestID(t *testing.T) {
	svc := newTestService()
	h := svc.withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestSwapParser(t *testing.T) {
	svc := newTestService()
	before := svc.current()

	next := taskparse.NewDefault()
	svc.swap(next)

	assert.NotSame(t, before, svc.current())
	assert.Same(t, next, svc.current())
}
