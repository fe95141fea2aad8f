package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnema/sinkhole/internal/api"
	"github.com/bnema/sinkhole/internal/domain/build"
	"github.com/bnema/sinkhole/internal/domain/lists"
	"github.com/bnema/sinkhole/internal/domain/repository"
	"github.com/bnema/sinkhole/internal/domain/resolver"
	"github.com/bnema/sinkhole/internal/infrastructure/env"
	"github.com/bnema/sinkhole/internal/infrastructure/persistence/memory"
	"github.com/bnema/sinkhole/internal/logging"
)

const testToken = "test-token"

type fakeProber struct {
	err error
}

func (p *fakeProber) Alive(context.Context) error { return p.err }

// harness bundles the moving parts a handler test can override before the
// router is built.
type harness struct {
	repo   repository.ListRepository
	stats  resolver.StatsReader
	prober api.ResolverProber
	env    env.Env
	hash   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testToken), bcrypt.MinCost)
	require.NoError(t, err)

	return &harness{
		repo:   memory.NewListRepository(),
		stats:  &resolver.StaticStats{},
		prober: &fakeProber{},
		env:    env.NewMemory(nil),
		hash:   string(hash),
	}
}

func (h *harness) router() http.Handler {
	srv := api.NewServer(api.Options{
		Repo:         h.repo,
		Stats:        h.stats,
		Prober:       h.prober,
		Env:          h.env,
		Build:        build.Info{Version: "v1.0.0", Commit: "abcdefg"},
		PasswordHash: h.hash,
		Logger:       logging.NewFromConfigValues("error", "json"),
	})
	return srv.Router()
}

func (h *harness) request(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authed {
		req.Header.Set(api.AuthHeader, testToken)
	}

	rec := httptest.NewRecorder()
	h.router().ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestListEndpoints_RoundTrip(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodPost, "/api/lists/allow", `{"domain":"test.com"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.request(t, http.MethodGet, "/api/lists/allow", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []string{"test.com"}, decodeData[[]string](t, rec))

	rec = h.request(t, http.MethodGet, "/api/lists/allow/test.com", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	contains := decodeData[map[string]any](t, rec)
	assert.Equal(t, true, contains["contained"])

	rec = h.request(t, http.MethodDelete, "/api/lists/allow/test.com", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.request(t, http.MethodGet, "/api/lists/allow/test.com", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	contains = decodeData[map[string]any](t, rec)
	assert.Equal(t, false, contains["contained"])
}

func TestListEndpoints_ListIsolation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.repo.Add(ctx, lists.ListAllow, "test.com"))
	require.NoError(t, h.repo.Add(ctx, lists.ListDeny, "example.com"))
	require.NoError(t, h.repo.Add(ctx, lists.ListRegex, `(^|\.)example\.com$`))

	expected := map[string][]string{
		"allow": {"test.com"},
		"deny":  {"example.com"},
		"regex": {`(^|\.)example\.com$`},
	}
	for list, domains := range expected {
		rec := h.request(t, http.MethodGet, "/api/lists/"+list, "", false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domains, decodeData[[]string](t, rec), "list %s", list)
	}
}

func TestListEndpoints_UnknownList(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodGet, "/api/lists/greylist", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.request(t, http.MethodPost, "/api/lists/greylist", `{"domain":"test.com"}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEndpoints_BadBody(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodPost, "/api/lists/deny", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.request(t, http.MethodPost, "/api/lists/deny", `not json`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_RejectsMissingAndBadTokens(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodPost, "/api/lists/deny", `{"domain":"ads.example"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/lists/deny", strings.NewReader(`{"domain":"ads.example"}`))
	req.Header.Set(api.AuthHeader, "wrong-token")
	rec2 := httptest.NewRecorder()
	h.router().ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusUnauthorized, rec2.Code)

	// The failed attempts must not have mutated anything.
	found, err := h.repo.Contains(context.Background(), lists.ListDeny, "ads.example")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAuth_NoPasswordConfigured(t *testing.T) {
	h := newHarness(t)
	h.hash = ""

	rec := h.request(t, http.MethodPost, "/api/lists/deny", `{"domain":"ads.example"}`, true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ReadsAreOpen(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodGet, "/api/lists/deny", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVersionEndpoint(t *testing.T) {
	h := newHarness(t)
	h.env = env.NewMemory(map[env.File]string{
		env.FileLocalVersions: "v3.3.1-0-gfbee18e v3.3-190-gf7e1a28 vDev-d06deca",
		env.FileLocalBranches: "master devel development",
		env.FileWebVersion:    "v1.2.0 master 9bb38a3",
	})

	rec := h.request(t, http.MethodGet, "/api/version", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	versions := decodeData[map[string]map[string]string](t, rec)
	assert.Equal(t, "v3.3.1", versions["core"]["tag"])
	assert.Equal(t, "fbee18e", versions["core"]["hash"])
	assert.Equal(t, "v1.2.0", versions["web"]["tag"])
	assert.Equal(t, "v1.0.0", versions["api"]["tag"])
}

func TestVersionEndpoint_MissingFiles(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodGet, "/api/version", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	versions := decodeData[map[string]map[string]string](t, rec)
	assert.Equal(t, "", versions["core"]["tag"])
	assert.Equal(t, "v1.0.0", versions["api"]["tag"])
}

func TestStatusEndpoint(t *testing.T) {
	h := newHarness(t)
	h.stats = &resolver.StaticStats{
		Stats: resolver.Summary{QueriesToday: 100, BlockedToday: 25, PercentBlocked: 25.0},
	}
	h.env = env.NewMemory(map[env.File]string{
		env.FileSetupVars: "INTERFACE=eth0\nBLOCKING_ENABLED=false\n",
	})

	rec := h.request(t, http.MethodGet, "/api/status", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	status := decodeData[map[string]any](t, rec)
	assert.Equal(t, "disabled", status["blocking"])
	assert.Equal(t, "alive", status["resolver"])
}

func TestStatusEndpoint_ResolverDown(t *testing.T) {
	h := newHarness(t)
	h.prober = &fakeProber{err: errors.New("connection refused")}

	rec := h.request(t, http.MethodGet, "/api/status", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	status := decodeData[map[string]any](t, rec)
	assert.Equal(t, "unreachable", status["resolver"])
	assert.Equal(t, "enabled", status["blocking"])
}

func TestSetBlocking(t *testing.T) {
	h := newHarness(t)
	h.env = env.NewMemory(map[env.File]string{
		env.FileSetupVars: "INTERFACE=eth0\nBLOCKING_ENABLED=true\n",
	})

	rec := h.request(t, http.MethodPost, "/api/status/blocking", `{"enabled":false}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	contents, err := h.env.ReadFile(env.FileSetupVars)
	require.NoError(t, err)
	assert.Equal(t, "INTERFACE=eth0\nBLOCKING_ENABLED=false\n", contents)

	// The status endpoint reflects the change.
	rec = h.request(t, http.MethodGet, "/api/status", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeData[map[string]any](t, rec)
	assert.Equal(t, "disabled", status["blocking"])
}

func TestSetBlocking_AppendsWhenAbsent(t *testing.T) {
	h := newHarness(t)
	h.env = env.NewMemory(map[env.File]string{
		env.FileSetupVars: "INTERFACE=eth0\n",
	})

	rec := h.request(t, http.MethodPost, "/api/status/blocking", `{"enabled":true}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	contents, err := h.env.ReadFile(env.FileSetupVars)
	require.NoError(t, err)
	assert.Contains(t, contents, "BLOCKING_ENABLED=true")
}

func TestSetBlocking_RequiresAuth(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodPost, "/api/status/blocking", `{"enabled":false}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetBlocking_BadBody(t *testing.T) {
	h := newHarness(t)

	rec := h.request(t, http.MethodPost, "/api/status/blocking", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t)

	h.request(t, http.MethodGet, "/api/lists/allow", "", false)

	rec := h.request(t, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sinkhole_api_requests_total")
}
