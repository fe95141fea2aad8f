package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bnema/sinkhole/internal/infrastructure/env"
	"github.com/bnema/sinkhole/internal/logging"
)

// blockingState reads the appliance's setup vars and reports whether
// blocking is switched on. An unreadable file counts as enabled, the
// installation default.
func (s *Server) blockingState() string {
	contents, err := s.env.ReadFile(env.FileSetupVars)
	if err != nil {
		return "enabled"
	}

	for line := range strings.Lines(contents) {
		if strings.TrimSpace(line) == "BLOCKING_ENABLED=false" {
			return "disabled"
		}
	}
	return "enabled"
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resolverState := "alive"
	if err := s.prober.Alive(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("resolver probe failed")
		resolverState = "unreachable"
	}

	summary, err := s.stats.Summary(ctx)
	if err != nil {
		replyError(w, http.StatusInternalServerError, "resolver_error", "failed to read resolver statistics")
		return
	}

	replyData(w, http.StatusOK, map[string]any{
		"blocking": s.blockingState(),
		"resolver": resolverState,
		"stats":    summary,
	})
}

type setBlockingRequest struct {
	Enabled *bool `json:"enabled"`
}

// handleSetBlocking switches blocking on or off by rewriting the
// BLOCKING_ENABLED line of the setup vars. The resolver picks the change up
// through its own config watch.
func (s *Server) handleSetBlocking(w http.ResponseWriter, r *http.Request) {
	var req setBlockingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		replyError(w, http.StatusBadRequest, "bad_request", "body must be a JSON object with a boolean \"enabled\"")
		return
	}

	contents, err := s.env.ReadFile(env.FileSetupVars)
	if err != nil {
		// No setup vars yet: start from an empty file.
		contents = ""
	}

	value := "BLOCKING_ENABLED=true"
	if !*req.Enabled {
		value = "BLOCKING_ENABLED=false"
	}

	var out []string
	replaced := false
	for line := range strings.Lines(contents) {
		line = strings.TrimRight(line, "\n")
		if strings.HasPrefix(line, "BLOCKING_ENABLED=") {
			line = value
			replaced = true
		}
		out = append(out, line)
	}
	if !replaced {
		out = append(out, value)
	}

	if err := s.env.WriteFile(env.FileSetupVars, strings.Join(out, "\n")+"\n"); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("failed to write setup vars")
		replyError(w, http.StatusInternalServerError, "file_error", "failed to update blocking state")
		return
	}

	replySuccess(w)
}

func (s *Server) handleTopDomains(w http.ResponseWriter, r *http.Request) {
	const defaultCount = 10

	top, err := s.stats.TopDomains(r.Context(), defaultCount)
	if err != nil {
		replyError(w, http.StatusInternalServerError, "resolver_error", "failed to read resolver statistics")
		return
	}

	replyData(w, http.StatusOK, top)
}
