package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bnema/sinkhole/internal/domain/lists"
)

// parseList resolves the {list} URL parameter. An unknown list name is a
// 404: the resource space only has three lists.
func parseList(w http.ResponseWriter, r *http.Request) (lists.List, bool) {
	list, err := lists.Parse(chi.URLParam(r, "list"))
	if err != nil {
		replyError(w, http.StatusNotFound, "not_found", "unknown list: "+chi.URLParam(r, "list"))
		return "", false
	}
	return list, true
}

// replyStorageError maps repository failures to responses. Storage failures
// never masquerade as success.
func replyStorageError(w http.ResponseWriter, err error) {
	if errors.Is(err, lists.ErrUnknownList) {
		replyError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	replyError(w, http.StatusInternalServerError, "database_error", "failed to access list storage")
}

func (s *Server) handleGetList(w http.ResponseWriter, r *http.Request) {
	list, ok := parseList(w, r)
	if !ok {
		return
	}

	domains, err := s.repo.GetAll(r.Context(), list)
	if err != nil {
		replyStorageError(w, err)
		return
	}

	replyData(w, http.StatusOK, domains)
}

func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	list, ok := parseList(w, r)
	if !ok {
		return
	}
	domain := chi.URLParam(r, "domain")

	found, err := s.repo.Contains(r.Context(), list, domain)
	if err != nil {
		replyStorageError(w, err)
		return
	}

	replyData(w, http.StatusOK, map[string]any{
		"domain":    domain,
		"contained": found,
	})
}

type addDomainRequest struct {
	Domain string `json:"domain"`
}

func (s *Server) handleAddDomain(w http.ResponseWriter, r *http.Request) {
	list, ok := parseList(w, r)
	if !ok {
		return
	}

	var req addDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Domain == "" {
		replyError(w, http.StatusBadRequest, "bad_request", "body must be a JSON object with a non-empty \"domain\"")
		return
	}

	if err := s.repo.Add(r.Context(), list, req.Domain); err != nil {
		replyStorageError(w, err)
		return
	}

	replySuccess(w)
}

func (s *Server) handleRemoveDomain(w http.ResponseWriter, r *http.Request) {
	list, ok := parseList(w, r)
	if !ok {
		return
	}
	domain := chi.URLParam(r, "domain")

	// Removing an absent domain succeeds: the desired state already holds.
	if err := s.repo.Remove(r.Context(), list, domain); err != nil {
		replyStorageError(w, err)
		return
	}

	replySuccess(w)
}
