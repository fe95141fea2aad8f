package api

import (
	"net/http"

	"github.com/bnema/sinkhole/internal/domain/version"
	"github.com/bnema/sinkhole/internal/infrastructure/env"
)

// handleVersion reports the versions of every appliance component. A
// component whose version files are missing or malformed reports empty
// fields rather than failing the whole endpoint.
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	core, _ := env.ReadCoreVersion(s.env)
	web, _ := env.ReadWebVersion(s.env)

	api := version.Version{
		Tag:    s.build.Version,
		Branch: "master",
		Hash:   s.build.Commit,
	}

	replyData(w, http.StatusOK, map[string]version.Version{
		"core": core,
		"web":  web,
		"api":  api,
	})
}
