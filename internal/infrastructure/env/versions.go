package env

import "github.com/bnema/sinkhole/internal/domain/version"

// ReadCoreVersion reads the core component's version from the local
// versions and branches files. Those files hold one space-separated field
// per component; the core component comes first.
func ReadCoreVersion(e Env) (version.Version, bool) {
	localVersions, err := e.ReadFile(FileLocalVersions)
	if err != nil {
		return version.Version{}, false
	}
	localBranches, err := e.ReadFile(FileLocalBranches)
	if err != nil {
		return version.Version{}, false
	}

	return version.ParseGitDescribe(
		version.FirstField(localVersions),
		version.FirstField(localBranches),
	)
}

// ReadWebVersion reads the web interface's version from its VERSION file.
func ReadWebVersion(e Env) (version.Version, bool) {
	raw, err := e.ReadFile(FileWebVersion)
	if err != nil {
		return version.Version{}, false
	}
	return version.ParseWebVersion(raw)
}
