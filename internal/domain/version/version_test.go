package version_test

import (
	"testing"

	"github.com/bnema/sinkhole/internal/domain/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitDescribe_Release(t *testing.T) {
	v, ok := version.ParseGitDescribe("v3.3.1-0-gfbee18e", "master")
	require.True(t, ok)
	assert.Equal(t, version.Version{Tag: "v3.3.1", Branch: "master", Hash: "fbee18e"}, v)
}

func TestParseGitDescribe_Dev(t *testing.T) {
	// 222 commits past the tag: the tag no longer identifies this build.
	v, ok := version.ParseGitDescribe("v3.3.1-222-gd9c924b", "development")
	require.True(t, ok)
	assert.Equal(t, version.Version{Tag: "", Branch: "development", Hash: "d9c924b"}, v)
}

func TestParseGitDescribe_Invalid(t *testing.T) {
	_, ok := version.ParseGitDescribe("invalid", "master")
	assert.False(t, ok)
}

func TestParseWebVersion_Dev(t *testing.T) {
	v, ok := version.ParseWebVersion(" development d2037fd")
	require.True(t, ok)
	assert.Equal(t, version.Version{Tag: "", Branch: "development", Hash: "d2037fd"}, v)
}

func TestParseWebVersion_Release(t *testing.T) {
	v, ok := version.ParseWebVersion("v1.0.0 master abcdefg")
	require.True(t, ok)
	assert.Equal(t, version.Version{Tag: "v1.0.0", Branch: "master", Hash: "abcdefg"}, v)
}

func TestParseWebVersion_Invalid(t *testing.T) {
	_, ok := version.ParseWebVersion("invalid data")
	assert.False(t, ok)
}

func TestParseWebVersion_TrailingNewline(t *testing.T) {
	v, ok := version.ParseWebVersion(" development d2037fd\n")
	require.True(t, ok)
	assert.Equal(t, version.Version{Tag: "", Branch: "development", Hash: "d2037fd"}, v)
}

func TestFirstField(t *testing.T) {
	assert.Equal(t, "v3.3.1-219-g6689e00",
		version.FirstField("v3.3.1-219-g6689e00 v3.3-190-gf7e1a28 vDev-d06deca\n"))
	assert.Equal(t, "development",
		version.FirstField("development devel tweak/getClientNames"))
	assert.Equal(t, "", version.FirstField(""))
}
