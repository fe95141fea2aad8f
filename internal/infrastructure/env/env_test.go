package env_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/sinkhole/internal/domain/version"
	"github.com/bnema/sinkhole/internal/infrastructure/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemEnv_ReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "setupVars.conf")
	require.NoError(t, os.WriteFile(path, []byte("BLOCKING_ENABLED=true\n"), 0o644))

	e := env.NewFilesystem(env.Locations{env.FileSetupVars: path})

	contents, err := e.ReadFile(env.FileSetupVars)
	require.NoError(t, err)
	assert.Equal(t, "BLOCKING_ENABLED=true\n", contents)

	require.NoError(t, e.WriteFile(env.FileSetupVars, "BLOCKING_ENABLED=false\n"))
	contents, err = e.ReadFile(env.FileSetupVars)
	require.NoError(t, err)
	assert.Equal(t, "BLOCKING_ENABLED=false\n", contents)
}

func TestFilesystemEnv_UnconfiguredFile(t *testing.T) {
	e := env.NewFilesystem(env.Locations{})

	_, err := e.ReadFile(env.FileSetupVars)
	require.Error(t, err)
}

func TestReadCoreVersion(t *testing.T) {
	e := env.NewMemory(map[env.File]string{
		env.FileLocalVersions: "v3.3.1-219-g6689e00 v3.3-190-gf7e1a28 vDev-d06deca",
		env.FileLocalBranches: "development devel tweak/getClientNames",
	})

	v, ok := env.ReadCoreVersion(e)
	require.True(t, ok)
	assert.Equal(t, version.Version{Tag: "", Branch: "development", Hash: "6689e00"}, v)
}

func TestReadCoreVersion_Invalid(t *testing.T) {
	e := env.NewMemory(map[env.File]string{
		env.FileLocalVersions: "invalid v3.3-190-gf7e1a28 vDev-d06deca",
		env.FileLocalBranches: "development devel tweak/getClientNames",
	})

	_, ok := env.ReadCoreVersion(e)
	assert.False(t, ok)
}

func TestReadCoreVersion_MissingFiles(t *testing.T) {
	_, ok := env.ReadCoreVersion(env.NewMemory(nil))
	assert.False(t, ok)
}

func TestReadWebVersion(t *testing.T) {
	e := env.NewMemory(map[env.File]string{
		env.FileWebVersion: "v1.0.0 master abcdefg\n",
	})

	v, ok := env.ReadWebVersion(e)
	require.True(t, ok)
	assert.Equal(t, version.Version{Tag: "v1.0.0", Branch: "master", Hash: "abcdefg"}, v)
}
