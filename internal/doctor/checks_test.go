package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlerow/relkit/internal/config"
)

func writeManifest(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ManifestName), []byte("{}"), 0o644))
}

func statuses(results []Result) []Status {
	out := make([]Status, len(results))
	for i, r := range results {
		out[i] = r.Status
	}
	return out
}

func TestCheckStructure(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root)

	results := CheckStructure(root)
	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
}

func TestCheckStructureMissingManifest(t *testing.T) {
	results := CheckStructure(t.TempDir())
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Contains(t, results[0].Message, config.ManifestName)
	assert.NotEmpty(t, results[0].Recommendation)
}

func TestCheckStructureManifestIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, config.ManifestName), 0o755))

	results := CheckStructure(root)
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
}

func TestCheckConfigDefaults(t *testing.T) {
	results, cfg := CheckConfig(t.TempDir())
	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	require.NotNil(t, cfg)
	assert.Equal(t, "npm", cfg.Manager())
}

func TestCheckConfigValidationFallsBackToLenient(t *testing.T) {
	root := t.TempDir()
	content := "[package]\nmanager = \"pnpm\"\n\n[artifacts]\nexecutables = [\"/abs.js\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte(content), 0o644))

	results, cfg := CheckConfig(root)
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	require.NotNil(t, cfg, "lenient config should still load")
	assert.Equal(t, "pnpm", cfg.Manager())
}

func TestCheckConfigSyntaxError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte("not toml [["), 0o644))

	results, cfg := CheckConfig(root)
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Nil(t, cfg)
}

func TestCheckManagerFound(t *testing.T) {
	orig := lookPathFunc
	lookPathFunc = func(name string) (string, error) { return "/usr/local/bin/" + name, nil }
	t.Cleanup(func() { lookPathFunc = orig })

	results := CheckManager(&config.Config{})
	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Contains(t, results[0].Message, "npm")
}

func TestCheckManagerMissing(t *testing.T) {
	orig := lookPathFunc
	lookPathFunc = func(name string) (string, error) { return "", errors.New("not found") }
	t.Cleanup(func() { lookPathFunc = orig })

	results := CheckManager(&config.Config{})
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.NotEmpty(t, results[0].Recommendation)
}

func TestCheckArtifacts(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin", "cli.js"), []byte("#!"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin", "server.js"), []byte("#!"), 0o644))

	cfg := &config.Config{}
	results := CheckArtifacts(root, cfg)
	require.Len(t, results, 2)
	assert.Equal(t, []Status{StatusOK, StatusWarn}, statuses(results))
	assert.Contains(t, results[1].Recommendation, "relkit perms")
}

func TestCheckArtifactsMissingFile(t *testing.T) {
	cfg := &config.Config{Artifacts: config.ArtifactsConfig{Executables: []string{"gone.js"}}}
	results := CheckArtifacts(t.TempDir(), cfg)
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Contains(t, results[0].Message, "gone.js")
}

func TestCheckArtifactsNoneConfigured(t *testing.T) {
	cfg := &config.Config{Artifacts: config.ArtifactsConfig{Executables: []string{}}}
	results := CheckArtifacts(t.TempDir(), cfg)
	require.Len(t, results, 1)
	assert.Equal(t, StatusWarn, results[0].Status)
}

func TestCheckArtifactsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "bin"), 0o755))

	cfg := &config.Config{Artifacts: config.ArtifactsConfig{Executables: []string{"bin"}}}
	results := CheckArtifacts(root, cfg)
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
}
