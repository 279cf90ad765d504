package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldCwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
	require.NoError(t, os.Chdir(dir))
}

// projectDir returns a temp directory marked as a repo root so config
// discovery never walks above it.
func projectDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	return root
}

func TestFindConfigFile_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "custom.yaml")
	err := os.WriteFile(tmpFile, []byte("manifests_dir: test"), 0o644)
	require.NoError(t, err)

	path, err := findConfigFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, tmpFile, path)
}

func TestFindConfigFile_ExplicitPathNotFound(t *testing.T) {
	_, err := findConfigFile("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestFindConfigFile_AutoDiscovery(t *testing.T) {
	root := projectDir(t)
	configPath := filepath.Join(root, "tsmaint.yaml")
	err := os.WriteFile(configPath, []byte("manifests_dir: test"), 0o644)
	require.NoError(t, err)

	nested := filepath.Join(root, "deep", "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	path, err := findConfigFile("")
	require.NoError(t, err)

	// Resolve symlinks for comparison (macOS /var -> /private/var)
	expectedPath, _ := filepath.EvalSymlinks(configPath)
	actualPath, _ := filepath.EvalSymlinks(path)
	assert.Equal(t, expectedPath, actualPath)
}

func TestFindConfigFile_PrefersYamlOverYml(t *testing.T) {
	root := projectDir(t)
	yamlPath := filepath.Join(root, "tsmaint.yaml")
	ymlPath := filepath.Join(root, "tsmaint.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("manifests_dir: yaml"), 0o644))
	require.NoError(t, os.WriteFile(ymlPath, []byte("manifests_dir: yml"), 0o644))
	chdir(t, root)

	path, err := findConfigFile("")
	require.NoError(t, err)

	expectedPath, _ := filepath.EvalSymlinks(yamlPath)
	actualPath, _ := filepath.EvalSymlinks(path)
	assert.Equal(t, expectedPath, actualPath) // Should prefer .yaml
}

func TestFindConfigFile_StopsAtGitRoot(t *testing.T) {
	// Config above .git should not be found
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "tsmaint.yaml"), []byte("manifests_dir: above"), 0o644))

	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(project, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(project, ".git"), 0o755))
	chdir(t, project)

	path, err := findConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, "", path)
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, projectDir(t))

	cfg, path, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, "protos/manifests", cfg.ManifestsDir)
	assert.Equal(t, "", cfg.Template)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, cfg.Generate.DryRun)
}

func TestLoadConfig_File(t *testing.T) {
	root := projectDir(t)
	content := "manifests_dir: schemas\noutput_dir: migrations\ngenerate:\n  dry_run: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "tsmaint.yaml"), []byte(content), 0o644))
	chdir(t, root)

	cfg, path, err := LoadConfig("")
	require.NoError(t, err)
	assert.NotEqual(t, "", path)
	assert.Equal(t, "schemas", cfg.ManifestsDir)
	assert.Equal(t, "migrations", cfg.OutputDir)
	assert.True(t, cfg.Generate.DryRun)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	root := projectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "tsmaint.yaml"), []byte("manifests_dir: from_file"), 0o644))
	chdir(t, root)
	t.Setenv("TSMAINT_MANIFESTS_DIR", "from_env")
	t.Setenv("TSMAINT_GENERATE_DRY_RUN", "true")

	cfg, _, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.ManifestsDir)
	assert.True(t, cfg.Generate.DryRun)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	root := projectDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "tsmaint.yaml"), []byte(":\tnot yaml"), 0o644))
	chdir(t, root)

	_, _, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
