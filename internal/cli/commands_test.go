package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lili041/tkkunify/pkg/tkkunify"
)

func resetUnifyFlags(t *testing.T) {
	t.Helper()
	saved := unifyFlags
	unifyFlags = unifyFlagValues{}
	t.Cleanup(func() { unifyFlags = saved })
}

func TestCommandsRegistered(t *testing.T) {
	expected := []string{"unify", "audit", "init", "version"}
	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "expected command %q to be registered", name)
	}
}

func TestBuildUnifyConfig_Defaults(t *testing.T) {
	resetUnifyFlags(t)
	dir := t.TempDir()

	cfg, marker, err := buildUnifyConfig(dir, false)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "textcritics.json"), cfg.MetadataPath)
	assert.Equal(t, filepath.Join(dir, "img"), cfg.SvgDir)
	assert.Equal(t, tkkunify.DefaultIDPrefix, cfg.IDPrefix)
	assert.Empty(t, marker)
}

func TestBuildUnifyConfig_FlagsWin(t *testing.T) {
	resetUnifyFlags(t)
	unifyFlags.metadata = "/explicit/doc.json"
	unifyFlags.svgDir = "/explicit/sheets"
	unifyFlags.prefix = "custom-"
	t.Setenv("TKK_PREFIX", "env-")

	cfg, _, err := buildUnifyConfig(t.TempDir(), false)
	require.NoError(t, err)

	assert.Equal(t, "/explicit/doc.json", cfg.MetadataPath)
	assert.Equal(t, "/explicit/sheets", cfg.SvgDir)
	assert.Equal(t, "custom-", cfg.IDPrefix)
}

func TestBuildUnifyConfig_EnvPrefixOverridesYaml(t *testing.T) {
	resetUnifyFlags(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tkkunify.yaml"),
		[]byte("id_prefix: yaml-\n"), 0644))
	t.Setenv("TKK_PREFIX", "env-")

	cfg, _, err := buildUnifyConfig(dir, false)
	require.NoError(t, err)
	assert.Equal(t, "env-", cfg.IDPrefix)
}

func TestBuildUnifyConfig_YamlResolvesPathsAndMarker(t *testing.T) {
	resetUnifyFlags(t)
	dir := t.TempDir()
	content := `metadata: data/textcritics.json
svg_dir: sheets
id_prefix: yaml-
row_table_marker: Uebersicht
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tkkunify.yaml"), []byte(content), 0644))

	cfg, marker, err := buildUnifyConfig(dir, false)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "textcritics.json"), cfg.MetadataPath)
	assert.Equal(t, filepath.Join(dir, "sheets"), cfg.SvgDir)
	assert.Equal(t, "yaml-", cfg.IDPrefix)
	assert.Equal(t, "Uebersicht", marker)
}

func TestBuildUnifyConfig_InvalidYaml(t *testing.T) {
	resetUnifyFlags(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tkkunify.yaml"), []byte("{{bad"), 0644))

	_, _, err := buildUnifyConfig(dir, false)
	assert.ErrorContains(t, err, "tkkunify.yaml")
}

func TestRunInit_RejectsUnknownTemplate(t *testing.T) {
	saved := initTemplate
	initTemplate = "doesnotexist"
	t.Cleanup(func() { initTemplate = saved })

	err := runInit(initCmd, []string{filepath.Join(t.TempDir(), "x")})
	assert.ErrorContains(t, err, "invalid template")
}

func TestRunInit_RequiresTarget(t *testing.T) {
	saved := initList
	initList = false
	t.Cleanup(func() { initList = saved })

	err := runInit(initCmd, nil)
	assert.ErrorContains(t, err, "target path required")
}
