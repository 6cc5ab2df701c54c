package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sticker-goblin/internal/logger"
	"sticker-goblin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigPath, EnvCatalogPath, EnvAssetsDir, EnvTieMode,
		EnvVowelSource, EnvSeed, EnvJSONLogs, EnvLogLevel, "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, models.TieReport, cfg.TieMode())
	assert.Equal(t, models.VowelsRecorded, cfg.VowelSource())
	assert.Equal(t, 35*time.Millisecond, cfg.FrameDelay())
	assert.Equal(t, models.ThumbnailBounds{MaxWidth: 500, MaxHeight: 300}, cfg.ThumbnailBounds())
	assert.Equal(t, logger.InfoLevel, cfg.LogLevel())
}

func TestLoadTOMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "goblin.toml", `
[catalog]
path = "sheets/data.yaml"

[draw]
tie_mode = "random"
vowel_source = "counted"
seed = 99

[animation]
frames = 20
delay_ms = 50

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sheets/data.yaml", cfg.Catalog.Path)
	assert.Equal(t, models.TieRandom, cfg.TieMode())
	assert.Equal(t, models.VowelsCounted, cfg.VowelSource())
	assert.Equal(t, uint64(99), cfg.Draw.Seed)
	assert.Equal(t, 20, cfg.Animation.Frames)
	assert.Equal(t, 50*time.Millisecond, cfg.FrameDelay())
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel())
	// untouched sections keep their defaults
	assert.Equal(t, 500, cfg.Thumbnail.MaxWidth)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "goblin.toml", `
[draw]
tie_mode = "random"
`)
	t.Setenv(EnvTieMode, "report")
	t.Setenv(EnvCatalogPath, "/srv/stickers.json")
	t.Setenv(EnvSeed, "12345")
	t.Setenv(EnvJSONLogs, "true")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, models.TieReport, cfg.TieMode())
	assert.Equal(t, "/srv/stickers.json", cfg.Catalog.Path)
	assert.Equal(t, uint64(12345), cfg.Draw.Seed)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, logger.WarnLevel, cfg.LogLevel())
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "other.toml", "[animation]\nframes = 3\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Animation.Frames)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cases := map[string]string{
		"tie mode":   "[draw]\ntie_mode = \"coin-flip\"\n",
		"vowels":     "[draw]\nvowel_source = \"guessed\"\n",
		"frames":     "[animation]\nframes = 0\n",
		"delay":      "[animation]\ndelay_ms = -5\n",
		"thumbnail":  "[thumbnail]\nmax_width = 0\n",
		"log level":  "[log]\nlevel = \"chatty\"\n",
		"empty path": "[catalog]\npath = \" \"\n",
	}
	for name, content := range cases {
		path := writeFile(t, dir, "bad.toml", content)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "-1")

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMalformedTOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "broken.toml", "[draw\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestResolveAsset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.Path = filepath.Join("assets", "data.json")

	assert.Equal(t, filepath.Join("assets", "img", "a.png"), cfg.ResolveAsset("img/a.png"))

	cfg.Catalog.AssetsDir = filepath.Join("opt", "goblin")
	assert.Equal(t, filepath.Join("opt", "goblin", "b.png"), cfg.ResolveAsset("b.png"))

	abs := filepath.Join(t.TempDir(), "c.png")
	assert.Equal(t, abs, cfg.ResolveAsset(abs))
}
