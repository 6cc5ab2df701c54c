package services

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"sticker-goblin/internal/catalog"
	"sticker-goblin/internal/debug/timing"
	"sticker-goblin/internal/logger"
	"sticker-goblin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogServiceLoadFile(t *testing.T) {
	path := writeCatalog(t, "data.json", `[
		{"sheet": "A", "image": "a.png", "stickers": [{"word": "Cat", "vowels": 1}]},
		{"sheet": "B", "image": "b.png", "stickers": []},
		{"sheet": "C", "image": "c.png", "stickers": [{"word": "Eagle", "Vowels": 3}]}
	]`)
	svc := NewCatalogService(catalog.Options{}, logger.NopLogger{}, timing.NewTracker())

	sheets, err := svc.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, sheets.IDs())
}

func TestCatalogServiceLoadYAML(t *testing.T) {
	path := writeCatalog(t, "data.yml", "- sheet: Y\n  image: y.png\n  stickers:\n    - word: Yak\n      vowels: 2\n")
	svc := NewCatalogService(catalog.Options{}, logger.NopLogger{}, timing.NewTracker())

	sheets, err := svc.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, sheets.IDs())
}

func TestCatalogServiceFileErrors(t *testing.T) {
	svc := NewCatalogService(catalog.Options{}, logger.NopLogger{}, timing.NewTracker())

	_, err := svc.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = svc.LoadFile(context.Background(), writeCatalog(t, "bad.json", `{"sheet": 1}`))
	assert.ErrorIs(t, err, catalog.ErrNotAList)

	_, err = svc.LoadFile(context.Background(), writeCatalog(t, "garbled.json", `[{`))
	assert.Error(t, err)

	_, err = svc.LoadFile(context.Background(), writeCatalog(t, "trailing.json", `[{"sheet": "A", "image": "a.png", "stickers": []}] }{`))
	assert.ErrorIs(t, err, catalog.ErrTrailingData)
}

type fakeDecoder struct {
	paths  []string
	broken map[string]bool
}

func (d *fakeDecoder) DecodeThumbnail(path string, bounds models.ThumbnailBounds) (image.Image, error) {
	d.paths = append(d.paths, path)
	if d.broken[path] {
		return nil, errors.New("corrupt file")
	}
	return image.NewRGBA(image.Rect(0, 0, bounds.MaxWidth, bounds.MaxHeight)), nil
}

func TestThumbnailServicePreload(t *testing.T) {
	decoder := &fakeDecoder{broken: map[string]bool{"assets/b.png": true}}
	repo := models.NewThumbnailRepository()
	svc := NewThumbnailService(
		decoder,
		repo,
		models.ThumbnailBounds{MaxWidth: 50, MaxHeight: 30},
		func(ref string) string { return "assets/" + ref },
		logger.NopLogger{},
		timing.NewTracker(),
	)
	c := models.Catalog{
		{ID: "A", Image: "a.png", Stickers: []models.Sticker{{Word: "Cat", Vowels: 1}}},
		{ID: "B", Image: "b.png", Stickers: []models.Sticker{{Word: "Owl", Vowels: 1}}},
	}

	require.NoError(t, svc.Preload(context.Background(), c))

	assert.Equal(t, []string{"assets/a.png", "assets/b.png"}, decoder.paths)
	require.NotNil(t, svc.Lookup("A"))
	assert.Equal(t, 50, svc.Lookup("A").Bounds().Dx())
	assert.Nil(t, svc.Lookup("B"))
	assert.EqualError(t, repo.Failure("B"), "corrupt file")

	stats := repo.GetStats()
	assert.Equal(t, 1, stats.Loaded)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, int64(1500), stats.Pixels)

	svc.Cleanup()
	assert.Nil(t, svc.Lookup("A"))
}

func TestThumbnailServiceDuplicateIDKeepsDecodedImage(t *testing.T) {
	decoder := &fakeDecoder{broken: map[string]bool{"bad.png": true}}
	repo := models.NewThumbnailRepository()
	svc := NewThumbnailService(decoder, repo, models.ThumbnailBounds{MaxWidth: 4, MaxHeight: 2},
		func(ref string) string { return ref }, logger.NopLogger{}, timing.NewTracker())

	c := models.Catalog{
		{ID: "7", Image: "good.png"},
		{ID: "7", Image: "bad.png"},
	}
	require.NoError(t, svc.Preload(context.Background(), c))

	assert.Equal(t, []string{"good.png", "bad.png"}, decoder.paths)
	require.NotNil(t, svc.Lookup("7"))
	assert.NoError(t, repo.Failure("7"))
	assert.Equal(t, 0, repo.GetStats().Failed)
}

func TestThumbnailServicePreloadCancelled(t *testing.T) {
	decoder := &fakeDecoder{}
	svc := NewThumbnailService(decoder, models.NewThumbnailRepository(), models.ThumbnailBounds{MaxWidth: 1, MaxHeight: 1},
		func(ref string) string { return ref }, logger.NopLogger{}, timing.NewTracker())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Preload(ctx, models.Catalog{{ID: "A", Image: "a.png"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, decoder.paths)
}
