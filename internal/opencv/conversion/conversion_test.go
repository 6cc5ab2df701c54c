package conversion

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"sticker-goblin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestMatToImageKeepsAlpha(t *testing.T) {
	// one BGRA pixel: blue 10, green 20, red 30, half transparent
	mat, err := gocv.NewMatFromBytes(1, 1, gocv.MatTypeCV8UC4, []byte{10, 20, 30, 128})
	require.NoError(t, err)
	defer mat.Close()

	img, err := MatToImage(mat)
	require.NoError(t, err)
	require.IsType(t, &image.NRGBA{}, img)
	assert.Equal(t, color.NRGBA{R: 30, G: 20, B: 10, A: 128}, img.At(0, 0))
}

func TestMatToImageGrayAndBGR(t *testing.T) {
	gray, err := gocv.NewMatFromBytes(1, 1, gocv.MatTypeCV8UC1, []byte{77})
	require.NoError(t, err)
	defer gray.Close()

	img, err := MatToImage(gray)
	require.NoError(t, err)
	assert.Equal(t, color.Gray{Y: 77}, img.At(0, 0))

	bgr, err := gocv.NewMatFromBytes(1, 1, gocv.MatTypeCV8UC3, []byte{1, 2, 3})
	require.NoError(t, err)
	defer bgr.Close()

	img, err = MatToImage(bgr)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 3, G: 2, B: 1, A: 255}, img.At(0, 0))
}

func TestMatToImageRejectsWideDepth(t *testing.T) {
	mat := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV16UC3)
	defer mat.Close()

	_, err := MatToImage(mat)
	assert.Error(t, err)
}

func TestDecodeThumbnailTransparentPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: 0})
		}
	}
	path := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := ThumbnailDecoder{}.DecodeThumbnail(path, models.ThumbnailBounds{MaxWidth: 10, MaxHeight: 10})
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 10, 5), img.Bounds())
	_, _, _, a := img.At(5, 2).RGBA()
	assert.Zero(t, a)
}

func TestDecodeThumbnailMissingFile(t *testing.T) {
	_, err := ThumbnailDecoder{}.DecodeThumbnail(filepath.Join(t.TempDir(), "nope.png"), models.ThumbnailBounds{MaxWidth: 10, MaxHeight: 10})
	assert.Error(t, err)
}
