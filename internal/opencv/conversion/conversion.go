package conversion

import (
	"fmt"
	"image"
	"image/color"

	"sticker-goblin/internal/models"

	"gocv.io/x/gocv"
)

// MatToImage converts a decoded GoCV Mat to a standard Go image
func MatToImage(src gocv.Mat) (image.Image, error) {
	if src.Empty() {
		return nil, fmt.Errorf("cannot convert empty Mat")
	}

	rows := src.Rows()
	cols := src.Cols()

	switch src.Type() {
	case gocv.MatTypeCV8UC1:
		return matToGray(src, rows, cols), nil
	case gocv.MatTypeCV8UC3:
		return matBGRToRGBA(src, rows, cols), nil
	case gocv.MatTypeCV8UC4:
		return matBGRAToNRGBA(src, rows, cols), nil
	default:
		return nil, fmt.Errorf("unsupported Mat type %v: need 8-bit with 1, 3 or 4 channels", src.Type())
	}
}

// Thumbnail shrinks src to fit within bounds, preserving aspect ratio.
// The returned Mat is owned by the caller.
func Thumbnail(src gocv.Mat, bounds models.ThumbnailBounds) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("cannot resize empty Mat")
	}

	width, height := bounds.Fit(src.Cols(), src.Rows())
	if width == src.Cols() && height == src.Rows() {
		return src.Clone(), nil
	}

	dst := gocv.NewMat()
	gocv.Resize(src, &dst, image.Pt(width, height), 0, 0, gocv.InterpolationLanczos4)
	if dst.Empty() {
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("resize to %dx%d produced empty Mat", width, height)
	}

	return dst, nil
}

func matToGray(src gocv.Mat, rows, cols int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, cols, rows))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.SetGray(x, y, color.Gray{Y: src.GetUCharAt(y, x)})
		}
	}

	return img
}

func matBGRToRGBA(src gocv.Mat, rows, cols int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := src.GetVecbAt(y, x)
			img.SetRGBA(x, y, color.RGBA{R: v[2], G: v[1], B: v[0], A: 255})
		}
	}

	return img
}

// matBGRAToNRGBA keeps the alpha channel; OpenCV stores it unpremultiplied
func matBGRAToNRGBA(src gocv.Mat, rows, cols int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := src.GetVecbAt(y, x)
			img.SetNRGBA(x, y, color.NRGBA{R: v[2], G: v[1], B: v[0], A: v[3]})
		}
	}

	return img
}

// ThumbnailDecoder reads image files with OpenCV and shrinks them for display
type ThumbnailDecoder struct{}

// DecodeThumbnail loads the image at path and fits it within bounds.
// Transparent stickers keep their alpha channel.
func (ThumbnailDecoder) DecodeThumbnail(path string, bounds models.ThumbnailBounds) (image.Image, error) {
	src := gocv.IMRead(path, gocv.IMReadUnchanged)
	defer src.Close()
	if src.Empty() {
		return nil, fmt.Errorf("decode %s: unreadable or unsupported image", path)
	}

	thumb, err := Thumbnail(src, bounds)
	defer thumb.Close()
	if err != nil {
		return nil, fmt.Errorf("resize %s: %w", path, err)
	}

	img, err := MatToImage(thumb)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	return img, nil
}
