package jigsaw

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("jigsaw: empty image")

// DecodeImage decodes a png, jpeg, gif, bmp, tiff, or webp image and returns
// it with its format name. Decoded images use a top-left origin, so pieces
// cut from them must be generated with OriginTopLeft.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}

// LoadImageFile opens and decodes the image at path.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b := img.Bounds()
	Logger().Info("image loaded", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return img, nil
}
