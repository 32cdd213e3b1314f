// Package texture decodes image files into RGBA pixels and uploads them as
// OpenGL textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// Decode decodes data into an RGBA image. name selects the TGA decoder by
// extension; every other format is sniffed. With flipY the rows are reversed
// so row 0 is the bottom of the picture, which is what GL samples at v = 0.
func Decode(data []byte, name string, flipY bool) (*image.RGBA, error) {
	var (
		img *image.RGBA
		err error
	)
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		var src image.Image
		src, _, err = image.Decode(bytes.NewReader(data))
		if err == nil {
			img = ToRGBA(src)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if flipY {
		FlipVertical(img)
	}
	return img, nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string, flipY bool) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, path, flipY)
}

// ToRGBA converts any image to an *image.RGBA anchored at the origin.
func ToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// FlipVertical reverses the rows of img in place.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := img.Bounds().Dx() * 4
	tmp := make([]byte, row)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[top*img.Stride : top*img.Stride+row]
		b := img.Pix[bottom*img.Stride : bottom*img.Stride+row]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
