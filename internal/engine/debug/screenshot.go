// Package debug provides developer conveniences such as screenshots.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes framebuffer captures as PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots returns a writer saving to dir with the given file prefix.
func NewScreenshots(dir, prefix string) *Screenshots {
	if prefix == "" {
		prefix = "screenshot"
	}
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture will be written to.
func (s *Screenshots) Filename() string {
	name := fmt.Sprintf("%s_%s.png", s.prefix, s.now().Format("2006-01-02_15-04-05.000"))
	return filepath.Join(s.dir, name)
}

// SaveGL writes bottom-up RGBA rows as read back from GL. Returns the path.
func (s *Screenshots) SaveGL(pixels []byte, width, height int) (string, error) {
	img, err := FromGL(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.Save(img)
}

// Save writes img as a PNG. Returns the path.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}

	path := s.Filename()
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing screenshot: %w", err)
	}
	return path, nil
}

// FromGL converts bottom-up RGBA rows into a top-down image.
func FromGL(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	// Alpha in the back buffer is not meaningful for a screenshot.
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img, nil
}
