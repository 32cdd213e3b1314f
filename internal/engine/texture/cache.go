package texture

import (
	"image"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

// Uploader turns decoded pixels into a GPU texture handle.
type Uploader func(img *image.RGBA) uint32

// Cache loads each texture file once. A file that cannot be loaded maps to
// handle 0, which the renderer treats as "draw with the material colour".
type Cache struct {
	dir     string
	upload  Uploader
	handles map[string]uint32
	order   []uint32
}

// NewCache returns a cache resolving names against dir.
func NewCache(dir string, upload Uploader) *Cache {
	return &Cache{dir: dir, upload: upload, handles: make(map[string]uint32)}
}

// Get returns the handle for name, loading it on first use.
func (c *Cache) Get(name string) uint32 {
	if name == "" {
		return 0
	}
	if h, ok := c.handles[name]; ok {
		return h
	}

	path := filepath.Join(c.dir, name)
	img, err := DecodeFile(path, true)
	if err != nil {
		logger.Warn("texture failed", zap.String("path", path), zap.Error(err))
		c.handles[name] = 0
		return 0
	}

	h := c.upload(img)
	c.handles[name] = h
	if h != 0 {
		c.order = append(c.order, h)
	}
	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Uint32("handle", h))
	return h
}

// Handles returns every non-zero handle in load order.
func (c *Cache) Handles() []uint32 {
	return c.order
}
