package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrUnsupportedTGA is returned for TGA variants the decoder does not read.
var ErrUnsupportedTGA = errors.New("unsupported TGA")

const (
	tgaHeaderSize   = 18
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
	tgaTopOrigin    = 0x20
)

type tgaHeader struct {
	idLength   int
	colorMap   byte
	imageType  byte
	width      int
	height     int
	bpp        int
	descriptor byte
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, fmt.Errorf("TGA header truncated: %d bytes", len(data))
	}
	h := tgaHeader{
		idLength:   int(data[0]),
		colorMap:   data[1],
		imageType:  data[2],
		width:      int(data[12]) | int(data[13])<<8,
		height:     int(data[14]) | int(data[15])<<8,
		bpp:        int(data[16]),
		descriptor: data[17],
	}
	switch {
	case h.colorMap != 0:
		return h, fmt.Errorf("%w: color-mapped", ErrUnsupportedTGA)
	case h.imageType != tgaTrueColor && h.imageType != tgaTrueColorRLE:
		return h, fmt.Errorf("%w: image type %d", ErrUnsupportedTGA, h.imageType)
	case h.bpp != 24 && h.bpp != 32:
		return h, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedTGA, h.bpp)
	case h.width == 0 || h.height == 0:
		return h, fmt.Errorf("TGA has empty size %dx%d", h.width, h.height)
	}
	return h, nil
}

// DecodeTGA decodes an uncompressed or RLE true-color TGA image into
// top-down RGBA rows.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}
	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, errors.New("TGA image ID truncated")
	}

	px := tgaPixels{
		img:     image.NewRGBA(image.Rect(0, 0, h.width, h.height)),
		src:     data[offset:],
		stride:  h.bpp / 8,
		topDown: h.descriptor&tgaTopOrigin != 0,
	}
	if h.imageType == tgaTrueColor {
		err = px.raw()
	} else {
		err = px.rle()
	}
	if err != nil {
		return nil, err
	}
	return px.img, nil
}

// tgaPixels walks BGR(A) source pixels in file order.
type tgaPixels struct {
	img     *image.RGBA
	src     []byte
	pos     int
	stride  int
	n       int // pixels written
	topDown bool
}

func (p *tgaPixels) total() int {
	b := p.img.Bounds()
	return b.Dx() * b.Dy()
}

func (p *tgaPixels) read() (color.RGBA, bool) {
	if p.pos+p.stride > len(p.src) {
		return color.RGBA{}, false
	}
	s := p.src[p.pos : p.pos+p.stride]
	p.pos += p.stride
	c := color.RGBA{R: s[2], G: s[1], B: s[0], A: 255}
	if p.stride == 4 {
		c.A = s[3]
	}
	return c, true
}

// put stores the next pixel. Bottom-up files are flipped so row 0 is the top.
func (p *tgaPixels) put(c color.RGBA) {
	w := p.img.Bounds().Dx()
	h := p.img.Bounds().Dy()
	x, y := p.n%w, p.n/w
	if !p.topDown {
		y = h - 1 - y
	}
	p.img.SetRGBA(x, y, c)
	p.n++
}

func (p *tgaPixels) raw() error {
	for p.n < p.total() {
		c, ok := p.read()
		if !ok {
			return errors.New("TGA pixel data truncated")
		}
		p.put(c)
	}
	return nil
}

func (p *tgaPixels) rle() error {
	total := p.total()
	for p.n < total {
		if p.pos >= len(p.src) {
			return errors.New("TGA RLE data truncated")
		}
		packet := p.src[p.pos]
		p.pos++
		count := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			c, ok := p.read()
			if !ok {
				return errors.New("TGA RLE packet truncated")
			}
			for i := 0; i < count && p.n < total; i++ {
				p.put(c)
			}
			continue
		}
		for i := 0; i < count && p.n < total; i++ {
			c, ok := p.read()
			if !ok {
				return errors.New("TGA RLE packet truncated")
			}
			p.put(c)
		}
	}
	return nil
}
