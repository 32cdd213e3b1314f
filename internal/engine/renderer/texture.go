package renderer

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadTexture creates a mipmapped, repeating GL texture from img. Requires a
// current GL context.
func UploadTexture(img *image.RGBA) uint32 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// DeleteTextures releases the given texture handles.
func DeleteTextures(handles []uint32) {
	if len(handles) > 0 {
		gl.DeleteTextures(int32(len(handles)), &handles[0])
	}
}
