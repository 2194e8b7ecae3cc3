package userpic

import (
	"encoding/binary"
	"image"
	"image/draw"

	"golang.org/x/crypto/blake2b"
)

// Digest fingerprints the pixels of img. A nil image has the zero digest.
func Digest(img image.Image) [blake2b.Size256]byte {
	if img == nil {
		return [blake2b.Size256]byte{}
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	b := rgba.Bounds()
	var header [16]byte
	binary.LittleEndian.PutUint64(header[:8], uint64(b.Dx()))
	binary.LittleEndian.PutUint64(header[8:], uint64(b.Dy()))

	h, _ := blake2b.New256(nil)
	h.Write(header[:])
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := rgba.PixOffset(b.Min.X, y)
		h.Write(rgba.Pix[off : off+4*b.Dx()])
	}
	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}
