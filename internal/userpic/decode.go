package userpic

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode reads a png, jpeg, gif, bmp or webp image.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode userpic")
	}
	if b := img.Bounds(); b.Empty() {
		return nil, errors.Errorf("decode userpic: empty %s image", format)
	}
	return img, nil
}

func DecodeBytes(data []byte) (image.Image, error) {
	return Decode(bytes.NewReader(data))
}

func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open userpic")
	}
	defer f.Close()
	return Decode(f)
}
