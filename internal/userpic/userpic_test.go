package userpic

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeAtomically(t *testing.T, path string, data []byte) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, data, 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func receive(t *testing.T, ch <-chan image.Image) image.Image {
	t.Helper()
	select {
	case img := <-ch:
		return img
	case <-time.After(5 * time.Second):
		t.Fatal("no userpic received")
		return nil
	}
}

func TestDigest(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	assert.Equal(t, Digest(solid(8, 8, red)), Digest(solid(8, 8, red)))
	assert.NotEqual(t, Digest(solid(8, 8, red)), Digest(solid(8, 8, color.RGBA{G: 255, A: 255})))
	assert.NotEqual(t, Digest(solid(8, 8, red)), Digest(solid(4, 16, red)))
	assert.Zero(t, Digest(nil))

	nrgba := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(nrgba, nrgba.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)
	assert.Equal(t, Digest(solid(8, 8, red)), Digest(nrgba))

	// Sub-images are fingerprinted by their own pixels only.
	big := solid(16, 16, red)
	sub := big.SubImage(image.Rect(4, 4, 12, 12))
	assert.Equal(t, Digest(solid(8, 8, red)), Digest(sub))
}

func TestDecodeBytes(t *testing.T) {
	img, err := DecodeBytes(encodePNG(t, solid(5, 7, color.RGBA{B: 200, A: 255})))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 7), img.Bounds())

	_, err = DecodeBytes([]byte("not an image"))
	assert.Error(t, err)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStaticSource(t *testing.T) {
	img := solid(2, 2, color.White)
	s := Stream(context.Background(), nil, Static{Image: img})
	defer s.Close()
	assert.Same(t, img, receive(t, s.Userpics()))
}

func TestStreamClosesWhenSourcesFinish(t *testing.T) {
	s := Stream(context.Background(), nil, Static{Image: solid(1, 1, color.Black)})
	receive(t, s.Userpics())
	select {
	case _, ok := <-s.Userpics():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed")
	}
	s.Close()
}

func TestFileSourceFollowsRewrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userpic.png")
	writeAtomically(t, path, encodePNG(t, solid(4, 4, color.RGBA{R: 255, A: 255})))

	s := Stream(context.Background(), nil, File{Path: path})
	defer s.Close()

	first := receive(t, s.Userpics())
	require.NotNil(t, first)
	assert.Equal(t, Digest(solid(4, 4, color.RGBA{R: 255, A: 255})), Digest(first))

	writeAtomically(t, path, encodePNG(t, solid(6, 6, color.RGBA{G: 255, A: 255})))
	want := Digest(solid(6, 6, color.RGBA{G: 255, A: 255}))
	deadline := time.After(5 * time.Second)
	for {
		select {
		case img := <-s.Userpics():
			if img != nil && Digest(img) == want {
				return
			}
		case <-deadline:
			t.Fatal("rewrite not noticed")
		}
	}
}

func TestFileSourceReportsRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userpic.png")
	writeAtomically(t, path, encodePNG(t, solid(4, 4, color.White)))

	s := Stream(context.Background(), nil, File{Path: path})
	defer s.Close()
	require.NotNil(t, receive(t, s.Userpics()))

	require.NoError(t, os.Remove(path))
	assert.Nil(t, receive(t, s.Userpics()))
}

func TestChannelSourceForwards(t *testing.T) {
	picks := make(chan image.Image, 1)
	s := Stream(context.Background(), nil, Channel{C: picks})
	img := solid(3, 3, color.White)
	picks <- img
	assert.Same(t, img, receive(t, s.Userpics()))

	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("close did not stop the source")
	}
}
