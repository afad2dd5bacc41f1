package photostore

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	photostoreerrors "github.com/Urbancode-IT/INOUT-sub000/internal/photostore/errors"

	"github.com/stretchr/testify/assert"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestDiskStore_SaveAndRead(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	data := pngBytes(t)
	ref, err := store.Save(data, "selfie.png")
	assert.NoError(t, err)
	assert.NotContains(t, ref, "selfie")
	assert.Contains(t, ref, ".png")

	got, err := store.Read(ref)
	assert.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDiskStore_RejectsNonImage(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Save([]byte("plain text payload"), "notes.txt")
	assert.ErrorIs(t, err, photostoreerrors.ErrUnsupportedPhotoType)

	_, err = store.Save(nil, "empty.jpg")
	assert.ErrorIs(t, err, photostoreerrors.ErrEmptyPhoto)
}

func TestDiskStore_ReadRefusesTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Read("../../etc/passwd")
	assert.ErrorIs(t, err, photostoreerrors.ErrPhotoNotFound)
}

func TestDiskStore_ReadUnknownRef(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Read("2025/06/09/missing.jpg")
	assert.ErrorIs(t, err, photostoreerrors.ErrPhotoNotFound)
}
