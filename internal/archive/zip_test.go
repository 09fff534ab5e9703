package archive_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-management-service/internal/archive"
)

func TestZipStream_PreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	z := archive.NewZipStream(&buf, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, z.Append("b.xlsx", []byte("second")))
	require.NoError(t, z.Append("a.xlsx", []byte("first")))
	require.NoError(t, z.Close())
	assert.Equal(t, 2, z.Len())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "b.xlsx", zr.File[0].Name)
	assert.Equal(t, "a.xlsx", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestZipStream_Empty(t *testing.T) {
	var buf bytes.Buffer
	z := archive.NewZipStream(&buf, time.Now())
	require.NoError(t, z.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}

func TestZipStream_DuplicateName(t *testing.T) {
	var buf bytes.Buffer
	z := archive.NewZipStream(&buf, time.Now())

	require.NoError(t, z.Append("team.xlsx", []byte("1")))
	err := z.Append("team.xlsx", []byte("2"))
	assert.ErrorIs(t, err, archive.ErrDuplicateEntry)

	// Дубликат не ломает архив.
	require.NoError(t, z.Close())
	assert.Equal(t, 1, z.Len())
}

func TestZipStream_ClosedTwice(t *testing.T) {
	var buf bytes.Buffer
	z := archive.NewZipStream(&buf, time.Now())

	require.NoError(t, z.Close())
	assert.ErrorIs(t, z.Close(), archive.ErrClosed)
	assert.ErrorIs(t, z.Append("late.xlsx", nil), archive.ErrClosed)
}

type brokenWriter struct{}

var errBrokenPipe = errors.New("broken pipe")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestZipStream_WriteFailureIsSticky(t *testing.T) {
	z := archive.NewZipStream(brokenWriter{}, time.Now())

	// zip.Writer буферизует, поэтому ошибка может проявиться как на Append, так и на Close.
	payload := bytes.Repeat([]byte("x"), 1<<20)
	firstErr := z.Append("big.xlsx", payload)
	closeErr := z.Close()

	if firstErr != nil {
		assert.ErrorIs(t, firstErr, errBrokenPipe)
	}
	assert.ErrorIs(t, closeErr, errBrokenPipe)
}
