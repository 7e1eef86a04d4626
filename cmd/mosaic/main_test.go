package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/esimov/mosaic"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCloser struct {
	bytes.Buffer
	closeErr error
	closed   int
}

func (f *failingCloser) Close() error {
	f.closed++
	return f.closeErr
}

type drawerFunc func(w io.Writer, res *mosaic.Result) error

func (f drawerFunc) Draw(w io.Writer, res *mosaic.Result) error { return f(w, res) }

func TestWriteOutput(t *testing.T) {
	res := &mosaic.Result{Width: 10, Height: 10}
	okDrawer := drawerFunc(func(w io.Writer, _ *mosaic.Result) error {
		_, err := io.WriteString(w, "mosaic")
		return err
	})

	t.Run("closes after drawing", func(t *testing.T) {
		dst := &failingCloser{}
		require.NoError(t, writeOutput(dst, okDrawer, res))
		assert.Equal(t, "mosaic", dst.String())
		assert.Equal(t, 1, dst.closed)
	})

	t.Run("reports close error", func(t *testing.T) {
		diskFull := errors.New("no space left on device")
		dst := &failingCloser{closeErr: diskFull}
		err := writeOutput(dst, okDrawer, res)
		require.ErrorIs(t, err, diskFull)
		assert.Contains(t, err.Error(), "unable to close output file")
	})

	t.Run("draw error wins", func(t *testing.T) {
		drawErr := errors.New("draw failed")
		dst := &failingCloser{closeErr: errors.New("close failed")}
		err := writeOutput(dst, drawerFunc(func(io.Writer, *mosaic.Result) error { return drawErr }), res)
		require.ErrorIs(t, err, drawErr)
		assert.Equal(t, 1, dst.closed)
	})
}
