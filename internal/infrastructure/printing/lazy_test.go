package printing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	renders int
	closed  bool
}

func (s *stubRenderer) Render(_ context.Context, _ *RenderRequest) (*RenderResult, error) {
	s.renders++
	return &RenderResult{PDFData: []byte("%PDF-stub")}, nil
}

func (s *stubRenderer) Close() error {
	s.closed = true
	return nil
}

func TestLazyRendererConstructsOnce(t *testing.T) {
	stub := &stubRenderer{}
	calls := 0
	lazy := NewLazyRenderer(func() (PDFRenderer, error) {
		calls++
		return stub, nil
	})

	assert.Zero(t, calls)

	_, err := lazy.Render(context.Background(), &RenderRequest{HTML: "<html></html>"})
	require.NoError(t, err)
	_, err = lazy.Render(context.Background(), &RenderRequest{HTML: "<html></html>"})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, stub.renders)
}

func TestLazyRendererRetriesFailedInit(t *testing.T) {
	calls := 0
	lazy := NewLazyRenderer(func() (PDFRenderer, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("no browser")
		}
		return &stubRenderer{}, nil
	})

	_, err := lazy.Render(context.Background(), &RenderRequest{})
	require.Error(t, err)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeUnavailable, renderErr.Code)

	_, err = lazy.Render(context.Background(), &RenderRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestLazyRendererClose(t *testing.T) {
	stub := &stubRenderer{}
	lazy := NewLazyRenderer(func() (PDFRenderer, error) { return stub, nil })

	// Close before first render is a no-op.
	require.NoError(t, lazy.Close())

	_, err := lazy.Render(context.Background(), &RenderRequest{})
	require.NoError(t, err)
	require.NoError(t, lazy.Close())
	assert.True(t, stub.closed)
}
