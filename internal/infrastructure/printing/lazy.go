package printing

import (
	"context"
	"sync"
)

// LazyRenderer defers construction of the underlying renderer until the
// first document is actually requested, so hosts without Chrome still run
// everything except PDF export. A failed initialization is retried on the
// next request rather than cached forever.
type LazyRenderer struct {
	mu      sync.Mutex
	factory func() (PDFRenderer, error)
	inner   PDFRenderer
}

// NewLazyRenderer wraps a renderer factory
func NewLazyRenderer(factory func() (PDFRenderer, error)) *LazyRenderer {
	return &LazyRenderer{factory: factory}
}

// Render implements PDFRenderer
func (l *LazyRenderer) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	l.mu.Lock()
	if l.inner == nil {
		inner, err := l.factory()
		if err != nil {
			l.mu.Unlock()
			return nil, NewRenderError(ErrCodeUnavailable, "PDF renderer could not be initialized", err)
		}
		l.inner = inner
	}
	inner := l.inner
	l.mu.Unlock()

	return inner.Render(ctx, req)
}

// Close implements PDFRenderer
func (l *LazyRenderer) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inner == nil {
		return nil
	}
	err := l.inner.Close()
	l.inner = nil
	return err
}
