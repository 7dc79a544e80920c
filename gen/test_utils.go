package gen

import (
	"bytes"
	"io"
	"sync"
)

// TestCtx is an in-memory GeneratorContext, which records every
// file opened through it and is only meant to be used for tests.
type TestCtx struct {
	mu    sync.Mutex
	files map[string]*bytes.Buffer
}

// Open returns a buffer recorded under filename. Opening the same
// name twice truncates it.
func (ctx *TestCtx) Open(filename string) (io.WriteCloser, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if ctx.files == nil {
		ctx.files = make(map[string]*bytes.Buffer)
	}
	b := new(bytes.Buffer)
	ctx.files[filename] = b
	return nopCloser{b}, nil
}

// File returns the contents written to filename and whether it was opened.
func (ctx *TestCtx) File(filename string) (string, bool) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	b, ok := ctx.files[filename]
	if !ok {
		return "", false
	}
	return b.String(), true
}

// Len returns the number of files opened.
func (ctx *TestCtx) Len() int {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return len(ctx.files)
}

type nopCloser struct {
	*bytes.Buffer
}

// Close always returns nil.
func (nopCloser) Close() error { return nil }
