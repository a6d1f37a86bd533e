// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"sync"
)

// Error reports a template that could not be loaded or executed
type Error struct {
	Page string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render %s: %v", e.Page, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Option func(*Renderer)

// WithReload re-parses templates on every render
func WithReload(reload bool) Option {
	return func(r *Renderer) {
		r.reload = reload
	}
}

// Renderer renders HTML pages from a template directory
type Renderer struct {
	dir    string
	reload bool

	mu    sync.RWMutex
	cache map[string]*template.Template
}

func New(dir string, opts ...Option) *Renderer {
	r := &Renderer{
		dir:   dir,
		cache: make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render executes the named page into a buffer and writes it with status 200.
// A *Error means nothing was written to w; any other error comes from
// writing the page after the 200 header was sent.
func (r *Renderer) Render(w http.ResponseWriter, page string, data any) error {
	tmpl, err := r.lookup(page)
	if err != nil {
		return &Error{Page: page, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return &Error{Page: page, Err: err}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = buf.WriteTo(w)
	return err
}

func (r *Renderer) lookup(page string) (*template.Template, error) {
	if !r.reload {
		r.mu.RLock()
		tmpl, ok := r.cache[page]
		r.mu.RUnlock()
		if ok {
			return tmpl, nil
		}
	}

	// Page names are fixed by the router, never taken from the request
	tmpl, err := template.ParseFiles(filepath.Join(r.dir, page))
	if err != nil {
		return nil, err
	}

	if !r.reload {
		r.mu.Lock()
		r.cache[page] = tmpl
		r.mu.Unlock()
	}
	return tmpl, nil
}
