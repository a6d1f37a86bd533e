// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render renders the HTML pages.

	r := render.New("pages", render.WithReload(cfg.ReloadTemplates))
	if err := r.Render(w, "dashboard.html", data); err != nil {
		// *render.Error, nothing was written yet
	}

Templates are parsed with html/template on first use and cached. With
WithReload(true) every call re-reads the file, which is handy while editing
pages.

A missing or broken template returns *Error instead of panicking, so the
caller can answer 500 and keep serving.
*/
package render
