// Package web provides infrastructure for serving web pages with Go templates.
// Views are parsed once at startup from an fs.FS (embedded or on disk) by
// cloning a shared set of layouts per view, so requests pay no parse cost.
// In reload mode every render re-reads the FS, which suits template editing.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"slices"
)

// ErrTemplateMissing is returned when a view has no template file.
var ErrTemplateMissing = errors.New("template missing")

// ViewDef defines a view with its route, template file, and title.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Section  string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Section  string
	Path     string
	BasePath string
	Nav      []ViewDef
	Data     any
}

// TemplateOptions controls where templates are read from and how.
type TemplateOptions struct {
	// LayoutGlob matches layout files, e.g. "layouts/*.html".
	LayoutGlob string
	// ViewDir is the directory holding one file per view.
	ViewDir string
	// BasePath is copied into every ViewData.
	BasePath string
	// Nav is copied into every ViewData that does not set its own.
	Nav []ViewDef
	// MaxSize rejects any template file larger than this many bytes. Zero disables the check.
	MaxSize int64
	// Reload re-parses templates from the FS on every render.
	Reload bool
}

// TemplateSet holds pre-parsed view templates keyed by template file name.
type TemplateSet struct {
	fsys    fs.FS
	opts    TemplateOptions
	views   map[string]*template.Template
	missing []string
	size    int64
}

// NewTemplateSet parses the layouts and every view in views.
// Layout failures and oversized or malformed views are fatal. Views whose
// file does not exist are recorded as missing so that only their routes fail.
func NewTemplateSet(fsys fs.FS, opts TemplateOptions, views []ViewDef) (*TemplateSet, error) {
	ts := &TemplateSet{
		fsys:  fsys,
		opts:  opts,
		views: make(map[string]*template.Template, len(views)),
	}

	layouts, size, err := ts.parseLayouts()
	if err != nil {
		return nil, err
	}
	ts.size = size

	for _, v := range views {
		if _, ok := ts.views[v.Template]; ok || slices.Contains(ts.missing, v.Template) {
			continue
		}

		t, n, err := ts.parseView(layouts, v.Template)
		if errors.Is(err, ErrTemplateMissing) {
			ts.missing = append(ts.missing, v.Template)
			continue
		}
		if err != nil {
			return nil, err
		}

		ts.views[v.Template] = t
		ts.size += n
	}

	return ts, nil
}

// Missing returns the template names that had no file at load time.
func (ts *TemplateSet) Missing() []string {
	return slices.Clone(ts.missing)
}

// Size returns the total bytes of template source parsed at load time.
func (ts *TemplateSet) Size() int64 {
	return ts.size
}

// Render executes layout for the named view and writes it with status.
// Output is buffered so a failed execution never produces a partial response.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, view string, data ViewData) error {
	t, err := ts.lookup(view)
	if err != nil {
		return err
	}

	if data.BasePath == "" {
		data.BasePath = ts.opts.BasePath
	}
	if data.Nav == nil {
		data.Nav = ts.opts.Nav
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// ErrorHandler returns an HTTP handler that renders an error view with the
// given status code. A plain-text body is written if the view cannot render.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{Title: view.Title, Path: r.URL.Path}
		if err := ts.Render(w, status, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

func (ts *TemplateSet) lookup(view string) (*template.Template, error) {
	if ts.opts.Reload {
		layouts, _, err := ts.parseLayouts()
		if err != nil {
			return nil, err
		}
		t, _, err := ts.parseView(layouts, view)
		return t, err
	}

	t, ok := ts.views[view]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, view)
	}
	return t, nil
}

func (ts *TemplateSet) parseLayouts() (*template.Template, int64, error) {
	matches, err := fs.Glob(ts.fsys, ts.opts.LayoutGlob)
	if err != nil {
		return nil, 0, fmt.Errorf("glob layouts: %w", err)
	}
	if len(matches) == 0 {
		return nil, 0, fmt.Errorf("no layouts match %s", ts.opts.LayoutGlob)
	}

	var root *template.Template
	var total int64
	for _, name := range matches {
		src, err := ts.read(name)
		if err != nil {
			return nil, 0, err
		}

		var t *template.Template
		if root == nil {
			root = template.New(path.Base(name))
			t = root
		} else {
			t = root.New(path.Base(name))
		}
		if _, err := t.Parse(string(src)); err != nil {
			return nil, 0, fmt.Errorf("parse layout %s: %w", name, err)
		}
		total += int64(len(src))
	}

	return root, total, nil
}

func (ts *TemplateSet) parseView(layouts *template.Template, view string) (*template.Template, int64, error) {
	name := path.Join(ts.opts.ViewDir, view)

	src, err := ts.read(name)
	if err != nil {
		return nil, 0, err
	}

	t, err := layouts.Clone()
	if err != nil {
		return nil, 0, fmt.Errorf("clone layouts for %s: %w", view, err)
	}
	if _, err := t.New(view).Parse(string(src)); err != nil {
		return nil, 0, fmt.Errorf("parse template: %s: %w", view, err)
	}

	return t, int64(len(src)), nil
}

func (ts *TemplateSet) read(name string) ([]byte, error) {
	info, err := fs.Stat(ts.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, name)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if ts.opts.MaxSize > 0 && info.Size() > ts.opts.MaxSize {
		return nil, fmt.Errorf("template %s is %d bytes, limit is %d", name, info.Size(), ts.opts.MaxSize)
	}

	src, err := fs.ReadFile(ts.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return src, nil
}
