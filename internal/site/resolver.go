// Package site maps request paths that no API route claimed onto files of
// the static site. Paths without an extension are "clean URLs": /about is
// served from about.html, and anything unknown falls back to index.html.
package site

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a path with an extension names no file
var ErrNotFound = errors.New("asset not found")

const (
	AdminPath = "/admin"
	AdminPage = "admin.html"
	IndexPage = "index.html"
)

// matcher resolves a cleaned request path to a file. ok=false passes the
// path to the next matcher.
type matcher func(urlPath string) (file string, ok bool, err error)

// Resolver tries its matchers in order. The first match or error wins.
type Resolver struct {
	matchers []matcher
}

// NewResolver builds the standard chain: admin page, clean URLs, then
// verbatim assets. siteDir holds the page files; roots are searched in
// order for assets and pages.
func NewResolver(siteDir string, roots ...string) *Resolver {
	fs := fileSet{roots: append(append([]string{}, roots...), siteDir)}
	return &Resolver{matchers: []matcher{
		exactMatcher(AdminPath, filepath.Join(siteDir, AdminPage)),
		cleanURLMatcher(fs, filepath.Join(siteDir, IndexPage)),
		assetMatcher(fs),
	}}
}

// Resolve returns the file to serve for urlPath
func (r *Resolver) Resolve(urlPath string) (string, error) {
	cleaned := path.Clean("/" + urlPath)
	if hidden(cleaned) {
		return "", ErrNotFound
	}
	for _, m := range r.matchers {
		file, ok, err := m(cleaned)
		if err != nil {
			return "", err
		}
		if ok {
			return file, nil
		}
	}
	return "", ErrNotFound
}

func exactMatcher(urlPath, file string) matcher {
	return func(p string) (string, bool, error) {
		return file, p == urlPath, nil
	}
}

// cleanURLMatcher answers every path whose last segment has no extension
func cleanURLMatcher(fs fileSet, index string) matcher {
	return func(p string) (string, bool, error) {
		if path.Ext(p) != "" {
			return "", false, nil
		}
		if p != "/" {
			if file, ok := fs.find(p + ".html"); ok {
				return file, true, nil
			}
		}
		return index, true, nil
	}
}

func assetMatcher(fs fileSet) matcher {
	return func(p string) (string, bool, error) {
		if file, ok := fs.find(p); ok {
			return file, true, nil
		}
		return "", false, ErrNotFound
	}
}

// hidden reports whether any segment of p is a dotfile or dot directory
// (.env, .git/config). These are never served.
func hidden(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

type fileSet struct {
	roots []string
}

// find looks p up under each root. p must already be cleaned and rooted,
// so it cannot climb out of a root.
func (fs fileSet) find(p string) (string, bool) {
	rel := filepath.FromSlash(strings.TrimPrefix(p, "/"))
	for _, root := range fs.roots {
		candidate := filepath.Join(root, rel)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}
