package entity

import (
	"path"
	"strings"
)

// FileSet maps normalized project-relative paths to full file contents.
type FileSet map[string]string

// NormalizePath canonicalizes a project-relative path: forward slashes,
// no leading "/" or "./", no empty segments.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	return path.Clean(p)
}

// Set stores content under the normalized form of p. Empty paths and empty
// content are ignored so a FileSet never carries useless entries.
func (fs FileSet) Set(p, content string) {
	p = NormalizePath(p)
	if p == "" || p == "." || content == "" {
		return
	}
	fs[p] = content
}

func (fs FileSet) Clone() FileSet {
	out := make(FileSet, len(fs))
	for p, c := range fs {
		out[p] = c
	}
	return out
}

// FindBySuffix returns the first path ending in suffix. Order is not
// deterministic across calls; callers that care match exact names first.
func (fs FileSet) FindBySuffix(suffix string) (string, bool) {
	if _, ok := fs[suffix]; ok {
		return suffix, true
	}
	for p := range fs {
		if strings.HasSuffix(p, suffix) {
			return p, true
		}
	}
	return "", false
}

func (fs FileSet) HasSuffix(suffix string) bool {
	_, ok := fs.FindBySuffix(suffix)
	return ok
}

// TotalSize is the sum of content lengths in bytes.
func (fs FileSet) TotalSize() int {
	total := 0
	for _, c := range fs {
		total += len(c)
	}
	return total
}

var rootComponentNames = []string{"App.jsx", "App.tsx", "App.js"}

// RootComponent returns the path of the root React component, if any.
func (fs FileSet) RootComponent() (string, bool) {
	for _, name := range rootComponentNames {
		if p, ok := fs.FindBySuffix(name); ok {
			return p, true
		}
	}
	return "", false
}

var componentExts = map[string]bool{".jsx": true, ".tsx": true, ".js": true}

// IsComponentPath reports whether p looks like a React component module
// under a components directory.
func IsComponentPath(p string) bool {
	p = NormalizePath(p)
	if !strings.Contains(p, "components/") {
		return false
	}
	return componentExts[path.Ext(p)]
}

// ComponentPaths lists every component module in the set.
func (fs FileSet) ComponentPaths() []string {
	var out []string
	for p := range fs {
		if IsComponentPath(p) {
			out = append(out, p)
		}
	}
	return out
}
