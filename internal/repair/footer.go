package repair

import (
	"context"
	"strings"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/scaffold"
)

// ensureFooter guarantees a Footer component exists and is rendered by
// the root component. Injection is anchored: when the root lacks the
// expected structure the source is left untouched.
func (e *Engine) ensureFooter(_ context.Context, files entity.FileSet, domain entity.BusinessDomain) bool {
	changed := false
	if !files.HasSuffix("Footer.jsx") && !files.HasSuffix("Footer.tsx") {
		files.Set("src/components/Footer.jsx", scaffold.FooterJSX(domain))
		changed = true
	}
	rootPath, ok := files.RootComponent()
	if !ok {
		return changed
	}
	if patched, applied := InjectFooter(files[rootPath]); applied {
		files[rootPath] = patched
		changed = true
	}
	return changed
}

// InjectFooter adds a Footer import and render to root component source.
// It reports false when the footer is already present or when no safe
// anchor exists, in which case the source is returned unchanged.
func InjectFooter(src string) (string, bool) {
	if strings.Contains(src, "<Footer") {
		return src, false
	}
	if !strings.Contains(src, "return (") {
		return src, false
	}
	anchor := strings.LastIndex(src, "</div>")
	if anchor < 0 {
		return src, false
	}

	lineStart := strings.LastIndexByte(src[:anchor], '\n') + 1
	indent := src[lineStart:anchor]
	if strings.TrimSpace(indent) != "" {
		indent = ""
	}
	patched := src[:lineStart] + indent + "  <Footer />\n" + src[lineStart:]

	if !strings.Contains(patched, "import Footer") {
		patched = addImport(patched, "import Footer from './components/Footer';")
	}
	return patched, true
}

// addImport places line after the last top-level import, or at the top
// of the file when there are none.
func addImport(src, line string) string {
	lines := strings.Split(src, "\n")
	last := -1
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "import ") {
			last = i
		}
	}
	if last < 0 {
		return line + "\n" + src
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:last+1]...)
	out = append(out, line)
	out = append(out, lines[last+1:]...)
	return strings.Join(out, "\n")
}
