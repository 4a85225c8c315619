package repair

import (
	"context"
	"path"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/validate"
)

// resolveConcurrency bounds parallel image lookups.
const resolveConcurrency = 3

// markerHints maps filename fragments to the placeholder category
// injected into a bare <img> tag found in that file.
var markerHints = []struct {
	fragment string
	category string
}{
	{"navbar", "logo"},
	{"header", "logo"},
	{"hero", "hero"},
	{"banner", "hero"},
}

var imgSrcRe = regexp.MustCompile(`(<img[^>]*\bsrc=")([^"]*)(")`)

// resolveMarkers injects hinted placeholders into bare image tags, then
// resolves every distinct category to a real URL and substitutes all
// occurrences. After this step no marker remains anywhere in the set.
func (e *Engine) resolveMarkers(ctx context.Context, files entity.FileSet, domain entity.BusinessDomain) bool {
	changed := autoInjectMarkers(files)

	categories := map[string]struct{}{}
	for _, content := range files {
		for _, m := range validate.MarkerRe.FindAllStringSubmatch(content, -1) {
			categories[m[1]] = struct{}{}
		}
	}
	if len(categories) == 0 {
		return changed
	}

	urls := make(map[string]string, len(categories))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for category := range categories {
		category := category
		g.Go(func() error {
			url := e.resolver.Resolve(gctx, category, domain)
			mu.Lock()
			urls[category] = url
			mu.Unlock()
			return nil
		})
	}
	// Resolve never fails; substitution waits for the full map so no
	// file is left half-substituted.
	_ = g.Wait()

	for p, content := range files {
		files[p] = validate.MarkerRe.ReplaceAllStringFunc(content, func(m string) string {
			category := validate.MarkerRe.FindStringSubmatch(m)[1]
			return urls[category]
		})
	}
	return true
}

// autoInjectMarkers rewrites image tags with empty or placeholder-free
// sources in files whose name hints at a known category.
func autoInjectMarkers(files entity.FileSet) bool {
	changed := false
	for p, content := range files {
		if !entity.IsComponentPath(p) && !strings.HasSuffix(p, ".html") {
			continue
		}
		base := strings.ToLower(path.Base(p))
		category := ""
		for _, hint := range markerHints {
			if strings.Contains(base, hint.fragment) {
				category = hint.category
				break
			}
		}
		if category == "" || validate.MarkerRe.MatchString(content) {
			continue
		}
		replaced := false
		patched := imgSrcRe.ReplaceAllStringFunc(content, func(m string) string {
			if replaced {
				return m
			}
			sub := imgSrcRe.FindStringSubmatch(m)
			if strings.Contains(sub[2], "IMAGE:") || strings.HasPrefix(sub[2], "http") {
				return m
			}
			replaced = true
			return sub[1] + "/*IMAGE:" + category + "*/" + sub[3]
		})
		if replaced {
			files[p] = patched
			changed = true
		}
	}
	return changed
}
