// Package validate scores an extracted project against the quality
// rubric. Findings are data, not errors: critical issues make the
// project unshippable, soft issues only lower its quality.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"lakenine-studio/internal/domain/entity"
)

// MarkerRe matches image placeholders of the form /*IMAGE:category*/.
var MarkerRe = regexp.MustCompile(`\/\*IMAGE:([a-zA-Z0-9_-]+)\*\/`)

const (
	// MinComponentSize is the floor below which a component is a skeleton.
	MinComponentSize = 400
	// MinProjectSize is the advisory floor for total content bytes.
	MinProjectSize = 5000
)

// Options tunes the rubric. Comprehensive raises the structural floors
// to match the full-site prompt contract.
type Options struct {
	Comprehensive bool
}

var boilerplatePhrases = []string{
	"welcome to react",
	"welcome to your first react app",
	"hello world",
	"lorem ipsum",
	"edit src/app",
}

// Validate runs every rubric check and returns the full verdict.
// Valid is true exactly when no critical issue was found.
func Validate(files entity.FileSet, opts Options) entity.Verdict {
	minFiles, minComponents := 5, 4
	if opts.Comprehensive {
		minFiles, minComponents = 8, 6
	}

	var issues []entity.Issue
	add := func(sev entity.Severity, code entity.IssueCode, format string, args ...any) {
		issues = append(issues, entity.Issue{
			Severity: sev,
			Code:     code,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	rootPath, hasRoot := files.RootComponent()
	if !hasRoot {
		add(entity.SeverityCritical, entity.CodeMissingRootComponent, "no root App component found")
	}

	components := files.ComponentPaths()
	if len(components) == 0 {
		add(entity.SeverityCritical, entity.CodeZeroComponents, "no component files found")
	} else if len(components) < minComponents {
		add(entity.SeveritySoft, entity.CodeFewComponents,
			"only %d components, expected at least %d", len(components), minComponents)
	}

	for _, p := range components {
		if size := len(files[p]); size < MinComponentSize {
			add(entity.SeverityCritical, entity.CodeComponentTooSmall,
				"%s is %d characters, minimum is %d", p, size, MinComponentSize)
		}
	}

	if len(files) < minFiles {
		add(entity.SeveritySoft, entity.CodeFewFiles,
			"only %d files, expected at least %d", len(files), minFiles)
	}

	for p, content := range files {
		lower := strings.ToLower(content)
		for _, phrase := range boilerplatePhrases {
			if !strings.Contains(lower, phrase) {
				continue
			}
			sev := entity.SeveritySoft
			if p == rootPath {
				sev = entity.SeverityCritical
			}
			add(sev, entity.CodeBoilerplateContent, "%s contains boilerplate phrase %q", p, phrase)
			break
		}
	}

	allLower := strings.ToLower(joinContents(files))
	if !strings.Contains(allLower, "<nav") && !strings.Contains(allLower, "navbar") {
		add(entity.SeveritySoft, entity.CodeNoNavigation, "no navigation element found")
	}
	if !strings.Contains(allLower, "footer") {
		add(entity.SeveritySoft, entity.CodeNoFooter, "no footer found")
	}
	if sections := strings.Count(allLower, "<section") + strings.Count(allLower, "<div"); sections < 8 {
		add(entity.SeveritySoft, entity.CodeFewSections,
			"only %d section-like groupings, expected at least 8", sections)
	}

	if CountMarkers(files) == 0 {
		add(entity.SeverityCritical, entity.CodeZeroImageMarkers, "no image placeholders found in any component")
	}

	if total := files.TotalSize(); total < MinProjectSize {
		add(entity.SeveritySoft, entity.CodeProjectTooSmall,
			"total project size %d bytes is below %d", total, MinProjectSize)
	}

	verdict := entity.Verdict{Issues: issues, Valid: true}
	for _, is := range issues {
		if is.Severity == entity.SeverityCritical {
			verdict.Valid = false
			break
		}
	}
	return verdict
}

// CountMarkers counts image placeholders across the whole set.
func CountMarkers(files entity.FileSet) int {
	n := 0
	for _, content := range files {
		n += len(MarkerRe.FindAllString(content, -1))
	}
	return n
}

func joinContents(files entity.FileSet) string {
	var b strings.Builder
	for _, c := range files {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	return b.String()
}
