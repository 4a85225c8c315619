// Package extract turns raw model output into a FileSet. Strategies are
// tried in order of strictness; the chain never fails because the last
// resort wraps the raw response in a diagnostic project.
package extract

import (
	"regexp"
	"strings"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/scaffold"
)

// StrategyFallback names the terminal diagnostic strategy.
const StrategyFallback = "diagnostic_fallback"

type strategy struct {
	name string
	fn   func(string) entity.FileSet
}

var strategies = []strategy{
	{"fenced_json", fencedJSON},
	{"regex_pairs", regexPairs},
	{"fenced_code", fencedCodeBlocks},
	{"action_tags", actionTags},
}

// Extract parses a model response into (plan, files, strategy). It never
// returns an empty FileSet: when nothing file-shaped is recognized the
// diagnostic fallback project embedding the raw response is returned.
func Extract(response string) (string, entity.FileSet, string) {
	plan := extractPlan(response)
	for _, s := range strategies {
		if files := s.fn(response); len(files) > 0 {
			return plan, files, s.name
		}
	}
	return plan, scaffold.DiagnosticProject(response), StrategyFallback
}

var (
	planHeadingRe = regexp.MustCompile(`(?mi)^#{1,3}\s*Project Plan\s*$`)
	nextHeadingRe = regexp.MustCompile(`(?m)^#{1,3}\s`)
)

// extractPlan pulls the prose under a "# Project Plan" heading, or the
// leading prose before the first code fence. Empty means the caller
// should synthesize one.
func extractPlan(response string) string {
	if loc := planHeadingRe.FindStringIndex(response); loc != nil {
		rest := response[loc[1]:]
		if i := strings.Index(rest, "```"); i >= 0 {
			rest = rest[:i]
		}
		if loc := nextHeadingRe.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]]
		}
		return strings.TrimSpace(rest)
	}
	lead := response
	if i := strings.Index(lead, "```"); i >= 0 {
		lead = lead[:i]
	}
	lead = strings.TrimSpace(lead)
	if lead != "" && len(lead) <= 400 && !strings.HasPrefix(lead, "{") {
		return lead
	}
	return ""
}

var sourceExtRe = regexp.MustCompile(`(?i)\.(jsx?|tsx?|json|html?|css|svg|md|cjs|mjs)$`)

// isSourcePath reports whether a key plausibly names a project file.
func isSourcePath(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t\n{}<>") {
		return false
	}
	return sourceExtRe.MatchString(key)
}
