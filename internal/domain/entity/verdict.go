package entity

// Severity splits rubric findings into the ones that make a project
// unshippable and the ones that only lower its quality.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySoft     Severity = "soft"
)

// IssueCode is a stable machine-readable identifier for a rubric finding.
type IssueCode string

const (
	CodeMissingRootComponent IssueCode = "MISSING_ROOT_COMPONENT"
	CodeComponentTooSmall    IssueCode = "COMPONENT_TOO_SMALL"
	CodeZeroComponents       IssueCode = "ZERO_COMPONENTS"
	CodeZeroImageMarkers     IssueCode = "ZERO_IMAGE_MARKERS"
	CodeBoilerplateContent   IssueCode = "BOILERPLATE_CONTENT"
	CodeFewFiles             IssueCode = "FEW_FILES"
	CodeFewComponents        IssueCode = "FEW_COMPONENTS"
	CodeNoNavigation         IssueCode = "NO_NAVIGATION"
	CodeNoFooter             IssueCode = "NO_FOOTER"
	CodeFewSections          IssueCode = "FEW_SECTIONS"
	CodeProjectTooSmall      IssueCode = "PROJECT_TOO_SMALL"
)

type Issue struct {
	Severity Severity  `json:"severity" bson:"severity"`
	Code     IssueCode `json:"code" bson:"code"`
	Message  string    `json:"message" bson:"message"`
}

// Verdict is the validator's full report. Valid means no critical issue
// was found; soft issues are advisory and never block a project.
type Verdict struct {
	Valid  bool    `json:"valid" bson:"valid"`
	Issues []Issue `json:"issues" bson:"issues"`
}

func (v Verdict) Critical() []Issue {
	var out []Issue
	for _, is := range v.Issues {
		if is.Severity == SeverityCritical {
			out = append(out, is)
		}
	}
	return out
}

// HasCode reports whether any issue carries one of the given codes.
func (v Verdict) HasCode(codes ...IssueCode) bool {
	for _, is := range v.Issues {
		for _, c := range codes {
			if is.Code == c {
				return true
			}
		}
	}
	return false
}

func (v Verdict) Codes() []string {
	out := make([]string, 0, len(v.Issues))
	for _, is := range v.Issues {
		out = append(out, string(is.Code))
	}
	return out
}
