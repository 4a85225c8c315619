package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFencedJSON(t *testing.T) {
	response := "# Project Plan\nA modern gym website with hero and services.\n\n" +
		"```json\n" + `{
  "package.json": {
    "name": "gym-site",
    "version": "1.0.0"
  },
  "index.html": "<html><body><div id=\"root\"></div></body></html>",
  "src": {
    "main.jsx": "import React from 'react';",
    "components": {
      "Hero.jsx": "export default function Hero() { return null; }"
    }
  }
}` + "\n```\n"

	plan, files, strategyName := Extract(response)

	assert.Equal(t, "A modern gym website with hero and services.", plan)
	assert.Equal(t, "fenced_json", strategyName)
	assert.Contains(t, files, "index.html")
	assert.Contains(t, files, "src/main.jsx")
	assert.Contains(t, files, "src/components/Hero.jsx")

	// An object-valued descriptor is stringified and must round-trip.
	require.Contains(t, files, "package.json")
	var pkg map[string]any
	require.NoError(t, json.Unmarshal([]byte(files["package.json"]), &pkg))
	assert.Equal(t, "gym-site", pkg["name"])
}

func TestExtractNeverEmpty(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"pure prose", "I'm sorry, I cannot generate a website for that request."},
		{"markdown without files", "# Ideas\n\nSome thoughts about your site:\n- make it blue\n- add a logo"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, files, strategyName := Extract(tc.response)
			require.NotEmpty(t, files)
			assert.Equal(t, StrategyFallback, strategyName)
			assert.Contains(t, files, "src/App.jsx")
			assert.Contains(t, files, "package.json")
		})
	}
}

func TestExtractDiagnosticEmbedsResponse(t *testing.T) {
	_, files, strategyName := Extract("The answer is forty-two.")
	require.Equal(t, StrategyFallback, strategyName)
	assert.Contains(t, files["src/App.jsx"], "The answer is forty-two.")
}

func TestExtractTruncatedResponse(t *testing.T) {
	// Mid-stream cutoff: only complete pairs survive via regex recovery.
	response := "```json\n" +
		`{"index.html": "<html>\n<body>hi</body>\n</html>", ` +
		`"src/App.jsx": "import React from 'react';\nexport default () => null;", ` +
		`"src/components/He`

	_, files, strategyName := Extract(response)

	assert.Equal(t, "regex_pairs", strategyName)
	require.Len(t, files, 2)
	assert.Equal(t, "<html>\n<body>hi</body>\n</html>", files["index.html"])
	assert.Equal(t, "import React from 'react';\nexport default () => null;", files["src/App.jsx"])
}

func TestExtractFencedCodeWithPathComment(t *testing.T) {
	response := "Here is your project:\n\n" +
		"```jsx\n// src/App.jsx\nimport React from 'react';\nexport default function App() { return null; }\n```\n\n" +
		"```css\n/* src/index.css */\nbody { margin: 0; }\n```\n"

	_, files, strategyName := Extract(response)

	assert.Equal(t, "fenced_code", strategyName)
	require.Contains(t, files, "src/App.jsx")
	require.Contains(t, files, "src/index.css")
	assert.Contains(t, files["src/App.jsx"], "import React from 'react';")
	assert.NotContains(t, files["src/App.jsx"], "// src/App.jsx")
}

func TestExtractActionTags(t *testing.T) {
	response := `<boltArtifact id="site" title="Site">` +
		`<boltAction type="file" filePath="src/App.jsx">import React from 'react';
export default function App() { return null; }</boltAction>` +
		`<boltAction type="file" filePath="index.html"><html><body>site</body></html></boltAction>` +
		`</boltArtifact>`

	_, files, strategyName := Extract(response)

	assert.Equal(t, "action_tags", strategyName)
	require.Contains(t, files, "src/App.jsx")
	require.Contains(t, files, "index.html")
	assert.Contains(t, files["src/App.jsx"], "import React from 'react';")
}

func TestRegexPairsLaterDuplicateWins(t *testing.T) {
	response := `"src/App.jsx": "first version", "src/App.jsx": "second version"`
	files := regexPairs(response)
	assert.Equal(t, "second version", files["src/App.jsx"])
}

func TestUnescape(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"newlines and tabs", `line1\nline2\ttabbed`, "line1\nline2\ttabbed"},
		{"quotes", `say \"hi\" and \'bye\'`, `say "hi" and 'bye'`},
		{"backslash", `a\\b`, `a\b`},
		{"unicode", `cap \u0041 here`, "cap A here"},
		{"unknown escape kept", `weird \q escape`, `weird \q escape`},
		{"no escapes untouched", "plain text", "plain text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Unescape(tc.in))
		})
	}
}

func TestExtractPlanSynthesisNeeded(t *testing.T) {
	// No heading, long leading prose: plan left empty for the caller.
	longProse := ""
	for i := 0; i < 50; i++ {
		longProse += "This is a very long explanation of the project. "
	}
	plan := extractPlan(longProse + "\n```json\n{}\n```")
	assert.Empty(t, plan)

	// Short leading prose is adopted as the plan.
	plan = extractPlan("A tiny cafe site.\n```json\n{}\n```")
	assert.Equal(t, "A tiny cafe site.", plan)
}
