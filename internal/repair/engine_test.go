package repair

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/scaffold"
	"lakenine-studio/internal/validate"
)

type staticResolver struct{}

func (staticResolver) Resolve(_ context.Context, category string, _ entity.BusinessDomain) string {
	return "https://img.test/" + category + ".jpg"
}

func newTestEngine() *Engine {
	return NewEngine(staticResolver{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func messyProject() entity.FileSet {
	files := entity.FileSet{}
	files.Set("src/components/Hero.jsx",
		"import React from 'react';\n"+
			"function Hero() {\n  return (\n    <div className=\"hero\">\n"+
			"      <img src=\"/*IMAGE:hero*/\" alt=\"Hero\" />\n"+
			"      <h1>Welcome</h1>\n    </div>\n  );\n}\nexport default Hero;\n")
	files.Set("src/components/Services.jsx",
		"import React from 'react';\n"+
			"function Services() {\n  return (\n    <div>\n"+
			"      <img src=\"/*IMAGE:service*/\" alt=\"One\" />\n"+
			"      <img src=\"/*IMAGE:service*/\" alt=\"Two\" />\n    </div>\n  );\n}\nexport default Services;\n")
	return files
}

func TestRepairFillsMissingCanonicalFiles(t *testing.T) {
	engine := newTestEngine()

	files, applied, err := engine.Repair(context.Background(), messyProject(), entity.DomainGym)

	require.NoError(t, err)
	assert.NotEmpty(t, applied)
	for _, p := range []string{
		"package.json", "vite.config.js", "index.html",
		"src/main.jsx", "src/App.jsx", "src/index.css", "src/components/Footer.jsx",
	} {
		assert.Contains(t, files, p)
	}
	assert.Contains(t, files["src/App.jsx"], "<Footer />")
	assert.Contains(t, files["src/App.jsx"], "import Footer")
}

func TestRepairIsIdempotent(t *testing.T) {
	engine := newTestEngine()
	ctx := context.Background()

	once, _, err := engine.Repair(ctx, messyProject(), entity.DomainGym)
	require.NoError(t, err)

	twice, applied, err := engine.Repair(ctx, once, entity.DomainGym)
	require.NoError(t, err)

	assert.Empty(t, applied, "second run must change nothing")
	assert.Equal(t, once, twice)
}

func TestRepairResolvesAllMarkers(t *testing.T) {
	engine := newTestEngine()

	files, _, err := engine.Repair(context.Background(), messyProject(), entity.DomainGym)

	require.NoError(t, err)
	assert.Zero(t, validate.CountMarkers(files))
	assert.Contains(t, files["src/components/Hero.jsx"], "https://img.test/hero.jpg")
	assert.Equal(t, 2, strings.Count(files["src/components/Services.jsx"], "https://img.test/service.jpg"))
}

func TestRepairCompleteProjectIsNoOp(t *testing.T) {
	files := entity.FileSet{}
	files.Set("package.json", scaffold.PackageJSON)
	files.Set("vite.config.js", scaffold.ViteConfig)
	files.Set("index.html", scaffold.IndexHTML("Done Site"))
	files.Set("src/main.jsx", scaffold.MainJSX)
	files.Set("src/index.css", scaffold.IndexCSS)
	files.Set("src/components/Footer.jsx", scaffold.FooterJSX(entity.DomainCafe))
	files.Set("src/App.jsx",
		"import React from 'react';\nimport Footer from './components/Footer';\n\n"+
			"function App() {\n  return (\n    <div>\n      <main>done</main>\n      <Footer />\n    </div>\n  );\n}\n\nexport default App;\n")

	engine := newTestEngine()
	repaired, applied, err := engine.Repair(context.Background(), files, entity.DomainCafe)

	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.Equal(t, files, repaired)
}

func TestRepairInjectsDependencies(t *testing.T) {
	files := messyProject()
	files.Set("package.json", `{"name": "partial", "dependencies": {"react": "^18.0.0"}}`)

	engine := newTestEngine()
	repaired, _, err := engine.Repair(context.Background(), files, entity.DomainBusiness)
	require.NoError(t, err)

	var pkg struct {
		Name            string            `json:"name"`
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
		Scripts         map[string]string `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal([]byte(repaired["package.json"]), &pkg))
	assert.Equal(t, "partial", pkg.Name)
	assert.Equal(t, "^18.0.0", pkg.Dependencies["react"])
	assert.Contains(t, pkg.Dependencies, "react-dom")
	assert.Contains(t, pkg.DevDependencies, "vite")
	assert.Contains(t, pkg.DevDependencies, "tailwindcss")
	assert.Equal(t, "vite build", pkg.Scripts["build"])
}

func TestRepairReplacesUnparseableDescriptor(t *testing.T) {
	files := messyProject()
	files.Set("package.json", "not json at all {")

	engine := newTestEngine()
	repaired, _, err := engine.Repair(context.Background(), files, entity.DomainBusiness)
	require.NoError(t, err)
	assert.Equal(t, scaffold.PackageJSON, repaired["package.json"])
}

func TestInjectFooter(t *testing.T) {
	t.Run("anchored injection", func(t *testing.T) {
		src := "import React from 'react';\n\nfunction App() {\n  return (\n    <div>\n      <main>x</main>\n    </div>\n  );\n}\n"
		out, applied := InjectFooter(src)
		require.True(t, applied)
		assert.Contains(t, out, "import Footer from './components/Footer';")
		assert.Less(t, strings.Index(out, "<Footer />"), strings.Index(out, "</div>"))
	})

	t.Run("already present is a no-op", func(t *testing.T) {
		src := "import Footer from './components/Footer';\nconst App = () => (<div><Footer /></div>);"
		out, applied := InjectFooter(src)
		assert.False(t, applied)
		assert.Equal(t, src, out)
	})

	t.Run("no safe anchor is a no-op", func(t *testing.T) {
		src := "export default function App() { return null; }"
		out, applied := InjectFooter(src)
		assert.False(t, applied)
		assert.Equal(t, src, out)
	})
}

func TestAutoInjectMarkers(t *testing.T) {
	files := entity.FileSet{}
	files.Set("src/components/Navbar.jsx",
		"function Navbar() {\n  return (\n    <nav>\n      <img src=\"\" alt=\"logo\" />\n    </nav>\n  );\n}\n")
	files.Set("src/components/About.jsx",
		"function About() {\n  return (\n    <div>\n      <img src=\"\" alt=\"about\" />\n    </div>\n  );\n}\n")

	changed := autoInjectMarkers(files)

	assert.True(t, changed)
	assert.Contains(t, files["src/components/Navbar.jsx"], "/*IMAGE:logo*/")
	assert.NotContains(t, files["src/components/About.jsx"], "/*IMAGE:", "no filename hint, no injection")
}
