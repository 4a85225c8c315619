// Package repair patches an extracted project up to a runnable state.
// Every step checks before it writes, so running the engine twice over
// the same input is a no-op the second time.
package repair

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/domain/repository"
	"lakenine-studio/internal/scaffold"
)

type Engine struct {
	resolver repository.ImageResolver
	logger   *slog.Logger
}

func NewEngine(resolver repository.ImageResolver, logger *slog.Logger) *Engine {
	return &Engine{resolver: resolver, logger: logger}
}

type step struct {
	name string
	fn   func(ctx context.Context, files entity.FileSet, domain entity.BusinessDomain) bool
}

// Repair returns a patched copy of files. Steps run in a fixed order;
// the returned slice names the steps that changed something.
func (e *Engine) Repair(ctx context.Context, files entity.FileSet, domain entity.BusinessDomain) (entity.FileSet, []string, error) {
	out := files.Clone()
	steps := []step{
		{"descriptor", e.ensureDescriptor},
		{"dependencies", e.ensureDependencies},
		{"html_entry", e.ensureHTMLEntry},
		{"entry_module", e.ensureEntryModule},
		{"root_component", e.ensureRootComponent},
		{"stylesheet", e.ensureStylesheet},
		{"footer", e.ensureFooter},
		{"image_markers", e.resolveMarkers},
	}
	var applied []string
	for _, s := range steps {
		if s.fn(ctx, out, domain) {
			applied = append(applied, s.name)
			e.logger.Debug("repair step applied", "step", s.name)
		}
	}
	return out, applied, nil
}

func (e *Engine) ensureDescriptor(_ context.Context, files entity.FileSet, _ entity.BusinessDomain) bool {
	changed := false
	if !files.HasSuffix("package.json") {
		files.Set("package.json", scaffold.PackageJSON)
		changed = true
	}
	if !files.HasSuffix("vite.config.js") && !files.HasSuffix("vite.config.ts") {
		files.Set("vite.config.js", scaffold.ViteConfig)
		changed = true
	}
	return changed
}

var requiredDeps = []string{"react", "react-dom"}
var requiredDevDeps = []string{"vite", "@vitejs/plugin-react", "tailwindcss", "postcss", "autoprefixer"}
var requiredScripts = map[string]string{"dev": "vite", "build": "vite build", "preview": "vite preview"}

// ensureDependencies patches the package descriptor so the build deps
// the generated code assumes are actually declared. An unparseable
// descriptor is replaced wholesale.
func (e *Engine) ensureDependencies(_ context.Context, files entity.FileSet, _ entity.BusinessDomain) bool {
	path, ok := files.FindBySuffix("package.json")
	if !ok {
		return false
	}
	var pkg map[string]any
	if err := json.Unmarshal([]byte(files[path]), &pkg); err != nil {
		files[path] = scaffold.PackageJSON
		return true
	}

	var canonical map[string]any
	_ = json.Unmarshal([]byte(scaffold.PackageJSON), &canonical)

	changed := false
	ensure := func(section string, names []string) {
		existing, _ := pkg[section].(map[string]any)
		if existing == nil {
			existing = map[string]any{}
		}
		defaults, _ := canonical[section].(map[string]any)
		for _, name := range names {
			if _, ok := existing[name]; !ok {
				existing[name] = defaults[name]
				changed = true
			}
		}
		pkg[section] = existing
	}
	ensure("dependencies", requiredDeps)
	ensure("devDependencies", requiredDevDeps)

	scripts, _ := pkg["scripts"].(map[string]any)
	if scripts == nil {
		scripts = map[string]any{}
	}
	for name, cmd := range requiredScripts {
		if _, ok := scripts[name]; !ok {
			scripts[name] = cmd
			changed = true
		}
	}
	pkg["scripts"] = scripts

	if changed {
		if b, err := json.MarshalIndent(pkg, "", "  "); err == nil {
			files[path] = string(b)
		}
	}
	return changed
}

func (e *Engine) ensureHTMLEntry(_ context.Context, files entity.FileSet, domain entity.BusinessDomain) bool {
	path, ok := files.FindBySuffix("index.html")
	if ok && strings.Contains(strings.ToLower(files[path]), "</html>") {
		return false
	}
	if !ok {
		path = "index.html"
	}
	files[path] = scaffold.IndexHTML(siteTitle(domain))
	return true
}

func (e *Engine) ensureEntryModule(_ context.Context, files entity.FileSet, _ entity.BusinessDomain) bool {
	for _, name := range []string{"main.jsx", "main.tsx", "main.js", "src/index.jsx"} {
		if files.HasSuffix(name) {
			return false
		}
	}
	files.Set("src/main.jsx", scaffold.MainJSX)
	return true
}

func (e *Engine) ensureRootComponent(_ context.Context, files entity.FileSet, _ entity.BusinessDomain) bool {
	if _, ok := files.RootComponent(); ok {
		return false
	}
	var rel []string
	for _, p := range files.ComponentPaths() {
		rel = append(rel, strings.TrimPrefix(p, "src/"))
	}
	files.Set("src/App.jsx", scaffold.AppJSX(rel))
	return true
}

func (e *Engine) ensureStylesheet(_ context.Context, files entity.FileSet, _ entity.BusinessDomain) bool {
	for p := range files {
		if strings.HasSuffix(p, ".css") {
			return false
		}
	}
	files.Set("src/index.css", scaffold.IndexCSS)
	return true
}

func siteTitle(domain entity.BusinessDomain) string {
	name := string(domain)
	if name == "" {
		return "LakeNine Site"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Site"
}
