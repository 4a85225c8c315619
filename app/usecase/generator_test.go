package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/extract"
	"lakenine-studio/internal/infrastructure/llm"
	"lakenine-studio/internal/repair"
	"lakenine-studio/internal/validate"
)

type fakeModel struct {
	response string
	err      error
}

func (f *fakeModel) Complete(context.Context, string, string) (string, error) {
	return f.response, f.err
}

type staticResolver struct{}

func (staticResolver) Resolve(_ context.Context, category string, _ entity.BusinessDomain) string {
	return "https://img.test/" + category + ".jpg"
}

func newTestGenerator(model *fakeModel) *GeneratorService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := repair.NewEngine(staticResolver{}, logger)
	return NewGeneratorService(model, engine, nil, nil, 0, logger)
}

func fencedResponse(t *testing.T, plan string, files map[string]string) string {
	t.Helper()
	payload, err := json.Marshal(files)
	require.NoError(t, err)
	return fmt.Sprintf("# Project Plan\n%s\n\n```json\n%s\n```\n", plan, payload)
}

func TestGenerateHappyPath(t *testing.T) {
	model := &fakeModel{response: fencedResponse(t, "A complete gym website.", map[string]string{
		"package.json":                `{"name": "gym"}`,
		"index.html":                  "<html><body><div id=\"root\"></div></body></html>",
		"src/main.jsx":                "import React from 'react';",
		"src/App.jsx":                 "import React from 'react';\nimport Hero from './components/Hero';\nfunction App() {\n  return (\n    <div>\n      <Hero />\n    </div>\n  );\n}\nexport default App;",
		"src/components/Hero.jsx":     "function Hero() {\n  return (\n    <div>\n      <img src=\"/*IMAGE:hero*/\" alt=\"Hero\" />\n    </div>\n  );\n}\nexport default Hero;",
		"src/components/Services.jsx": "function Services() {\n  return (\n    <div>\n      <img src=\"/*IMAGE:service*/\" alt=\"S\" />\n    </div>\n  );\n}\nexport default Services;",
	})}

	resp, err := newTestGenerator(model).Generate(context.Background(),
		entity.GenerateRequest{Prompt: "build a gym website"})

	require.NoError(t, err)
	assert.Equal(t, entity.DomainGym, resp.Domain)
	assert.Equal(t, "fenced_json", resp.Strategy)
	assert.Equal(t, "A complete gym website.", resp.Plan)
	assert.False(t, resp.Fallback)
	assert.Contains(t, resp.Files, "src/App.jsx")
	assert.Zero(t, validate.CountMarkers(resp.Files), "all placeholders resolved")
	assert.Contains(t, resp.Files["src/components/Hero.jsx"], "https://img.test/hero.jpg")
	assert.Contains(t, resp.Files["src/App.jsx"], "<Footer />", "footer injected by repair")
}

func TestGenerateModelFailureSurfaces(t *testing.T) {
	model := &fakeModel{err: fmt.Errorf("call: %w", llm.ErrUnavailable)}

	_, err := newTestGenerator(model).Generate(context.Background(),
		entity.GenerateRequest{Prompt: "build a site"})

	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestGenerateUnrecognizableServesDiagnostic(t *testing.T) {
	model := &fakeModel{response: "I would suggest hiring a web developer instead."}

	resp, err := newTestGenerator(model).Generate(context.Background(),
		entity.GenerateRequest{Prompt: "build a cafe website"})

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, extract.StrategyFallback, resp.Strategy)
	assert.NotEmpty(t, resp.Files)
	assert.Contains(t, resp.Files["src/App.jsx"], "hiring a web developer")
}

func TestGenerateZeroMarkersServesBaseline(t *testing.T) {
	model := &fakeModel{response: fencedResponse(t, "A site.", map[string]string{
		"package.json":            `{"name": "x"}`,
		"src/App.jsx":             "import Hero from './components/Hero';\nexport default () => <div><Hero /></div>;",
		"src/components/Hero.jsx": "export default () => <div>no images here at all</div>;",
	})}

	resp, err := newTestGenerator(model).Generate(context.Background(),
		entity.GenerateRequest{Prompt: "build a restaurant website"})

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Files, "src/components/Navbar.jsx", "baseline template served")
	assert.Zero(t, validate.CountMarkers(resp.Files))
	assert.Contains(t, resp.Plan, "did not meet quality requirements")
}

func TestGenerateStreamEmitsStages(t *testing.T) {
	model := &fakeModel{response: "unparseable"}
	var stages []string

	_, err := newTestGenerator(model).GenerateStream(context.Background(),
		entity.GenerateRequest{Prompt: "build a site"},
		func(stage string) { stages = append(stages, stage) })

	require.NoError(t, err)
	assert.Equal(t, "classified", stages[0])
	assert.Equal(t, "done", stages[len(stages)-1])
	assert.Contains(t, stages, "calling_model")
	assert.Contains(t, stages, "extracting")
	assert.Contains(t, stages, "validating")
}
