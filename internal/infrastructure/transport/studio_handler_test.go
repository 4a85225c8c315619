package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakenine-studio/app/usecase"
	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/infrastructure/llm"
	"lakenine-studio/internal/infrastructure/store/mongodb"
)

type fakeGenerator struct {
	resp *entity.GenerateResponse
	err  error
}

func (f *fakeGenerator) Generate(context.Context, entity.GenerateRequest) (*entity.GenerateResponse, error) {
	return f.resp, f.err
}

func (f *fakeGenerator) GenerateStream(_ context.Context, _ entity.GenerateRequest, progress usecase.ProgressFunc) (*entity.GenerateResponse, error) {
	if progress != nil {
		progress("done")
	}
	return f.resp, f.err
}

type fakeChats struct {
	chat *entity.Chat
	err  error
}

func (f *fakeChats) SaveChat(_ context.Context, chat *entity.Chat) (*entity.Chat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return chat, nil
}
func (f *fakeChats) GetChat(context.Context, string) (*entity.Chat, error) { return f.chat, f.err }
func (f *fakeChats) ListChats(context.Context, string, int) ([]*entity.Chat, error) {
	return nil, f.err
}
func (f *fakeChats) DeleteChat(context.Context, string) error { return f.err }

type fakeDeployer struct {
	dep *entity.Deployment
	err error
}

func (f *fakeDeployer) DeployProject(context.Context, entity.DeployRequest) (*entity.Deployment, error) {
	return f.dep, f.err
}

// One handler per process: the constructor registers its collectors
// with the default prometheus registry.
func TestStudioHandler(t *testing.T) {
	generator := &fakeGenerator{}
	chats := &fakeChats{}
	deployer := &fakeDeployer{}

	handler := NewStudioHandler(generator, chats, deployer,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	post := func(path string, body any) *http.Response {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		return resp
	}

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/v1/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("generate ok", func(t *testing.T) {
		generator.resp = &entity.GenerateResponse{
			GenerationID: "gen-1",
			Plan:         "a plan",
			Files:        entity.FileSet{"src/App.jsx": "export default () => null;"},
			Domain:       entity.DomainGym,
		}
		generator.err = nil

		resp := post("/api/v1/generate", entity.GenerateRequest{Prompt: "build a gym site"})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var decoded entity.GenerateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, "gen-1", decoded.GenerationID)
		assert.Contains(t, decoded.Files, "src/App.jsx")
	})

	t.Run("generate validates prompt", func(t *testing.T) {
		resp := post("/api/v1/generate", map[string]string{"prompt": ""})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("generate maps unavailable provider to 502", func(t *testing.T) {
		generator.resp = nil
		generator.err = fmt.Errorf("model call: %w", llm.ErrUnavailable)

		resp := post("/api/v1/generate", entity.GenerateRequest{Prompt: "build a site"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("get chat not found", func(t *testing.T) {
		chats.chat = nil
		chats.err = mongodb.ErrNotFound

		resp, err := http.Get(server.URL + "/api/v1/chats/missing")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("list chats requires userId", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/v1/chats")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("deploy ok", func(t *testing.T) {
		deployer.dep = &entity.Deployment{DeploymentID: "dpl-1", URL: "https://x.vercel.app", Status: "QUEUED"}
		deployer.err = nil

		resp := post("/api/v1/deploy", entity.DeployRequest{
			ProjectName: "my site",
			Files:       entity.FileSet{"package.json": "{}"},
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var decoded entity.Deployment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, "dpl-1", decoded.DeploymentID)
	})

	t.Run("deploy requires files", func(t *testing.T) {
		resp := post("/api/v1/deploy", entity.DeployRequest{ProjectName: "x"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
