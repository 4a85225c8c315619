package config

import "time"

type Config struct {
	HTTPServer HTTPServerConfig `json:"http_server"`
	Metrics    MetricsConfig    `json:"metrics"`
	LLM        LLMConfig        `json:"llm"`
	Pixabay    PixabayConfig    `json:"pixabay"`
	Mongo      MongoConfig      `json:"mongo"`
	Workspace  WorkspaceConfig  `json:"workspace"`
	Vercel     VercelConfig     `json:"vercel"`
}

type HTTPServerConfig struct {
	Host            string        `json:"host" default:"0.0.0.0"`
	Port            string        `json:"port" default:"8080"`
	ReadTimeout     time.Duration `json:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" default:"180s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" default:"10s"`
}

type MetricsConfig struct {
	Port string `json:"port" default:"2112"`
}

type LLMConfig struct {
	BaseURL   string        `json:"base_url"`
	APIKey    string        `json:"api_key"`
	Model     string        `json:"model" default:"gpt-4o"`
	MaxTokens int           `json:"max_tokens" default:"16000"`
	Timeout   time.Duration `json:"timeout" default:"120s"`
}

type PixabayConfig struct {
	APIKey       string        `json:"api_key"`
	BaseURL      string        `json:"base_url"`
	Timeout      time.Duration `json:"timeout" default:"15s"`
	RateInterval time.Duration `json:"rate_interval" default:"150ms"`
}

type MongoConfig struct {
	URI      string        `json:"uri" default:"mongodb://localhost:27017"`
	Database string        `json:"database" default:"lakenine"`
	Timeout  time.Duration `json:"timeout" default:"10s"`
}

type WorkspaceConfig struct {
	BasePath string `json:"base_path" default:"./workspace"`
}

type VercelConfig struct {
	Token   string        `json:"token"`
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout" default:"60s"`
}
