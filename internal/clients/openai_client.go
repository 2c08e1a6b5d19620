package clients

import (
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests

var (
	aiClientInstance *AIClient
	aiClientOnce     sync.Once
)

type AIClient struct {
	Client *openai.Client
}

// HasOpenAIKey reports whether the hosted annotation backend is usable.
func HasOpenAIKey() bool {
	return os.Getenv("OPENAI_API_KEY") != ""
}

func GetAIClient() *AIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("[AIClient] Missing OPENAI_API_KEY in environment variables")
		panic("[AIClient] Missing OPENAI_API_KEY in environment variables")
	}
	aiClientOnce.Do(func() {
		httpClient := &http.Client{
			Timeout: openAIRequestTimeout,
		}

		client := openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithHTTPClient(httpClient),
		)
		aiClientInstance = &AIClient{Client: client}

		slog.Info("[AIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return aiClientInstance
}
