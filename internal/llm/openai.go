package llm

import (
	"errors"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIClient implements the Client interface against the OpenAI API or
// any service speaking the same protocol behind a custom base URL.
type OpenAIClient struct {
	chatCompleter
	baseURL string
}

// NewOpenAIClient creates a new OpenAI client. The API key comes from the
// OPENAI_API_KEY environment variable.
func NewOpenAIClient(model, baseURL string) (*OpenAIClient, error) {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAIClient{
		chatCompleter: chatCompleter{client: client, model: model},
		baseURL:       baseURL,
	}, nil
}
