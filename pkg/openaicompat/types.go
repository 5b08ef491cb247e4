package openaicompat

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds client configuration
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills vendor defaults
func (c *Config) Validate() error {
	c.Vendor = strings.ToLower(strings.TrimSpace(c.Vendor))
	switch c.Vendor {
	case "":
		c.Vendor = VendorOpenAI
	case "alibaba":
		c.Vendor = VendorQwen
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%s: APIKey is required", c.Vendor)
	}
	if c.Model == "" {
		c.Model = DefaultModel(c.Vendor)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL(c.Vendor)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type clientImpl struct {
	vendor     string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents a chat completion request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONResponse sets response_format to json_object.
	JSONResponse bool
}

// Message is a single chat turn.
type Message struct {
	Role    string
	Content string
}

// Response represents the first choice of a completion
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types
type openAIRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIMessage       `json:"messages"`
	Temperature    float64               `json:"temperature"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []openAIChoice `json:"choices"`
	Usage   openAIUsage    `json:"usage"`
}

type openAIChoice struct {
	Message      openAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
