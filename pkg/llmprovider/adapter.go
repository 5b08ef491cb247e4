package llmprovider

import (
	"context"

	"student-task-priority/pkg/gemini"
	"student-task-priority/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:     make([]gemini.Content, 0, len(req.Messages)),
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		JSONResponse: req.JSONMode,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{
			Role:  msg.Role,
			Parts: []gemini.Part{{Text: msg.Text()}},
		})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Text}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAICompatAdapter adapts pkg/openaicompat (OpenAI, DeepSeek, Qwen)
// to llmprovider.Provider interface
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new chat completions adapter
func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openaicompat.Request{
		Messages:     make([]openaicompat.Message, 0, len(req.Messages)),
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		JSONResponse: req.JSONMode,
	}
	if req.SystemInstruction != nil {
		chatReq.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, openaicompat.Message{
			Role:    msg.Role,
			Content: msg.Text(),
		})
	}

	resp, err := a.client.GenerateContent(ctx, chatReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Text}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the vendor name
func (a *OpenAICompatAdapter) Name() string {
	return a.client.Vendor()
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
