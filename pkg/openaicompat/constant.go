package openaicompat

import "time"

// Vendors speaking the chat completions protocol.
const (
	VendorOpenAI   = "openai"
	VendorDeepSeek = "deepseek"
	VendorQwen     = "qwen"
)

const (
	DefaultTimeout = 30 * time.Second

	openAIBaseURL   = "https://api.openai.com/v1"
	deepSeekBaseURL = "https://api.deepseek.com/v1"
	qwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	openAIModel   = "gpt-4o-mini"
	deepSeekModel = "deepseek-chat"
	qwenModel     = "qwen-plus"
)

// DefaultBaseURL returns the API root for vendor.
func DefaultBaseURL(vendor string) string {
	switch vendor {
	case VendorDeepSeek:
		return deepSeekBaseURL
	case VendorQwen:
		return qwenBaseURL
	default:
		return openAIBaseURL
	}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(vendor string) string {
	switch vendor {
	case VendorDeepSeek:
		return deepSeekModel
	case VendorQwen:
		return qwenModel
	default:
		return openAIModel
	}
}
