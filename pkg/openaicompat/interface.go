package openaicompat

import "context"

// IClient is a chat completions client.
// Implementations are safe for concurrent use.
type IClient interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Vendor returns the vendor the client was configured for
	Vendor() string

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
