package scorer

import "errors"

var (
	ErrLLMUnavailable    = errors.New("llm strategy unavailable")
	ErrMalformedResponse = errors.New("llm response is not valid rating JSON")
	ErrNoMatchedRatings  = errors.New("llm response rated none of the input tasks")
	ErrNoStrategy        = errors.New("no usable scoring strategy")
)
