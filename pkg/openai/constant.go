package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI API endpoint. Compatible vendors
	// (vLLM, llama.cpp server, DashScope, DeepSeek) override this.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 120 * time.Second
)
