package factory

import (
	"fmt"

	"readydoc-bot/pkg/llm"
	"readydoc-bot/pkg/llm/ollama"
	"readydoc-bot/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, openAIBaseURL, openAIKey, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		if openAIBaseURL == "" {
			openAIBaseURL = "https://api.openai.com"
		}
		return openai.NewProvider(openAIBaseURL, openAIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
