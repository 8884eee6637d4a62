package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"readydoc-bot/internal/config"
	"readydoc-bot/pkg/llm"
	"readydoc-bot/pkg/llm/factory"

	"github.com/fatih/color"
)

// llmcheck probes the configured generation backend with a one-line prompt.
// Useful before deploying a new provider or model.
func main() {
	cfg := config.Load()

	fmt.Printf("Provider: %s, Model: %s\n", cfg.Ai.Provider, cfg.Ai.Model)

	provider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		color.Red("✗ Provider init failed: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now()
	reply, err := provider.Generate(ctx, "Ответь одним словом: работает ли соединение?",
		llm.WithTemperature(0),
		llm.WithMaxTokens(20),
	)
	if err != nil {
		color.Red("✗ Generation call failed: %v", err)
		os.Exit(1)
	}

	color.Green("✓ Backend reachable in %s", time.Since(start).Round(time.Millisecond))
	fmt.Printf("Reply: %s\n", reply)
}
