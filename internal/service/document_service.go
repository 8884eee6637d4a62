package service

import (
	"context"
	"fmt"
	"strings"

	"readydoc-bot/internal/entity"
	"readydoc-bot/internal/pkg/logger"
	"readydoc-bot/pkg/drafting"
	"readydoc-bot/pkg/llm"
	"readydoc-bot/pkg/placeholder"
	"readydoc-bot/pkg/promptcache"
)

// IDocumentService wraps every use of the generation service: drafting,
// clarification, legal review, amendments and role classification. One
// request per call, no retries; a failed call is surfaced to the dialog
// layer which clears the session.
type IDocumentService interface {
	// Clarify asks the model for a single follow-up question. needed is
	// false when the description is sufficient to draft from directly.
	Clarify(ctx context.Context, description string) (question string, needed bool, err error)

	// Draft produces the full document text, consulting the prompt cache
	// first. cached reports whether a generation call was avoided.
	Draft(ctx context.Context, description string, answers []entity.Answer) (text string, cached bool, err error)

	// Review runs the legal self-check pass over a finished draft.
	Review(ctx context.Context, documentText string) (string, error)

	// Amend appends a section on the given topic to the document.
	Amend(ctx context.Context, documentText, topic string) (string, error)

	// Classify maps placeholders to contract parties. Best-effort: an
	// unparsable reply degrades to an empty map with an error.
	Classify(ctx context.Context, documentText string, placeholders []string) (placeholder.RoleMap, error)
}

type documentService struct {
	provider     llm.LLMProvider
	composer     *drafting.Composer
	cache        *promptcache.Cache
	logger       logger.ILogger
	draftTokens  int
	draftTemp    float64
}

func NewDocumentService(provider llm.LLMProvider, cache *promptcache.Cache, log logger.ILogger, draftTemp float64, draftTokens int) IDocumentService {
	return &documentService{
		provider:    provider,
		composer:    drafting.NewComposer(),
		cache:       cache,
		logger:      log,
		draftTemp:   draftTemp,
		draftTokens: draftTokens,
	}
}

func (s *documentService) chat(ctx context.Context, system, user string, opts ...llm.Option) (string, error) {
	history := []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	reply, err := s.provider.Chat(ctx, history, opts...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (s *documentService) Clarify(ctx context.Context, description string) (string, bool, error) {
	reply, err := s.chat(ctx,
		drafting.ClarifyingSystemPrompt,
		s.composer.Clarifying(description),
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(150),
	)
	if err != nil {
		return "", false, fmt.Errorf("clarifying call: %w", err)
	}

	if strings.Contains(reply, "?") {
		return reply, true, nil
	}
	return "", false, nil
}

func (s *documentService) Draft(ctx context.Context, description string, answers []entity.Answer) (string, bool, error) {
	clarifications := make([]drafting.Answer, len(answers))
	for i, a := range answers {
		clarifications[i] = drafting.Answer{Question: a.Question, Reply: a.Reply}
	}
	prompt := s.composer.Drafting(description, clarifications)

	if text, found, err := s.cache.Load(prompt); err == nil && found {
		return text, true, nil
	} else if err != nil {
		s.logger.Warn("DocumentService", "Prompt cache read failed", map[string]interface{}{"error": err.Error()})
	}

	text, err := s.chat(ctx,
		drafting.DraftingSystemPrompt,
		prompt,
		llm.WithTemperature(s.draftTemp),
		llm.WithMaxTokens(s.draftTokens),
	)
	if err != nil {
		return "", false, fmt.Errorf("drafting call: %w", err)
	}
	if text == "" {
		return "", false, fmt.Errorf("drafting call returned empty text")
	}

	if err := s.cache.Save(prompt, text); err != nil {
		s.logger.Warn("DocumentService", "Prompt cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return text, false, nil
}

func (s *documentService) Review(ctx context.Context, documentText string) (string, error) {
	notes, err := s.provider.Generate(ctx,
		s.composer.Review(documentText),
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(600),
	)
	if err != nil {
		return "", fmt.Errorf("review call: %w", err)
	}
	return strings.TrimSpace(notes), nil
}

func (s *documentService) Amend(ctx context.Context, documentText, topic string) (string, error) {
	section, err := s.chat(ctx,
		drafting.AmendmentSystemPrompt,
		s.composer.Amendment(documentText, topic),
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(300),
	)
	if err != nil {
		return "", fmt.Errorf("amendment call: %w", err)
	}
	return documentText + "\n\n" + section, nil
}

func (s *documentService) Classify(ctx context.Context, documentText string, placeholders []string) (placeholder.RoleMap, error) {
	raw, err := s.chat(ctx,
		drafting.ClassificationSystemPrompt,
		s.composer.Classification(documentText, placeholders),
		llm.WithTemperature(0),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		return placeholder.RoleMap{
			Roles:             map[string][]string{},
			FieldDescriptions: map[string]string{},
		}, fmt.Errorf("classification call: %w", err)
	}
	return placeholder.ParseRoleMap(raw)
}
