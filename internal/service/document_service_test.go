package service

import (
	"context"
	"testing"

	"readydoc-bot/internal/entity"
	"readydoc-bot/pkg/promptcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocuments(t *testing.T, provider *fakeProvider) IDocumentService {
	t.Helper()
	return NewDocumentService(provider, promptcache.New(t.TempDir()), nopLogger{}, 0.2, 1800)
}

func TestClarifyDetectsQuestion(t *testing.T) {
	ctx := context.Background()
	provider := newLeaseProvider()
	provider.clarifyReply = "Какой срок аренды?"
	docs := newTestDocuments(t, provider)

	question, needed, err := docs.Clarify(ctx, "Нужен договор аренды")
	require.NoError(t, err)
	assert.True(t, needed)
	assert.Equal(t, "Какой срок аренды?", question)
}

func TestClarifyAcceptsCompleteDescription(t *testing.T) {
	ctx := context.Background()
	docs := newTestDocuments(t, newLeaseProvider())

	question, needed, err := docs.Clarify(ctx, "Договор аренды офиса 30 м² на год за 150000 руб/мес")
	require.NoError(t, err)
	assert.False(t, needed)
	assert.Empty(t, question)
}

func TestDraftUsesCache(t *testing.T) {
	ctx := context.Background()
	provider := newLeaseProvider()
	docs := newTestDocuments(t, provider)

	text, cached, err := docs.Draft(ctx, "Договор аренды офиса", nil)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, leaseDraft, text)

	// The answer set is part of the cache key, so the same description with
	// a clarification is a different entry.
	_, cached, err = docs.Draft(ctx, "Договор аренды офиса", []entity.Answer{{Question: "Срок?", Reply: "Год"}})
	require.NoError(t, err)
	assert.False(t, cached)

	_, cached, err = docs.Draft(ctx, "Договор аренды офиса", nil)
	require.NoError(t, err)
	assert.True(t, cached)

	assert.Equal(t, 2, provider.draftCalls)
}

func TestDraftRejectsEmptyReply(t *testing.T) {
	ctx := context.Background()
	provider := newLeaseProvider()
	provider.draftReply = ""
	docs := newTestDocuments(t, provider)

	_, _, err := docs.Draft(ctx, "Договор аренды офиса", nil)
	assert.Error(t, err)
}

func TestAmendAppendsSection(t *testing.T) {
	ctx := context.Background()
	docs := newTestDocuments(t, newLeaseProvider())

	amended, err := docs.Amend(ctx, "Текст договора.", "штраф за просрочку")
	require.NoError(t, err)
	assert.Contains(t, amended, "Текст договора.")
	assert.Contains(t, amended, "СУММА ШТРАФА")
}

func TestClassifyDegradesOnGarbage(t *testing.T) {
	ctx := context.Background()
	provider := newLeaseProvider()
	provider.classifyReply = "не могу распарсить"
	docs := newTestDocuments(t, provider)

	roleMap, err := docs.Classify(ctx, leaseDraft, []string{"СУММА АРЕНДЫ"})
	assert.Error(t, err)
	assert.NotNil(t, roleMap.Roles)
	assert.NotNil(t, roleMap.FieldDescriptions)
}
