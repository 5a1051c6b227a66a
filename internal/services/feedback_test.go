package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/repositories"
	"github.com/tarun-1313/PrepInterview/internal/store"
)

const validFeedbackJSON = `{
	"totalScore": 72,
	"categoryScores": [
		{"name": "Communication Skills", "score": 80, "comment": "Clear and structured."},
		{"name": "Technical Knowledge", "score": 70, "comment": "Solid fundamentals."},
		{"name": "Problem-Solving", "score": 65, "comment": "Needs more practice."},
		{"name": "Cultural & Role Fit", "score": 75, "comment": "Good alignment."},
		{"name": "Confidence & Clarity", "score": 70, "comment": "Occasionally hesitant."}
	],
	"strengths": ["Communicates well"],
	"areasForImprovement": ["Practice system design"],
	"finalAssessment": "A promising candidate."
}`

var sampleTranscript = []models.ChatMessage{
	{Role: "assistant", Content: "Tell me about yourself."},
	{Role: "user", Content: "I am a backend developer with three years of experience."},
}

func newFeedbackFixture(gemini GeminiService) (store.Store, FeedbackService) {
	db := store.NewMemory()
	repo := repositories.NewFeedbackRepository(db)
	return db, NewFeedbackService(repo, gemini, "test-model")
}

func TestGenerateCreatesSingleRecord(t *testing.T) {
	stub := &stubGemini{objectJSON: validFeedbackJSON}
	db, svc := newFeedbackFixture(stub)

	id, err := svc.Generate(context.Background(), "int-1", "user-1", sampleTranscript, "")

	require.NoError(t, err)
	require.NotEmpty(t, id)

	docs, err := db.Query(context.Background(), "feedback", nil, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0].ID)

	saved, err := svc.GetByInterview(context.Background(), "int-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 72, saved.TotalScore)
	require.Len(t, saved.CategoryScores, 5)
	assert.Equal(t, models.FeedbackCategories[0], saved.CategoryScores[0].Name)

	// Transcript turns are rendered in order into the prompt.
	firstIdx := strings.Index(stub.lastPrompt, "- assistant: Tell me about yourself.")
	secondIdx := strings.Index(stub.lastPrompt, "- user: I am a backend developer")
	assert.Greater(t, firstIdx, -1)
	assert.Greater(t, secondIdx, firstIdx)
}

func TestGenerateWithExistingIDUpdatesInPlace(t *testing.T) {
	stub := &stubGemini{objectJSON: validFeedbackJSON}
	db, svc := newFeedbackFixture(stub)

	first, err := svc.Generate(context.Background(), "int-1", "user-1", sampleTranscript, "")
	require.NoError(t, err)

	second, err := svc.Generate(context.Background(), "int-1", "user-1", sampleTranscript, first)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	docs, err := db.Query(context.Background(), "feedback", nil, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestGenerateUpstreamFailureWritesNothing(t *testing.T) {
	stub := &stubGemini{err: errors.New("model unavailable")}
	db, svc := newFeedbackFixture(stub)

	_, err := svc.Generate(context.Background(), "int-1", "user-1", sampleTranscript, "")

	require.Error(t, err)

	docs, qerr := db.Query(context.Background(), "feedback", nil, 0)
	require.NoError(t, qerr)
	assert.Empty(t, docs)
}

func TestGenerateRejectsWrongCategorySet(t *testing.T) {
	stub := &stubGemini{objectJSON: `{
		"totalScore": 50,
		"categoryScores": [
			{"name": "Communication Skills", "score": 50, "comment": "ok"},
			{"name": "Vibes", "score": 50, "comment": "ok"},
			{"name": "Technical Knowledge", "score": 50, "comment": "ok"},
			{"name": "Problem-Solving", "score": 50, "comment": "ok"},
			{"name": "Confidence & Clarity", "score": 50, "comment": "ok"}
		],
		"strengths": [], "areasForImprovement": [], "finalAssessment": "x"
	}`}
	db, svc := newFeedbackFixture(stub)

	_, err := svc.Generate(context.Background(), "int-1", "user-1", sampleTranscript, "")

	require.Error(t, err)

	docs, qerr := db.Query(context.Background(), "feedback", nil, 0)
	require.NoError(t, qerr)
	assert.Empty(t, docs)
}

func TestGenerateClampsOutOfRangeScores(t *testing.T) {
	stub := &stubGemini{objectJSON: `{
		"totalScore": 140,
		"categoryScores": [
			{"name": "Communication Skills", "score": 120, "comment": "x"},
			{"name": "Technical Knowledge", "score": -5, "comment": "x"},
			{"name": "Problem-Solving", "score": 60, "comment": "x"},
			{"name": "Cultural & Role Fit", "score": 60, "comment": "x"},
			{"name": "Confidence & Clarity", "score": 60, "comment": "x"}
		],
		"strengths": [], "areasForImprovement": [], "finalAssessment": "x"
	}`}
	_, svc := newFeedbackFixture(stub)

	_, err := svc.Generate(context.Background(), "int-1", "user-1", sampleTranscript, "")
	require.NoError(t, err)

	saved, err := svc.GetByInterview(context.Background(), "int-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 100, saved.TotalScore)
	assert.Equal(t, 100, saved.CategoryScores[0].Score)
	assert.Equal(t, 0, saved.CategoryScores[1].Score)
}

func TestGenerateWithoutCredentialFails(t *testing.T) {
	db, svc := newFeedbackFixture(nil)

	_, err := svc.Generate(context.Background(), "int-1", "user-1", sampleTranscript, "")

	require.Error(t, err)

	docs, qerr := db.Query(context.Background(), "feedback", nil, 0)
	require.NoError(t, qerr)
	assert.Empty(t, docs)
}

func TestGetByInterviewReturnsNilWhenAbsent(t *testing.T) {
	_, svc := newFeedbackFixture(&stubGemini{})

	feedback, err := svc.GetByInterview(context.Background(), "int-x", "user-x")

	require.NoError(t, err)
	assert.Nil(t, feedback)
}
