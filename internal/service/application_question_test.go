package service

import (
	"testing"

	"github.com/SWEConnect/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionReplaceSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationQuestionService(db)
	app := createTestApplication(t, db, nil, nil)

	for i, text := range []string{"old one", "old two"} {
		_, err := svc.Create(app.ID, i+1, text, model.QuestionTypeTextField, true, nil)
		require.NoError(t, err)
	}

	// Delete-then-recreate: only the new set remains.
	require.NoError(t, svc.DeleteByApplicationID(app.ID))
	_, err := svc.Create(app.ID, 1, "new one", model.QuestionTypeTextInput, false, nil)
	require.NoError(t, err)

	questions, err := svc.ListByApplicationID(app.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "new one", questions[0].Question)
}

func TestQuestionCreateValidatesChoices(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationQuestionService(db)
	app := createTestApplication(t, db, nil, nil)

	_, err := svc.Create(app.ID, 1, "pick one", model.QuestionTypeMultipleChoice, true, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40004")

	q, err := svc.Create(app.ID, 1, "pick one", model.QuestionTypeMultipleChoice, true, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"a", "b"}, q.AnswerChoices)

	// Free-text types need no choices.
	_, err = svc.Create(app.ID, 2, "essay", model.QuestionTypeTextField, false, nil)
	require.NoError(t, err)
}

func TestQuestionCreateRequiresApplication(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationQuestionService(db)

	_, err := svc.Create(999, 1, "orphan", model.QuestionTypeTextInput, false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40403")
}
