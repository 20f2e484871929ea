package service

import (
	"testing"

	"github.com/SWEConnect/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubApplicationQuestionLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewClubApplicationService(db)

	app, err := svc.Create("membership", "annual club intake")
	require.NoError(t, err)

	q, err := svc.CreateQuestion(app.ID, 1, "what year are you", model.QuestionTypeTextInput, true)
	require.NoError(t, err)

	updated, err := svc.UpdateQuestion(q.ID, 2, "what is your major", model.QuestionTypeTextField, false)
	require.NoError(t, err)
	assert.Equal(t, q.ID, updated.ID)

	var stored model.ClubApplicationQuestion
	require.NoError(t, db.First(&stored, q.ID).Error)
	assert.Equal(t, "what is your major", stored.Question)
	assert.Equal(t, 2, stored.OrderNumber)
	assert.False(t, stored.Required)

	require.NoError(t, svc.DeleteAllQuestions(app.ID))
	var count int64
	db.Model(&model.ClubApplicationQuestion{}).Where("club_application_id = ?", app.ID).Count(&count)
	assert.Zero(t, count)
}

func TestClubQuestionRequiresClubApplication(t *testing.T) {
	db := newTestDB(t)
	svc := NewClubApplicationService(db)

	_, err := svc.CreateQuestion(999, 1, "orphan", model.QuestionTypeTextInput, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40405")
}
