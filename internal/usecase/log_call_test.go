package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rsharda/kam-leads/internal/entity"
)

func validCallInput() LogCallInput {
	return LogCallInput{
		CallDate: "2025-01-08",
		Duration: 300,
		CallBy:   "kam1",
		Purpose:  "Menu follow-up",
		Notes:    "Asked for a sample box",
	}
}

func TestLogCallAppendsRecord(t *testing.T) {
	lead := storedLead()

	updated := *lead
	updated.CallHistory = append(updated.CallHistory, entity.CallRecord{
		CallDate: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		Duration: 300,
		CallBy:   "kam1",
		Purpose:  "Menu follow-up",
		Notes:    "Asked for a sample box",
	})

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)
	mockRepo.On("AppendCall", mock.Anything, lead.ID, lead.Version, mock.Anything).Return(&updated, nil)

	uc := NewLogCallUseCase(mockRepo)

	history, err := uc.Execute(context.Background(), lead.ID, validCallInput())

	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "kam1", history[0].CallBy)

	record := mockRepo.Calls[1].Arguments.Get(3).(entity.CallRecord)
	assert.Equal(t, 300, record.Duration)
	assert.Equal(t, "Menu follow-up", record.Purpose)
}

func TestLogCallRejectsIncompleteRecord(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	uc := NewLogCallUseCase(mockRepo)

	input := validCallInput()
	input.Purpose = ""
	input.Duration = 0

	_, err := uc.Execute(context.Background(), "lead-1", input)

	var errs ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	mockRepo.AssertNotCalled(t, "AppendCall", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogCallNotesAreOptional(t *testing.T) {
	lead := storedLead()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)
	mockRepo.On("AppendCall", mock.Anything, lead.ID, lead.Version, mock.Anything).Return(lead, nil)

	uc := NewLogCallUseCase(mockRepo)

	input := validCallInput()
	input.Notes = ""

	_, err := uc.Execute(context.Background(), lead.ID, input)

	assert.NoError(t, err)
}

func TestGetCallHistoryEmptyIsNotAnError(t *testing.T) {
	lead := storedLead()
	lead.CallHistory = nil

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)

	uc := NewGetCallHistoryUseCase(mockRepo)

	history, err := uc.Execute(context.Background(), lead.ID)

	assert.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestGetCallHistoryUnknownLead(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, &NotFoundError{Resource: "lead", ID: "missing"})

	uc := NewGetCallHistoryUseCase(mockRepo)

	_, err := uc.Execute(context.Background(), "missing")

	assert.True(t, IsNotFound(err))
}

func TestGetCallHistoryPreservesInsertionOrder(t *testing.T) {
	lead := storedLead()
	lead.CallHistory = []entity.CallRecord{
		{CallDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Duration: 60, CallBy: "kam1", Purpose: "Intro"},
		{CallDate: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), Duration: 120, CallBy: "kam1", Purpose: "Pricing"},
		{CallDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Duration: 90, CallBy: "kam2", Purpose: "Closing"},
	}

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)

	uc := NewGetCallHistoryUseCase(mockRepo)

	history, err := uc.Execute(context.Background(), lead.ID)

	assert.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, "Intro", history[0].Purpose)
	assert.Equal(t, "Pricing", history[1].Purpose)
	assert.Equal(t, "Closing", history[2].Purpose)
}
