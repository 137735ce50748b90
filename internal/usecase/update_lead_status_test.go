package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rsharda/kam-leads/internal/entity"
)

func storedLead() *entity.Lead {
	return entity.NewLead(
		"Acme Diner", "J. Lee", "j@acme.com", "Weekly",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		"", "", "",
	)
}

func TestUpdateStatusAppendsAuditEntry(t *testing.T) {
	lead := storedLead()

	updated := *lead
	updated.Status = entity.LeadStatusInProgress
	updated.StatusHistory = append(updated.StatusHistory, entity.StatusChange{
		Status:    entity.LeadStatusInProgress,
		UpdatedAt: time.Now(),
		UpdatedBy: "kam1",
	})
	updated.Version = lead.Version + 1

	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)
	mockRepo.On("ApplyStatusChange", mock.Anything, lead.ID, lead.Version, mock.Anything, "").Return(&updated, nil)
	mockProducer.On("PublishLeadEvent", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateLeadStatusUseCase(mockRepo, mockProducer)

	result, err := uc.Execute(context.Background(), lead.ID, UpdateLeadStatusInput{
		Status:    entity.LeadStatusInProgress,
		UpdatedBy: "kam1",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusInProgress, result.Status)
	assert.Len(t, result.StatusHistory, 2)
	assert.Equal(t, result.Status, result.CurrentStatusEntry().Status)
	assert.Equal(t, "kam1", result.CurrentStatusEntry().UpdatedBy)

	change := mockRepo.Calls[1].Arguments.Get(3).(entity.StatusChange)
	assert.Equal(t, entity.LeadStatusInProgress, change.Status)
	assert.Equal(t, "kam1", change.UpdatedBy)
}

func TestUpdateStatusRejectsUnknownStatusWithoutTouchingStore(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	uc := NewUpdateLeadStatusUseCase(mockRepo, nil)

	result, err := uc.Execute(context.Background(), "lead-1", UpdateLeadStatusInput{Status: "Archived"})

	assert.Nil(t, result)
	var invalid *InvalidStatusError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Archived", invalid.Status)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "ApplyStatusChange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusUnknownLead(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, &NotFoundError{Resource: "lead", ID: "missing"})

	uc := NewUpdateLeadStatusUseCase(mockRepo, nil)

	_, err := uc.Execute(context.Background(), "missing", UpdateLeadStatusInput{Status: entity.LeadStatusClosed})

	assert.True(t, IsNotFound(err))
}

func TestUpdateStatusNoOpTransitionStillAppends(t *testing.T) {
	lead := storedLead() // status New

	updated := *lead
	updated.StatusHistory = append(updated.StatusHistory, entity.StatusChange{
		Status:    entity.LeadStatusNew,
		UpdatedAt: time.Now(),
		UpdatedBy: "System",
	})

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)
	mockRepo.On("ApplyStatusChange", mock.Anything, lead.ID, lead.Version, mock.Anything, "").Return(&updated, nil)

	uc := NewUpdateLeadStatusUseCase(mockRepo, nil)

	result, err := uc.Execute(context.Background(), lead.ID, UpdateLeadStatusInput{Status: entity.LeadStatusNew})

	assert.NoError(t, err)
	assert.Len(t, result.StatusHistory, 2)
	mockRepo.AssertCalled(t, "ApplyStatusChange", mock.Anything, lead.ID, lead.Version, mock.Anything, "")
}

func TestUpdateStatusDefaultsActorToSystem(t *testing.T) {
	lead := storedLead()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)
	mockRepo.On("ApplyStatusChange", mock.Anything, lead.ID, lead.Version, mock.Anything, "").Return(lead, nil)

	uc := NewUpdateLeadStatusUseCase(mockRepo, nil)

	_, err := uc.Execute(context.Background(), lead.ID, UpdateLeadStatusInput{Status: entity.LeadStatusClosed})

	assert.NoError(t, err)
	change := mockRepo.Calls[1].Arguments.Get(3).(entity.StatusChange)
	assert.Equal(t, entity.DefaultUpdatedBy, change.UpdatedBy)
}

func TestUpdateStatusPassesFileRef(t *testing.T) {
	lead := storedLead()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, lead.ID).Return(lead, nil)
	mockRepo.On("ApplyStatusChange", mock.Anything, lead.ID, lead.Version, mock.Anything, "uploads/123_menu.pdf").Return(lead, nil)

	uc := NewUpdateLeadStatusUseCase(mockRepo, nil)

	_, err := uc.Execute(context.Background(), lead.ID, UpdateLeadStatusInput{
		Status:  entity.LeadStatusFollowUp,
		FileRef: "uploads/123_menu.pdf",
	})

	assert.NoError(t, err)
}
