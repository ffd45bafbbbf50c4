package usecase

import (
	"context"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	projectRepo domain.ProjectRepository
}

func NewMessageUsecase(messageRepo domain.MessageRepository, projectRepo domain.ProjectRepository) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		projectRepo: projectRepo,
	}
}

// isParticipant reports whether a user is the project's client or its
// assigned freelancer.
func isParticipant(project *domain.Project, userID string) bool {
	if userID == project.ClientID {
		return true
	}
	return project.FreelancerID != nil && userID == *project.FreelancerID
}

// PostMessage appends a message to a project conversation. Both ends must be
// project participants.
func (u *messageUsecase) PostMessage(ctx context.Context, senderID string, projectID int64, receiverID, content string) (*domain.Message, error) {
	if content == "" {
		return nil, apperror.Validation("Message content is required")
	}
	if senderID == receiverID {
		return nil, apperror.Validation("Sender and receiver must differ")
	}

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.NotFound("Project not found")
	}
	if !isParticipant(project, senderID) || !isParticipant(project, receiverID) {
		return nil, apperror.Participant("Both parties must belong to the project")
	}

	message := &domain.Message{
		ProjectID:  projectID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		IsRead:     false,
	}
	if err := u.messageRepo.Create(ctx, message); err != nil {
		return nil, apperror.Internal(err)
	}
	return message, nil
}

func (u *messageUsecase) ListByProject(ctx context.Context, actorID string, projectID int64) ([]domain.Message, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.NotFound("Project not found")
	}
	if !isParticipant(project, actorID) {
		return nil, apperror.Participant("Only project participants can read the conversation")
	}
	messages, err := u.messageRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

// MarkRead flips the read flag. Only the receiver may mark a message read.
func (u *messageUsecase) MarkRead(ctx context.Context, readerID string, messageID int64) error {
	message, err := u.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return apperror.NotFound("Message not found")
	}
	if readerID != message.ReceiverID {
		return apperror.Participant("Only the receiver can mark a message as read")
	}
	if message.IsRead {
		return nil
	}
	if err := u.messageRepo.MarkRead(ctx, messageID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
