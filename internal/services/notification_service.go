package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/internal/services/dto"
	"jobnest_backend/pkg/apperrors"
)

// Publisher pushes events to connected clients. The websocket manager
// implements it; a nil publisher disables realtime delivery.
type Publisher interface {
	PushToUser(userID uint, event dto.NotificationEvent)
}

type NotificationService interface {
	// Notify persists a notification and pushes it to the user's open
	// websocket connections. The push is best-effort.
	Notify(ctx context.Context, userID uint, ntype, message string, data map[string]interface{}) (*models.Notification, error)
	List(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, userID, notificationID uint) error
	MarkAllAsRead(ctx context.Context, userID uint) error
	Delete(ctx context.Context, userID, notificationID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type notificationService struct {
	repo      repositories.NotificationRepository
	publisher Publisher
}

func NewNotificationService(repo repositories.NotificationRepository, publisher Publisher) NotificationService {
	return &notificationService{repo: repo, publisher: publisher}
}

func (s *notificationService) Notify(ctx context.Context, userID uint, ntype, message string, data map[string]interface{}) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  userID,
		Type:    ntype,
		Message: message,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		notification.Data = datatypes.JSON(raw)
	}

	if err := s.repo.Create(notification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if s.publisher != nil {
		s.publisher.PushToUser(userID, dto.NotificationEvent{
			ID:      notification.ID,
			Type:    ntype,
			Message: message,
			Data:    data,
		})
	}

	logger.CtxInfo(ctx, "notification created", "notification_id", notification.ID,
		"recipient_id", userID, "type", ntype)
	return notification, nil
}

func (s *notificationService) List(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.repo.FindByUser(userID, unreadOnly, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.repo.CountUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
		Pagination:    dto.NewPagination(page, pageSize, total),
	}, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID uint) error {
	if err := s.repo.MarkAsRead(userID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "notifications", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uint) error {
	if err := s.repo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID uint) error {
	if err := s.repo.Delete(userID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "notifications", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	count, err := s.repo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
