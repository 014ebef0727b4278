package dto

import "jobnest_backend/internal/models"

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
	Pagination    Pagination            `json:"pagination"`
}

// NotificationEvent is the payload pushed to connected websocket clients.
type NotificationEvent struct {
	ID      uint   `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
