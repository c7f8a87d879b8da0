package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hostdesk/internal/application/notification/usecases"
	"hostdesk/internal/shared/logger"
	"hostdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listNotifications  *usecases.ListNotificationsUseCase
	markRead           *usecases.MarkNotificationReadUseCase
	markAllRead        *usecases.MarkAllNotificationsReadUseCase
	deleteNotification *usecases.DeleteNotificationUseCase
	logger             logger.Interface
}

func NewNotificationHandler(
	listNotifications *usecases.ListNotificationsUseCase,
	markRead *usecases.MarkNotificationReadUseCase,
	markAllRead *usecases.MarkAllNotificationsReadUseCase,
	deleteNotification *usecases.DeleteNotificationUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotifications:  listNotifications,
		markRead:           markRead,
		markAllRead:        markAllRead,
		deleteNotification: deleteNotification,
		logger:             logger,
	}
}

// List returns the admin inbox, newest first, with the unread counter.
func (h *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.listNotifications.Execute(c.Request.Context(), limit, offset)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, list)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.markRead.Execute(c.Request.Context(), id); err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, nil, "notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.markAllRead.Execute(c.Request.Context()); err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, nil, "all notifications marked as read")
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteNotification.Execute(c.Request.Context(), id); err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
