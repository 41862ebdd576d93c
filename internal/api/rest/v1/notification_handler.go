package v1

import (
	"net/http"

	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

const defaultNotificationLimit = 20

// NotificationHandler defines the interface for reading in-app notifications
type NotificationHandler interface {
	List(ctx *gin.Context)
	UnreadCount(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	MarkAllRead(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService notifications.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService notifications.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

// List handles GET /notifications?unread=true
func (handler *notificationHandler) List(ctx *gin.Context) {
	limit, offset := defaultNotificationLimit, 0
	if err := bindPaging(ctx, &limit, &offset); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}
	unreadOnly := strutil.ConvertToBool(ctx.Query("unread"), false)

	list, err := handler.notificationService.ListForUser(ctx, principal(ctx).ID, unreadOnly, limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		response = append(response, newNotificationResponse(n))
	}
	ctx.JSON(http.StatusOK, response)
}

// UnreadCount handles GET /notifications/unread-count
func (handler *notificationHandler) UnreadCount(ctx *gin.Context) {
	count, err := handler.notificationService.UnreadCount(ctx, principal(ctx).ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// MarkRead handles PATCH /notifications/:id/read
func (handler *notificationHandler) MarkRead(ctx *gin.Context) {
	if err := handler.notificationService.MarkRead(ctx, principal(ctx).ID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all and answers with the number of notifications marked
func (handler *notificationHandler) MarkAllRead(ctx *gin.Context) {
	count, err := handler.notificationService.MarkAllRead(ctx, principal(ctx).ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}
