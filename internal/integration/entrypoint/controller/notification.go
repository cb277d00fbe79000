// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dompetku/backend/internal/application/usecase/notification"
	"github.com/dompetku/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles notification feed endpoints.
type NotificationController struct {
	listUseCase        *notification.ListNotificationsUseCase
	markAllReadUseCase *notification.MarkAllReadUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markAllReadUseCase *notification.MarkAllReadUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:        listUseCase,
		markAllReadUseCase: markAllReadUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListNotificationsResponse(output))
}

// MarkAllRead handles POST /notifications/read-all requests. Marking an
// already-read feed is a no-op.
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	if err := c.markAllReadUseCase.Execute(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to mark notifications as read",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "All notifications marked as read"})
}
