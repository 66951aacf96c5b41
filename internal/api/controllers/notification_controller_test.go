package controllers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/response_models"
	"fotopanel/internal/services/mocks"
	"fotopanel/pkg/utils"
)

func TestNotificationController(t *testing.T) {
	adminID := uuid.New()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockNotificationServiceInterface(ctrl)
	h := NewNotificationController(svc)

	r := newRouter(identity(adminID, "admin", nil))
	r.GET("/notifications", h.ListNotifications)
	r.GET("/notifications/unread-count", h.UnreadCount)
	r.PATCH("/notifications/mark-all-read", h.MarkAllRead)
	r.PATCH("/notifications/:id", h.MarkRead)

	t.Run("list", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any(), gomock.Any()).Return([]db_models.Notification{{Title: "Yeni Randevu Oluşturuldu"}}, nil)
		if w := do(r, http.MethodGet, "/notifications", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unread count", func(t *testing.T) {
		svc.EXPECT().UnreadCount(gomock.Any(), gomock.Any()).Return(&response_models.UnreadCount{Count: 3}, nil)
		w := do(r, http.MethodGet, "/notifications/unread-count", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, _ := decode(t, w).Data.(map[string]any)
		if data["count"] != float64(3) {
			t.Fatalf("expected count 3, got %v", data)
		}
	})

	t.Run("mark all read is not routed as an id", func(t *testing.T) {
		svc.EXPECT().MarkAllRead(gomock.Any(), gomock.Any()).Return(&response_models.MarkedRead{Updated: 2}, nil)
		if w := do(r, http.MethodPatch, "/notifications/mark-all-read", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mark foreign notification", func(t *testing.T) {
		id := uuid.New()
		svc.EXPECT().MarkRead(gomock.Any(), gomock.Any(), id).Return(utils.ErrNotificationNotFound)
		if w := do(r, http.MethodPatch, "/notifications/"+id.String(), ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
