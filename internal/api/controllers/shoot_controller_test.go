package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/services"
	"fotopanel/internal/services/mocks"
	"fotopanel/pkg/utils"
)

func TestShootController(t *testing.T) {
	adminID := uuid.New()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockShootServiceInterface(ctrl)
	h := NewShootController(svc)

	r := newRouter(identity(adminID, "admin", nil))
	r.GET("/shoots", h.ListShoots)
	r.POST("/shoots", h.CreateShoot)
	r.GET("/shoots/:id", h.GetShoot)
	r.PUT("/shoots/:id", h.UpdateShoot)
	r.DELETE("/shoots/:id", h.DeleteShoot)

	t.Run("list binds range", func(t *testing.T) {
		svc.EXPECT().ListShoots(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ services.Actor, q request_models.ListShootsQuery) ([]db_models.Shoot, error) {
				if q.Start == nil || !q.Start.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected start %v", q.Start)
				}
				if q.End != nil {
					t.Fatalf("expected no end, got %v", q.End)
				}
				return []db_models.Shoot{}, nil
			})

		w := do(r, http.MethodGet, "/shoots?start=2025-06-01T00:00:00Z", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("list rejects a bad customer id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/shoots?customerId=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		customerID := uuid.New()
		svc.EXPECT().CreateShoot(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ services.Actor, req request_models.CreateShootRequest) (*db_models.Shoot, error) {
				if req.CustomerID != customerID {
					t.Fatalf("expected customer %s, got %s", customerID, req.CustomerID)
				}
				return &db_models.Shoot{CustomerID: customerID}, nil
			})

		w := do(r, http.MethodPost, "/shoots", `{"customerId":"`+customerID.String()+`","date":"2025-06-20T14:00:00Z","type":"wedding"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("create needs a date", func(t *testing.T) {
		w := do(r, http.MethodPost, "/shoots", `{"customerId":"`+uuid.NewString()+`"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update with customer data", func(t *testing.T) {
		id := uuid.New()
		svc.EXPECT().UpdateShoot(gomock.Any(), gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ services.Actor, _ uuid.UUID, req request_models.UpdateShootRequest) (*db_models.Shoot, error) {
				if req.CustomerData == nil || req.CustomerData.AppointmentStatus == nil {
					t.Fatalf("expected customerData.appointmentStatus")
				}
				return &db_models.Shoot{}, nil
			})

		w := do(r, http.MethodPut, "/shoots/"+id.String(), `{"status":"completed","customerData":{"appointmentStatus":"cekim_yapildi"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		id := uuid.New()
		svc.EXPECT().GetShoot(gomock.Any(), gomock.Any(), id).Return(nil, utils.ErrShootNotFound)

		w := do(r, http.MethodGet, "/shoots/"+id.String(), "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete forbidden", func(t *testing.T) {
		id := uuid.New()
		svc.EXPECT().DeleteShoot(gomock.Any(), gomock.Any(), id).Return(utils.ErrForbidden)

		w := do(r, http.MethodDelete, "/shoots/"+id.String(), "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
