package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/models/response_models"
	"fotopanel/internal/services"
	"fotopanel/internal/services/mocks"
	"fotopanel/pkg/utils"
)

func TestCustomerController_UpdateCustomer(t *testing.T) {
	adminID := uuid.New()
	customerID := uuid.New()

	setup := func(t *testing.T, mw gin.HandlerFunc) (*gin.Engine, *mocks.MockCustomerServiceInterface) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCustomerServiceInterface(ctrl)
		h := NewCustomerController(svc)
		r := newRouter(mw)
		r.PUT("/customers/:id", h.UpdateCustomer)
		return r, svc
	}

	t.Run("passes actor and partial body", func(t *testing.T) {
		r, svc := setup(t, identity(adminID, "admin", nil))

		svc.EXPECT().
			UpdateCustomer(gomock.Any(), services.Actor{UserID: adminID, Role: db_models.RoleAdmin}, customerID, gomock.Any()).
			DoAndReturn(func(_ any, _ services.Actor, _ uuid.UUID, req request_models.UpdateCustomerRequest) (*db_models.Customer, error) {
				if req.AlbumStatus == nil || *req.AlbumStatus != "baskida" {
					t.Fatalf("expected albumStatus baskida, got %v", req.AlbumStatus)
				}
				if req.AppointmentStatus != nil {
					t.Fatalf("expected appointmentStatus to stay unset")
				}
				return &db_models.Customer{AlbumStatus: db_models.AlbumPrinting}, nil
			})

		w := do(r, http.MethodPut, "/customers/"+customerID.String(), `{"albumStatus":"baskida"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("couple token carries its customer", func(t *testing.T) {
		coupleID := uuid.New()
		r, svc := setup(t, identity(coupleID, "couple", &customerID))

		svc.EXPECT().
			UpdateCustomer(gomock.Any(), gomock.Any(), customerID, gomock.Any()).
			DoAndReturn(func(_ any, actor services.Actor, _ uuid.UUID, req request_models.UpdateCustomerRequest) (*db_models.Customer, error) {
				if actor.CustomerID == nil || *actor.CustomerID != customerID {
					t.Fatalf("expected actor customer %s, got %v", customerID, actor.CustomerID)
				}
				if !req.FromCustomer() {
					t.Fatalf("expected source customer")
				}
				return &db_models.Customer{}, nil
			})

		w := do(r, http.MethodPut, "/customers/"+customerID.String(), `{"selectionCompleted":true,"source":"customer"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", utils.ErrCustomerNotFound, http.StatusNotFound},
		{"forbidden", utils.ErrForbidden, http.StatusForbidden},
		{"email conflict", utils.ErrEmailInUse, http.StatusConflict},
		{"validation", func() error {
			v := utils.NewValidationError()
			v.Add("albumStatus", "Geçersiz albüm durumu")
			return v
		}(), http.StatusBadRequest},
		{"unexpected", errors.New("db gone"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := setup(t, identity(adminID, "admin", nil))
			svc.EXPECT().UpdateCustomer(gomock.Any(), gomock.Any(), customerID, gomock.Any()).Return(nil, tc.err)

			w := do(r, http.MethodPut, "/customers/"+customerID.String(), `{"status":"archived"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			resp := decode(t, w)
			if resp.Status != "error" || resp.Code != tc.want {
				t.Fatalf("unexpected envelope %+v", resp)
			}
			if tc.want == http.StatusInternalServerError && resp.Message != "Sunucu hatası" {
				t.Fatalf("internal details leaked: %q", resp.Message)
			}
		})
	}

	t.Run("bad id", func(t *testing.T) {
		r, _ := setup(t, identity(adminID, "admin", nil))
		w := do(r, http.MethodPut, "/customers/not-a-uuid", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := setup(t, identity(adminID, "admin", nil))
		w := do(r, http.MethodPut, "/customers/"+customerID.String(), `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validator detail stays out of the response", func(t *testing.T) {
		var recorded []*gin.Error
		capture := func(c *gin.Context) {
			c.Next()
			recorded = c.Errors
		}
		ctrl := gomock.NewController(t)
		h := NewCustomerController(mocks.NewMockCustomerServiceInterface(ctrl))
		r := newRouter(capture, identity(adminID, "admin", nil))
		r.PUT("/customers/:id", h.UpdateCustomer)

		w := do(r, http.MethodPut, "/customers/"+customerID.String(), `{"email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if resp := decode(t, w); resp.Message != "Geçersiz istek" {
			t.Fatalf("expected a fixed message, got %q", resp.Message)
		}
		if len(recorded) != 1 || recorded[0].Type != gin.ErrorTypeBind {
			t.Fatalf("expected the bind error on the context, got %v", recorded)
		}
	})

	t.Run("missing identity", func(t *testing.T) {
		r, _ := setup(t, func(c *gin.Context) { c.Next() })
		w := do(r, http.MethodPut, "/customers/"+customerID.String(), `{}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestCustomerController_CreateAndReset(t *testing.T) {
	adminID := uuid.New()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCustomerServiceInterface(ctrl)
	h := NewCustomerController(svc)

	r := newRouter(identity(adminID, "admin", nil))
	r.POST("/customers", h.CreateCustomer)
	r.POST("/customers/:id/reset-password", h.ResetPassword)
	r.DELETE("/customers/:id", h.DeleteCustomer)

	t.Run("create returns credentials once", func(t *testing.T) {
		svc.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&response_models.CreatedCustomer{
				Credentials: response_models.Credentials{Username: "ayseburak", Password: "123456"},
			}, nil)

		w := do(r, http.MethodPost, "/customers", `{"brideName":"Ayşe","groomName":"Burak","phone":"0555"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("short password never reaches the service", func(t *testing.T) {
		w := do(r, http.MethodPost, "/customers/"+uuid.NewString()+"/reset-password", `{"password":"12"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reset password", func(t *testing.T) {
		id := uuid.New()
		svc.EXPECT().ResetCustomerPassword(gomock.Any(), gomock.Any(), id, "yeni1234").
			Return(&response_models.Credentials{Username: "ayseburak", Password: "yeni1234"}, nil)

		w := do(r, http.MethodPost, "/customers/"+id.String()+"/reset-password", `{"password":"yeni1234"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		id := uuid.New()
		svc.EXPECT().DeleteCustomer(gomock.Any(), gomock.Any(), id).Return(nil)

		w := do(r, http.MethodDelete, "/customers/"+id.String(), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
