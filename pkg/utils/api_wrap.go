package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondBindError answers a malformed body or query with a fixed message.
// The decoder error is attached to the context for the request logger.
func RespondBindError(c *gin.Context, err error, message string) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	RespondError(c, http.StatusBadRequest, message)
}

func respondValidation(c *gin.Context, v *ValidationError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Geçersiz istek",
		TraceID: traceID(c),
		Data:    gin.H{"fields": v.Fields},
	})
}

// HandleServiceError maps service errors onto HTTP responses. Only short
// generic messages reach the client; unexpected errors are attached to the
// gin context for the request logger.
func HandleServiceError(c *gin.Context, err error) {
	var validation *ValidationError

	switch {
	case errors.As(err, &validation):
		respondValidation(c, validation)
	case errors.Is(err, ErrCustomerNotFound):
		RespondError(c, http.StatusNotFound, "Müşteri bulunamadı")
	case errors.Is(err, ErrShootNotFound):
		RespondError(c, http.StatusNotFound, "Çekim bulunamadı")
	case errors.Is(err, ErrPackageNotFound):
		RespondError(c, http.StatusNotFound, "Paket bulunamadı")
	case errors.Is(err, ErrNotificationNotFound):
		RespondError(c, http.StatusNotFound, "Bildirim bulunamadı")
	case errors.Is(err, ErrTemplateTypeNotFound):
		RespondError(c, http.StatusNotFound, "Şablon türü bulunamadı")
	case errors.Is(err, ErrNoRecipients):
		RespondError(c, http.StatusNotFound, "Alıcı bulunamadı")
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, "Kayıt bulunamadı")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Bu işlem için yetkiniz yok")
	case errors.Is(err, ErrEmailInUse):
		RespondError(c, http.StatusConflict, "Bu email adresi başka bir hesap tarafından kullanılıyor")
	case errors.Is(err, ErrUsernameInUse):
		RespondError(c, http.StatusConflict, "Bu kullanıcı adı zaten kullanılıyor")
	case errors.Is(err, ErrConflict):
		RespondError(c, http.StatusConflict, "Kayıt zaten mevcut")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Oturum geçersiz")
	case errors.Is(err, ErrMailDelivery):
		_ = c.Error(err)
		RespondError(c, http.StatusBadGateway, "E-posta gönderilemedi")
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Sunucu hatası")
	}
}
