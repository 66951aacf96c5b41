package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fotopanel/internal/models/request_models"
	"fotopanel/internal/services"
	"fotopanel/pkg/utils"
)

type CustomerController struct {
	customerService services.CustomerServiceInterface
}

func NewCustomerController(customerService services.CustomerServiceInterface) *CustomerController {
	return &CustomerController{
		customerService: customerService,
	}
}

// ListCustomers godoc
// @Summary List customers
// @Description List the caller's customers, newest first. `search` matches names, phone and email.
// @Tags Customers
// @Produce json
// @Param search query string false "Free-text filter"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /customers [get]
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	customers, err := cc.customerService.ListCustomers(c.Request.Context(), actor, c.Query("search"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customers, "Müşteriler listelendi")
}

// CreateCustomer godoc
// @Summary Create customer
// @Description Create a customer with a linked couple login. The generated password is returned once.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body request_models.CreateCustomerRequest true "Customer"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /customers [post]
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req request_models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err, "Geçersiz istek")
		return
	}

	created, err := cc.customerService.CreateCustomer(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Müşteri oluşturuldu")
}

// GetCustomer godoc
// @Summary Get customer
// @Description Customer record with linked login and photographer slug
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	customer, err := cc.customerService.GetCustomer(c.Request.Context(), actor, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customer, "Müşteri getirildi")
}

// UpdateCustomer godoc
// @Summary Update customer
// @Description Partial update. Handles status transitions, photo selection approval and login changes.
// @Description Couples may only send selectedPhotos and selectionCompleted with source=customer.
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body request_models.UpdateCustomerRequest true "Changed fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err, "Geçersiz istek")
		return
	}

	customer, err := cc.customerService.UpdateCustomer(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customer, "Müşteri güncellendi")
}

// DeleteCustomer godoc
// @Summary Delete customer
// @Description Deletes the customer and its linked login
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := cc.customerService.DeleteCustomer(c.Request.Context(), actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Müşteri silindi")
}

// ResetPassword godoc
// @Summary Reset customer password
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body request_models.ResetPasswordRequest true "New password"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /customers/{id}/reset-password [post]
func (cc *CustomerController) ResetPassword(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Şifre en az 4 karakter olmalıdır")
		return
	}

	creds, err := cc.customerService.ResetCustomerPassword(c.Request.Context(), actor, id, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, creds, "Şifre sıfırlandı")
}
