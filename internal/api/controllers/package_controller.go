package controllers

import (
	"github.com/gin-gonic/gin"

	"fotopanel/internal/models/request_models"
	"fotopanel/internal/services"
	"fotopanel/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
}

func NewPackageController(packageService services.PackageServiceInterface) *PackageController {
	return &PackageController{packageService: packageService}
}

// ListPackages godoc
// @Summary List packages
// @Description Subscription tiers sorted by price. Default tiers are created on first use.
// @Tags Packages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /packages [get]
func (pc *PackageController) ListPackages(c *gin.Context) {
	packages, err := pc.packageService.ListPackages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, packages, "Paketler listelendi")
}

// SavePackage godoc
// @Summary Save package
// @Description Overwrites the whole package record with the given id, creating it when missing
// @Tags Superadmin
// @Accept json
// @Produce json
// @Param request body request_models.SavePackageRequest true "Package"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /superadmin/packages [put]
func (pc *PackageController) SavePackage(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req request_models.SavePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err, "Geçersiz istek")
		return
	}

	pkg, err := pc.packageService.SavePackage(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Paket kaydedildi")
}

// AssignPackage godoc
// @Summary Assign package to photographer
// @Description Sets package type, storage limit and subscription expiry, then emails the photographer
// @Tags Superadmin
// @Accept json
// @Produce json
// @Param id path string true "Photographer account ID"
// @Param request body request_models.AssignPackageRequest true "Assignment"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /superadmin/photographers/{id}/package [put]
func (pc *PackageController) AssignPackage(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.AssignPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err, "Geçersiz istek")
		return
	}

	plan, err := pc.packageService.AssignPackage(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Paket atandı")
}
