package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ascendops/internal/models/request_models"
	"ascendops/internal/services"
	"ascendops/pkg/middleware"
	"ascendops/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
}

func NewPackageController(packageService services.PackageServiceInterface) *PackageController {
	return &PackageController{
		packageService: packageService,
	}
}

// CreatePackage godoc
// @Summary Create a package
// @Description Add a sellable media package to the catalog, founders only
// @Tags Packages
// @Accept json
// @Produce json
// @Param request body request_models.CreatePackageRequest true "Package payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /packages [post]
func (p *PackageController) CreatePackage(c *gin.Context) {
	var req request_models.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pkg, err := p.packageService.Create(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, pkg, "Package created successfully")
}

// ListPackages godoc
// @Summary List packages
// @Description Fetch the package catalog
// @Tags Packages
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /packages [get]
func (p *PackageController) ListPackages(c *gin.Context) {
	packages, err := p.packageService.List(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, packages, "Packages fetched successfully")
}
