package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ascendops/internal/models/request_models"
	"ascendops/internal/services"
	"ascendops/pkg/middleware"
	"ascendops/pkg/utils"
)

type SdCardController struct {
	sdCardService services.SdCardServiceInterface
}

func NewSdCardController(sdCardService services.SdCardServiceInterface) *SdCardController {
	return &SdCardController{
		sdCardService: sdCardService,
	}
}

// CreateCard godoc
// @Summary Register an SD card
// @Description Add a card to the fleet, founders only
// @Tags SD Cards
// @Accept json
// @Produce json
// @Param request body request_models.CreateCardRequest true "Card payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sd-cards [post]
func (s *SdCardController) CreateCard(c *gin.Context) {
	var req request_models.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	card, err := s.sdCardService.AddCard(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, card, "Card created successfully")
}

// ListCards godoc
// @Summary List SD cards
// @Description Fetch the card fleet with current statuses
// @Tags SD Cards
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sd-cards [get]
func (s *SdCardController) ListCards(c *gin.Context) {
	cards, err := s.sdCardService.ListCards(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cards, "Cards fetched successfully")
}

// ListOpenLogs godoc
// @Summary List open checkout logs
// @Description Fetch every card currently out and who has it
// @Tags SD Cards
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sd-cards/open-logs [get]
func (s *SdCardController) ListOpenLogs(c *gin.Context) {
	logs, err := s.sdCardService.ListOpenLogs(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, logs, "Open logs fetched successfully")
}

// Checkout godoc
// @Summary Check out an SD card
// @Description Take a card in the calling user's name, optionally against an event and session
// @Tags SD Cards
// @Accept json
// @Produce json
// @Param request body request_models.CheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sd-cards/checkout [post]
func (s *SdCardController) Checkout(c *gin.Context) {
	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := s.sdCardService.Checkout(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Card checked out successfully")
}

// Return godoc
// @Summary Return an SD card
// @Description Close the open checkout log and put the card back in the pool
// @Tags SD Cards
// @Accept json
// @Produce json
// @Param request body request_models.ReturnRequest true "Return payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sd-cards/return [post]
func (s *SdCardController) Return(c *gin.Context) {
	var req request_models.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.sdCardService.Return(c.Request.Context(), middleware.ActorFromContext(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Card returned successfully")
}

// CardQRCode godoc
// @Summary Get a card's QR label
// @Description Render the PNG QR code that links to the card's checkout page, for printing on the card case
// @Tags SD Cards
// @Accept json
// @Produce image/png
// @Param id path string true "Card ID"
// @Success 200 {string} string "PNG image"
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sd-cards/{id}/qr [get]
func (s *SdCardController) CardQRCode(c *gin.Context) {
	cardID := c.Param("id")
	if cardID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Card ID is required")
		return
	}

	png, err := s.sdCardService.CardQRCode(c.Request.Context(), middleware.ActorFromContext(c), cardID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
