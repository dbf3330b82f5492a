package handlers

import (
	"errors"
	"net/http"

	"resto_admin_backend/internal/services"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHandler holds the register service.
type RegisterHandler struct {
	registerService services.RegisterService
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(rs services.RegisterService) *RegisterHandler {
	return &RegisterHandler{registerService: rs}
}

// GetRegister returns the current register session, open or closed.
func (h *RegisterHandler) GetRegister(c *gin.Context) {
	session := h.registerService.Current()
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// OpenRegister opens a new register session.
func (h *RegisterHandler) OpenRegister(c *gin.Context) {
	var req services.OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "OpenRegister: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	session, err := h.registerService.Open(req.InitialAmount, req.Cashier)
	if err != nil {
		utils.LogError(err, "OpenRegister: Error from registerService.Open")
		if errors.Is(err, services.ErrRegisterAlreadyOpen) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "The register is already open.", err.Error()))
		} else if errors.Is(err, services.ErrRegisterValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to open register.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, session)
}

// CloseRegister closes the open register session.
func (h *RegisterHandler) CloseRegister(c *gin.Context) {
	session, err := h.registerService.Close()
	if err != nil {
		utils.LogError(err, "CloseRegister: Error from registerService.Close")
		if errors.Is(err, services.ErrRegisterNotOpen) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "The register is not open.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to close register.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, session)
}
