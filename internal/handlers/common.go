package handlers

import (
	"errors"
	"net/http"

	"resto_admin_backend/internal/gateway"
	"resto_admin_backend/internal/services"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondRemoteFailure maps gateway and in-flight errors to their HTTP
// responses. It returns true when the error was handled; remote failures
// are never fatal, the client keeps its last-rendered section.
func respondRemoteFailure(c *gin.Context, err error, action string) bool {
	if errors.Is(err, services.ErrRefreshInFlight) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusTooManyRequests, utils.ErrCodeRefreshInFlight, "A refresh for this section is already in progress.", err.Error()))
		return true
	}
	if errors.Is(err, gateway.ErrRemote) {
		utils.LogError(err, action+": remote gateway call failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeRemoteError, "The order/product service is unavailable.", err.Error()))
		return true
	}
	return false
}
