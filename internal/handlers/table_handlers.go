package handlers

import (
	"errors"
	"net/http"

	"resto_admin_backend/internal/services"
	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TableHandler holds the table service.
type TableHandler struct {
	tableService services.TableService
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(ts services.TableService) *TableHandler {
	return &TableHandler{tableService: ts}
}

// CreateTable handles the creation of a new table.
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req services.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTable: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	table, err := h.tableService.CreateTable(req)
	if err != nil {
		utils.LogError(err, "CreateTable: Error from tableService.CreateTable")
		if errors.Is(err, services.ErrDuplicateTableNumber) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A table with this number already exists.", err.Error()))
		} else if errors.Is(err, services.ErrTableValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, table)
}

// GetTables handles fetching all tables.
func (h *TableHandler) GetTables(c *gin.Context) {
	tables := h.tableService.GetTables()
	c.JSON(http.StatusOK, gin.H{
		"data":  tables,
		"total": len(tables),
	})
}

// GetTableByID handles fetching a single table by ID.
func (h *TableHandler) GetTableByID(c *gin.Context) {
	idStr := c.Param("id")
	tableID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid table ID format.", err.Error()))
		return
	}

	table, err := h.tableService.GetTableByID(tableID)
	if err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Table not found.", err.Error()))
		} else {
			utils.LogError(err, "GetTableByID: Error from tableService.GetTableByID for ID "+idStr)
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// UpdateTable handles updating a table.
func (h *TableHandler) UpdateTable(c *gin.Context) {
	idStr := c.Param("id")
	tableID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid table ID format.", err.Error()))
		return
	}

	var req services.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateTable: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	table, err := h.tableService.UpdateTable(tableID, req)
	if err != nil {
		utils.LogError(err, "UpdateTable: Error from tableService.UpdateTable for ID "+idStr)
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Table not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrDuplicateTableNumber) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A table with this number already exists.", err.Error()))
		} else if errors.Is(err, services.ErrTableValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// CycleTableStatus advances a table's status along the fixed cycle.
func (h *TableHandler) CycleTableStatus(c *gin.Context) {
	idStr := c.Param("id")
	tableID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid table ID format.", err.Error()))
		return
	}

	table, err := h.tableService.CycleTableStatus(tableID)
	if err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Table not found.", err.Error()))
		} else {
			utils.LogError(err, "CycleTableStatus: Error from tableService.CycleTableStatus for ID "+idStr)
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to change table status.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// DeleteTable handles deleting a table.
func (h *TableHandler) DeleteTable(c *gin.Context) {
	idStr := c.Param("id")
	tableID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid table ID format.", err.Error()))
		return
	}

	if err := h.tableService.DeleteTable(tableID); err != nil {
		utils.LogError(err, "DeleteTable: Error from tableService.DeleteTable for ID "+idStr)
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Table not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted successfully"})
}
