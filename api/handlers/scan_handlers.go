package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"content-graph/dto"
	"content-graph/scan"
)

func limitParam(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}

// StartScanHandler godoc
// @Summary      Start a linking scan
// @Description  Creates a running scan run and executes it asynchronously
// @Tags         scans
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartScanRequestDTO  true  "Scan request"
// @Success      202  {object}  dto.StartScanResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /scans [post]
func StartScanHandler(svc *scan.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.StartScanRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		run, err := svc.Start(c.Request.Context(), req.ToRequest())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, dto.StartScanResponseDTO{ScanRunID: run.ID})
	}
}

// ListScansHandler godoc
// @Summary      List scan runs
// @Tags         scans
// @Param        limit  query  int  false  "Max runs (<=100)"
// @Produce      json
// @Success      200  {object}  dto.ScanRunListDTO
// @Router       /scans [get]
func ListScansHandler(svc *scan.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		runs, err := svc.List(c.Request.Context(), limitParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ScanRunListDTO{Data: runs, Total: len(runs)})
	}
}

// GetScanHandler godoc
// @Summary      Get scan run
// @Tags         scans
// @Param        id  path  string  true  "Scan run ID"
// @Produce      json
// @Success      200  {object}  models.ScanRun
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /scans/{id} [get]
func GetScanHandler(svc *scan.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		run, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, run)
	}
}

// ListScanItemsHandler godoc
// @Summary      List scan items of a run
// @Tags         scans
// @Param        id  path  string  true  "Scan run ID"
// @Produce      json
// @Success      200  {object}  dto.ScanItemListDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /scans/{id}/items [get]
func ListScanItemsHandler(svc *scan.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Items(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ScanItemListDTO{Data: items, Total: len(items)})
	}
}

// ApplyScanItemsHandler godoc
// @Summary      Apply scan suggestions
// @Description  Inserts suggested edges and the Related Resources block for the chosen items (all unapplied items when item_ids is empty)
// @Tags         scans
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true   "Scan run ID"
// @Param        body  body  dto.ApplyScanItemsRequestDTO  false  "Items to apply"
// @Success      200  {object}  dto.ApplyScanItemsResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /scans/{id}/apply [post]
func ApplyScanItemsHandler(svc *scan.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ApplyScanItemsRequestDTO
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
				return
			}
		}
		n, err := svc.ApplyItems(c.Request.Context(), c.Param("id"), req.ItemIDs)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ApplyScanItemsResponseDTO{Applied: n})
	}
}

// DeleteScanHandler godoc
// @Summary      Delete scan run
// @Description  Deletes a finished run and its items
// @Tags         scans
// @Param        id  path  string  true  "Scan run ID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /scans/{id} [delete]
func DeleteScanHandler(svc *scan.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteRun(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "scan run deleted"})
	}
}
