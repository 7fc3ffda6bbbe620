package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"content-graph/dto"
	"content-graph/linkgraph"
)

// LinkHealthHandler godoc
// @Summary      Link health report
// @Description  Incoming link counts per live content node with orphan and below-threshold buckets
// @Tags         link-health
// @Param        min_links  query  int  false  "Minimum incoming links (default from config)"
// @Produce      json
// @Success      200  {object}  dto.LinkHealthDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /link-health [get]
func LinkHealthHandler(svc *linkgraph.Service, defaultMinLinks int) gin.HandlerFunc {
	return func(c *gin.Context) {
		minLinks := defaultMinLinks
		if v := c.Query("min_links"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "min_links must be a non-negative integer"})
				return
			}
			minLinks = n
		}
		res, err := svc.Health(c.Request.Context(), minLinks)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
