package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-graph/cluster"
	"content-graph/dto"
)

// CreateClusterHandler godoc
// @Summary      Create a content cluster
// @Description  Inserts a pending cluster and fires draft generation asynchronously
// @Tags         clusters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClusterRequestDTO  true  "Cluster brief"
// @Success      201  {object}  models.Cluster
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /clusters [post]
func CreateClusterHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateClusterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		cl, err := svc.Create(c.Request.Context(), req.ToRequest())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cl)
	}
}

// GenerateClusterHandler godoc
// @Summary      Re-trigger cluster generation
// @Description  Fires generation again for a cluster that is still pending
// @Tags         clusters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateClusterRequestDTO  true  "Generation request"
// @Success      202  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /clusters/generate [post]
func GenerateClusterHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateClusterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		if err := svc.Trigger(c.Request.Context(), req.ClusterID, req.Brief()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, dto.MessageResponseDTO{Message: "generation started"})
	}
}

// ListClustersHandler godoc
// @Summary      List clusters
// @Tags         clusters
// @Param        limit  query  int  false  "Max clusters (<=100)"
// @Produce      json
// @Success      200  {object}  dto.ClusterListDTO
// @Router       /clusters [get]
func ListClustersHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context(), limitParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ClusterListDTO{Data: list, Total: len(list)})
	}
}

// GetClusterHandler godoc
// @Summary      Get cluster
// @Tags         clusters
// @Param        id  path  string  true  "Cluster ID"
// @Produce      json
// @Success      200  {object}  models.Cluster
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /clusters/{id} [get]
func GetClusterHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cl)
	}
}

// ListClusterItemsHandler godoc
// @Summary      List cluster items
// @Tags         clusters
// @Param        id  path  string  true  "Cluster ID"
// @Produce      json
// @Success      200  {object}  dto.ClusterItemListDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /clusters/{id}/items [get]
func ListClusterItemsHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Items(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ClusterItemListDTO{Data: items, Total: len(items)})
	}
}

// DeleteClusterHandler godoc
// @Summary      Delete cluster
// @Description  Deletes a cluster and its items. Generating clusters are refused.
// @Tags         clusters
// @Param        id  path  string  true  "Cluster ID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /clusters/{id} [delete]
func DeleteClusterHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "cluster deleted"})
	}
}

// PublishClusterHandler godoc
// @Summary      Publish approved cluster items
// @Description  Creates one unpublished content node per approved item and completes the cluster
// @Tags         clusters
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Cluster ID"
// @Param        body  body  dto.PublishClusterRequestDTO  true  "Target content type (blog, blog_post, qa_page)"
// @Success      200  {object}  dto.PublishClusterResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /clusters/{id}/publish [post]
func PublishClusterHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PublishClusterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		n, err := svc.Publish(c.Request.Context(), c.Param("id"), req.ContentType)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.PublishClusterResponseDTO{Published: n})
	}
}

// ApproveClusterItemHandler godoc
// @Summary      Approve a draft item
// @Tags         cluster-items
// @Param        id  path  string  true  "Cluster item ID"
// @Produce      json
// @Success      200  {object}  models.ClusterItem
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /cluster-items/{id}/approve [post]
func ApproveClusterItemHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		it, err := svc.Approve(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

// DiscardClusterItemHandler godoc
// @Summary      Discard a draft item
// @Tags         cluster-items
// @Param        id  path  string  true  "Cluster item ID"
// @Produce      json
// @Success      200  {object}  models.ClusterItem
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /cluster-items/{id}/discard [post]
func DiscardClusterItemHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		it, err := svc.Discard(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

// UpdateClusterItemHandler godoc
// @Summary      Edit a cluster item
// @Description  Updates the given fields of an item that is not published
// @Tags         cluster-items
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "Cluster item ID"
// @Param        body  body  dto.UpdateClusterItemRequestDTO  true  "Fields to update"
// @Success      200  {object}  models.ClusterItem
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /cluster-items/{id} [patch]
func UpdateClusterItemHandler(svc *cluster.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateClusterItemRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		it, err := svc.UpdateItem(c.Request.Context(), c.Param("id"), req.ToUpdate())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, it)
	}
}
