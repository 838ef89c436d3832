package api

import (
	"net/http"

	reqdto "artshop/internal/handler/dto/request"
	resdto "artshop/internal/handler/dto/response"
	"artshop/internal/pkg/errs"
	"artshop/internal/usecase/commands"
	"artshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ArtworkHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewArtworkHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *ArtworkHandler {
	return &ArtworkHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List artworks
// @Description Get the catalog listing with live stock
// @Tags artworks
// @Produce json
// @Success 200 {array} queries.ArtworkView
// @Router /artworks [get]
func (h *ArtworkHandler) List(c *gin.Context) {
	views, err := h.catalogQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create artwork
// @Description Add a new artwork to the catalog (admin only)
// @Tags artworks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateArtworkRequest true "Artwork request"
// @Success 201 {object} resdto.CreateArtworkResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /artworks [post]
func (h *ArtworkHandler) Create(c *gin.Context) {
	var req reqdto.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateArtwork(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid artwork data",
			})
		case errs.Is(err, errs.ErrCategoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown category",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateArtworkResponse{ID: id})
}

// @Summary Update artwork
// @Description Update artwork fields and/or stock (admin only)
// @Tags artworks
// @Accept json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Param request body reqdto.UpdateArtworkRequest true "Update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /artworks/{id} [patch]
func (h *ArtworkHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid artwork ID format",
		})
		return
	}

	var req reqdto.UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateArtwork(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid artwork data",
			})
		case errs.Is(err, errs.ErrCategoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown category",
			})
		case errs.Is(err, errs.ErrArtworkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Artwork not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete artwork
// @Description Remove an artwork from the catalog (admin only)
// @Tags artworks
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /artworks/{id} [delete]
func (h *ArtworkHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid artwork ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteArtwork(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, errs.ErrArtworkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Artwork not found",
			})
		case errs.Is(err, errs.ErrArtworkInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Artwork is referenced by existing orders",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
