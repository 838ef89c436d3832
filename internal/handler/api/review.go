package api

import (
	"net/http"

	reqdto "artshop/internal/handler/dto/request"
	resdto "artshop/internal/handler/dto/response"
	"artshop/internal/handler/middleware"
	"artshop/internal/pkg/errs"
	"artshop/internal/usecase/commands"
	"artshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary List reviews
// @Description Get all reviews of an artwork, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Artwork ID"
// @Success 200 {array} queries.ReviewView
// @Failure 400 {object} map[string]string
// @Router /artworks/{id}/reviews [get]
func (h *ReviewHandler) ListByArtwork(c *gin.Context) {
	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid artwork ID format",
		})
		return
	}

	views, err := h.reviewQueries.ListByArtwork(c.Request.Context(), artworkID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create review
// @Description Review an artwork with a rating of 1-5 and a comment
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork ID"
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /artworks/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid artwork ID format",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.reviewCommands.Create(c.Request.Context(), userID, commands.CreateReviewInput{
		ArtworkID: artworkID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid review data",
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

	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{ID: id})
}
