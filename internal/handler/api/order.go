package api

import (
	"errors"
	"net/http"

	"artshop/internal/domain/order"
	reqdto "artshop/internal/handler/dto/request"
	resdto "artshop/internal/handler/dto/response"
	"artshop/internal/handler/httperr"
	"artshop/internal/handler/middleware"
	"artshop/internal/pkg/errs"
	"artshop/internal/usecase/commands"
	"artshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place an order
// @Description Order one or more artworks. All lines succeed or none do.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	orderID, err := h.orderCommands.Place(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		var stockErr *order.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"Insufficient stock", resdto.FromInsufficientStock(stockErr))
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order data",
			})
		case errs.Is(err, errs.ErrArtworkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Artwork not found",
			})
		case errs.Is(err, errs.ErrBusy):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service busy, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{OrderID: orderID})
}

// @Summary Get own orders
// @Description Get all orders of the current user, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.OrderView
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.orderQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get all orders
// @Description Get every order in the system (admin only)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.OrderView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/all [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	views, err := h.orderQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
