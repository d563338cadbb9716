package httpserver

import (
	"errors"
	"net/http"

	"foodapp/internal/domain"
	ordersvc "foodapp/internal/service/order"
	"github.com/gin-gonic/gin"
)

type addressRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zipcode   string `json:"zipcode" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

type placeOrderRequest struct {
	Address          addressRequest `json:"address" binding:"required"`
	DeliveryFeeCents *int64         `json:"deliveryFeeCents"`
}

type verifyOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Success string `json:"success" binding:"required"`
}

func placeOrderHandler(svc orderService, defaultFeeCents int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "not authorized")
			return
		}
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		fee := defaultFeeCents
		if req.DeliveryFeeCents != nil {
			if *req.DeliveryFeeCents < 0 {
				respondError(c, http.StatusBadRequest, "deliveryFeeCents must not be negative")
				return
			}
			fee = *req.DeliveryFeeCents
		}

		result, err := svc.Place(c.Request.Context(), userID, domain.Address(req.Address), fee)
		if err != nil {
			switch {
			case errors.Is(err, ordersvc.ErrEmptyCart):
				respondError(c, http.StatusBadRequest, "cart is empty")
			case errors.Is(err, ordersvc.ErrCatalogConflict):
				respondError(c, http.StatusConflict, "an item in your cart is no longer available")
			case errors.Is(err, ordersvc.ErrPaymentGateway):
				respondError(c, http.StatusBadGateway, "payment session could not be created")
			default:
				respondError(c, http.StatusInternalServerError, "error placing order")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "session_url": result.RedirectURL, "orderId": result.Order.ID})
	}
}

func verifyOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		status, err := svc.Verify(c.Request.Context(), req.OrderID, req.Success == "true")
		if err != nil {
			if errors.Is(err, ordersvc.ErrOrderNotFound) {
				respondError(c, http.StatusNotFound, "order not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "error verifying payment")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": status == domain.OrderPaid, "status": string(status)})
	}
}

func userOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "not authorized")
			return
		}
		orders, err := svc.ListByUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error fetching orders")
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		respondData(c, orders)
	}
}
