package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	FoodItemID string `json:"foodItemId" binding:"required"`
}

func cartAddHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "not authorized")
			return
		}
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		if err := svc.Add(c.Request.Context(), userID, req.FoodItemID); err != nil {
			respondError(c, http.StatusInternalServerError, "error adding to cart")
			return
		}
		respondMessage(c, "added to cart")
	}
}

func cartRemoveHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "not authorized")
			return
		}
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		if err := svc.Remove(c.Request.Context(), userID, req.FoodItemID); err != nil {
			respondError(c, http.StatusInternalServerError, "error removing from cart")
			return
		}
		respondMessage(c, "removed from cart")
	}
}

func cartGetHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFrom(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "not authorized")
			return
		}
		cart, err := svc.Get(c.Request.Context(), userID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error fetching cart")
			return
		}
		subtotal, err := svc.Subtotal(c.Request.Context(), userID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error computing subtotal")
			return
		}
		respondData(c, gin.H{"cartItems": cart, "subtotalCents": subtotal})
	}
}
