package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"foodapp/internal/domain"
	"foodapp/internal/images"
	foodsvc "foodapp/internal/service/food"
	"github.com/gin-gonic/gin"
)

func listFoodHandler(svc foodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error listing foods")
			return
		}
		if items == nil {
			items = []domain.FoodItem{}
		}
		respondData(c, items)
	}
}

// addFoodHandler accepts a multipart form: name, description, priceCents,
// category plus an image file.
func addFoodHandler(svc foodService, store *images.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("image")
		if err != nil {
			respondError(c, http.StatusBadRequest, "no image file uploaded")
			return
		}
		price, err := strconv.ParseInt(c.PostForm("priceCents"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "priceCents must be an integer")
			return
		}

		imageName := ""
		if store != nil {
			imageName, err = store.SaveUpload(fh)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "error storing image")
				return
			}
		}

		item, err := svc.Add(c.Request.Context(), foodsvc.AddInput{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			PriceCents:  price,
			Category:    c.PostForm("category"),
			Image:       imageName,
		})
		if err != nil {
			if store != nil && imageName != "" {
				store.Remove(imageName)
			}
			respondBadRequest(c, err)
			return
		}
		respondData(c, item)
	}
}

type removeFoodRequest struct {
	ID string `json:"id" binding:"required"`
}

func removeFoodHandler(svc foodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeFoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		if err := svc.Remove(c.Request.Context(), req.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "food item not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "error removing food item")
			return
		}
		respondMessage(c, "food item removed")
	}
}
