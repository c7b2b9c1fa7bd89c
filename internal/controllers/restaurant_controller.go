package controllers

import (
	"net/http"

	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RestaurantController レストランデータに関するコントローラー
type RestaurantController struct {
	restaurantService services.RestaurantService
}

// NewRestaurantController RestaurantControllerを作成
func NewRestaurantController(restaurantService services.RestaurantService) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
	}
}

// List 条件に合うレストランを取得
func (c *RestaurantController) List(ctx *gin.Context) {
	limit, offset, ok := parsePage(ctx, services.DefaultPageLimit)
	if !ok {
		return
	}

	items, total, err := c.restaurantService.Search(services.RestaurantQuery{
		Q:      ctx.Query("q"),
		City:   ctx.Query("city"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"total": total, "items": items})
}
