package httpserver

import (
	"context"
	"errors"
	"log"

	"foodapp/internal/domain"
	"foodapp/internal/images"
	foodsvc "foodapp/internal/service/food"
	ordersvc "foodapp/internal/service/order"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type authService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	VerifySession(ctx context.Context, token string) (string, error)
}

type cartService interface {
	Add(ctx context.Context, userID, foodID string) error
	Remove(ctx context.Context, userID, foodID string) error
	Get(ctx context.Context, userID string) (domain.Cart, error)
	Subtotal(ctx context.Context, userID string) (int64, error)
}

type orderService interface {
	Place(ctx context.Context, userID string, address domain.Address, deliveryFeeCents int64) (*ordersvc.PlaceResult, error)
	Verify(ctx context.Context, orderID string, succeeded bool) (domain.OrderStatus, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type foodService interface {
	Add(ctx context.Context, in foodsvc.AddInput) (*domain.FoodItem, error)
	List(ctx context.Context) ([]domain.FoodItem, error)
	Remove(ctx context.Context, id string) error
}

// Deps bundles the services the router depends on.
type Deps struct {
	AuthSvc  authService
	CartSvc  cartService
	OrderSvc orderService
	FoodSvc  foodService
	Images   *images.Store

	// DeliveryFeeCents is applied when a placement request omits the fee.
	DeliveryFeeCents int64
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.AuthSvc == nil || deps.CartSvc == nil || deps.OrderSvc == nil || deps.FoodSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	user := api.Group("/user")
	user.POST("/register", registerHandler(deps.AuthSvc))
	user.POST("/login", loginHandler(deps.AuthSvc))

	food := api.Group("/food")
	food.GET("/list", listFoodHandler(deps.FoodSvc))
	food.POST("/add", addFoodHandler(deps.FoodSvc, deps.Images))
	food.POST("/remove", removeFoodHandler(deps.FoodSvc))

	cart := api.Group("/cart", authRequired(deps.AuthSvc))
	cart.POST("/add", cartAddHandler(deps.CartSvc))
	cart.POST("/remove", cartRemoveHandler(deps.CartSvc))
	cart.POST("/get", cartGetHandler(deps.CartSvc))

	order := api.Group("/order")
	order.POST("/place", authRequired(deps.AuthSvc), placeOrderHandler(deps.OrderSvc, deps.DeliveryFeeCents))
	// Verification is invoked by the provider redirect and carries no session.
	order.POST("/verify", verifyOrderHandler(deps.OrderSvc))
	order.POST("/userorders", authRequired(deps.AuthSvc), userOrdersHandler(deps.OrderSvc))

	return router, nil
}
