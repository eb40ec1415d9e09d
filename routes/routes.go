package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/configs"
	"github.com/Ishan007-bot/Food-Delivery-Backend/controllers"
	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/middlewares"
	"github.com/Ishan007-bot/Food-Delivery-Backend/repository"
	"github.com/Ishan007-bot/Food-Delivery-Backend/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "UP"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	gateway := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, restRepo,
		entity.MoneyFromFloat(cfg.DeliveryFee), cfg.TaxRate)
	deliverySvc := services.NewDeliveryService(db, deliveryRepo, orderRepo, userRepo, restRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, gateway)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	authed := middlewares.AuthMiddleware(cfg)

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", authed, authCtrl.Me)
	}

	// Restaurants & menu (public reads)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.GET("/restaurants/:id/menu-items", restCtrl.ListMenuItems)
	api.POST("/restaurants",
		middlewares.AuthMiddleware(cfg, entity.RoleRestaurantOwner, entity.RoleAdmin),
		restCtrl.Create)
	api.POST("/restaurants/:id/menu-items",
		middlewares.AuthMiddleware(cfg, entity.RoleRestaurantOwner, entity.RoleAdmin),
		restCtrl.CreateMenuItem)
	api.PATCH("/menu-items/:id",
		middlewares.AuthMiddleware(cfg, entity.RoleRestaurantOwner, entity.RoleAdmin),
		restCtrl.UpdateMenuItem)

	// Orders
	orders := api.Group("/orders")
	{
		orders.POST("", middlewares.AuthMiddleware(cfg, entity.RoleCustomer), orderCtrl.Place)
		orders.GET("/my-orders", middlewares.AuthMiddleware(cfg, entity.RoleCustomer), orderCtrl.MyOrders)
		orders.GET("/restaurant/:rid",
			middlewares.AuthMiddleware(cfg, entity.RoleAdmin, entity.RoleRestaurantOwner),
			orderCtrl.RestaurantOrders)
		orders.GET("/:id", authed, orderCtrl.Detail)
		orders.PATCH("/:id/status",
			middlewares.AuthMiddleware(cfg, entity.RoleAdmin, entity.RoleRestaurantOwner, entity.RoleDeliveryPartner),
			orderCtrl.UpdateStatus)
		orders.PATCH("/:id/cancel",
			middlewares.AuthMiddleware(cfg, entity.RoleCustomer, entity.RoleAdmin),
			orderCtrl.Cancel)
	}

	// Deliveries
	deliveries := api.Group("/deliveries")
	{
		deliveries.POST("/assign",
			middlewares.AuthMiddleware(cfg, entity.RoleAdmin, entity.RoleRestaurantOwner),
			deliveryCtrl.Assign)
		deliveries.PUT("/:id/pickup",
			middlewares.AuthMiddleware(cfg, entity.RoleDeliveryPartner, entity.RoleAdmin),
			deliveryCtrl.Pickup)
		deliveries.PUT("/:id/deliver",
			middlewares.AuthMiddleware(cfg, entity.RoleDeliveryPartner, entity.RoleAdmin),
			deliveryCtrl.Deliver)
		deliveries.GET("/partner",
			middlewares.AuthMiddleware(cfg, entity.RoleDeliveryPartner),
			deliveryCtrl.PartnerDeliveries)
	}

	// Payments
	payments := api.Group("/payments")
	{
		payments.POST("", middlewares.AuthMiddleware(cfg, entity.RoleCustomer), paymentCtrl.Process)
		payments.GET("/order/:orderId", authed, paymentCtrl.ByOrder)
		payments.PATCH("/:id/status",
			middlewares.AuthMiddleware(cfg, entity.RoleAdmin),
			paymentCtrl.UpdateStatus)
		payments.POST("/razorpay/order/:orderId",
			middlewares.AuthMiddleware(cfg, entity.RoleCustomer),
			paymentCtrl.CreateRazorpayOrder)
		payments.POST("/razorpay/verify/:paymentId",
			middlewares.AuthMiddleware(cfg, entity.RoleCustomer),
			paymentCtrl.VerifyRazorpayPayment)
	}

	// Reviews
	reviews := api.Group("/reviews")
	{
		reviews.POST("", middlewares.AuthMiddleware(cfg, entity.RoleCustomer), reviewCtrl.Submit)
		reviews.GET("/restaurant/:rid", reviewCtrl.ListForRestaurant)
	}
}
