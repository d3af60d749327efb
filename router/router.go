package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lacomanda/comanda/catalog"
	"github.com/lacomanda/comanda/config"
	"github.com/lacomanda/comanda/controllers"
	"github.com/lacomanda/comanda/middlewares"
	"github.com/lacomanda/comanda/store"
)

// SetupRouter wires every surface: public catalog + checkout, staff login,
// and the authenticated board/order/payment endpoints.
func SetupRouter(cfg *config.Config, st *store.Store, cat *catalog.Catalog) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))

	authCtrl := controllers.NewAuthController(cfg)
	orderCtrl := controllers.NewOrderController(st, cat)
	paymentCtrl := controllers.NewPaymentController(st, cat)
	tableCtrl := controllers.NewTableController(st)
	boardCtrl := controllers.NewBoardController(st)
	catalogCtrl := controllers.NewCatalogController(cat)

	api := r.Group("/api")

	// Public: the customer ordering flow and staff login.
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/catalog/products", catalogCtrl.GetProducts)
	api.GET("/catalog/sauces", catalogCtrl.GetSauces)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// Staff-only surfaces.
	staff := api.Group("")
	staff.Use(middlewares.AuthMiddleware())
	{
		staff.GET("/orders", orderCtrl.GetAllOrders)
		staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		staff.PATCH("/orders/:order_id/cook", orderCtrl.AssignCook)
		staff.PATCH("/orders/:order_id/driver", orderCtrl.AssignDriver)
		staff.POST("/orders/:order_id/payment", middlewares.RequireRole("reception"), paymentCtrl.SettleOrder)
		staff.GET("/orders/:order_id/pre-bill", paymentCtrl.GetPreBill)

		staff.POST("/pos/orders", middlewares.RequireRole("reception"), orderCtrl.CreatePOSOrder)

		staff.GET("/tables", tableCtrl.GetTables)
		staff.GET("/tables/:number/order", tableCtrl.GetTableOrder)

		staff.GET("/boards/waiting", boardCtrl.GetWaitingBoard)
		staff.GET("/boards/kitchen", boardCtrl.GetKitchenBoard)
		staff.GET("/boards/delivery", boardCtrl.GetDeliveryBoard)
		staff.GET("/boards/pickup", boardCtrl.GetPickupBoard)
		staff.GET("/boards/cashier", boardCtrl.GetCashierBoard)
		staff.GET("/dashboard", boardCtrl.GetDashboard)

		staff.GET("/stream", controllers.BoardStreamHandler)
	}

	return r
}
