package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/veejvn/agricultural-serving-platform/constants"
	"github.com/veejvn/agricultural-serving-platform/handler"
	"github.com/veejvn/agricultural-serving-platform/middleware"
	"github.com/veejvn/agricultural-serving-platform/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/verify-register", validate.VerifyRegister(), handler.VerifyRegister)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", middleware.Protected(), handler.Logout)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := api.Group("/accounts", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Put("/me", middleware.Protected(), validate.UpdateAccount(), handler.UpdateAccount)
	account.Post("/upgrade-to-farmer", middleware.Protected(), validate.UpgradeToFarmer(), handler.UpgradeToFarmer)
	account.Get("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.GetAllAccounts)
	account.Delete("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.Delete(), handler.DeleteAccount)

	address := api.Group("/addresses", logger.New())
	address.Post("/", middleware.Protected(), validate.CreateAddress(), handler.CreateAddress)
	address.Get("/", middleware.Protected(), handler.GetAddresses)

	farmer := api.Group("/farmers", logger.New())
	farmer.Get("/me", middleware.Protected(), handler.GetMyFarmer)
	farmer.Put("/me", middleware.Protected(), validate.UpdateFarmer(), handler.UpdateFarmer)
	farmer.Get("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.GetAllFarmers)
	farmer.Patch("/status", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.ChangeFarmerStatus(), handler.ChangeFarmerStatus)
	farmer.Get("/:farmerId", handler.GetFarmerById)
	farmer.Get("/:farmerId/products", handler.GetProductsByFarmerId)

	category := api.Group("/categories", logger.New())
	category.Get("/", handler.GetCategories)
	category.Post("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.Category(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.Category(), handler.UpdateCategory)
	category.Delete("/:categoryId", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.DeleteCategory)

	product := api.Group("/products", logger.New())
	product.Get("/", handler.GetActiveProducts)
	product.Get("/names", handler.GetProductNames)
	product.Get("/admin", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.GetProductsByAdmin)
	product.Get("/farmer", middleware.Protected(), handler.GetMyProducts)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Patch("/status", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.ChangeProductStatus(), handler.ChangeProductStatus)
	product.Get("/:productId", middleware.OptionalJWT(), handler.GetProductById)
	product.Put("/:productId", middleware.Protected(), validate.UpdateProduct(), handler.UpdateProduct)
	product.Delete("/:productId", middleware.Protected(), handler.DeleteProduct)
	product.Put("/:productId/ocop", middleware.Protected(), validate.ResubmitOcop(), handler.ResubmitOcop)
	product.Get("/:productId/reviews", handler.GetReviewsByProduct)
	product.Get("/:productId/market-prices", handler.GetMarketPricesByProduct)

	ocop := api.Group("/ocop", logger.New())
	ocop.Get("/pending", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.GetPendingOcopProducts)
	ocop.Patch("/approve/:productId", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.ApproveOcop)
	ocop.Patch("/reject", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.RejectOcop(), handler.RejectOcop)

	cart := api.Group("/cart-items", logger.New())
	cart.Post("/", middleware.Protected(), validate.CartItem(), handler.AddCartItem)
	cart.Get("/", middleware.Protected(), handler.GetCartItems)
	cart.Put("/:cartItemId", middleware.Protected(), validate.CartItem(), handler.UpdateCartItem)
	cart.Delete("/:cartItemId", middleware.Protected(), handler.DeleteCartItem)

	order := api.Group("/orders", logger.New())
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/", middleware.Protected(), handler.GetMyOrders)
	order.Get("/farmer", middleware.Protected(), handler.GetOrdersByFarmer)
	order.Patch("/consumer/status", middleware.Protected(), validate.ChangeOrderStatus(), handler.ConsumerChangeStatus)
	order.Patch("/farmer/status", middleware.Protected(), validate.ChangeOrderStatus(), handler.FarmerChangeStatus)
	order.Get("/:orderId", middleware.Protected(), handler.GetOrderById)

	payment := api.Group("/payments", logger.New())
	payment.Get("/create/:orderId", middleware.Protected(), handler.CreatePaymentUrl)
	payment.Get("/vnpay-return", handler.VNPayReturn)
	payment.Get("/vnpay-ipn", handler.VNPayIPN)
	payment.Get("/order/:orderId/status", middleware.Protected(), handler.GetPaymentStatus)

	review := api.Group("/reviews", logger.New())
	review.Post("/", middleware.Protected(), validate.CreateReview(), handler.CreateReview)

	marketPrice := api.Group("/market-prices", logger.New())
	marketPrice.Get("/latest", handler.GetLatestMarketPrices)
	marketPrice.Post("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateMarketPrice(), handler.CreateMarketPrice)
	marketPrice.Put("/:marketPriceId", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.UpdateMarketPrice(), handler.UpdateMarketPrice)
	marketPrice.Delete("/:marketPriceId", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.DeleteMarketPrice)

	api.Post("/upload", middleware.Protected(), handler.UploadImage)

	// Bảng giá thị trường trực tiếp qua WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/market-prices", websocket.New(handler.MarketPriceBoard))
}
