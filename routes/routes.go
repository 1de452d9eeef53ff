package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunilkumarmehta2002/swipemyhood/config"
	"github.com/Sunilkumarmehta2002/swipemyhood/controllers"
	"github.com/Sunilkumarmehta2002/swipemyhood/middleware"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

// Deps bundles the constructed controllers for route registration.
type Deps struct {
	Tokens        *services.TokenService
	Auth          *controllers.AuthController
	Cart          *controllers.CartController
	Swipe         *controllers.SwipeController
	Checkout      *controllers.CheckoutController
	Contact       *controllers.ContactController
	Neighborhoods *controllers.NeighborhoodController
	Dashboard     *controllers.DashboardController
	Admin         *controllers.AdminController
}

func RegisterRoutes(r *gin.Engine, cfg config.Config, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes. Auth endpoints are rate limited.
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(cfg.AuthRatePerMinute, cfg.AuthRateBurst))
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
	}
	r.POST("/contact", d.Contact.Submit)
	r.GET("/neighborhoods", d.Neighborhoods.List)

	// Protected routes (require authentication).
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware(d.Tokens))
	{
		api.GET("/auth/me", d.Auth.Me)
		api.POST("/auth/logout", d.Auth.Logout)

		api.GET("/cart", d.Cart.GetCart)
		api.POST("/cart/items", d.Cart.AddItem)
		api.DELETE("/cart/items/:id", d.Cart.RemoveItem)
		api.PATCH("/cart/items/:id", d.Cart.UpdateQuantity)
		api.POST("/cart/saved", d.Cart.SaveForLater)
		api.DELETE("/cart/saved/:id", d.Cart.RemoveSaved)
		api.DELETE("/cart", d.Cart.ClearCart)

		api.GET("/swipe/deck", d.Swipe.Deck)
		api.POST("/swipe/decide", d.Swipe.Decide)
		api.POST("/swipe/reset", d.Swipe.Reset)
		api.GET("/swipe/services", d.Swipe.Services)
		api.GET("/matches", d.Swipe.Matches)

		api.POST("/checkout", d.Checkout.Submit)
		api.GET("/checkout/status", d.Checkout.Status)
		api.GET("/orders", d.Checkout.Orders)

		api.GET("/dashboard/stats", d.Dashboard.Stats)
		api.POST("/onboarding", d.Dashboard.CompleteOnboarding)
		api.POST("/dashboard/reset-preferences", d.Dashboard.ResetPreferences)
	}

	// Admin console (requires admin role).
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(d.Tokens), middleware.AdminMiddleware())
	{
		admin.GET("/stats", d.Admin.Stats)

		admin.GET("/users", d.Admin.ListUsers)
		admin.PATCH("/users/:id/admin", d.Admin.SetAdmin)
		admin.DELETE("/users/:id", d.Admin.DeleteUser)

		admin.GET("/messages", d.Admin.ListMessages)
		admin.PATCH("/messages/:id", d.Admin.UpdateMessageStatus)
		admin.DELETE("/messages/:id", d.Admin.DeleteMessage)

		admin.GET("/neighborhoods", d.Admin.ListNeighborhoods)
		admin.POST("/neighborhoods", d.Admin.UpsertNeighborhood)
		admin.PUT("/neighborhoods/:id", d.Admin.UpsertNeighborhood)
		admin.DELETE("/neighborhoods/:id", d.Admin.DeleteNeighborhood)

		admin.GET("/config", d.Admin.ListConfig)
		admin.PUT("/config/:key", d.Admin.SetConfig)

		admin.GET("/algorithm", d.Admin.ListAlgorithmSettings)
		admin.PUT("/algorithm/:key", d.Admin.SetAlgorithmSetting)
	}
}
