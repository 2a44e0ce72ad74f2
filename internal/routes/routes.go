package routes

import (
	"net/http"
	"path/filepath"

	"dapuribu-be/internal/cart"
	"dapuribu-be/internal/menu"
	"dapuribu-be/internal/metrics"
	"dapuribu-be/internal/middleware"
	"dapuribu-be/internal/order"
	"dapuribu-be/internal/theme"
	"dapuribu-be/internal/user"
	"dapuribu-be/internal/utils"

	"github.com/julienschmidt/httprouter"
)

func AddHealthRoutes(router *httprouter.Router) {
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func AddStaticRoutes(router *httprouter.Router, uploadDir string) {
	router.ServeFiles("/static/menupic/*filepath", http.Dir(filepath.Join(uploadDir, "menupic")))
}

func AddAuthRoutes(router *httprouter.Router, h *user.Handler) {
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/auth/logout", h.Logout)
	router.GET("/api/auth/session", h.Session)
}

func AddMenuRoutes(router *httprouter.Router, h *menu.Handler) {
	router.GET("/api/menus", h.List)
	router.GET("/api/menus/categories", h.ListCategories)

	router.GET("/api/admin/menus", middleware.RequireAdmin(h.AdminList))
	router.POST("/api/admin/menus", middleware.RequireAdmin(h.Create))
	router.PUT("/api/admin/menus/:id", middleware.RequireAdmin(h.Update))
	router.DELETE("/api/admin/menus/:id", middleware.RequireAdmin(h.Delete))
	router.POST("/api/admin/menus/:id/image", middleware.RequireAdmin(h.UploadImage))
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.GET("/api/cart", h.Get)
	router.POST("/api/cart/items", h.AddItem)
	router.PUT("/api/cart/items/:menuid", h.UpdateQuantity)
	router.DELETE("/api/cart/items/:menuid", h.RemoveItem)
	router.DELETE("/api/cart", h.Clear)
}

func AddThemeRoutes(router *httprouter.Router, h *theme.Handler) {
	router.GET("/api/theme", h.Get)
	router.PUT("/api/theme", h.Set)
	router.POST("/api/theme/toggle", h.Toggle)
}

func AddOrderRoutes(router *httprouter.Router, h *order.Handler) {
	router.POST("/api/orders", middleware.RequireAuth(h.Checkout))
	router.GET("/api/orders", middleware.RequireAuth(h.MyOrders))
	router.GET("/api/orders/:orderid/items", middleware.RequireAuth(h.Items))
	router.PATCH("/api/orders/:orderid", middleware.RequireAuth(h.Edit))
	router.POST("/api/orders/:orderid/cancel", middleware.RequireAuth(h.Cancel))
	router.GET("/api/orders/:orderid/whatsapp-qr", middleware.RequireAuth(h.WhatsAppQR))

	router.GET("/api/admin/orders", middleware.RequireAdmin(h.AdminList))
	router.PATCH("/api/admin/orders/:orderid/status", middleware.RequireAdmin(h.SetStatus))
	router.PATCH("/api/admin/orders/:orderid/payment", middleware.RequireAdmin(h.SetPaymentStatus))
	router.DELETE("/api/admin/orders/:orderid", middleware.RequireAdmin(h.Delete))
	router.GET("/api/admin/orders/:orderid/invoice", middleware.RequireAdmin(h.Invoice))
}

func AddMetricsRoutes(router *httprouter.Router) {
	router.GET("/api/admin/metrics", middleware.RequireAdmin(
		func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			utils.WriteJSON(w, http.StatusOK, metrics.Snapshot())
		}))
}
