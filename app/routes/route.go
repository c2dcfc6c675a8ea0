package routes

import (
	"net/http"

	"github.com/dquispe/electromarket/app/configs"
	"github.com/dquispe/electromarket/app/handlers"
	"github.com/dquispe/electromarket/app/handlers/admin"
	"github.com/dquispe/electromarket/app/middlewares"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/services"
	"github.com/dquispe/electromarket/app/services/importer"
	"github.com/dquispe/electromarket/app/utils/renderer"
	"github.com/dquispe/electromarket/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// NewRouter wires every repository, service and handler onto the mux
// router. The admin subrouter carries the staff gate and CSRF
// protection on top of the shared session middleware.
func NewRouter(db *gorm.DB, snapClient snap.Client) *mux.Router {
	render := renderer.New()

	store := sessions.NewCookieSessionStore(
		[]byte(configs.LoadENV.AppAuthKey),
		[]byte(configs.LoadENV.AppEncKey),
	)

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	bannerRepo := repositories.NewBannerRepository(db)
	blockRepo := repositories.NewContentBlockRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	eventRepo := repositories.NewEventLogRepository(db)

	checkoutSvc := services.NewCheckoutService(db)
	paymentSvc := services.NewPaymentService(orderRepo, eventRepo, snapClient)
	bulkImporter := importer.NewImporter(db)

	authHandler := handlers.NewAuthHandler(render, store, userRepo)
	productHandler := handlers.NewProductHandler(render, productRepo)
	categoryHandler := handlers.NewCategoryHandler(render, categoryRepo)
	contentHandler := handlers.NewContentHandler(render, bannerRepo, blockRepo)
	cartHandler := handlers.NewCartHandler(render, store, cartRepo, cartItemRepo, productRepo)
	orderHandler := handlers.NewOrderHandler(render, orderRepo, checkoutSvc, paymentSvc)
	addressHandler := handlers.NewAddressHandler(render, addressRepo)

	adminImport := admin.NewImportHandler(render, bulkImporter, eventRepo)
	adminCategory := admin.NewCategoryHandler(render, categoryRepo)
	adminVendor := admin.NewVendorHandler(render, vendorRepo)
	adminProduct := admin.NewProductHandler(render, db, productRepo)
	adminOrder := admin.NewOrderHandler(render, orderRepo, eventRepo, paymentSvc)
	adminUser := admin.NewUserHandler(render, db, userRepo)
	adminContent := admin.NewContentHandler(render, db, bannerRepo, blockRepo)
	adminDashboard := admin.NewDashboardHandler(render, productRepo, categoryRepo, vendorRepo, orderRepo, userRepo, eventRepo)
	adminCSRF := admin.NewCSRFHandler(render)

	router := mux.NewRouter()
	router.Use(middlewares.LoggingMiddleware)
	router.Use(middlewares.AuthMiddleware(store, userRepo))

	// Public storefront API.
	router.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	router.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)

	router.HandleFunc("/products", productHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/products/featured", productHandler.Featured).Methods(http.MethodGet)
	router.HandleFunc("/products/{slug}", productHandler.Detail).Methods(http.MethodGet)
	router.HandleFunc("/categories", categoryHandler.Tree).Methods(http.MethodGet)
	router.HandleFunc("/categories/{slug}", categoryHandler.Detail).Methods(http.MethodGet)
	router.HandleFunc("/banners", contentHandler.Banners).Methods(http.MethodGet)
	router.HandleFunc("/content/{key}", contentHandler.Block).Methods(http.MethodGet)

	router.HandleFunc("/cart", cartHandler.Show).Methods(http.MethodGet)
	router.HandleFunc("/cart/items", cartHandler.AddItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/items/{id}", cartHandler.UpdateItem).Methods(http.MethodPut)
	router.HandleFunc("/cart/items/{id}", cartHandler.RemoveItem).Methods(http.MethodDelete)

	router.HandleFunc("/checkout", orderHandler.Checkout).Methods(http.MethodPost)
	router.HandleFunc("/orders", orderHandler.ListMine).Methods(http.MethodGet)
	router.HandleFunc("/orders/{code}", orderHandler.Detail).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id}/pay", orderHandler.Pay).Methods(http.MethodPost)
	router.HandleFunc("/payments/midtrans/notification", orderHandler.MidtransWebhook).Methods(http.MethodPost)

	router.HandleFunc("/addresses", addressHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/addresses", addressHandler.Create).Methods(http.MethodPost)
	router.HandleFunc("/addresses/{id}", addressHandler.Delete).Methods(http.MethodDelete)

	// Back office.
	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminMiddleware(render))

	csrfMiddleware := csrf.Protect(
		[]byte(configs.LoadENV.SessionKey),
		csrf.Secure(configs.LoadENV.AppEnv == "production"),
		csrf.Path("/"),
	)
	adminRouter.Use(csrfMiddleware)

	adminRouter.HandleFunc("/csrf-token", adminCSRF.Token).Methods(http.MethodGet)
	adminRouter.HandleFunc("/dashboard", adminDashboard.Show).Methods(http.MethodGet)

	adminRouter.HandleFunc("/import", adminImport.Import).Methods(http.MethodPost)

	adminRouter.HandleFunc("/categories", adminCategory.List).Methods(http.MethodGet)
	adminRouter.HandleFunc("/categories", adminCategory.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/categories/{id}", adminCategory.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/categories/{id}", adminCategory.Delete).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/vendors", adminVendor.List).Methods(http.MethodGet)
	adminRouter.HandleFunc("/vendors", adminVendor.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/vendors/{id}", adminVendor.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/vendors/{id}", adminVendor.Delete).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/products", adminProduct.List).Methods(http.MethodGet)
	adminRouter.HandleFunc("/products", adminProduct.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/products/{id}", adminProduct.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/products/{id}", adminProduct.Delete).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/products/{id}/images", adminProduct.AddImage).Methods(http.MethodPost)

	adminRouter.HandleFunc("/orders", adminOrder.List).Methods(http.MethodGet)
	adminRouter.HandleFunc("/orders/{id}", adminOrder.Detail).Methods(http.MethodGet)
	adminRouter.HandleFunc("/orders/{id}/status", adminOrder.UpdateStatus).Methods(http.MethodPut)
	adminRouter.HandleFunc("/orders/{id}/mark-paid", adminOrder.MarkPaid).Methods(http.MethodPost)

	adminRouter.HandleFunc("/staff", adminUser.ListStaff).Methods(http.MethodGet)
	adminRouter.HandleFunc("/staff", adminUser.CreateStaff).Methods(http.MethodPost)
	adminRouter.HandleFunc("/staff/{id}", adminUser.UpdateStaff).Methods(http.MethodPut)

	adminRouter.HandleFunc("/banners", adminContent.ListBanners).Methods(http.MethodGet)
	adminRouter.HandleFunc("/banners", adminContent.CreateBanner).Methods(http.MethodPost)
	adminRouter.HandleFunc("/banners/{id}", adminContent.UpdateBanner).Methods(http.MethodPut)
	adminRouter.HandleFunc("/banners/{id}", adminContent.DeleteBanner).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/content/{key}", adminContent.UpsertBlock).Methods(http.MethodPut)

	return router
}
