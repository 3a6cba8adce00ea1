package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/category"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/httpx"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/order"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/product"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/user"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/wishlist"
)

type routerDeps struct {
	jwtSecret  string
	users      user.Repository
	categories category.Repository
	products   product.Repository
	orders     order.Repository
	orderSvc   *order.Service
	wishes     wishlist.Repository
}

func newRouter(d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/register", registerHandler(d.users, d.jwtSecret))
	r.POST("/auth/login", loginHandler(d.users, d.jwtSecret))

	r.GET("/products", listProductsHandler(d.products))
	r.GET("/products/:id", getProductHandler(d.products))
	r.GET("/categories", listCategoriesHandler(d.categories))
	r.GET("/categories/:id", getCategoryHandler(d.categories))

	auth := r.Group("/", httpx.Auth(d.jwtSecret))
	{
		auth.GET("/me", meHandler(d.users))
		auth.PUT("/me", updateMeHandler(d.users))

		auth.POST("/orders", createOrderHandler(d.orderSvc))
		auth.GET("/orders/my", myOrdersHandler(d.orders))
		auth.GET("/orders/:id", getOrderHandler(d.orders))

		auth.GET("/wishlist", listWishlistHandler(d.wishes))
		auth.POST("/wishlist/:productId", addWishlistHandler(d.wishes, d.products))
		auth.DELETE("/wishlist/:productId", removeWishlistHandler(d.wishes))
		auth.GET("/wishlist/contains/:productId", containsWishlistHandler(d.wishes))
	}

	admin := r.Group("/admin", httpx.Auth(d.jwtSecret), httpx.AdminOnly())
	{
		admin.GET("/orders", listOrdersHandler(d.orders))
		admin.GET("/orders/stats", orderStatsHandler(d.orders))
		admin.PUT("/orders/:id", updateOrderHandler(d.orderSvc))
		admin.DELETE("/orders/:id", deleteOrderHandler(d.orders))

		admin.POST("/products", createProductHandler(d.products))
		admin.PUT("/products/:id", updateProductHandler(d.products))
		admin.DELETE("/products/:id", deleteProductHandler(d.products))

		admin.POST("/categories", createCategoryHandler(d.categories))
		admin.PUT("/categories/:id", updateCategoryHandler(d.categories))
		admin.DELETE("/categories/:id", deleteCategoryHandler(d.categories))

		admin.GET("/wishlist/stats", wishlistStatsHandler(d.wishes))
	}

	return r
}
