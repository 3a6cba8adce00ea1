package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/httpx"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/product"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/wishlist"
)

func addWishlistHandler(repo wishlist.Repository, products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}
		if _, err := products.GetByID(c.Request.Context(), productID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		e, err := repo.Add(c.Request.Context(), httpx.CallerID(c), productID)
		if err != nil {
			if errors.Is(err, wishlist.ErrAlreadyExist) {
				c.JSON(http.StatusConflict, gin.H{"error": "product already wishlisted"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, e)
	}
}

func removeWishlistHandler(repo wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}
		if err := repo.Remove(c.Request.Context(), httpx.CallerID(c), productID); err != nil {
			if errors.Is(err, wishlist.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not in wishlist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func containsWishlistHandler(repo wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := pathID(c, "productId")
		if !ok {
			return
		}
		in, err := repo.Contains(c.Request.Context(), httpx.CallerID(c), productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": in})
	}
}

func listWishlistHandler(repo wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := repo.ListByUser(c.Request.Context(), httpx.CallerID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if entries == nil {
			entries = []wishlist.Entry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}

func wishlistStatsHandler(repo wishlist.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := repo.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if stats == nil {
			stats = []wishlist.CategoryStat{}
		}
		c.JSON(http.StatusOK, stats)
	}
}
