package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	wl "github.com/monsieur-akhir/dental-ecommerce-sub001/internal/wishlist"
)

func newWishlistFixture() (*stubProducts, *stubWishes, *gin.Engine) {
	products := newStubProducts()
	products.add(7, "Curing Light", "249.90", 5, true)
	wishes := newStubWishes(products)

	r := gin.New()
	r.POST("/wishlist/:productId", asUser(1, false), addWishlistHandler(wishes, products))
	r.DELETE("/wishlist/:productId", asUser(1, false), removeWishlistHandler(wishes))
	r.GET("/wishlist", asUser(1, false), listWishlistHandler(wishes))
	r.GET("/wishlist/contains/:productId", asUser(1, false), containsWishlistHandler(wishes))
	r.GET("/admin/wishlist/stats", asUser(9, true), wishlistStatsHandler(wishes))
	return products, wishes, r
}

func TestWishlist_AddDuplicateIsConflict(t *testing.T) {
	t.Parallel()

	_, _, r := newWishlistFixture()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wishlist/7", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s (expected 201)", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wishlist/7", nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d (expected 409 on duplicate)", w.Code)
	}
}

func TestWishlist_AddUnknownProduct(t *testing.T) {
	t.Parallel()

	_, _, r := newWishlistFixture()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wishlist/9999", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404)", w.Code)
	}
}

func TestWishlist_RemoveMissingIsNotFound(t *testing.T) {
	t.Parallel()

	_, _, r := newWishlistFixture()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/wishlist/7", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404)", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wishlist/7", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("setup failed: %s", w.Body.String())
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/wishlist/7", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d (expected 204)", w.Code)
	}
}

func TestWishlist_ContainsAndList(t *testing.T) {
	t.Parallel()

	_, _, r := newWishlistFixture()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wishlist/contains/7", nil))
	var contains struct {
		In bool `json:"in_wishlist"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &contains)
	if contains.In {
		t.Fatal("empty wishlist reports membership")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wishlist/7", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("setup failed: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wishlist/contains/7", nil))
	_ = json.Unmarshal(w.Body.Bytes(), &contains)
	if !contains.In {
		t.Fatal("membership not reported after add")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wishlist", nil))
	var entries []wl.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(entries) != 1 || entries[0].ProductName != "Curing Light" {
		t.Fatalf("entries=%+v", entries)
	}
}

func TestWishlist_Stats(t *testing.T) {
	t.Parallel()

	_, _, r := newWishlistFixture()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wishlist/7", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("setup failed: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/wishlist/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var stats []wl.CategoryStat
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(stats) != 1 || stats[0].Count != 1 {
		t.Fatalf("stats=%+v", stats)
	}
}
