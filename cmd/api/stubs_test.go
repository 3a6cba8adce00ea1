package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	ord "github.com/monsieur-akhir/dental-ecommerce-sub001/internal/order"
	prod "github.com/monsieur-akhir/dental-ecommerce-sub001/internal/product"
	usr "github.com/monsieur-akhir/dental-ecommerce-sub001/internal/user"
	wl "github.com/monsieur-akhir/dental-ecommerce-sub001/internal/wishlist"
)

//
// ---------- STUBS & FAKES ----------
//

// stubProducts implements prod.Repository in memory.
type stubProducts struct {
	items map[int64]*prod.Product
}

func newStubProducts() *stubProducts {
	return &stubProducts{items: make(map[int64]*prod.Product)}
}

func (s *stubProducts) add(id int64, name, price string, stock int, active bool) {
	s.items[id] = &prod.Product{
		ID:            id,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      active,
		CategoryID:    1,
	}
}

func (s *stubProducts) Create(ctx context.Context, p *prod.Product) error {
	p.ID = int64(len(s.items) + 1)
	cp := *p
	s.items[p.ID] = &cp
	return nil
}

func (s *stubProducts) GetByID(ctx context.Context, id int64) (*prod.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, prod.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubProducts) List(ctx context.Context, q prod.Query) ([]prod.Product, error) {
	out := make([]prod.Product, 0, len(s.items))
	for _, p := range s.items {
		if q.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubProducts) Update(ctx context.Context, p *prod.Product) error {
	if _, ok := s.items[p.ID]; !ok {
		return prod.ErrNotFound
	}
	cp := *p
	s.items[p.ID] = &cp
	return nil
}

func (s *stubProducts) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// stubOrders implements ord.Repository in memory, sharing the product stub so
// the create path decrements stock the way the PG transaction does.
type stubOrders struct {
	products *stubProducts
	nextID   int64
	orders   map[int64]*ord.Order
	items    map[int64][]ord.Item
}

func newStubOrders(products *stubProducts) *stubOrders {
	return &stubOrders{
		products: products,
		nextID:   1,
		orders:   make(map[int64]*ord.Order),
		items:    make(map[int64][]ord.Item),
	}
}

func (s *stubOrders) Create(ctx context.Context, o *ord.Order, items []ord.Item) error {
	var applied []ord.Item
	rollback := func() {
		for _, it := range applied {
			s.products.items[it.ProductID].StockQuantity += it.Quantity
		}
	}
	for _, it := range items {
		p, ok := s.products.items[it.ProductID]
		if !ok {
			rollback()
			return &ord.ProductNotFoundError{ProductID: it.ProductID}
		}
		if p.StockQuantity < it.Quantity {
			rollback()
			return &ord.InsufficientStockError{ProductName: p.Name, Available: p.StockQuantity}
		}
		p.StockQuantity -= it.Quantity
		applied = append(applied, it)
	}

	o.ID = s.nextID
	s.nextID++
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	s.orders[o.ID] = &cp
	for i := range items {
		items[i].ID = int64(i + 1)
		items[i].OrderID = o.ID
	}
	s.items[o.ID] = append([]ord.Item(nil), items...)
	return nil
}

func (s *stubOrders) GetByID(ctx context.Context, id int64) (*ord.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, ord.ErrNotFound
	}
	cp := *o
	cp.Items = append([]ord.Item(nil), s.items[id]...)
	return &cp, nil
}

func (s *stubOrders) List(ctx context.Context, q ord.ListQuery) ([]ord.Order, int, error) {
	var out []ord.Order
	for _, o := range s.orders {
		if q.UserID != 0 && o.UserID != q.UserID {
			continue
		}
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, len(out), nil
}

func (s *stubOrders) ListByUser(ctx context.Context, userID int64) ([]ord.Order, error) {
	out, _, err := s.List(ctx, ord.ListQuery{UserID: userID})
	return out, err
}

func (s *stubOrders) SetStatus(ctx context.Context, id int64, st ord.Status, restock bool) error {
	o, ok := s.orders[id]
	if !ok {
		return ord.ErrNotFound
	}
	o.Status = st
	if restock {
		for _, it := range s.items[id] {
			if p, ok := s.products.items[it.ProductID]; ok {
				p.StockQuantity += it.Quantity
			}
		}
	}
	return nil
}

func (s *stubOrders) UpdateDetails(ctx context.Context, id int64, paymentStatus, trackingNumber, notes string) error {
	o, ok := s.orders[id]
	if !ok {
		return ord.ErrNotFound
	}
	if paymentStatus != "" {
		o.PaymentStatus = paymentStatus
	}
	if trackingNumber != "" {
		o.TrackingNumber = trackingNumber
	}
	if notes != "" {
		o.Notes = notes
	}
	return nil
}

func (s *stubOrders) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	delete(s.items, id)
	return true, nil
}

func (s *stubOrders) Stats(ctx context.Context) (*ord.Stats, error) {
	st := ord.Stats{TotalRevenue: decimal.Zero}
	for _, o := range s.orders {
		st.TotalOrders++
		if o.Status != ord.StatusCancelled {
			st.TotalRevenue = st.TotalRevenue.Add(o.TotalAmount)
		}
		switch o.Status {
		case ord.StatusPending:
			st.PendingOrders++
		case ord.StatusDelivered:
			st.CompletedOrders++
		}
	}
	return &st, nil
}

// stubUsers implements usr.Repository in memory.
type stubUsers struct {
	nextID  int64
	byID    map[int64]*usr.User
	byEmail map[string]*usr.User
}

func newStubUsers() *stubUsers {
	return &stubUsers{nextID: 1, byID: make(map[int64]*usr.User), byEmail: make(map[string]*usr.User)}
}

func (s *stubUsers) Create(ctx context.Context, u *usr.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return usr.ErrAlreadyExist
	}
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	s.byID[u.ID] = &cp
	s.byEmail[u.Email] = &cp
	return nil
}

func (s *stubUsers) GetByID(ctx context.Context, id int64) (*usr.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, usr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*usr.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, usr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUsers) Update(ctx context.Context, u *usr.User, updatePassword bool) error {
	cur, ok := s.byID[u.ID]
	if !ok {
		return usr.ErrNotFound
	}
	if u.FirstName != "" {
		cur.FirstName = u.FirstName
	}
	if u.LastName != "" {
		cur.LastName = u.LastName
	}
	if updatePassword {
		cur.PasswordHash = u.PasswordHash
	}
	return nil
}

func (s *stubUsers) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}

// stubWishes implements wl.Repository in memory.
type stubWishes struct {
	products *stubProducts
	nextID   int64
	entries  map[string]*wl.Entry
}

func newStubWishes(products *stubProducts) *stubWishes {
	return &stubWishes{products: products, nextID: 1, entries: make(map[string]*wl.Entry)}
}

func wishKey(userID, productID int64) string { return fmt.Sprintf("%d:%d", userID, productID) }

func (s *stubWishes) Add(ctx context.Context, userID, productID int64) (*wl.Entry, error) {
	k := wishKey(userID, productID)
	if _, ok := s.entries[k]; ok {
		return nil, wl.ErrAlreadyExist
	}
	e := &wl.Entry{ID: s.nextID, UserID: userID, ProductID: productID, CreatedAt: time.Now()}
	s.nextID++
	s.entries[k] = e
	cp := *e
	return &cp, nil
}

func (s *stubWishes) Remove(ctx context.Context, userID, productID int64) error {
	k := wishKey(userID, productID)
	if _, ok := s.entries[k]; !ok {
		return wl.ErrNotFound
	}
	delete(s.entries, k)
	return nil
}

func (s *stubWishes) Contains(ctx context.Context, userID, productID int64) (bool, error) {
	_, ok := s.entries[wishKey(userID, productID)]
	return ok, nil
}

func (s *stubWishes) ListByUser(ctx context.Context, userID int64) ([]wl.Entry, error) {
	var out []wl.Entry
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		cp := *e
		if p, ok := s.products.items[e.ProductID]; ok {
			cp.ProductName = p.Name
			cp.ProductPrice = p.Price
		}
		out = append(out, cp)
	}
	return out, nil
}

func (s *stubWishes) Stats(ctx context.Context) ([]wl.CategoryStat, error) {
	total := decimal.Zero
	count := 0
	for _, e := range s.entries {
		if p, ok := s.products.items[e.ProductID]; ok {
			total = total.Add(p.Price)
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	return []wl.CategoryStat{{Category: "Restorative", Count: count, TotalValue: total}}, nil
}

// asUser fakes the Auth middleware, setting the caller identity directly.
func asUser(id int64, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Set("isAdmin", admin)
		c.Next()
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}
