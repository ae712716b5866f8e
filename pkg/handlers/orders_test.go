package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfpub/wolfpub/pkg/engine"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newOrderHandler(db *fakeStore) *OrderHandler {
	h := NewOrderHandler(db, NewPublicationHandler(db))
	h.now = func() time.Time { return date(2021, time.February, 14) }
	return h
}

func TestPlaceOrder_PricesAndShipping(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			// book catalog resolution
			{{"publication_id": int64(1), "title": "Dune", "edition": int64(2), "price": 10.0}},
			// periodical catalog resolution
			{{"publication_id": int64(2), "title": "Time", "issue": "2021-03", "price": 5.0}},
		},
	}
	db.tx.results = []txResult{
		{affected: 1, id: 41}, // order insert
		{affected: 1},         // book lines
		{affected: 1},         // periodical lines
	}
	h := newOrderHandler(db)

	placed, err := h.Place(context.Background(), 4, OrderRequest{
		OrderDate:    date(2021, time.February, 14),
		DeliveryDate: date(2021, time.February, 20),
		Books:        []OrderItem{{Title: "Dune", Edition: 2, Quantity: 2}},
		Periodicals:  []OrderItem{{Title: "Time", Issue: "2021-03", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(41), placed.OrderID)
	assert.Equal(t, 25.0, placed.TotalPrice)
	assert.Equal(t, 6.0, placed.ShippingCost)

	require.Len(t, db.tx.stmts, 3)
	assert.True(t, strings.HasPrefix(db.tx.stmts[0].SQL, "INSERT INTO orders "))
	assert.Contains(t, db.tx.stmts[0].Args, 25.0)
	assert.Contains(t, db.tx.stmts[0].Args, 6.0)
	assert.True(t, strings.HasPrefix(db.tx.stmts[1].SQL, "INSERT INTO book_orders_info "))
	assert.True(t, strings.HasPrefix(db.tx.stmts[2].SQL, "INSERT INTO periodical_orders_info "))

	// Line price is unit price times quantity.
	assert.Contains(t, db.tx.stmts[1].Args, 20.0)
	assert.Contains(t, db.tx.stmts[2].Args, 5.0)
}

func TestPlaceOrder_CatalogFilterShape(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{{"publication_id": int64(1), "title": "Dune", "edition": int64(2), "price": 10.0}},
		},
	}
	db.tx.results = []txResult{{affected: 1, id: 41}, {affected: 1}}
	h := newOrderHandler(db)

	_, err := h.Place(context.Background(), 4, OrderRequest{
		DeliveryDate: date(2021, time.February, 20),
		Books:        []OrderItem{{Title: "Dune", Edition: 2}},
	})
	require.NoError(t, err)

	// Only books were requested, so only one catalog query runs.
	require.Len(t, db.queries, 1)
	resolve := db.queries[0]
	assert.Contains(t, resolve.SQL, "books NATURAL JOIN publications")
	assert.Contains(t, resolve.SQL, "is_available = $")
	assert.Contains(t, resolve.SQL, " OR ")
	assert.Contains(t, resolve.Args, "Dune")
	assert.Contains(t, resolve.Args, true)
}

func TestPlaceOrder_DefaultQuantityIsOne(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{{"publication_id": int64(1), "title": "Dune", "edition": int64(2), "price": 10.0}},
		},
	}
	db.tx.results = []txResult{{affected: 1, id: 41}, {affected: 1}}
	h := newOrderHandler(db)

	placed, err := h.Place(context.Background(), 4, OrderRequest{
		DeliveryDate: date(2021, time.February, 20),
		Books:        []OrderItem{{Title: "Dune", Edition: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, placed.TotalPrice)
	assert.Equal(t, 2.0, placed.ShippingCost)
}

func TestPlaceOrder_ShippingCapped(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{{"publication_id": int64(1), "title": "Dune", "edition": int64(2), "price": 1.0}},
		},
	}
	db.tx.results = []txResult{{affected: 1, id: 41}, {affected: 1}}
	h := newOrderHandler(db)

	placed, err := h.Place(context.Background(), 4, OrderRequest{
		DeliveryDate: date(2021, time.February, 20),
		Books:        []OrderItem{{Title: "Dune", Edition: 2, Quantity: 60}},
	})
	require.NoError(t, err)
	assert.Equal(t, 60.0, placed.TotalPrice)
	assert.Equal(t, 100.0, placed.ShippingCost)
}

func TestPlaceOrder_DeliveryMustFollowOrderDate(t *testing.T) {
	db := &fakeStore{}
	h := newOrderHandler(db)

	cases := []OrderRequest{
		{DeliveryDate: time.Time{}},
		{OrderDate: date(2021, 2, 14), DeliveryDate: date(2021, 2, 14)},
		{OrderDate: date(2021, 2, 14), DeliveryDate: date(2021, 2, 10)},
	}
	for _, req := range cases {
		req.Books = []OrderItem{{Title: "Dune", Edition: 2}}
		_, err := h.Place(context.Background(), 4, req)
		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
	}
	assert.Empty(t, db.queries)
}

func TestPlaceOrder_NothingResolved(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{{}, {}},
	}
	h := newOrderHandler(db)

	_, err := h.Place(context.Background(), 4, OrderRequest{
		DeliveryDate: date(2021, time.February, 20),
		Books:        []OrderItem{{Title: "Ghost", Edition: 1}},
		Periodicals:  []OrderItem{{Title: "Ghost", Issue: "0"}},
	})
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, err.Error(), "not found")
}

func TestPlaceOrder_RejectsMalformedPrice(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{{"publication_id": int64(1), "title": "Dune", "edition": int64(2), "price": map[string]any{"amount": 10}}},
		},
	}
	h := newOrderHandler(db)

	_, err := h.Place(context.Background(), 4, OrderRequest{
		DeliveryDate: date(2021, time.February, 20),
		Books:        []OrderItem{{Title: "Dune", Edition: 2}},
	})
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, err.Error(), "list or map")
}

func TestOrderGet_NotFound(t *testing.T) {
	db := &fakeStore{queryResults: [][]engine.Row{{}}}
	h := newOrderHandler(db)

	_, err := h.Get(context.Background(), 4, 99)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
