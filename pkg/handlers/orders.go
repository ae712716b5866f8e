package handlers

import (
	"context"
	"time"

	"github.com/wolfpub/wolfpub/pkg/catalog"
	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// maxShippingCost caps the shipping charged on any single order.
const maxShippingCost = 100

// OrderItem identifies one requested catalog item. Books carry an
// edition, periodicals an issue.
type OrderItem struct {
	Title    string
	Edition  int
	Issue    string
	Quantity int
}

func (i OrderItem) quantity() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// OrderRequest is the input for placing an order.
type OrderRequest struct {
	OrderDate    time.Time
	DeliveryDate time.Time
	Books        []OrderItem
	Periodicals  []OrderItem
}

// PlacedOrder reports the outcome of order placement.
type PlacedOrder struct {
	OrderID      int64
	TotalPrice   float64
	ShippingCost float64
	OrderDate    time.Time
	DeliveryDate time.Time
}

// OrderHandler places and reads distributor orders.
type OrderHandler struct {
	db           engine.Store
	publications *PublicationHandler
	now          func() time.Time
}

func NewOrderHandler(db engine.Store, publications *PublicationHandler) *OrderHandler {
	return &OrderHandler{db: db, publications: publications, now: time.Now}
}

// Place resolves the requested items against the catalog, computes the
// order total and shipping, and inserts the order row followed by its
// book and periodical line items as one atomic transaction. Shipping is
// always recomputed server-side, never taken from input.
func (h *OrderHandler) Place(ctx context.Context, accountID int64, req OrderRequest) (*PlacedOrder, error) {
	orderDate := dateOnly(req.OrderDate)
	if req.OrderDate.IsZero() {
		orderDate = dateOnly(h.now())
	}
	if req.DeliveryDate.IsZero() || !dateOnly(req.DeliveryDate).After(orderDate) {
		return nil, domainErrorf("delivery date has to be ahead of the date of placing the order")
	}

	books, err := h.publications.ResolveBookItems(ctx, req.Books)
	if err != nil {
		return nil, err
	}
	periodicals, err := h.publications.ResolvePeriodicalItems(ctx, req.Periodicals)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 && len(periodicals) == 0 {
		return nil, domainErrorf("publications to be ordered not found with the publication house")
	}
	// Malformed catalog rows must not silently price an order at zero.
	for _, row := range append(append([]engine.Row{}, books...), periodicals...) {
		switch row.Get("price").(type) {
		case map[string]any, []any:
			return nil, domainErrorf("value of price column can not be a list or map")
		}
	}

	bookLines := matchLines(books, req.Books, func(row engine.Row, item OrderItem) bool {
		return row.String("title") == item.Title && row.Int("edition") == int64(item.Edition)
	})
	periodicalLines := matchLines(periodicals, req.Periodicals, func(row engine.Row, item OrderItem) bool {
		return row.String("title") == item.Title && row.String("issue") == item.Issue
	})

	totalPrice := 0.0
	totalQuantity := 0
	for _, line := range append(append([]orderLine{}, bookLines...), periodicalLines...) {
		totalPrice += line.price * float64(line.quantity)
		totalQuantity += line.quantity
	}
	shippingCost := float64(2 * totalQuantity)
	if shippingCost > maxShippingCost {
		shippingCost = maxShippingCost
	}

	placed := &PlacedOrder{
		TotalPrice:   totalPrice,
		ShippingCost: shippingCost,
		OrderDate:    orderDate,
		DeliveryDate: dateOnly(req.DeliveryDate),
	}

	err = h.db.InTx(ctx, func(tx engine.Tx) error {
		insert, err := query.InsertReturning(catalog.Orders.Name, []map[string]any{{
			"account_id":    accountID,
			"order_date":    orderDate,
			"delivery_date": placed.DeliveryDate,
			"total_price":   totalPrice,
			"shipping_cost": shippingCost,
		}}, catalog.Orders.SerialKey)
		if err != nil {
			return err
		}
		_, orderID, err := tx.Exec(ctx, insert)
		if err != nil {
			return err
		}
		placed.OrderID = orderID

		if err := insertLines(ctx, tx, catalog.BookOrdersInfo.Name, orderID, bookLines); err != nil {
			return err
		}
		return insertLines(ctx, tx, catalog.PeriodicalOrdersInfo.Name, orderID, periodicalLines)
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// Get fetches one order of the account.
func (h *OrderHandler) Get(ctx context.Context, accountID, orderID int64) (engine.Row, error) {
	cond := query.Condition{"account_id": accountID, "order_id": orderID}
	stmt, err := query.Select(catalog.Orders.Name, []string{"*"}, cond)
	if err != nil {
		return nil, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &NotFoundError{Entity: "order", ID: orderID}
	}
	return rows[0], nil
}

// List fetches every order of the account.
func (h *OrderHandler) List(ctx context.Context, accountID int64) ([]engine.Row, error) {
	stmt, err := query.Select(catalog.Orders.Name, []string{"*"}, query.Condition{"account_id": accountID})
	if err != nil {
		return nil, err
	}
	return h.db.GetResult(ctx, stmt)
}

type orderLine struct {
	publicationID int64
	quantity      int
	price         float64
}

// matchLines pairs resolved catalog rows with the requested items,
// attaching the requested quantity. Requested items that resolved
// nothing are dropped; the caller decides whether an empty result is an
// error.
func matchLines(rows []engine.Row, items []OrderItem, match func(engine.Row, OrderItem) bool) []orderLine {
	var lines []orderLine
	for _, row := range rows {
		for _, item := range items {
			if !match(row, item) {
				continue
			}
			lines = append(lines, orderLine{
				publicationID: row.Int("publication_id"),
				quantity:      item.quantity(),
				price:         row.Float("price"),
			})
			break
		}
	}
	return lines
}

func insertLines(ctx context.Context, tx engine.Tx, table string, orderID int64, lines []orderLine) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]map[string]any, len(lines))
	for i, line := range lines {
		rows[i] = map[string]any{
			"order_id":       orderID,
			"publication_id": line.publicationID,
			"quantity":       line.quantity,
			"price":          line.price * float64(line.quantity),
		}
	}
	insert, err := query.Insert(table, rows)
	if err != nil {
		return err
	}
	_, _, err = tx.Exec(ctx, insert)
	return err
}
