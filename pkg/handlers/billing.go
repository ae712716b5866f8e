package handlers

import (
	"context"
	"time"

	"github.com/wolfpub/wolfpub/pkg/catalog"
	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// billingEpoch is the default prior-bill date for an account that has
// never been billed.
var billingEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Bill is one generated bill row.
type Bill struct {
	BillID   int64
	Amount   float64
	BillDate time.Time
}

// BillSummary reports the outcome of a billing run.
type BillSummary struct {
	Bills []Bill
	Total float64
}

// Payment reports a recorded payment.
type Payment struct {
	PaymentID   int64
	Amount      float64
	PaymentDate time.Time
}

// BillingHandler rolls outstanding orders into bills and records
// payments against the account balance. The balance is only ever
// changed through relative SET updates (balance = balance + x), never
// by read-modify-write.
type BillingHandler struct {
	db  engine.Store
	now func() time.Time
}

func NewBillingHandler(db engine.Store) *BillingHandler {
	return &BillingHandler{db: db, now: time.Now}
}

// CreateBill determines the billing intervals since the account's last
// bill, sums the eligible orders' total price plus shipping per
// interval, and inserts one bill row per nonzero interval while
// atomically incrementing the account balance by the grand total, all
// in one transaction. It fails when no order is eligible.
func (h *BillingHandler) CreateBill(ctx context.Context, accountID int64) (*BillSummary, error) {
	account, err := h.fetchAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	periodicity := account.String("periodicity")
	if !validPeriodicity(periodicity) {
		return nil, domainErrorf("account %d has unknown billing periodicity %q", accountID, periodicity)
	}

	lastBill, err := h.lastBillDate(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ordersStmt, err := query.Select(
		catalog.Orders.Name,
		[]string{"order_date", "total_price", "shipping_cost"},
		query.Condition{
			"account_id": accountID,
			"order_date": query.Operators{">": lastBill},
		},
	)
	if err != nil {
		return nil, err
	}
	orders, err := h.db.GetResult(ctx, ordersStmt)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domainErrorf("no orders to bill for account %d since %s", accountID, lastBill.Format("2006-01-02"))
	}

	today := dateOnly(h.now())
	boundaries := billingBoundaries(lastBill, today, periodicity)

	summary := &BillSummary{}
	var stmts []query.Statement
	prev := lastBill
	for _, boundary := range boundaries {
		amount := 0.0
		for _, order := range orders {
			orderDate := order.Time("order_date")
			if orderDate.After(prev) && !orderDate.After(boundary) {
				amount += order.Float("total_price") + order.Float("shipping_cost")
			}
		}
		prev = boundary
		if amount == 0 {
			continue
		}

		insert, err := query.InsertReturning(catalog.AccountBills.Name, []map[string]any{{
			"account_id": accountID,
			"amount":     amount,
			"bill_date":  boundary,
		}}, catalog.AccountBills.SerialKey)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, insert)
		summary.Bills = append(summary.Bills, Bill{Amount: amount, BillDate: boundary})
		summary.Total += amount
	}
	if summary.Total == 0 {
		return nil, domainErrorf("no billable amount for account %d", accountID)
	}

	increment, err := query.Update(
		catalog.Accounts.Name,
		query.Condition{"account_id": accountID},
		query.Set{"balance": query.Operators{"+": summary.Total}},
	)
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, increment)

	_, ids, err := h.db.Execute(ctx, stmts...)
	if err != nil {
		return nil, err
	}
	for i := range summary.Bills {
		summary.Bills[i].BillID = ids[i]
	}
	return summary, nil
}

// PayBills records a payment and atomically decrements the account
// balance, as one transaction. Payments above the outstanding balance
// are accepted; the balance goes negative and the credit applies to
// future bills.
func (h *BillingHandler) PayBills(ctx context.Context, accountID int64, amount float64, paymentDate time.Time) (*Payment, error) {
	if amount <= 0 {
		return nil, domainErrorf("payment amount must be positive")
	}
	if _, err := h.fetchAccount(ctx, accountID); err != nil {
		return nil, err
	}
	if paymentDate.IsZero() {
		paymentDate = dateOnly(h.now())
	}

	insert, err := query.InsertReturning(catalog.AccountPayments.Name, []map[string]any{{
		"account_id":   accountID,
		"amount":       amount,
		"payment_date": paymentDate,
	}}, catalog.AccountPayments.SerialKey)
	if err != nil {
		return nil, err
	}
	decrement, err := query.Update(
		catalog.Accounts.Name,
		query.Condition{"account_id": accountID},
		query.Set{"balance": query.Operators{"-": amount}},
	)
	if err != nil {
		return nil, err
	}

	_, ids, err := h.db.Execute(ctx, insert, decrement)
	if err != nil {
		return nil, err
	}
	return &Payment{PaymentID: ids[0], Amount: amount, PaymentDate: paymentDate}, nil
}

// Bills returns the account's bill ledger.
func (h *BillingHandler) Bills(ctx context.Context, accountID int64) ([]engine.Row, error) {
	stmt, err := query.Select(catalog.AccountBills.Name, []string{"*"}, query.Condition{"account_id": accountID})
	if err != nil {
		return nil, err
	}
	return h.db.GetResult(ctx, stmt)
}

// Payments returns the account's payment ledger.
func (h *BillingHandler) Payments(ctx context.Context, accountID int64) ([]engine.Row, error) {
	stmt, err := query.Select(catalog.AccountPayments.Name, []string{"*"}, query.Condition{"account_id": accountID})
	if err != nil {
		return nil, err
	}
	return h.db.GetResult(ctx, stmt)
}

func (h *BillingHandler) fetchAccount(ctx context.Context, accountID int64) (engine.Row, error) {
	stmt, err := query.Select(
		catalog.Accounts.Name,
		[]string{"*"},
		query.Condition{"account_id": accountID, "is_active": true},
	)
	if err != nil {
		return nil, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &NotFoundError{Entity: "account", ID: accountID}
	}
	return rows[0], nil
}

func (h *BillingHandler) lastBillDate(ctx context.Context, accountID int64) (time.Time, error) {
	stmt, err := query.Select(
		catalog.AccountBills.Name,
		[]string{"max(bill_date) AS last_bill_date"},
		query.Condition{"account_id": accountID},
	)
	if err != nil {
		return time.Time{}, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return time.Time{}, err
	}
	if len(rows) == 0 || rows[0].IsNull("last_bill_date") {
		return billingEpoch, nil
	}
	return dateOnly(rows[0].Time("last_bill_date")), nil
}

// billingBoundaries computes the interval boundaries between the last
// bill date and today. Monthly and quarterly accounts step by calendar
// months; weekly and biweekly accounts step by day count. Today always
// closes the final interval so orders placed since the most recent
// period boundary are still rolled up.
func billingBoundaries(last, today time.Time, periodicity string) []time.Time {
	var boundaries []time.Time
	step := func(t time.Time) time.Time { return t }
	switch periodicity {
	case PeriodicityWeekly:
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }
	case PeriodicityBiweekly:
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 14) }
	case PeriodicityMonthly:
		step = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	case PeriodicityQuarterly:
		step = func(t time.Time) time.Time { return t.AddDate(0, 3, 0) }
	}

	for t := step(last); t.Before(today); t = step(t) {
		boundaries = append(boundaries, t)
	}
	if len(boundaries) == 0 || !boundaries[len(boundaries)-1].Equal(today) {
		if today.After(last) {
			boundaries = append(boundaries, today)
		}
	}
	return boundaries
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
