package handlers

import (
	"context"
	"time"

	"github.com/wolfpub/wolfpub/pkg/catalog"
	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// ReportHandler computes revenue and expense aggregates for the
// publication house. It only reads; every method is a single SELECT
// over the ledgers, optionally bounded by a date range.
type ReportHandler struct {
	db engine.Store

	// revenueTable joins payments with accounts and distributors so
	// revenue can be grouped by distributor attributes.
	revenueTable string
}

func NewReportHandler(db engine.Store) *ReportHandler {
	return &ReportHandler{
		db: db,
		revenueTable: catalog.AccountPayments.Name +
			" NATURAL JOIN " + catalog.Accounts.Name +
			" NATURAL JOIN " + catalog.Distributors.Name,
	}
}

// dateCond builds a half-open [start, end) range condition on the
// given date column. Either bound may be the zero time, and with both
// bounds absent the condition is empty (no WHERE clause).
func dateCond(dateColumn string, start, end time.Time) query.Condition {
	ops := query.Operators{}
	if !start.IsZero() {
		ops[">="] = dateOnly(start)
	}
	if !end.IsZero() {
		ops["<"] = dateOnly(end)
	}
	if len(ops) == 0 {
		return query.Condition{}
	}
	return query.Condition{dateColumn: ops}
}

// ActiveDistributorCount counts the distributors holding an active
// account.
func (h *ReportHandler) ActiveDistributorCount(ctx context.Context) (int64, error) {
	stmt, err := query.Select(
		catalog.Accounts.Name,
		[]string{"count(account_id) AS total_distributors"},
		query.Condition{"is_active": true},
	)
	if err != nil {
		return 0, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, domainErrorf("no distributor linked with the publication house")
	}
	return rows[0].Int("total_distributors"), nil
}

// Revenue sums the payments received in the date range.
func (h *ReportHandler) Revenue(ctx context.Context, start, end time.Time) (float64, error) {
	stmt, err := query.Select(
		catalog.AccountPayments.Name,
		[]string{"sum(amount) AS total_revenue"},
		dateCond("payment_date", start, end),
	)
	if err != nil {
		return 0, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || rows[0].IsNull("total_revenue") {
		return 0, nil
	}
	return rows[0].Float("total_revenue"), nil
}

// RevenuePerDistributor groups received payments by distributor.
func (h *ReportHandler) RevenuePerDistributor(ctx context.Context, start, end time.Time) ([]engine.Row, error) {
	stmt, err := query.Select(
		h.revenueTable,
		[]string{"distributor_id", "name", "sum(amount) AS revenue"},
		dateCond("payment_date", start, end),
		"distributor_id", "name",
	)
	if err != nil {
		return nil, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domainErrorf("no revenue collected from distributors for the given parameters")
	}
	return rows, nil
}

// RevenuePerCity groups received payments by distributor city.
func (h *ReportHandler) RevenuePerCity(ctx context.Context, start, end time.Time) ([]engine.Row, error) {
	stmt, err := query.Select(
		h.revenueTable,
		[]string{"city", "sum(amount) AS revenue"},
		dateCond("payment_date", start, end),
		"city",
	)
	if err != nil {
		return nil, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domainErrorf("no revenue collected from any city for the given parameters")
	}
	return rows, nil
}

// ShippingExpense sums the shipping cost of orders delivered in the
// date range.
func (h *ReportHandler) ShippingExpense(ctx context.Context, start, end time.Time) (float64, error) {
	return h.expense(ctx, catalog.Orders.Name, "delivery_date", "shipping_cost", start, end)
}

// SalaryExpense sums the salary payments sent in the date range.
func (h *ReportHandler) SalaryExpense(ctx context.Context, start, end time.Time) (float64, error) {
	return h.expense(ctx, catalog.SalaryPayments.Name, "send_date", "amount", start, end)
}

// SalaryExpensePerMonth groups salary payments by calendar month.
func (h *ReportHandler) SalaryExpensePerMonth(ctx context.Context) ([]engine.Row, error) {
	stmt, err := query.Select(
		catalog.SalaryPayments.Name,
		[]string{
			"extract(year from send_date) AS year",
			"extract(month from send_date) AS month",
			"sum(amount) AS salary_expense",
		},
		query.Condition{},
		"extract(year from send_date)", "extract(month from send_date)",
	)
	if err != nil {
		return nil, err
	}
	return h.db.GetResult(ctx, stmt)
}

// SalaryExpensePerWorkType splits salary expense between authorship
// and editorial work, keyed off the employee id prefix.
func (h *ReportHandler) SalaryExpensePerWorkType(ctx context.Context) ([]engine.Row, error) {
	stmt, err := query.Select(
		catalog.SalaryPayments.Name,
		[]string{
			"CASE WHEN emp_id LIKE 'A%' THEN 'authorship' ELSE 'editorial work' END AS work_type",
			"sum(amount) AS salary_expense",
		},
		query.Condition{},
		"work_type",
	)
	if err != nil {
		return nil, err
	}
	return h.db.GetResult(ctx, stmt)
}

func (h *ReportHandler) expense(ctx context.Context, table, dateColumn, expenseColumn string, start, end time.Time) (float64, error) {
	stmt, err := query.Select(
		table,
		[]string{"sum(" + expenseColumn + ") AS expense"},
		dateCond(dateColumn, start, end),
	)
	if err != nil {
		return 0, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || rows[0].IsNull("expense") {
		return 0, nil
	}
	return rows[0].Float("expense"), nil
}
