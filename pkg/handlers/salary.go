package handlers

import (
	"context"
	"time"

	"github.com/wolfpub/wolfpub/pkg/catalog"
	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// SalaryPayment is the input for recording a salary payment to an
// employee.
type SalaryPayment struct {
	EmpID    string
	HouseID  int64
	Amount   float64
	SendDate time.Time
}

// SalaryHandler records and maintains salary payments.
type SalaryHandler struct {
	db engine.Store
}

func NewSalaryHandler(db engine.Store) *SalaryHandler {
	return &SalaryHandler{db: db}
}

// Create inserts the payment and returns the generated transaction id.
func (h *SalaryHandler) Create(ctx context.Context, p SalaryPayment) (int64, error) {
	if p.Amount <= 0 {
		return 0, domainErrorf("salary amount must be positive")
	}
	houseID := p.HouseID
	if houseID == 0 {
		houseID = 1
	}
	sendDate := p.SendDate
	if sendDate.IsZero() {
		sendDate = dateOnly(time.Now())
	}
	insert, err := query.InsertReturning(catalog.SalaryPayments.Name, []map[string]any{{
		"emp_id":    p.EmpID,
		"house_id":  houseID,
		"amount":    p.Amount,
		"send_date": sendDate,
	}}, catalog.SalaryPayments.SerialKey)
	if err != nil {
		return 0, err
	}
	_, ids, err := h.db.Execute(ctx, insert)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// Get fetches one salary payment.
func (h *SalaryHandler) Get(ctx context.Context, transactionID int64) (engine.Row, error) {
	stmt, err := query.Select(catalog.SalaryPayments.Name, []string{"*"}, query.Condition{"transaction_id": transactionID})
	if err != nil {
		return nil, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &NotFoundError{Entity: "salary payment", ID: transactionID}
	}
	return rows[0], nil
}

// UpdateClaimDate records the date the employee received the payment.
func (h *SalaryHandler) UpdateClaimDate(ctx context.Context, transactionID int64, receivedDate time.Time) (int64, error) {
	stmt, err := query.Update(
		catalog.SalaryPayments.Name,
		query.Condition{"transaction_id": transactionID},
		query.Set{"received_date": dateOnly(receivedDate)},
	)
	if err != nil {
		return 0, err
	}
	affected, _, err := h.db.Execute(ctx, stmt)
	return affected, err
}
