package handlers

import (
	"context"

	"github.com/wolfpub/wolfpub/pkg/catalog"
	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// Billing periodicities an account may carry.
const (
	PeriodicityWeekly    = "weekly"
	PeriodicityBiweekly  = "biweekly"
	PeriodicityMonthly   = "monthly"
	PeriodicityQuarterly = "quarterly"
)

// Account is the input for registering a distributor's account.
type Account struct {
	DistributorID int64
	ContactEmail  string
	Periodicity   string
	HouseID       int64
}

func (a Account) row() map[string]any {
	houseID := a.HouseID
	if houseID == 0 {
		houseID = 1
	}
	return map[string]any{
		"distributor_id": a.DistributorID,
		"house_id":       houseID,
		"balance":        0,
		"contact_email":  a.ContactEmail,
		"periodicity":    a.Periodicity,
		"is_active":      true,
	}
}

// AccountHandler manages the account a distributor holds with the
// publication house.
type AccountHandler struct {
	db engine.Store
}

func NewAccountHandler(db engine.Store) *AccountHandler {
	return &AccountHandler{db: db}
}

func validPeriodicity(p string) bool {
	switch p {
	case PeriodicityWeekly, PeriodicityBiweekly, PeriodicityMonthly, PeriodicityQuarterly:
		return true
	}
	return false
}

// Register opens an account with zero balance and links it to the
// publication house, as one transaction.
func (h *AccountHandler) Register(ctx context.Context, a Account) (int64, error) {
	if !validPeriodicity(a.Periodicity) {
		return 0, domainErrorf("unknown billing periodicity %q", a.Periodicity)
	}

	insert, err := query.InsertReturning(catalog.Accounts.Name, []map[string]any{a.row()}, catalog.Accounts.SerialKey)
	if err != nil {
		return 0, err
	}

	var accountID int64
	err = h.db.InTx(ctx, func(tx engine.Tx) error {
		_, id, err := tx.Exec(ctx, insert)
		if err != nil {
			return err
		}
		accountID = id

		houseID := a.HouseID
		if houseID == 0 {
			houseID = 1
		}
		link, err := query.Insert(catalog.AccountHousesInfo.Name, []map[string]any{
			{"account_id": accountID, "house_id": houseID},
		})
		if err != nil {
			return err
		}
		_, _, err = tx.Exec(ctx, link)
		return err
	})
	if err != nil {
		return 0, err
	}
	return accountID, nil
}

// Get fetches one active account joined with its distributor.
func (h *AccountHandler) Get(ctx context.Context, accountID int64) (engine.Row, error) {
	table := catalog.Accounts.Name + " NATURAL JOIN " + catalog.Distributors.Name
	cond := query.Condition{"account_id": accountID, "is_active": true}
	stmt, err := query.Select(table, []string{"*"}, cond)
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

// Update applies the given assignments to the account.
func (h *AccountHandler) Update(ctx context.Context, accountID int64, update query.Set) (int64, error) {
	stmt, err := query.Update(catalog.Accounts.Name, query.Condition{"account_id": accountID}, update)
	if err != nil {
		return 0, err
	}
	affected, _, err := h.db.Execute(ctx, stmt)
	return affected, err
}

// Close soft-deletes the account. A nonzero balance blocks it.
func (h *AccountHandler) Close(ctx context.Context, accountID int64) error {
	account, err := h.Get(ctx, accountID)
	if err != nil {
		return err
	}
	if account.Float("balance") != 0 {
		return &UnauthorizedError{Reason: "account cannot be closed while it carries an outstanding balance"}
	}
	_, err = h.Update(ctx, accountID, query.Set{"is_active": false})
	return err
}
