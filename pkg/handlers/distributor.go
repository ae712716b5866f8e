package handlers

import (
	"context"

	"github.com/wolfpub/wolfpub/pkg/catalog"
	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// Distributor is the input for registering a distributor.
type Distributor struct {
	Name          string
	Type          string
	Address       string
	City          string
	PhoneNumber   int64
	ContactPerson string
}

func (d Distributor) row() map[string]any {
	return map[string]any{
		"name":             d.Name,
		"distributor_type": d.Type,
		"address":          d.Address,
		"city":             d.City,
		"phone_number":     d.PhoneNumber,
		"contact_person":   d.ContactPerson,
		"is_active":        true,
	}
}

// DistributorHandler manages distributor records.
type DistributorHandler struct {
	db engine.Store
}

func NewDistributorHandler(db engine.Store) *DistributorHandler {
	return &DistributorHandler{db: db}
}

// Create inserts the distributor and returns its generated id.
func (h *DistributorHandler) Create(ctx context.Context, d Distributor) (int64, error) {
	stmt, err := query.InsertReturning(catalog.Distributors.Name, []map[string]any{d.row()}, catalog.Distributors.SerialKey)
	if err != nil {
		return 0, err
	}
	_, ids, err := h.db.Execute(ctx, stmt)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// Get fetches one active distributor.
func (h *DistributorHandler) Get(ctx context.Context, distributorID int64) (engine.Row, error) {
	cond := query.Condition{"distributor_id": distributorID, "is_active": true}
	stmt, err := query.Select(catalog.Distributors.Name, []string{"*"}, cond)
	if err != nil {
		return nil, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &NotFoundError{Entity: "distributor", ID: distributorID}
	}
	return rows[0], nil
}

// List fetches every active distributor.
func (h *DistributorHandler) List(ctx context.Context) ([]engine.Row, error) {
	stmt, err := query.Select(catalog.Distributors.Name, []string{"*"}, query.Condition{"is_active": true})
	if err != nil {
		return nil, err
	}
	return h.db.GetResult(ctx, stmt)
}

// Update applies the given assignments and returns the affected count.
func (h *DistributorHandler) Update(ctx context.Context, distributorID int64, update query.Set) (int64, error) {
	stmt, err := query.Update(catalog.Distributors.Name, query.Condition{"distributor_id": distributorID}, update)
	if err != nil {
		return 0, err
	}
	affected, _, err := h.db.Execute(ctx, stmt)
	return affected, err
}

// Remove soft-deletes the distributor. It is refused while the linked
// account carries a nonzero balance. The linked account is deactivated
// together with the distributor, in one transaction.
func (h *DistributorHandler) Remove(ctx context.Context, distributorID int64) error {
	if _, err := h.Get(ctx, distributorID); err != nil {
		return err
	}

	stmt, err := query.Select(
		catalog.Accounts.Name,
		[]string{"account_id", "balance"},
		query.Condition{"distributor_id": distributorID, "is_active": true},
	)
	if err != nil {
		return err
	}
	accounts, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if account.Float("balance") != 0 {
			return &UnauthorizedError{
				Reason: "distributor cannot be removed while its account carries an outstanding balance",
			}
		}
	}

	deactivate := query.Set{"is_active": false}
	stmts := make([]query.Statement, 0, 2)

	deactivateDistributor, err := query.Update(catalog.Distributors.Name, query.Condition{"distributor_id": distributorID}, deactivate)
	if err != nil {
		return err
	}
	stmts = append(stmts, deactivateDistributor)

	if len(accounts) > 0 {
		deactivateAccount, err := query.Update(catalog.Accounts.Name, query.Condition{"distributor_id": distributorID}, deactivate)
		if err != nil {
			return err
		}
		stmts = append(stmts, deactivateAccount)
	}

	_, _, err = h.db.Execute(ctx, stmts...)
	return err
}
