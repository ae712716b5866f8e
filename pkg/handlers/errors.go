// Package handlers implements the WolfPub domain workflows: one
// handler per entity family, each composing parameterized statements
// from pkg/query and driving them through the pkg/engine store.
package handlers

import "fmt"

// DomainError reports a business-rule violation detected before any
// statement reaches the store: nothing to order, nothing to bill, an
// invalid employee classification.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}

func domainErrorf(format string, args ...any) error {
	return &DomainError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a fetch-exactly-one lookup that found zero rows.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id '%v' not found", e.Entity, e.ID)
}

// UnauthorizedError reports an operation blocked by a business guard,
// such as removing a distributor whose account still carries a balance.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	return e.Reason
}
