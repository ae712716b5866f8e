package handlers

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/wolfpub/wolfpub/pkg/catalog"
	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// Specialization is the employee's content-writer role. Every employee
// carries exactly one, stored in its own table alongside the employee
// row.
type Specialization string

const (
	SpecAuthor Specialization = "author"
	SpecEditor Specialization = "editor"
)

// EmploymentType distinguishes staff from guest writers.
type EmploymentType string

const (
	EmploymentStaff EmploymentType = "staff"
	EmploymentGuest EmploymentType = "guest"
)

// Employee is the input for hiring an employee. The specialization is
// an explicit tagged variant, not inferred from which table happens to
// hold a matching row.
type Employee struct {
	SSN            string
	Name           string
	Gender         string
	Age            int
	PhoneNumber    int64
	JobTitle       string
	Specialization Specialization
	Type           EmploymentType
}

func (e Employee) row(empID string) map[string]any {
	return map[string]any{
		"emp_id":       empID,
		"ssn":          e.SSN,
		"name":         e.Name,
		"gender":       e.Gender,
		"age":          e.Age,
		"phone_number": e.PhoneNumber,
		"job_title":    e.JobTitle,
	}
}

// NewEmployeeID derives the human-readable employee id: a two-letter
// prefix from specialization and employment type, plus a random
// four-digit suffix (AS1234, EG5678).
func NewEmployeeID(spec Specialization, typ EmploymentType) (string, error) {
	var prefix string
	switch {
	case spec == SpecAuthor && typ == EmploymentStaff:
		prefix = "AS"
	case spec == SpecEditor && typ == EmploymentStaff:
		prefix = "ES"
	case spec == SpecAuthor && typ == EmploymentGuest:
		prefix = "AG"
	case spec == SpecEditor && typ == EmploymentGuest:
		prefix = "EG"
	default:
		return "", domainErrorf("cannot generate employee id for specialization %q and type %q", spec, typ)
	}
	return fmt.Sprintf("%s%04d", prefix, 1000+rand.Intn(9000)), nil
}

// EmployeeHandler manages employees and their author/editor
// specialization rows.
type EmployeeHandler struct {
	db engine.Store
}

func NewEmployeeHandler(db engine.Store) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

// Create inserts the employee row and exactly one specialization row as
// one transaction, and returns the generated employee id.
func (h *EmployeeHandler) Create(ctx context.Context, e Employee) (string, error) {
	empID, err := NewEmployeeID(e.Specialization, e.Type)
	if err != nil {
		return "", err
	}

	employeeInsert, err := query.Insert(catalog.Employees.Name, []map[string]any{e.row(empID)})
	if err != nil {
		return "", err
	}

	specTable := catalog.Authors.Name
	if e.Specialization == SpecEditor {
		specTable = catalog.Editors.Name
	}
	specInsert, err := query.Insert(specTable, []map[string]any{{
		"emp_id": empID,
		"type":   string(e.Type),
	}})
	if err != nil {
		return "", err
	}

	if _, _, err := h.db.Execute(ctx, employeeInsert, specInsert); err != nil {
		return "", err
	}
	return empID, nil
}

// Get fetches one employee.
func (h *EmployeeHandler) Get(ctx context.Context, empID string) (engine.Row, error) {
	stmt, err := query.Select(catalog.Employees.Name, []string{"*"}, query.Condition{"emp_id": empID})
	if err != nil {
		return nil, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &NotFoundError{Entity: "employee", ID: empID}
	}
	return rows[0], nil
}

// Update applies the given assignments to the employee row.
func (h *EmployeeHandler) Update(ctx context.Context, empID string, update query.Set) (int64, error) {
	stmt, err := query.Update(catalog.Employees.Name, query.Condition{"emp_id": empID}, update)
	if err != nil {
		return 0, err
	}
	affected, _, err := h.db.Execute(ctx, stmt)
	return affected, err
}

// Remove deletes the employee and its specialization row as one
// transaction. The author table is tried first; when no row is
// affected there, the editor table is tried instead.
func (h *EmployeeHandler) Remove(ctx context.Context, empID string) error {
	return h.db.InTx(ctx, func(tx engine.Tx) error {
		authorDelete, err := query.Delete(catalog.Authors.Name, query.Condition{"emp_id": empID})
		if err != nil {
			return err
		}
		affected, _, err := tx.Exec(ctx, authorDelete)
		if err != nil {
			return err
		}
		if affected == 0 {
			editorDelete, err := query.Delete(catalog.Editors.Name, query.Condition{"emp_id": empID})
			if err != nil {
				return err
			}
			if _, _, err := tx.Exec(ctx, editorDelete); err != nil {
				return err
			}
		}

		employeeDelete, err := query.Delete(catalog.Employees.Name, query.Condition{"emp_id": empID})
		if err != nil {
			return err
		}
		affected, _, err = tx.Exec(ctx, employeeDelete)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &NotFoundError{Entity: "employee", ID: empID}
		}
		return nil
	})
}

// Specialization looks up the employee's role from its specialization
// row.
func (h *EmployeeHandler) Specialization(ctx context.Context, empID string) (Specialization, error) {
	isIn := func(table string) (bool, error) {
		stmt, err := query.Select(table, []string{"emp_id"}, query.Condition{"emp_id": empID})
		if err != nil {
			return false, err
		}
		rows, err := h.db.GetResult(ctx, stmt)
		if err != nil {
			return false, err
		}
		return len(rows) > 0, nil
	}

	if ok, err := isIn(catalog.Authors.Name); err != nil {
		return "", err
	} else if ok {
		return SpecAuthor, nil
	}
	if ok, err := isIn(catalog.Editors.Name); err != nil {
		return "", err
	} else if ok {
		return SpecEditor, nil
	}
	return "", &NotFoundError{Entity: "employee", ID: empID}
}

// RegisterBook associates an author with a book publication they wrote.
// Editors may not be associated with authored work.
func (h *EmployeeHandler) RegisterBook(ctx context.Context, empID string, publicationID int64) error {
	spec, err := h.Specialization(ctx, empID)
	if err != nil {
		return err
	}
	if spec != SpecAuthor {
		return &UnauthorizedError{Reason: "only authors can be associated with written books"}
	}
	insert, err := query.Insert(catalog.WriteBooks.Name, []map[string]any{{
		"emp_id":         empID,
		"publication_id": publicationID,
	}})
	if err != nil {
		return err
	}
	_, _, err = h.db.Execute(ctx, insert)
	return err
}

// RegisterArticle associates an author with an article they wrote.
func (h *EmployeeHandler) RegisterArticle(ctx context.Context, empID string, publicationID int64, articleID int64) error {
	spec, err := h.Specialization(ctx, empID)
	if err != nil {
		return err
	}
	if spec != SpecAuthor {
		return &UnauthorizedError{Reason: "only authors can be associated with written articles"}
	}
	insert, err := query.Insert(catalog.WriteArticles.Name, []map[string]any{{
		"emp_id":         empID,
		"publication_id": publicationID,
		"article_id":     articleID,
	}})
	if err != nil {
		return err
	}
	_, _, err = h.db.Execute(ctx, insert)
	return err
}

// AssignReview assigns a publication to an editor for review.
func (h *EmployeeHandler) AssignReview(ctx context.Context, empID string, publicationID int64) error {
	spec, err := h.Specialization(ctx, empID)
	if err != nil {
		return err
	}
	if spec != SpecEditor {
		return &UnauthorizedError{Reason: "only editors can review publications"}
	}
	insert, err := query.Insert(catalog.ReviewPublications.Name, []map[string]any{{
		"emp_id":         empID,
		"publication_id": publicationID,
	}})
	if err != nil {
		return err
	}
	_, _, err = h.db.Execute(ctx, insert)
	return err
}
