package handlers

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfpub/wolfpub/pkg/engine"
)

func TestNewEmployeeID_Prefixes(t *testing.T) {
	cases := []struct {
		spec    Specialization
		typ     EmploymentType
		pattern string
	}{
		{SpecAuthor, EmploymentStaff, `^AS\d{4}$`},
		{SpecEditor, EmploymentStaff, `^ES\d{4}$`},
		{SpecAuthor, EmploymentGuest, `^AG\d{4}$`},
		{SpecEditor, EmploymentGuest, `^EG\d{4}$`},
	}

	for _, tc := range cases {
		id, err := NewEmployeeID(tc.spec, tc.typ)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(tc.pattern), id)
	}
}

func TestNewEmployeeID_InvalidCombination(t *testing.T) {
	_, err := NewEmployeeID("journalist", EmploymentStaff)
	require.Error(t, err)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)

	_, err = NewEmployeeID(SpecAuthor, "freelance")
	require.Error(t, err)
}

func TestEmployeeCreate_AuthorRowPair(t *testing.T) {
	db := &fakeStore{}
	h := NewEmployeeHandler(db)

	empID, err := h.Create(context.Background(), Employee{
		SSN:            "123-45-6789",
		Name:           "Ursula",
		Specialization: SpecAuthor,
		Type:           EmploymentStaff,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^AS\d{4}$`, empID)

	require.Len(t, db.batches, 1)
	batch := db.batches[0]
	require.Len(t, batch, 2)
	assert.True(t, strings.HasPrefix(batch[0].SQL, "INSERT INTO employees "))
	assert.True(t, strings.HasPrefix(batch[1].SQL, "INSERT INTO authors "))
	assert.Contains(t, batch[1].Args, empID)
	assert.Contains(t, batch[1].Args, "staff")
}

func TestEmployeeCreate_EditorRowPair(t *testing.T) {
	db := &fakeStore{}
	h := NewEmployeeHandler(db)

	empID, err := h.Create(context.Background(), Employee{
		Name:           "Gordon",
		Specialization: SpecEditor,
		Type:           EmploymentGuest,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^EG\d{4}$`, empID)

	batch := db.batches[0]
	assert.True(t, strings.HasPrefix(batch[1].SQL, "INSERT INTO editors "))
}

func TestEmployeeCreate_InvalidSpecializationHitsNoTable(t *testing.T) {
	db := &fakeStore{}
	h := NewEmployeeHandler(db)

	_, err := h.Create(context.Background(), Employee{Specialization: "journalist", Type: EmploymentStaff})
	require.Error(t, err)
	assert.Empty(t, db.batches)
}

func TestEmployeeRemove_AuthorPath(t *testing.T) {
	db := &fakeStore{}
	db.tx.results = []txResult{
		{affected: 1}, // authors delete hit
		{affected: 1}, // employees delete
	}
	h := NewEmployeeHandler(db)

	err := h.Remove(context.Background(), "AS1234")
	require.NoError(t, err)

	require.Len(t, db.tx.stmts, 2)
	assert.True(t, strings.HasPrefix(db.tx.stmts[0].SQL, "DELETE FROM authors "))
	assert.True(t, strings.HasPrefix(db.tx.stmts[1].SQL, "DELETE FROM employees "))
}

func TestEmployeeRemove_FallsBackToEditors(t *testing.T) {
	db := &fakeStore{}
	db.tx.results = []txResult{
		{affected: 0}, // not an author
		{affected: 1}, // editors delete hit
		{affected: 1}, // employees delete
	}
	h := NewEmployeeHandler(db)

	err := h.Remove(context.Background(), "ES1234")
	require.NoError(t, err)

	require.Len(t, db.tx.stmts, 3)
	assert.True(t, strings.HasPrefix(db.tx.stmts[1].SQL, "DELETE FROM editors "))
}

func TestEmployeeRemove_NotFound(t *testing.T) {
	db := &fakeStore{}
	db.tx.results = []txResult{
		{affected: 0},
		{affected: 0},
		{affected: 0}, // no employee row either
	}
	h := NewEmployeeHandler(db)

	err := h.Remove(context.Background(), "AS9999")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSpecialization_Lookup(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{}, // not in authors
			{{"emp_id": "ES1234"}},
		},
	}
	h := NewEmployeeHandler(db)

	spec, err := h.Specialization(context.Background(), "ES1234")
	require.NoError(t, err)
	assert.Equal(t, SpecEditor, spec)
}

func TestRegisterBook_EditorRejected(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{}, // not in authors
			{{"emp_id": "ES1234"}},
		},
	}
	h := NewEmployeeHandler(db)

	err := h.RegisterBook(context.Background(), "ES1234", 9)
	var unauthorized *UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Empty(t, db.batches)
}

func TestRegisterBook_Author(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{{"emp_id": "AS1234"}},
		},
	}
	h := NewEmployeeHandler(db)

	err := h.RegisterBook(context.Background(), "AS1234", 9)
	require.NoError(t, err)

	require.Len(t, db.batches, 1)
	assert.True(t, strings.HasPrefix(db.batches[0][0].SQL, "INSERT INTO write_books "))
}

func TestAssignReview_AuthorRejected(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{{"emp_id": "AS1234"}},
		},
	}
	h := NewEmployeeHandler(db)

	err := h.AssignReview(context.Background(), "AS1234", 9)
	var unauthorized *UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
}

func TestRegisterArticle_CarriesArticleID(t *testing.T) {
	db := &fakeStore{
		queryResults: [][]engine.Row{
			{{"emp_id": "AG7777"}},
		},
	}
	h := NewEmployeeHandler(db)

	err := h.RegisterArticle(context.Background(), "AG7777", 9, 3)
	require.NoError(t, err)

	batch := db.batches[0]
	assert.True(t, strings.HasPrefix(batch[0].SQL, "INSERT INTO write_articles "))
	assert.Contains(t, batch[0].Args, int64(3))
}
