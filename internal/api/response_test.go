package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/handlers"
	"github.com/wolfpub/wolfpub/pkg/query"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		label  string
	}{
		{
			name:   "not found",
			err:    &handlers.NotFoundError{Entity: "account", ID: 4},
			status: http.StatusNotFound,
			label:  "NotFound",
		},
		{
			name:   "unauthorized",
			err:    &handlers.UnauthorizedError{Reason: "balance is not settled"},
			status: http.StatusForbidden,
			label:  "UnauthorizedOperation",
		},
		{
			name:   "query generation",
			err:    &query.GenerationError{Reason: "update has no assignments"},
			status: http.StatusBadRequest,
			label:  "QueryGeneration",
		},
		{
			name:   "domain rule",
			err:    &handlers.DomainError{Reason: "no orders to bill"},
			status: http.StatusBadRequest,
			label:  "DomainRule",
		},
		{
			name:   "database",
			err:    &engine.DatabaseError{Op: "execute", Code: "23505", Err: errors.New("duplicate key")},
			status: http.StatusBadRequest,
			label:  "Database",
		},
		{
			name:   "wrapped not found",
			err:    fmt.Errorf("lookup: %w", &handlers.NotFoundError{Entity: "order", ID: 7}),
			status: http.StatusNotFound,
			label:  "NotFound",
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			label:  "Internal",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.label, body.Error)
			assert.Equal(t, tc.err.Error(), body.Message)
		})
	}
}

func TestWriteData(t *testing.T) {
	rec := httptest.NewRecorder()
	writeData(rec, map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": {"count": 3}}`, rec.Body.String())
}

func TestWriteCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	writeCreated(rec, map[string]int64{"distributor_id": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data": {"distributor_id": 3}}`, rec.Body.String())
}

func TestDecodeBody_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/distributors", strings.NewReader("{nope"))

	var dst distributorRequest
	err := decodeBody(r, &dst)

	var domainErr *handlers.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Reason, "malformed request body")
}

func TestDecodeBody_Valid(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/distributors",
		strings.NewReader(`{"name": "Page One", "city": "Raleigh"}`))

	var dst distributorRequest
	require.NoError(t, decodeBody(r, &dst))
	assert.Equal(t, "Page One", dst.Name)
	assert.Equal(t, "Raleigh", dst.City)
}

func TestPathID(t *testing.T) {
	mux := http.NewServeMux()
	var got int64
	var gotErr error
	mux.HandleFunc("GET /accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = pathID(r, "id")
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/42", nil))
	require.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/abc", nil))
	var notFound *handlers.NotFoundError
	require.ErrorAs(t, gotErr, &notFound)
	assert.Equal(t, "abc", notFound.ID)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2021-02-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 2, 14, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseDate("14/02/2021")
	assert.Error(t, err)
}
