package api

import (
	"net/http"
	"time"

	"github.com/wolfpub/wolfpub/pkg/handlers"
)

// reportRange reads the optional start/end query parameters as a
// half-open date range.
func reportRange(r *http.Request) (start, end time.Time, err error) {
	start, err = parseDate(r.URL.Query().Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, &handlers.DomainError{Reason: "invalid start, want YYYY-MM-DD"}
	}
	end, err = parseDate(r.URL.Query().Get("end"))
	if err != nil {
		return time.Time{}, time.Time{}, &handlers.DomainError{Reason: "invalid end, want YYYY-MM-DD"}
	}
	return start, end, nil
}

func (s *Server) revenue(w http.ResponseWriter, r *http.Request) {
	start, end, err := reportRange(r)
	if err != nil {
		writeError(w, err)
		return
	}
	total, err := s.reports.Revenue(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	count, err := s.reports.ActiveDistributorCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]any{
		"revenue":             total,
		"active_distributors": count,
	})
}

func (s *Server) revenuePerDistributor(w http.ResponseWriter, r *http.Request) {
	start, end, err := reportRange(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rows, err := s.reports.RevenuePerDistributor(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rows)
}

func (s *Server) revenuePerCity(w http.ResponseWriter, r *http.Request) {
	start, end, err := reportRange(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rows, err := s.reports.RevenuePerCity(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rows)
}

func (s *Server) expenses(w http.ResponseWriter, r *http.Request) {
	start, end, err := reportRange(r)
	if err != nil {
		writeError(w, err)
		return
	}
	shipping, err := s.reports.ShippingExpense(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	salary, err := s.reports.SalaryExpense(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]float64{
		"shipping_cost": shipping,
		"salary":        salary,
		"total":         shipping + salary,
	})
}

func (s *Server) salaryExpensePerMonth(w http.ResponseWriter, r *http.Request) {
	rows, err := s.reports.SalaryExpensePerMonth(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rows)
}

func (s *Server) salaryExpensePerWorkType(w http.ResponseWriter, r *http.Request) {
	rows, err := s.reports.SalaryExpensePerWorkType(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rows)
}
