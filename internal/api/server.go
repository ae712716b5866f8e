// Package api exposes the domain handlers over HTTP. Controllers are
// thin: they decode JSON, call a handler, and format the response
// envelope. All behavior lives in pkg/handlers.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/handlers"
)

// Server wires the domain handlers to HTTP routes.
type Server struct {
	log *slog.Logger

	distributors *handlers.DistributorHandler
	accounts     *handlers.AccountHandler
	billing      *handlers.BillingHandler
	orders       *handlers.OrderHandler
	employees    *handlers.EmployeeHandler
	publications *handlers.PublicationHandler
	reports      *handlers.ReportHandler
	salaries     *handlers.SalaryHandler
}

// NewServer constructs the server with one store shared by every
// handler.
func NewServer(db engine.Store, log *slog.Logger) *Server {
	publications := handlers.NewPublicationHandler(db)
	return &Server{
		log:          log,
		distributors: handlers.NewDistributorHandler(db),
		accounts:     handlers.NewAccountHandler(db),
		billing:      handlers.NewBillingHandler(db),
		orders:       handlers.NewOrderHandler(db, publications),
		employees:    handlers.NewEmployeeHandler(db),
		publications: publications,
		reports:      handlers.NewReportHandler(db),
		salaries:     handlers.NewSalaryHandler(db),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /distributors", s.createDistributor)
	mux.HandleFunc("GET /distributors", s.listDistributors)
	mux.HandleFunc("GET /distributors/{id}", s.getDistributor)
	mux.HandleFunc("PATCH /distributors/{id}", s.updateDistributor)
	mux.HandleFunc("DELETE /distributors/{id}", s.removeDistributor)

	mux.HandleFunc("POST /accounts", s.registerAccount)
	mux.HandleFunc("GET /accounts/{id}", s.getAccount)
	mux.HandleFunc("PATCH /accounts/{id}", s.updateAccount)
	mux.HandleFunc("DELETE /accounts/{id}", s.closeAccount)
	mux.HandleFunc("POST /accounts/{id}/orders", s.placeOrder)
	mux.HandleFunc("GET /accounts/{id}/orders", s.listOrders)
	mux.HandleFunc("GET /accounts/{id}/orders/{orderID}", s.getOrder)
	mux.HandleFunc("POST /accounts/{id}/bills", s.createBill)
	mux.HandleFunc("GET /accounts/{id}/bills", s.listBills)
	mux.HandleFunc("POST /accounts/{id}/payments", s.createPayment)
	mux.HandleFunc("GET /accounts/{id}/payments", s.listPayments)

	mux.HandleFunc("POST /employees", s.createEmployee)
	mux.HandleFunc("GET /employees/{id}", s.getEmployee)
	mux.HandleFunc("PATCH /employees/{id}", s.updateEmployee)
	mux.HandleFunc("DELETE /employees/{id}", s.removeEmployee)
	mux.HandleFunc("POST /employees/{id}/books", s.registerBook)
	mux.HandleFunc("POST /employees/{id}/articles", s.registerArticle)
	mux.HandleFunc("POST /employees/{id}/reviews", s.assignReview)

	mux.HandleFunc("POST /publications/books", s.createBook)
	mux.HandleFunc("POST /publications/periodicals", s.createPeriodical)
	mux.HandleFunc("GET /publications/{id}", s.getPublication)
	mux.HandleFunc("POST /publications/{id}/chapters", s.addChapter)
	mux.HandleFunc("POST /publications/{id}/articles", s.addArticle)

	mux.HandleFunc("GET /reports/revenue", s.revenue)
	mux.HandleFunc("GET /reports/revenue/distributors", s.revenuePerDistributor)
	mux.HandleFunc("GET /reports/revenue/cities", s.revenuePerCity)
	mux.HandleFunc("GET /reports/expenses", s.expenses)
	mux.HandleFunc("GET /reports/expenses/salaries/months", s.salaryExpensePerMonth)
	mux.HandleFunc("GET /reports/expenses/salaries/worktypes", s.salaryExpensePerWorkType)

	mux.HandleFunc("POST /salaries", s.createSalaryPayment)
	mux.HandleFunc("GET /salaries/{id}", s.getSalaryPayment)
	mux.HandleFunc("PATCH /salaries/{id}/claim", s.claimSalaryPayment)

	mux.HandleFunc("GET /healthcheck", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]string{"status": "ok"})
	})

	return withLogging(s.log, mux)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, &handlers.NotFoundError{Entity: name, ID: r.PathValue(name)}
	}
	return id, nil
}

// parseDate parses an optional YYYY-MM-DD value; empty input yields
// the zero time.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
