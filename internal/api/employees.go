package api

import (
	"net/http"
	"strconv"

	"github.com/wolfpub/wolfpub/pkg/handlers"
	"github.com/wolfpub/wolfpub/pkg/query"
)

type employeeRequest struct {
	SSN            string `json:"ssn"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	PhoneNumber    int64  `json:"phone_number"`
	JobTitle       string `json:"job_title"`
	Specialization string `json:"specialization"`
	Type           string `json:"employment_type"`
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	empID, err := s.employees.Create(r.Context(), handlers.Employee{
		SSN:            req.SSN,
		Name:           req.Name,
		Gender:         req.Gender,
		Age:            req.Age,
		PhoneNumber:    req.PhoneNumber,
		JobTitle:       req.JobTitle,
		Specialization: handlers.Specialization(req.Specialization),
		Type:           handlers.EmploymentType(req.Type),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]string{"emp_id": empID})
}

func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
	row, err := s.employees.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, row)
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var update query.Set
	if err := decodeBody(r, &update); err != nil {
		writeError(w, err)
		return
	}
	affected, err := s.employees.Update(r.Context(), r.PathValue("id"), update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]int64{"updated": affected})
}

func (s *Server) removeEmployee(w http.ResponseWriter, r *http.Request) {
	empID := r.PathValue("id")
	if err := s.employees.Remove(r.Context(), empID); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]string{"emp_id": empID})
}

type contributionRequest struct {
	PublicationID int64 `json:"publication_id"`
	ArticleID     int64 `json:"article_id"`
}

func (s *Server) registerBook(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.employees.RegisterBook(r.Context(), r.PathValue("id"), req.PublicationID); err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, req)
}

func (s *Server) registerArticle(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.employees.RegisterArticle(r.Context(), r.PathValue("id"), req.PublicationID, req.ArticleID); err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, req)
}

func (s *Server) assignReview(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.employees.AssignReview(r.Context(), r.PathValue("id"), req.PublicationID); err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, req)
}

type salaryRequest struct {
	EmpID    string  `json:"emp_id"`
	HouseID  int64   `json:"house_id"`
	Amount   float64 `json:"amount"`
	SendDate string  `json:"send_date"`
}

func (s *Server) createSalaryPayment(w http.ResponseWriter, r *http.Request) {
	var req salaryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	sendDate, err := parseDate(req.SendDate)
	if err != nil {
		writeError(w, &handlers.DomainError{Reason: "invalid send_date, want YYYY-MM-DD"})
		return
	}
	id, err := s.salaries.Create(r.Context(), handlers.SalaryPayment{
		EmpID:    req.EmpID,
		HouseID:  req.HouseID,
		Amount:   req.Amount,
		SendDate: sendDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]int64{"transaction_id": id})
}

func (s *Server) getSalaryPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	row, err := s.salaries.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, row)
}

type claimRequest struct {
	ReceivedDate string `json:"received_date"`
}

func (s *Server) claimSalaryPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req claimRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	receivedDate, err := parseDate(req.ReceivedDate)
	if err != nil || receivedDate.IsZero() {
		writeError(w, &handlers.DomainError{Reason: "invalid received_date, want YYYY-MM-DD"})
		return
	}
	affected, err := s.salaries.UpdateClaimDate(r.Context(), id, receivedDate)
	if err != nil {
		writeError(w, err)
		return
	}
	if affected == 0 {
		writeError(w, &handlers.NotFoundError{Entity: "salary payment", ID: strconv.FormatInt(id, 10)})
		return
	}
	writeData(w, map[string]int64{"transaction_id": id})
}
