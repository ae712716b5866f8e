package api

import (
	"net/http"

	"github.com/wolfpub/wolfpub/pkg/handlers"
	"github.com/wolfpub/wolfpub/pkg/query"
)

type distributorRequest struct {
	Name          string `json:"name"`
	Type          string `json:"distributor_type"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PhoneNumber   int64  `json:"phone_number"`
	ContactPerson string `json:"contact_person"`
}

func (s *Server) createDistributor(w http.ResponseWriter, r *http.Request) {
	var req distributorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.distributors.Create(r.Context(), handlers.Distributor{
		Name:          req.Name,
		Type:          req.Type,
		Address:       req.Address,
		City:          req.City,
		PhoneNumber:   req.PhoneNumber,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]int64{"distributor_id": id})
}

func (s *Server) listDistributors(w http.ResponseWriter, r *http.Request) {
	rows, err := s.distributors.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rows)
}

func (s *Server) getDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	row, err := s.distributors.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, row)
}

func (s *Server) updateDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var update query.Set
	if err := decodeBody(r, &update); err != nil {
		writeError(w, err)
		return
	}
	affected, err := s.distributors.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]int64{"updated": affected})
}

func (s *Server) removeDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.distributors.Remove(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]int64{"distributor_id": id})
}

type accountRequest struct {
	DistributorID int64  `json:"distributor_id"`
	ContactEmail  string `json:"contact_email"`
	Periodicity   string `json:"periodicity"`
	HouseID       int64  `json:"house_id"`
}

func (s *Server) registerAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.accounts.Register(r.Context(), handlers.Account{
		DistributorID: req.DistributorID,
		ContactEmail:  req.ContactEmail,
		Periodicity:   req.Periodicity,
		HouseID:       req.HouseID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]int64{"account_id": id})
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	row, err := s.accounts.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, row)
}

func (s *Server) updateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var update query.Set
	if err := decodeBody(r, &update); err != nil {
		writeError(w, err)
		return
	}
	affected, err := s.accounts.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]int64{"updated": affected})
}

func (s *Server) closeAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.accounts.Close(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]int64{"account_id": id})
}

type orderItemRequest struct {
	Title    string `json:"title"`
	Edition  int    `json:"edition"`
	Issue    string `json:"issue"`
	Quantity int    `json:"quantity"`
}

type orderRequest struct {
	OrderDate    string             `json:"order_date"`
	DeliveryDate string             `json:"delivery_date"`
	Books        []orderItemRequest `json:"books"`
	Periodicals  []orderItemRequest `json:"periodicals"`
}

func orderItems(in []orderItemRequest) []handlers.OrderItem {
	items := make([]handlers.OrderItem, 0, len(in))
	for _, i := range in {
		items = append(items, handlers.OrderItem{
			Title:    i.Title,
			Edition:  i.Edition,
			Issue:    i.Issue,
			Quantity: i.Quantity,
		})
	}
	return items
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req orderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		writeError(w, &handlers.DomainError{Reason: "invalid order_date, want YYYY-MM-DD"})
		return
	}
	deliveryDate, err := parseDate(req.DeliveryDate)
	if err != nil {
		writeError(w, &handlers.DomainError{Reason: "invalid delivery_date, want YYYY-MM-DD"})
		return
	}
	order, err := s.orders.Place(r.Context(), accountID, handlers.OrderRequest{
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		Books:        orderItems(req.Books),
		Periodicals:  orderItems(req.Periodicals),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, order)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rows, err := s.orders.List(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rows)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, err := pathID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	row, err := s.orders.Get(r.Context(), accountID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, row)
}

func (s *Server) createBill(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := s.billing.CreateBill(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, summary)
}

func (s *Server) listBills(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rows, err := s.billing.Bills(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rows)
}

type paymentRequest struct {
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		writeError(w, &handlers.DomainError{Reason: "invalid payment_date, want YYYY-MM-DD"})
		return
	}
	payment, err := s.billing.PayBills(r.Context(), accountID, req.Amount, paymentDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, payment)
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rows, err := s.billing.Payments(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rows)
}
