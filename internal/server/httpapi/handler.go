package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cookiecravings/api/internal/server/models"
	"github.com/cookiecravings/api/internal/server/services"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type orderItemRequest struct {
	ItemID         int64   `json:"item_id"`
	Quantity       int     `json:"quantity"`
	Customizations *string `json:"customizations,omitempty"`
}

type orderRequest struct {
	Items []orderItemRequest `json:"items"`
}

// userView is the public-safe account projection; the password hash never
// leaves the server.
type userView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

type orderItemView struct {
	ID             int64   `json:"id"`
	ItemID         int64   `json:"item_id"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	Customizations *string `json:"customizations"`
	UnitPrice      float64 `json:"unit_price"`
}

type orderView struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	TotalAmount float64         `json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
	Items       []orderItemView `json:"items"`
}

type catalogItemView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// dollars converts integer cents, the internal money representation, into
// the wire format.
func dollars(cents int64) float64 {
	return float64(cents) / 100
}

func newAuthResponse(res *services.AuthResult) authResponse {
	return authResponse{
		Token: res.Token,
		User: userView{
			ID:       res.User.ID,
			Username: res.User.Username,
			Email:    res.User.Email,
		},
	}
}

func newOrderView(order *models.Order) orderView {
	view := orderView{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: dollars(order.TotalCents),
		OrderDate:   order.OrderDate,
		Items:       make([]orderItemView, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, orderItemView{
			ID:             item.ID,
			ItemID:         item.ItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
			UnitPrice:      dollars(item.UnitPriceCents),
		})
	}
	return view
}

func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Cookie Cravings API"))
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderBadBody(w)
		return
	}

	res, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.renderError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "username", res.User.Username)
	s.writeJSON(r.Context(), w, http.StatusCreated, newAuthResponse(res))
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderBadBody(w)
		return
	}

	res, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(r.Context(), w, err)
		return
	}

	s.writeJSON(r.Context(), w, http.StatusOK, newAuthResponse(res))
}

func (s *HTTPServer) handleCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.List(r.Context())
	if err != nil {
		s.renderError(r.Context(), w, err)
		return
	}

	views := make([]catalogItemView, 0, len(items))
	for _, item := range items {
		views = append(views, catalogItemView{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       dollars(item.PriceCents),
		})
	}

	s.writeJSON(r.Context(), w, http.StatusOK, views)
}

func (s *HTTPServer) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		s.renderUnauthorized(w, "Authorization required")
		return
	}

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderBadBody(w)
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{
			ItemID:         item.ItemID,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}

	order, err := s.orders.Create(r.Context(), claims.UserID, lines)
	if err != nil {
		s.renderError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "order placed", "order_id", order.ID, "user_id", claims.UserID)
	s.writeJSON(r.Context(), w, http.StatusOK, newOrderView(order))
}

func (s *HTTPServer) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		s.renderUnauthorized(w, "Authorization required")
		return
	}

	list, err := s.orders.ListMine(r.Context(), claims.UserID)
	if err != nil {
		s.renderError(r.Context(), w, err)
		return
	}

	views := make([]orderView, 0, len(list))
	for _, order := range list {
		views = append(views, newOrderView(order))
	}

	s.writeJSON(r.Context(), w, http.StatusOK, views)
}
