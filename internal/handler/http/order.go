package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopkit/adminpanel/internal/middleware"
	"github.com/shopkit/adminpanel/internal/models"
	"github.com/shopkit/adminpanel/internal/render"
)

// broadcast channel for new order alerts
const ordersChannel = "orders"

// OrderService assembles order views and mutates order status
type OrderService interface {
	// ListOrders returns the first page of bucket orders with the total count
	ListOrders(ctx context.Context, status string) (*models.OrderListing, error)
	// OrderView fetches one order and assembles its view
	OrderView(ctx context.Context, id string) (*models.OrderView, error)
	// CompleteOrder sets order status to paid and fulfilled
	CompleteOrder(ctx context.Context, id string) error
}

// UserService checks session users
type UserService interface {
	// AdminUser returns the user when it exists and has the admin flag
	AdminUser(ctx context.Context, id string) (*models.User, error)
}

// Broadcaster pushes a payload to all connected admin clients
type Broadcaster interface {
	Broadcast(event, data string)
}

// OrderHandler represents HTTP handlers for the admin order pages
type OrderHandler struct {
	orders   OrderService
	users    UserService
	renderer *render.Renderer
	hub      Broadcaster
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(orders OrderService, users UserService, renderer *render.Renderer, hub Broadcaster) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		users:    users,
		renderer: renderer,
		hub:      hub,
	}
}

// ListOrders renders the admin orders page
// 200 — страница заказов;
// 401 — нет сессии;
// 403 — пользователь не администратор;
// 404 — пользователь сессии не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.SessionUserID(r.Context())
		if !ok {
			writeError(w, models.ErrNoSessionUser)
			return
		}

		if _, err := oh.users.AdminUser(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}

		status := r.URL.Query().Get("status")

		listing, err := oh.orders.ListOrders(r.Context(), status)
		if err != nil {
			writeError(w, err)
			return
		}

		page, err := oh.renderer.Page("orders", listing)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(page))
	}
}

type notifyRequest struct {
	ID string `json:"id"`
}

// NotifyNewOrder renders a new order card and broadcasts it to all
// connected admin clients. Called by the order-placement flow.
// 200 — карточка разослана;
// 400 — не передан id заказа;
// 404 — заказ не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) NotifyNewOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := notifyRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			writeError(w, models.ErrOrderIDRequired)
			return
		}
		defer r.Body.Close()

		view, err := oh.orders.OrderView(r.Context(), req.ID)
		if err != nil {
			writeError(w, err)
			return
		}

		card, err := oh.renderer.Fragment("order_card", view)
		if err != nil {
			writeError(w, err)
			return
		}

		oh.hub.Broadcast(ordersChannel, card)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}
}

type completeRequest struct {
	OrderID string `json:"orderId"`
}

// CompleteOrder marks the order as paid and fulfilled and sends the admin
// back to the orders page
// 302 — заказ завершён;
// 400 — не передан id заказа;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) CompleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := completeOrderID(r)
		if orderID == "" {
			writeError(w, models.ErrOrderIDRequired)
			return
		}

		if err := oh.orders.CompleteOrder(r.Context(), orderID); err != nil {
			writeError(w, err)
			return
		}

		http.Redirect(w, r, "/admin/orders", http.StatusFound)
	}
}

// completeOrderID reads the order id from a JSON or form-encoded body
func completeOrderID(r *http.Request) string {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		req := completeRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return ""
		}
		return req.OrderID
	}
	return r.PostFormValue("orderId")
}
