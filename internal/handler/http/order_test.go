package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopkit/adminpanel/internal/handler/http/mocks"
	"github.com/shopkit/adminpanel/internal/middleware"
	"github.com/shopkit/adminpanel/internal/models"
	"github.com/shopkit/adminpanel/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminID = "64f000000000000000000001"

func testOrderView() *models.OrderView {
	image := models.ImageView{Src: "https://cdn.example.com/tea.jpg", Width: 300, Height: 300, Alt: "tea"}
	return &models.OrderView{
		ID:                "64f0000000000000000000aa",
		OrderNumber:       "1042",
		Date:              "2 января 2024 г.",
		FinancialStatus:   models.FinancialStatusUnpaid,
		FulfillmentStatus: models.FulfillmentStatusUnfulfilled,
		TotalPrice:        540,
		LineItems: []models.LineItemView{
			{
				ID:            "li1",
				Title:         "Чай чёрный",
				Brand:         "Teabox",
				Price:         540,
				Quantity:      1,
				DisplayAmount: "100",
				Unit:          "г",
				Image:         &image,
				Images:        []models.ImageView{image},
			},
		},
		ShippingAddress: models.AddressView{Address1: "ул. Ленина, 1"},
		Customer:        models.CustomerView{ID: testAdminID, Phone: "+79990001122", Locale: "ru"},
	}
}

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	renderer, err := render.New()
	require.NoError(t, err)
	return renderer
}

func TestOrderHandler_ListOrders(t *testing.T) {
	tests := []struct {
		name           string
		sessionUserID  string
		setupUsers     func(t *testing.T, m *mocks.MockUserService)
		setupOrders    func(t *testing.T, m *mocks.MockOrderService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "no_session_return_401",
			setupUsers:     func(t *testing.T, m *mocks.MockUserService) {},
			setupOrders:    func(t *testing.T, m *mocks.MockOrderService) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:          "session_user_gone_return_404",
			sessionUserID: testAdminID,
			setupUsers: func(t *testing.T, m *mocks.MockUserService) {
				m.EXPECT().AdminUser(gomock.Any(), testAdminID).Return(nil, models.ErrUserNotFound)
			},
			setupOrders:    func(t *testing.T, m *mocks.MockOrderService) {},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:          "not_admin_return_403",
			sessionUserID: testAdminID,
			setupUsers: func(t *testing.T, m *mocks.MockUserService) {
				m.EXPECT().AdminUser(gomock.Any(), testAdminID).Return(nil, models.ErrPermissionDenied)
			},
			setupOrders:    func(t *testing.T, m *mocks.MockOrderService) {},
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:          "admin_return_200_page",
			sessionUserID: testAdminID,
			setupUsers: func(t *testing.T, m *mocks.MockUserService) {
				m.EXPECT().AdminUser(gomock.Any(), testAdminID).Return(&models.User{IsAdmin: true}, nil)
			},
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {
				m.EXPECT().ListOrders(gomock.Any(), "").Return(&models.OrderListing{
					Orders: []models.OrderView{*testOrderView()},
					Count:  1,
				}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       "1042",
		},
		{
			name:          "service_error_return_500",
			sessionUserID: testAdminID,
			setupUsers: func(t *testing.T, m *mocks.MockUserService) {
				m.EXPECT().AdminUser(gomock.Any(), testAdminID).Return(&models.User{IsAdmin: true}, nil)
			},
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {
				m.EXPECT().ListOrders(gomock.Any(), "").Return(nil, errors.New("db is down"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ordersMock := mocks.NewMockOrderService(ctrl)
			usersMock := mocks.NewMockUserService(ctrl)
			hubMock := mocks.NewMockBroadcaster(ctrl)
			tt.setupOrders(t, ordersMock)
			tt.setupUsers(t, usersMock)

			oh := NewOrderHandler(ordersMock, usersMock, newTestRenderer(t), hubMock)

			r := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
			if tt.sessionUserID != "" {
				r = r.WithContext(middleware.WithSessionUserID(r.Context(), tt.sessionUserID))
			}
			w := httptest.NewRecorder()

			oh.ListOrders().ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOrderHandler_NotifyNewOrder(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupOrders    func(t *testing.T, m *mocks.MockOrderService)
		setupHub       func(t *testing.T, m *mocks.MockBroadcaster)
		wantStatusCode int
		wantBody       string
	}{
		{
			name:        "missing_id_return_400",
			body:        `{}`,
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {},
			setupHub: func(t *testing.T, m *mocks.MockBroadcaster) {
				m.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "order_not_found_return_404",
			body: `{"id":"64f0000000000000000000ff"}`,
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {
				m.EXPECT().OrderView(gomock.Any(), "64f0000000000000000000ff").Return(nil, models.ErrOrderNotFound)
			},
			setupHub: func(t *testing.T, m *mocks.MockBroadcaster) {
				m.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "valid_request_broadcasts_card",
			body: `{"id":"64f0000000000000000000aa"}`,
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {
				m.EXPECT().OrderView(gomock.Any(), "64f0000000000000000000aa").Return(testOrderView(), nil)
			},
			setupHub: func(t *testing.T, m *mocks.MockBroadcaster) {
				m.EXPECT().Broadcast("orders", newOrderCardMatcher{}).Times(1)
			},
			wantStatusCode: http.StatusOK,
			wantBody:       "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ordersMock := mocks.NewMockOrderService(ctrl)
			usersMock := mocks.NewMockUserService(ctrl)
			hubMock := mocks.NewMockBroadcaster(ctrl)
			tt.setupOrders(t, ordersMock)
			tt.setupHub(t, hubMock)

			oh := NewOrderHandler(ordersMock, usersMock, newTestRenderer(t), hubMock)

			r := httptest.NewRequest(http.MethodPost, "/admin/api/alert/new_order", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			oh.NotifyNewOrder().ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(w.Body.String()))
			}
		})
	}
}

// newOrderCardMatcher matches a rendered order card fragment
type newOrderCardMatcher struct{}

func (newOrderCardMatcher) Matches(x interface{}) bool {
	card, ok := x.(string)
	return ok && strings.Contains(card, "order-card") && strings.Contains(card, "1042")
}

func (newOrderCardMatcher) String() string {
	return "is a rendered order card"
}

func TestOrderHandler_CompleteOrder(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           string
		setupOrders    func(t *testing.T, m *mocks.MockOrderService)
		wantStatusCode int
		wantLocation   string
	}{
		{
			name:        "form_request_redirects_to_orders",
			contentType: "application/x-www-form-urlencoded",
			body:        "orderId=64f0000000000000000000aa",
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {
				m.EXPECT().CompleteOrder(gomock.Any(), "64f0000000000000000000aa").Return(nil)
			},
			wantStatusCode: http.StatusFound,
			wantLocation:   "/admin/orders",
		},
		{
			name:        "json_request_redirects_to_orders",
			contentType: "application/json",
			body:        `{"orderId":"64f0000000000000000000aa"}`,
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {
				m.EXPECT().CompleteOrder(gomock.Any(), "64f0000000000000000000aa").Return(nil)
			},
			wantStatusCode: http.StatusFound,
			wantLocation:   "/admin/orders",
		},
		{
			name:           "missing_order_id_return_400",
			contentType:    "application/x-www-form-urlencoded",
			body:           "",
			setupOrders:    func(t *testing.T, m *mocks.MockOrderService) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "invalid_order_id_return_400",
			contentType: "application/x-www-form-urlencoded",
			body:        "orderId=not-an-id",
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {
				m.EXPECT().CompleteOrder(gomock.Any(), "not-an-id").Return(models.ErrInvalidOrderID)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "storage_error_return_500",
			contentType: "application/x-www-form-urlencoded",
			body:        "orderId=64f0000000000000000000aa",
			setupOrders: func(t *testing.T, m *mocks.MockOrderService) {
				m.EXPECT().CompleteOrder(gomock.Any(), "64f0000000000000000000aa").Return(errors.New("db is down"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ordersMock := mocks.NewMockOrderService(ctrl)
			usersMock := mocks.NewMockUserService(ctrl)
			hubMock := mocks.NewMockBroadcaster(ctrl)
			tt.setupOrders(t, ordersMock)

			oh := NewOrderHandler(ordersMock, usersMock, newTestRenderer(t), hubMock)

			r := httptest.NewRequest(http.MethodPost, "/admin/api/complete_order", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			oh.CompleteOrder().ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}
