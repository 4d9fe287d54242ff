package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/dto"
	"github.com/piksel-lt/orderdesk/internal/handlers"
	"github.com/piksel-lt/orderdesk/internal/platform/config"
	"github.com/piksel-lt/orderdesk/internal/proration"
)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ListOrders(ctx context.Context, params dto.ListOrdersParams) (*domain.OrderPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderPage), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderService) PriceBreakdown(ctx context.Context, orderID string) (*domain.Order, []proration.MonthShare, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Order), args.Get(1).([]proration.MonthShare), args.Error(2)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Test Suite ---
type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockOrderService
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockOrderService)

	cfg := &config.Config{IsProduction: true}
	container := &portssvc.ServiceContainer{Order: suite.mockService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *OrderHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OrderHandlerTestSuite) TestListOrders_PassesQueryThrough() {
	page := &domain.OrderPage{
		Items: []domain.Order{
			{OrderID: "1", Client: "Maxima", FromDate: "2025-09-01", ToDate: "2025-09-15"},
		},
		Page: 2, PerPage: 10, TotalItems: 11, TotalPages: 2,
	}
	suite.mockService.On("ListOrders", mock.Anything, mock.MatchedBy(func(p dto.ListOrdersParams) bool {
		return p.Page == 2 && p.PerPage == 10 && p.Sort == "client" && p.Filter == `approved=true`
	})).Return(page, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?page=2&perPage=10&sort=client&filter=approved%3Dtrue", nil)
	w := suite.serve(req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.ListOrdersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Page)
	suite.Equal(11, resp.TotalItems)
	suite.Require().Len(resp.Items, 1)
	suite.Equal("Maxima", resp.Items[0].Client)
	suite.Equal("W36", resp.Items[0].FromWeek)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestListOrders_DefaultParams() {
	suite.mockService.On("ListOrders", mock.Anything, mock.MatchedBy(func(p dto.ListOrdersParams) bool {
		return p.Page == 1 && p.PerPage == 25 && p.Sort == "-updated" && p.Filter == ""
	})).Return(&domain.OrderPage{Page: 1, PerPage: 25}, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestListOrders_MalformedFilter() {
	suite.mockService.On("ListOrders", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown field %q", apperrors.ErrValidation, "nope")).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/v1/orders?filter=nope%3D1", nil))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *OrderHandlerTestSuite) TestGetOrder_NotFound() {
	orderID := uuid.NewString()
	suite.mockService.On("GetOrderByID", mock.Anything, orderID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID, nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OrderHandlerTestSuite) TestUpdateOrder_PartialBody() {
	orderID := uuid.NewString()
	updated := &domain.Order{OrderID: orderID, Client: "Lidl", Approved: true, UpdatedAt: time.Now()}

	suite.mockService.On("UpdateOrder", mock.Anything, orderID, mock.MatchedBy(func(req dto.UpdateOrderRequest) bool {
		return req.Approved != nil && *req.Approved && req.Client == nil
	})).Return(updated, nil).Once()

	body := strings.NewReader(`{"approved": true}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/"+orderID, body)
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Approved)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestDeleteOrder() {
	orderID := uuid.NewString()
	suite.mockService.On("DeleteOrder", mock.Anything, orderID).Return(nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/api/v1/orders/"+orderID, nil))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestPriceBreakdown() {
	orderID := uuid.NewString()
	order := &domain.Order{OrderID: orderID, FromDate: "2025-08-25", ToDate: "2025-09-07", FinalPrice: 1400}
	shares := []proration.MonthShare{
		{Year: 2025, Month: 8, MonthName: "Rugpjūtis", DayCount: 7, Amount: 700},
		{Year: 2025, Month: 9, MonthName: "Rugsėjis", DayCount: 7, Amount: 700},
	}
	suite.mockService.On("PriceBreakdown", mock.Anything, orderID).Return(order, shares, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID+"/price-breakdown", nil))

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.PriceBreakdownResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(orderID, resp.OrderID)
	suite.Require().Len(resp.Months, 2)
	suite.Equal("Rugpjūtis", resp.Months[0].MonthName)
}

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
