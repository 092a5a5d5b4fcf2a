package tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "amur-backend/internal/api/http"
	"amur-backend/internal/domain"
	"amur-backend/internal/mocks"
	"amur-backend/internal/service"
)

type handlerFixture struct {
	handler       *httpapi.Handler
	router        *mux.Router
	users         *mocks.UserRepository
	foods         *mocks.FoodRepository
	orders        *mocks.OrderRepository
	reviews       *mocks.ReviewRepository
	notifications *mocks.NotificationRepository
	sequence      *mocks.OrderSequence
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		users:         new(mocks.UserRepository),
		foods:         new(mocks.FoodRepository),
		orders:        new(mocks.OrderRepository),
		reviews:       new(mocks.ReviewRepository),
		notifications: new(mocks.NotificationRepository),
		sequence:      new(mocks.OrderSequence),
	}

	inbox := service.NewNotificationService(f.notifications)
	f.handler = &httpapi.Handler{
		Auth:          service.NewAuthService(f.users, "test-secret", time.Hour),
		Catalog:       service.NewCatalogService(f.foods),
		Orders:        service.NewOrderService(f.orders, f.foods, f.users, f.sequence, nil, nil, nil, nil),
		Reviews:       service.NewReviewService(f.reviews, f.foods),
		Notifications: inbox,
		UploadDir:     t.TempDir(),
	}
	f.router = mux.NewRouter()
	f.handler.RegisterRoutes(f.router)
	return f
}

// loginAs registers and logs a user in through the auth service, returning a
// bearer token for the requested role.
func (f *handlerFixture) loginAs(t *testing.T, number, role string) string {
	t.Helper()

	var saved *domain.User
	f.users.On("GetUserByNumber", number).Return(nil, sql.ErrNoRows).Once()
	f.users.On("InsertUser", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(0).(*domain.User) }).
		Return(nil).Once()

	_, err := f.handler.Auth.Register(domain.RegisterRequest{
		Number: number, Password: "sekret", FullName: "Test User", Language: "uz",
	})
	assert.NoError(t, err)

	saved.Role = role
	f.users.On("GetUserByNumber", number).Return(saved, nil)

	resp, err := f.handler.Auth.Login(domain.LoginRequest{Number: number, Password: "sekret"})
	assert.NoError(t, err)
	return resp.Token
}

func (f *handlerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckHandler(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do("GET", "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestListFoodsHandler(t *testing.T) {
	f := newHandlerFixture(t)
	f.foods.On("ListFoods").Return([]domain.Food{*multilingualFood()}, nil)

	w := f.do("GET", "/api/foods?lang=ru", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var foods []domain.LocalizedFood
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	assert.Len(t, foods, 1)
	assert.Equal(t, "Шашлык из говядины", foods[0].Name)
}

func TestOrdersRequireAuth(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do("GET", "/api/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do("GET", "/api/orders", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrderHandler(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.loginAs(t, "+998901234567", "user")

	for id, food := range catalogFixture() {
		f.foods.On("GetFood", id).Return(food, nil).Maybe()
	}
	f.foods.On("AdjustFoodStock", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.sequence.On("Next", mock.Anything, mock.AnythingOfType("string")).Return(1, nil)
	f.orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).Return(nil)

	w := f.do("POST", "/api/orders", token,
		`{"items":{"food_plov":2},"fulfillment":{"delivery":"Chilonzor 5"},"payment_method":"cash"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var order domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 50000, order.TotalPrice)
	assert.Equal(t, domain.OrderConfirmed, order.Status)
}

func TestCreateOrderHandlerInsufficientStock(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.loginAs(t, "+998901234567", "user")

	f.foods.On("GetFood", "food_low").Return(catalogFixture()["food_low"], nil)

	w := f.do("POST", "/api/orders", token,
		`{"items":{"food_low":5},"fulfillment":{"delivery":"Chilonzor 5"},"payment_method":"cash"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Yetarli miqdor yo'q")
	f.orders.AssertNotCalled(t, "InsertOrder", mock.Anything)
}

func TestListCategoriesHandler(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do("GET", "/api/categories?lang=en", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var categories []domain.Category
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Len(t, categories, 5)
	assert.Equal(t, "Barbecue", categories[0].Name)
}

func TestCreateOrderHandlerBadFulfillment(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.loginAs(t, "+998901234567", "user")

	w := f.do("POST", "/api/orders", token,
		`{"items":{"food_plov":2},"fulfillment":{},"payment_method":"cash"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Yetkazib berish usuli")
}

func TestUpdateOrderStatusRequiresAdmin(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.loginAs(t, "+998901234567", "user")

	w := f.do("PUT", "/api/orders/2026-08-31-1/status", token, `{"status":"preparing"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.loginAs(t, "+998900000000", "admin")

	stored := &domain.Order{
		OrderID:     "2026-08-31-1",
		UserNumber:  "+998901234567",
		Status:      domain.OrderConfirmed,
		PaymentInfo: domain.PaymentInfo{Method: domain.PaymentCash, Status: domain.PaymentPending},
		CreatedAt:   time.Now(),
	}
	f.orders.On("GetOrder", "2026-08-31-1").Return(stored, nil)
	f.orders.On("UpdateOrder", mock.AnythingOfType("*domain.Order")).Return(nil)

	w := f.do("PUT", "/api/orders/2026-08-31-1/status", token, `{"status":"preparing"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorMessagesAreLocalized(t *testing.T) {
	f := newHandlerFixture(t)
	f.foods.On("GetFood", "missing").Return(nil, sql.ErrNoRows)

	w := f.do("GET", "/api/foods/missing?lang=ru", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Не найдено")

	w = f.do("GET", "/api/foods/missing?lang=en", "", "")
	assert.Contains(t, w.Body.String(), "Not found")

	w = f.do("GET", "/api/foods/missing", "", "")
	assert.Contains(t, w.Body.String(), "Topilmadi")
}

func TestCreateReviewHandlerConflict(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.loginAs(t, "+998901234567", "user")

	f.foods.On("GetFood", "food_plov").Return(&domain.Food{ID: "food_plov", IsThere: true}, nil)
	f.reviews.On("GetReviewByUserAndFood", mock.AnythingOfType("string"), "food_plov").
		Return(&domain.Review{ID: "review_old"}, nil)

	w := f.do("POST", "/api/reviews", token, `{"food_id":"food_plov","rating":5,"comment":"Zo'r"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}
