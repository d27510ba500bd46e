package httpapi_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "overcooked-agents/internal/api/http"
	"overcooked-agents/internal/domain"
	"overcooked-agents/internal/mocks"
	"overcooked-agents/internal/service"
)

type handlerMocks struct {
	sim   *mocks.SimulationServiceInterface
	stats *mocks.StatsReader
	bills *mocks.BillReader
	qr    *mocks.QRGenerator
}

func setupRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		sim:   mocks.NewSimulationServiceInterface(t),
		stats: mocks.NewStatsReader(t),
		bills: mocks.NewBillReader(t),
		qr:    mocks.NewQRGenerator(t),
	}
	handler := httpapi.NewHandler(m.sim, m.stats, m.bills, m.qr)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, m
}

func TestHandler_HealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "sim-svc", body["service"])
}

func TestHandler_GetAgents(t *testing.T) {
	router, m := setupRouter(t)
	roster := service.Roster{
		Host:      "host",
		Cook:      "cook",
		Cashier:   "cashier",
		Waiters:   []string{"waiter1"},
		Customers: []string{"customer1", "customer2"},
		Markets:   []string{"market1"},
	}
	m.sim.On("Roster").Return(roster).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/agents", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got service.Roster
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, roster, got)
}

func TestHandler_BecomeHungry(t *testing.T) {
	tests := []struct {
		name         string
		customer     string
		prepareMocks func(m handlerMocks)
		expectedCode int
	}{
		{
			name:     "accepted",
			customer: "customer1",
			prepareMocks: func(m handlerMocks) {
				m.sim.On("BecomeHungry", "customer1").Return(nil).Once()
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:     "unknown customer",
			customer: "nobody",
			prepareMocks: func(m handlerMocks) {
				m.sim.On("BecomeHungry", "nobody").Return(fmt.Errorf("%w: nobody", service.ErrUnknownCustomer)).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "internal error",
			customer: "customer1",
			prepareMocks: func(m handlerMocks) {
				m.sim.On("BecomeHungry", "customer1").Return(errors.New("boom")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouter(t)
			tt.prepareMocks(m)

			req := httptest.NewRequest(http.MethodPost, "/api/customers/"+tt.customer+"/hungry", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestHandler_SetBreak(t *testing.T) {
	tests := []struct {
		name         string
		waiter       string
		body         string
		prepareMocks func(m handlerMocks)
		expectedCode int
	}{
		{
			name:   "break on",
			waiter: "waiter1",
			body:   `{"on":true}`,
			prepareMocks: func(m handlerMocks) {
				m.sim.On("SetWaiterBreak", "waiter1", true).Return(nil).Once()
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:   "break off",
			waiter: "waiter2",
			body:   `{"on":false}`,
			prepareMocks: func(m handlerMocks) {
				m.sim.On("SetWaiterBreak", "waiter2", false).Return(nil).Once()
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "invalid json",
			waiter:       "waiter1",
			body:         `{"on":`,
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing flag",
			waiter:       "waiter1",
			body:         `{}`,
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "unknown waiter",
			waiter: "waiter9",
			body:   `{"on":true}`,
			prepareMocks: func(m handlerMocks) {
				m.sim.On("SetWaiterBreak", "waiter9", true).Return(fmt.Errorf("%w: waiter9", service.ErrUnknownWaiter)).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouter(t)
			tt.prepareMocks(m)

			req := httptest.NewRequest(http.MethodPut, "/api/waiters/"+tt.waiter+"/break", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestHandler_GetStats(t *testing.T) {
	router, m := setupRouter(t)
	stats := domain.Stats{
		OccupiedTables:  []int{1, 3},
		WaitersOnBreak:  []string{"waiter2"},
		Revenue:         31.98,
		CustomersServed: 2,
		Dishes:          map[string]float64{"Steak": 2},
	}
	m.stats.On("Snapshot", mock.Anything).Return(stats, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got domain.Stats
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, stats.OccupiedTables, got.OccupiedTables)
	assert.Equal(t, stats.Revenue, got.Revenue)
}

func TestHandler_StoresDisabled(t *testing.T) {
	handler := httpapi.NewHandler(mocks.NewSimulationServiceInterface(t), nil, nil, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	for _, path := range []string{"/api/stats", "/api/bills?party=customer1", "/api/bills/" + uuid.NewString()} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code, path)
	}
}

func TestHandler_GetBill(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name         string
		path         string
		prepareMocks func(m handlerMocks)
		expectedCode int
	}{
		{
			name: "found",
			path: "/api/bills/" + id.String(),
			prepareMocks: func(m handlerMocks) {
				m.bills.On("GetBill", mock.Anything, id).
					Return(domain.Bill{ID: id, Payer: domain.PayerCustomer, Party: "customer1", Status: domain.BillReceiptIssued}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid id",
			path:         "/api/bills/not-a-uuid",
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			path: "/api/bills/" + id.String(),
			prepareMocks: func(m handlerMocks) {
				m.bills.On("GetBill", mock.Anything, id).Return(domain.Bill{}, domain.ErrBillNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "database error",
			path: "/api/bills/" + id.String(),
			prepareMocks: func(m handlerMocks) {
				m.bills.On("GetBill", mock.Anything, id).Return(domain.Bill{}, errors.New("connection reset")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouter(t)
			tt.prepareMocks(m)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestHandler_ListBills(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMocks func(m handlerMocks)
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "default limit",
			query: "?party=market1",
			prepareMocks: func(m handlerMocks) {
				m.bills.On("ListBills", mock.Anything, "market1", 20).
					Return([]domain.Bill{{Party: "market1"}, {Party: "market1"}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "no bills yet",
			query: "?party=customer4&limit=5",
			prepareMocks: func(m handlerMocks) {
				m.bills.On("ListBills", mock.Anything, "customer4", 5).Return(nil, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "missing party",
			query:        "",
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad limit",
			query:        "?party=customer1&limit=-3",
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouter(t)
			tt.prepareMocks(m)

			req := httptest.NewRequest(http.MethodGet, "/api/bills"+tt.query, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var got []domain.Bill
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.NotNil(t, got)
			assert.Len(t, got, tt.expectedLen)
		})
	}
}

func TestHandler_GetBillQRCode(t *testing.T) {
	router, m := setupRouter(t)
	id := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\nfake")

	m.bills.On("GetBill", mock.Anything, id).Return(domain.Bill{ID: id}, nil).Once()
	m.qr.On("Generate", id).Return(png, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/bills/"+id.String()+"/qrcode", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, png, rr.Body.Bytes())
}

func TestNewRouter_AllowsCrossOriginPut(t *testing.T) {
	_, m := setupRouter(t)
	handler := httpapi.NewHandler(m.sim, m.stats, m.bills, m.qr)
	router := httpapi.NewRouter(handler)

	req := httptest.NewRequest(http.MethodOptions, "/api/waiters/waiter1/break", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
