package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"overcooked-agents/internal/domain"
	"overcooked-agents/internal/service"
)

type Handler struct {
	Sim   service.SimulationServiceInterface
	Stats service.StatsReader
	Bills service.BillReader
	QR    service.QRGenerator
}

func NewHandler(sim service.SimulationServiceInterface, stats service.StatsReader, bills service.BillReader, qr service.QRGenerator) *Handler {
	return &Handler{
		Sim:   sim,
		Stats: stats,
		Bills: bills,
		QR:    qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/agents", h.getAgents).Methods("GET")
	r.HandleFunc("/api/customers/{name}/hungry", h.becomeHungry).Methods("POST")
	r.HandleFunc("/api/waiters/{name}/break", h.setBreak).Methods("PUT")

	r.HandleFunc("/api/stats", h.getStats).Methods("GET")
	r.HandleFunc("/api/bills", h.listBills).Methods("GET")
	r.HandleFunc("/api/bills/{id}", h.getBill).Methods("GET")
	r.HandleFunc("/api/bills/{id}/qrcode", h.getBillQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "sim-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Sim.Roster())
}

func (h *Handler) becomeHungry(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if err := h.Sim.BecomeHungry(name); err != nil {
		if errors.Is(err, service.ErrUnknownCustomer) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"customer": name, "status": "hungry"})
}

type breakRequest struct {
	On *bool `json:"on"`
}

func (h *Handler) setBreak(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var req breakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.On == nil {
		http.Error(w, `"on" is required`, http.StatusBadRequest)
		return
	}
	if err := h.Sim.SetWaiterBreak(name, *req.On); err != nil {
		if errors.Is(err, service.ErrUnknownWaiter) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]interface{}{"waiter": name, "break": *req.On})
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	if h.Stats == nil {
		http.Error(w, "stats are not enabled", http.StatusServiceUnavailable)
		return
	}
	stats, err := h.Stats.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// listBills returns the most recent bills for ?party=, newest first.
func (h *Handler) listBills(w http.ResponseWriter, r *http.Request) {
	if h.Bills == nil {
		http.Error(w, "ledger is not enabled", http.StatusServiceUnavailable)
		return
	}
	party := r.URL.Query().Get("party")
	if party == "" {
		http.Error(w, "party is required", http.StatusBadRequest)
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	bills, err := h.Bills.ListBills(r.Context(), party, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if bills == nil {
		bills = []domain.Bill{}
	}
	writeJSON(w, http.StatusOK, bills)
}

func (h *Handler) getBill(w http.ResponseWriter, r *http.Request) {
	bill, ok := h.lookupBill(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *Handler) getBillQRCode(w http.ResponseWriter, r *http.Request) {
	bill, ok := h.lookupBill(w, r)
	if !ok {
		return
	}
	png, err := h.QR.Generate(bill.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) lookupBill(w http.ResponseWriter, r *http.Request) (domain.Bill, bool) {
	if h.Bills == nil {
		http.Error(w, "ledger is not enabled", http.StatusServiceUnavailable)
		return domain.Bill{}, false
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid bill id", http.StatusBadRequest)
		return domain.Bill{}, false
	}
	bill, err := h.Bills.GetBill(r.Context(), id)
	if errors.Is(err, domain.ErrBillNotFound) {
		http.Error(w, "Bill not found", http.StatusNotFound)
		return domain.Bill{}, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return domain.Bill{}, false
	}
	return bill, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
