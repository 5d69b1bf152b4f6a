package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KarimF430/Assad-motors-sub000/internal/config"
	"github.com/KarimF430/Assad-motors-sub000/internal/middleware"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/KarimF430/Assad-motors-sub000/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes registers every endpoint on r
func (h *Handler) Routes(r *mux.Router, cfg *config.Config) {
	r.HandleFunc("/emi/quote", h.QuoteEMI).Methods(http.MethodPost)
	r.HandleFunc("/emi/quote/email", h.EmailQuote).Methods(http.MethodPost)
	r.HandleFunc("/cities/{slug}/nearby", h.NearbyCities).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{brand}/{model}/variants/{slug}", h.ResolveVariant).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{brand}/{model}/variants/{slug}/on-road", h.OnRoadPrice).Methods(http.MethodGet)
	r.HandleFunc("/reference-rate", h.ReferenceRate).Methods(http.MethodGet)
	r.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)

	// Protected routes
	admin := r.PathPrefix("/admin/catalog").Subrouter()
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.HandleFunc("/{brand}/{model}/variants", h.ReplaceVariants).Methods(http.MethodPut)
}

// writeJSON writes v as the JSON response body
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.log.Errorf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warnf("Error writing response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	default:
		h.log.Errorf("Request failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// QuoteEMI handles EMI quote requests
func (h *Handler) QuoteEMI(w http.ResponseWriter, r *http.Request) {
	var req models.EMIQuoteRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.svc.QuoteEMI(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, quote)
}

// EmailQuote computes a quote and mails it to the lead
func (h *Handler) EmailQuote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteEmailRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.svc.EmailQuote(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, quote)
}

// NearbyCities lists cities around the path slug
func (h *Handler) NearbyCities(w http.ResponseWriter, r *http.Request) {
	radius := service.DefaultRadiusKm
	if v := r.URL.Query().Get("radius_km"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid radius_km", http.StatusBadRequest)
			return
		}
		radius = parsed
	}

	limit := service.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	cities, err := h.svc.NearbyCities(mux.Vars(r)["slug"], radius, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cities)
}

// ResolveVariant maps a variant slug to a catalog variant
func (h *Handler) ResolveVariant(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	match, err := h.svc.ResolveVariant(r.Context(), vars["brand"], vars["model"], vars["slug"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, match)
}

// OnRoadPrice returns the on-road price breakup for a variant in a city
func (h *Handler) OnRoadPrice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	breakup, err := h.svc.OnRoadPrice(r.Context(), vars["brand"], vars["model"], vars["slug"], r.URL.Query().Get("city"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, breakup)
}

// ReferenceRate returns the default annual rate
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ReferenceRate())
}

// Login handles admin authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decode(r, &creds); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(creds)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, token)
}

// ReplaceVariants stores a new variant list for a model
func (h *Handler) ReplaceVariants(w http.ResponseWriter, r *http.Request) {
	var variants []models.Variant
	if err := decode(r, &variants); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.Subject(r.Context())
	vars := mux.Vars(r)
	if err := h.svc.ReplaceVariants(r.Context(), actor, vars["brand"], vars["model"], variants); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
