package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dairy-backend/internal/ledger"
	"dairy-backend/internal/models"
	"dairy-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type EntryHandler struct {
	Ledger *ledger.Service
}

func NewEntryHandler(ledgerService *ledger.Service) *EntryHandler {
	return &EntryHandler{Ledger: ledgerService}
}

// ListEntries returns all entries, or a filtered view when ?date= or
// ?customer_id= is present. An empty result is [] rather than null.
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	var entries []models.DailyEntry
	switch {
	case r.URL.Query().Get("date") != "":
		entries = h.Ledger.EntriesForDate(r.URL.Query().Get("date"))
	case r.URL.Query().Get("customer_id") != "":
		entries = h.Ledger.EntriesForCustomer(r.URL.Query().Get("customer_id"))
	default:
		entries = h.Ledger.ListDailyEntries()
	}
	if entries == nil {
		entries = []models.DailyEntry{}
	}
	utils.JSON(w, http.StatusOK, entries)
}

func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDailyEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.Ledger.AddDailyEntry(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, entry)
}

func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var patch models.DailyEntryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.Ledger.UpdateDailyEntry(r.Context(), mux.Vars(r)["id"], &patch)
	if errors.Is(err, ledger.ErrEntryNotFound) {
		utils.Error(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Ledger.DeleteDailyEntry(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		utils.Error(w, http.StatusNotFound, "Entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReplaceDate is the daily grid's save: every entry on the date is
// dropped and the posted set is written in its place.
func (h *EntryHandler) ReplaceDate(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" {
		utils.Error(w, http.StatusBadRequest, "date is required")
		return
	}

	entries, err := h.Ledger.ReplaceEntriesForDate(r.Context(), req.Date, req.Entries)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, entries)
}

func (h *EntryHandler) CopyYesterday(w http.ResponseWriter, r *http.Request) {
	var req models.CopyYesterdayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TargetDate == "" {
		utils.Error(w, http.StatusBadRequest, "targetDate is required")
		return
	}

	entries, err := h.Ledger.CopyYesterday(r.Context(), req.TargetDate)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if entries == nil {
		entries = []models.DailyEntry{}
	}
	utils.JSON(w, http.StatusOK, entries)
}
