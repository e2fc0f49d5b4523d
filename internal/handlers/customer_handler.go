package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"dairy-backend/internal/ledger"
	"dairy-backend/internal/models"
	"dairy-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	Ledger *ledger.Service
}

func NewCustomerHandler(ledgerService *ledger.Service) *CustomerHandler {
	return &CustomerHandler{Ledger: ledgerService}
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Ledger.ListCustomers())
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Ledger.GetCustomer(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	utils.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.Ledger.AddCustomer(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var patch models.CustomerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.Ledger.UpdateCustomer(r.Context(), mux.Vars(r)["id"], &patch)
	if errors.Is(err, ledger.ErrCustomerNotFound) {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Ledger.DeleteCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// csvTemplate matches the sheet the original app offered for download.
const csvTemplate = "Name,Phone,Address,Last Month Due\nJohn Doe,9876543210,123 Main St,100\nJane Smith,9876543211,456 Oak Ave,0\n"

func (h *CustomerHandler) CSVTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="customer_template.csv"`)
	w.Write([]byte(csvTemplate))
}

type importResult struct {
	Imported  int      `json:"imported"`
	Skipped   int      `json:"skipped"`
	Customers []models.Customer `json:"customers"`
}

// ImportCSV bulk-creates customers from rows of
// Name,Phone,Address,LastMonthDue. The header row is skipped, rows
// with an empty name are counted as skipped.
func (h *CustomerHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	var body io.Reader = r.Body
	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		body = file
	}

	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid CSV: "+err.Error())
		return
	}

	result := importResult{Customers: []models.Customer{}}
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue // header
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			result.Skipped++
			continue
		}

		req := models.CreateCustomerRequest{Name: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			req.Phone = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			req.Address = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			if due, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64); err == nil {
				req.LastMonthDue = due
			}
		}

		customer, err := h.Ledger.AddCustomer(r.Context(), &req)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		result.Imported++
		result.Customers = append(result.Customers, *customer)
	}

	utils.JSON(w, http.StatusOK, result)
}
