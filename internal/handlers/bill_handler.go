package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dairy-backend/internal/config"
	"dairy-backend/internal/ledger"
	"dairy-backend/internal/metrics"
	"dairy-backend/internal/models"
	"dairy-backend/internal/qr"
	"dairy-backend/internal/services"
	"dairy-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type BillHandler struct {
	Ledger   *ledger.Service
	PDF      *services.PDFService
	Razorpay *services.RazorpayService
	UPIID    string
	Payee    string
}

func NewBillHandler(ledgerService *ledger.Service, pdfService *services.PDFService, razorpayService *services.RazorpayService, cfg *config.Config) *BillHandler {
	return &BillHandler{
		Ledger:   ledgerService,
		PDF:      pdfService,
		Razorpay: razorpayService,
		UPIID:    cfg.UPI.ID,
		Payee:    cfg.UPI.PayeeName,
	}
}

// Generate derives and stores a monthly bill snapshot.
func (h *BillHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bill, err := h.Ledger.GenerateMonthlyBill(r.Context(), req.CustomerID, req.Month, req.Year)
	if errors.Is(err, ledger.ErrCustomerNotFound) {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	if errors.Is(err, ledger.ErrNoEntriesForMonth) {
		utils.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.BillsGeneratedTotal.Inc()
	utils.JSON(w, http.StatusCreated, bill)
}

// ListBills returns all bills, or one month's when ?month= and ?year=
// are given.
func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	var bills []models.MonthlyBill
	if month != "" && yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "year must be a number")
			return
		}
		bills = h.Ledger.BillsForMonth(month, year)
	} else {
		bills = h.Ledger.ListBills()
	}
	if bills == nil {
		bills = []models.MonthlyBill{}
	}
	utils.JSON(w, http.StatusOK, bills)
}

func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Ledger.GetBill(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Bill not found")
		return
	}
	utils.JSON(w, http.StatusOK, bill)
}

func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Ledger.DeleteBill(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		utils.Error(w, http.StatusNotFound, "Bill not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BillHandler) ClearAllBills(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.ClearAllBills(r.Context()); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BillPDF renders one bill as a downloadable PDF. A bill whose
// customer was deleted still renders, labelled "Unknown Customer".
func (h *BillHandler) BillPDF(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Ledger.GetBill(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Bill not found")
		return
	}

	customer, _ := h.Ledger.GetCustomer(bill.CustomerID)

	data, err := h.PDF.GenerateBillPDF(bill, customer, h.Ledger.ListProducts())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="bill_%s.pdf"`, bill.ID))
	w.Write(data)
}

// MonthBatchPDF renders every bill generated for a month, one page per
// customer.
func (h *BillHandler) MonthBatchPDF(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "year must be a number")
		return
	}
	month := vars["month"]

	bills := h.Ledger.BillsForMonth(month, year)
	if len(bills) == 0 {
		utils.Error(w, http.StatusNotFound, "No bills generated for this month")
		return
	}

	data, err := h.PDF.GenerateMonthBatchPDF(bills, h.Ledger.ListCustomers(), h.Ledger.ListProducts())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="bills_%s_%d.pdf"`, month, year))
	w.Write(data)
}

// PaymentQR returns the UPI deep link and hosted QR image URL for a
// bill's grand total.
func (h *BillHandler) PaymentQR(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Ledger.GetBill(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Bill not found")
		return
	}
	if h.UPIID == "" {
		utils.Error(w, http.StatusUnprocessableEntity, "UPI_ID is not configured")
		return
	}

	size := 200
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		if n, err := strconv.Atoi(sizeStr); err == nil {
			size = n
		}
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"billId":   bill.ID,
		"amount":   bill.GrandTotal,
		"upiLink":  qr.PaymentLink(h.UPIID, h.Payee, bill.GrandTotal),
		"imageUrl": qr.PaymentImageURL(h.UPIID, h.Payee, bill.GrandTotal, size),
	})
}

// PaymentLink creates a Razorpay payment link for the bill.
func (h *BillHandler) PaymentLink(w http.ResponseWriter, r *http.Request) {
	if !h.Razorpay.IsEnabled() {
		utils.Error(w, http.StatusUnprocessableEntity, "Online payments are not configured")
		return
	}

	bill, err := h.Ledger.GetBill(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Bill not found")
		return
	}

	customer, _ := h.Ledger.GetCustomer(bill.CustomerID)

	link, err := h.Razorpay.CreateBillPaymentLink(bill, customer)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, link)
}
