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

type ProductHandler struct {
	Ledger *ledger.Service
}

func NewProductHandler(ledgerService *ledger.Service) *ProductHandler {
	return &ProductHandler{Ledger: ledgerService}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Ledger.ListProducts())
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Ledger.GetProduct(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.Ledger.AddProduct(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var patch models.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.Ledger.UpdateProduct(r.Context(), mux.Vars(r)["id"], &patch)
	if errors.Is(err, ledger.ErrProductNotFound) {
		utils.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Ledger.DeleteProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		utils.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
