package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dairy-backend/internal/ledger"
	"dairy-backend/internal/models"
	"dairy-backend/internal/store"

	"github.com/gorilla/mux"
)

func newTestLedger(t *testing.T) *ledger.Service {
	t.Helper()
	storage := store.NewMemoryStorage()
	blob := []byte(`{"user":{"username":"admin","password":"admin123"},"customers":[],"products":[],"dailyEntries":[],"monthlyBills":[]}`)
	if err := storage.Save(context.Background(), blob); err != nil {
		t.Fatalf("prime storage: %v", err)
	}
	svc, err := ledger.NewService(context.Background(), storage)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestCreateAndGetCustomer(t *testing.T) {
	h := NewCustomerHandler(newTestLedger(t))

	body := `{"name":"Mohan","phone":"9000000001","lastMonthDue":250}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateCustomer(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	var created models.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("response does not parse: %v", err)
	}
	if created.Name != "Mohan" || created.LastMonthDue != 250 {
		t.Errorf("unexpected customer: %+v", created)
	}
	if !strings.HasPrefix(created.ID, "customer_") {
		t.Errorf("id = %q, want customer_ prefix", created.ID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/customers/"+created.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": created.ID})
	rec = httptest.NewRecorder()
	h.GetCustomer(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCreateCustomerRejectsBadJSON(t *testing.T) {
	h := NewCustomerHandler(newTestLedger(t))

	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	h.CreateCustomer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateUnknownCustomerReturns404(t *testing.T) {
	h := NewCustomerHandler(newTestLedger(t))

	req := httptest.NewRequest(http.MethodPut, "/api/customers/x", strings.NewReader(`{"name":"y"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "x"})
	rec := httptest.NewRecorder()
	h.UpdateCustomer(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteCustomerReturnsNoContent(t *testing.T) {
	svc := newTestLedger(t)
	c, err := svc.AddCustomer(context.Background(), &models.CreateCustomerRequest{Name: "Mohan"})
	if err != nil {
		t.Fatalf("AddCustomer failed: %v", err)
	}
	h := NewCustomerHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/"+c.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": c.ID})
	rec := httptest.NewRecorder()
	h.DeleteCustomer(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestImportCSVSkipsHeaderAndBlankNames(t *testing.T) {
	svc := newTestLedger(t)
	h := NewCustomerHandler(svc)

	csvBody := "Name,Phone,Address,Last Month Due\nMohan,9000000001,MG Road,150\n,,,\nSita,9000000002,Station Road,0\n"
	req := httptest.NewRequest(http.MethodPost, "/api/customers/import", strings.NewReader(csvBody))
	rec := httptest.NewRecorder()
	h.ImportCSV(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var result importResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("response does not parse: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if len(svc.ListCustomers()) != 2 {
		t.Errorf("ledger holds %d customers, want 2", len(svc.ListCustomers()))
	}
	if result.Customers[0].LastMonthDue != 150 {
		t.Errorf("due = %v, want 150", result.Customers[0].LastMonthDue)
	}
}

func TestCSVTemplateDownload(t *testing.T) {
	h := NewCustomerHandler(newTestLedger(t))

	rec := httptest.NewRecorder()
	h.CSVTemplate(rec, httptest.NewRequest(http.MethodGet, "/api/customers/template.csv", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content-type = %q, want text/csv", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "Name,Phone,Address,Last Month Due") {
		t.Errorf("template body missing header row: %q", rec.Body.String())
	}
}
