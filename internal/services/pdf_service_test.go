package services

import (
	"bytes"
	"testing"

	"dairy-backend/internal/models"
)

func sampleBill() *models.MonthlyBill {
	return &models.MonthlyBill{
		ID:         "bill_1",
		CustomerID: "customer_1",
		Month:      "1",
		Year:       2025,
		Entries: []models.DailyEntry{
			{ID: "entry_1", CustomerID: "customer_1", ProductID: "milk", Date: "2025-01-15", Quantity: 2, Rate: 60, Amount: 120},
			{ID: "entry_2", CustomerID: "customer_1", ProductID: "milk", Date: "2025-01-16", Quantity: 1, Rate: 60, Amount: 60},
			{ID: "entry_3", CustomerID: "customer_1", ProductID: "curd", Date: "2025-01-16", Quantity: 1, Rate: 40, Amount: 40},
		},
		PreviousDue: 500,
		TotalAmount: 220,
		GrandTotal:  720,
		GeneratedAt: "2025-02-01T10:00:00+05:30",
	}
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "milk", Name: "Cow Milk", Rate: 60, Unit: "liter"},
		{ID: "curd", Name: "Dahi", Rate: 40, Unit: "kg"},
	}
}

func TestAggregateByProductFoldsAndKeepsOrder(t *testing.T) {
	lines := aggregateByProduct(sampleBill().Entries, sampleProducts())
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].name != "Cow Milk" || lines[0].quantity != 3 || lines[0].amount != 180 {
		t.Errorf("milk line = %+v", lines[0])
	}
	if lines[1].name != "Dahi" || lines[1].amount != 40 {
		t.Errorf("curd line = %+v", lines[1])
	}
}

func TestAggregateByProductUnknownProduct(t *testing.T) {
	entries := []models.DailyEntry{
		{ProductID: "gone", Quantity: 1, Amount: 50},
	}
	lines := aggregateByProduct(entries, nil)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].name != "Unknown Product" || lines[0].unit != "units" {
		t.Errorf("fallback line = %+v", lines[0])
	}
}

func TestMonthName(t *testing.T) {
	if got := monthName("1"); got != "January" {
		t.Errorf("monthName(1) = %q", got)
	}
	if got := monthName("12"); got != "December" {
		t.Errorf("monthName(12) = %q", got)
	}
	if got := monthName("bogus"); got != "bogus" {
		t.Errorf("monthName(bogus) = %q", got)
	}
}

func TestGenerateBillPDFProducesDocument(t *testing.T) {
	svc := NewPDFService("")
	data, err := svc.GenerateBillPDF(sampleBill(), &models.Customer{ID: "customer_1", Name: "Rajesh Kumar"}, sampleProducts())
	if err != nil {
		t.Fatalf("GenerateBillPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestGenerateBillPDFToleratesNilCustomer(t *testing.T) {
	svc := NewPDFService("Baba Dhudh Bhandar")
	data, err := svc.GenerateBillPDF(sampleBill(), nil, sampleProducts())
	if err != nil {
		t.Fatalf("GenerateBillPDF failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty output for a dangling bill")
	}
}

func TestGenerateMonthBatchPDF(t *testing.T) {
	svc := NewPDFService("")
	bills := []models.MonthlyBill{*sampleBill(), *sampleBill()}
	data, err := svc.GenerateMonthBatchPDF(bills, []models.Customer{{ID: "customer_1", Name: "Rajesh Kumar"}}, sampleProducts())
	if err != nil {
		t.Fatalf("GenerateMonthBatchPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}
