package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"dairy-backend/internal/models"
	"dairy-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders printable monthly bills. A bill is rendered from
// its own entry snapshot, so later edits to daily entries never change
// an already generated bill's PDF.
type PDFService struct {
	businessName string
	tagline      string
}

func NewPDFService(businessName string) *PDFService {
	if businessName == "" {
		businessName = "Baba Dhudh Bhandar"
	}
	return &PDFService{
		businessName: businessName,
		tagline:      "Fresh Dairy Products Since 2003",
	}
}

// productLine is one aggregated row of a bill: all of one product's
// entries in the month folded together.
type productLine struct {
	name     string
	unit     string
	quantity float64
	amount   float64
}

// aggregateByProduct folds bill entries into per-product totals,
// keeping first-seen product order.
func aggregateByProduct(entries []models.DailyEntry, products []models.Product) []productLine {
	catalog := make(map[string]models.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	index := make(map[string]int)
	var lines []productLine
	for _, e := range entries {
		i, ok := index[e.ProductID]
		if !ok {
			name, unit := "Unknown Product", "units"
			if p, found := catalog[e.ProductID]; found {
				name, unit = p.Name, p.Unit
			}
			index[e.ProductID] = len(lines)
			lines = append(lines, productLine{name: name, unit: unit})
			i = len(lines) - 1
		}
		lines[i].quantity += e.Quantity
		lines[i].amount += e.Amount
	}
	return lines
}

func monthName(month string) string {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return month
	}
	return time.Month(m).String()
}

// GenerateBillPDF renders one customer's monthly bill. customer may be
// nil when the bill dangles on a deleted customer.
func (s *PDFService) GenerateBillPDF(bill *models.MonthlyBill, customer *models.Customer, products []models.Product) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	s.renderBill(pdf, bill, customer, products)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateMonthBatchPDF renders every bill of a month, one per page.
func (s *PDFService) GenerateMonthBatchPDF(bills []models.MonthlyBill, customers []models.Customer, products []models.Product) ([]byte, error) {
	byID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)

	var grand float64
	for i := range bills {
		bill := bills[i]
		pdf.AddPage()
		var customer *models.Customer
		if c, ok := byID[bill.CustomerID]; ok {
			customer = &c
		}
		s.renderBill(pdf, &bill, customer, products)
		grand += bill.GrandTotal
	}

	// Batch footer on the last page
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Total across %d bills: Rs. %.2f", len(bills), grand), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *PDFService) renderBill(pdf *gofpdf.Fpdf, bill *models.MonthlyBill, customer *models.Customer, products []models.Product) {
	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, s.businessName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(190, 6, s.tagline, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Customer / bill info
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(95, 8, "Customer Details", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 8, "Bill Details", "1", 1, "L", true, 0, "")

	name, phone, address := "Unknown Customer", "", ""
	if customer != nil {
		name, phone, address = customer.Name, customer.Phone, customer.Address
	}

	generated := bill.GeneratedAt
	if t, err := time.Parse(timeutil.TimestampLayout, bill.GeneratedAt); err == nil {
		generated = timeutil.ToIST(t).Format(timeutil.DisplayLayout)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Name: %s", name), "L", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Bill No: %s", bill.ID), "LR", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Phone: %s", phone), "L", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Month: %s %d", monthName(bill.Month), bill.Year), "LR", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Address: %s", address), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Generated: %s", generated), "LRB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(90, 7, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Quantity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range aggregateByProduct(bill.Entries, products) {
		pdf.CellFormat(90, 6, line.name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f %s", line.quantity, line.unit), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("Rs. %.2f", line.amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(140, 7, "Month Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("Rs. %.2f", bill.TotalAmount), "1", 1, "R", false, 0, "")
	pdf.CellFormat(140, 7, "Previous Due", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("Rs. %.2f", bill.PreviousDue), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 250)
	pdf.CellFormat(140, 8, "Grand Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("Rs. %.2f", bill.GrandTotal), "1", 1, "R", true, 0, "")
}
