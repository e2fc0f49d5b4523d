package services

import (
	"fmt"

	"dairy-backend/internal/models"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService creates hosted payment links for generated bills so
// customers can pay online instead of scanning the UPI QR. Optional:
// disabled unless both keys are configured.
type RazorpayService struct {
	keyID     string
	keySecret string
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{keyID: keyID, keySecret: keySecret}
}

// IsEnabled reports whether credentials are configured.
func (s *RazorpayService) IsEnabled() bool {
	return s.keyID != "" && s.keySecret != ""
}

// PaymentLinkResult is what the handler returns to the caller.
type PaymentLinkResult struct {
	LinkID   string  `json:"linkId"`
	ShortURL string  `json:"shortUrl"`
	Amount   float64 `json:"amount"`
	BillID   string  `json:"billId"`
}

// CreateBillPaymentLink creates a Razorpay payment link for the bill's
// grand total. customer may be nil for a dangling bill; the link is
// still created, just without contact prefill.
func (s *RazorpayService) CreateBillPaymentLink(bill *models.MonthlyBill, customer *models.Customer) (*PaymentLinkResult, error) {
	if !s.IsEnabled() {
		return nil, fmt.Errorf("razorpay is not configured")
	}

	client := razorpay.NewClient(s.keyID, s.keySecret)

	// Razorpay amounts are in paise
	data := map[string]interface{}{
		"amount":      int(bill.GrandTotal * 100),
		"currency":    "INR",
		"description": fmt.Sprintf("Milk bill %s/%d (%s)", bill.Month, bill.Year, bill.ID),
		"notes": map[string]interface{}{
			"bill_id":     bill.ID,
			"customer_id": bill.CustomerID,
		},
	}
	if customer != nil {
		contact := map[string]interface{}{"name": customer.Name}
		if customer.Phone != "" {
			contact["contact"] = customer.Phone
		}
		data["customer"] = contact
	}

	link, err := client.PaymentLink.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create payment link: %w", err)
	}

	result := &PaymentLinkResult{
		Amount: bill.GrandTotal,
		BillID: bill.ID,
	}
	if id, ok := link["id"].(string); ok {
		result.LinkID = id
	}
	if url, ok := link["short_url"].(string); ok {
		result.ShortURL = url
	}
	return result, nil
}
