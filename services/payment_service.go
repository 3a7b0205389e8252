// services/payment_service.go
package services

import (
	"fmt"
	"os"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"clinicflash-backend/data"
	"clinicflash-backend/models"
)

// PaymentService wraps the Midtrans Snap checkout used for pre-paying a
// treatment. Without a server key the service stays disabled and the
// chat flow falls back to pay-on-site only.
type PaymentService struct {
	client  snap.Client
	enabled bool
}

func NewPaymentService() *PaymentService {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	svc := &PaymentService{enabled: serverKey != ""}
	if svc.enabled {
		env := midtrans.Sandbox
		if os.Getenv("MIDTRANS_ENV") == "production" {
			env = midtrans.Production
		}
		svc.client.New(serverKey, env)
	}
	return svc
}

func (s *PaymentService) Enabled() bool { return s.enabled }

// CheckoutResult carries what the frontend needs to open the payment
// window.
type CheckoutResult struct {
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"`
	SnapToken   string `json:"snapToken"`
	RedirectURL string `json:"redirectUrl"`
}

// CreateCheckout opens a Snap transaction for one booking. The gross
// amount is the menu price plus the anesthesia option when selected.
func (s *PaymentService) CreateCheckout(booking models.Booking, menu models.TreatmentMenu, withAnesthesia bool) (CheckoutResult, error) {
	if !s.enabled {
		return CheckoutResult{}, fmt.Errorf("payment service is not configured")
	}

	amount := int64(menu.Price)
	items := []midtrans.ItemDetails{{
		ID:    menu.ID,
		Name:  menu.Name,
		Price: int64(menu.Price),
		Qty:   1,
	}}
	if withAnesthesia {
		amount += int64(data.AnesthesiaPrice)
		items = append(items, midtrans.ItemDetails{
			ID:    "opt-anesthesia",
			Name:  "強力麻酔クリーム",
			Price: int64(data.AnesthesiaPrice),
			Qty:   1,
		})
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  booking.ID,
			GrossAmt: amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: booking.Customer.Name,
			Phone: booking.Customer.Phone,
		},
		Items: &items,
	}

	resp, errSnap := s.client.CreateTransaction(req)
	if errSnap != nil {
		return CheckoutResult{}, fmt.Errorf("midtrans checkout failed: %s", errSnap.GetMessage())
	}

	return CheckoutResult{
		OrderID:     booking.ID,
		Amount:      amount,
		SnapToken:   resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// MidtransNotification is the webhook payload subset we act on.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// PaymentStatus maps a Midtrans transaction status onto our booking
// payment states.
func (n MidtransNotification) PaymentStatus() string {
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "accept" {
			return "paid"
		}
		return "pending"
	case "settlement":
		return "paid"
	case "pending":
		return "pending"
	case "deny", "cancel", "expire":
		return "failed"
	default:
		return "pending"
	}
}
