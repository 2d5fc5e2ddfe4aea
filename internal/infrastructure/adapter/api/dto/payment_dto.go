package dto

import (
	"github.com/payless-tz/payment-reconciler/internal/domain/port/usecase"
	"github.com/payless-tz/payment-reconciler/internal/domain/usecase/reconcile"
)

// TokenView exposes the token fields merged into a payment row.
type TokenView struct {
	Luku     string `json:"luku,omitempty"`
	Passcode string `json:"passcode,omitempty"`
	Units    string `json:"units,omitempty"`
}

// PaymentView is one row of the payment listing: the stored payment fields,
// the optional token merge, and the reconciled status.
type PaymentView struct {
	ID                  uint64     `json:"id"`
	TransactionID       string     `json:"transactionId"`
	MSISDN              string     `json:"msisdn"`
	CustomerReferenceID string     `json:"customerReferenceId"`
	PaymentMethod       string     `json:"paymentMethod"`
	PaymentStatus       string     `json:"paymentStatus"`
	Amount              float64    `json:"amount"`
	TransactionDate     string     `json:"transactionDate"`
	MeterType           string     `json:"meterType"`
	Status              string     `json:"status"`
	Token               *TokenView `json:"token,omitempty"`
	TokenMessage        string     `json:"tokenMessage,omitempty"`
}

// PaymentListResponse is the payload for GET /api/payments.
type PaymentListResponse struct {
	Payments   []PaymentView      `json:"payments"`
	Pagination usecase.Pagination `json:"pagination"`
}

// NewPaymentListResponse maps a usecase page into the API shape, applying
// the display classification per row.
func NewPaymentListResponse(page *usecase.PaymentPage) PaymentListResponse {
	views := make([]PaymentView, 0, len(page.Items))
	for i := range page.Items {
		item := &page.Items[i]
		p := &item.Payment
		view := PaymentView{
			ID:                  p.ID,
			TransactionID:       p.TransactionID,
			MSISDN:              p.MSISDN,
			CustomerReferenceID: p.CustomerReferenceID,
			PaymentMethod:       p.PaymentMethod,
			PaymentStatus:       p.PaymentStatus,
			Amount:              p.Amount,
			TransactionDate:     p.TransactionDate,
			MeterType:           p.MeterType,
			Status:              string(reconcile.Classify(p, item.Token)),
		}
		if item.Token != nil {
			view.Token = &TokenView{
				Luku:     item.Token.Luku,
				Passcode: item.Token.Passcode,
				Units:    item.Token.Units,
			}
			view.TokenMessage = reconcile.BuildTokenMessage(p, item.Token)
		}
		views = append(views, view)
	}
	return PaymentListResponse{
		Payments:   views,
		Pagination: page.Pagination,
	}
}
