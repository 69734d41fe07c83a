package mapping

import (
	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	"github.com/ZheltovAS/RR-test-task/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		OperationID:    d.OperationID,
		Amount:         d.Amount,
		PayerINN:       d.PayerINN,
		DocumentNumber: d.DocumentNumber,
		DocumentDate:   d.DocumentDate,
		CreatedAt:      d.CreatedAt,
	}
}
