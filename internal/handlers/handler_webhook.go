package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/ZheltovAS/RR-test-task/internal/apperrors"
	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	portssvc "github.com/ZheltovAS/RR-test-task/internal/core/ports/services"
	"github.com/ZheltovAS/RR-test-task/internal/dto"
	"github.com/ZheltovAS/RR-test-task/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Field-level error details must name fields the way the caller sent them,
// so the binding validator reports json tag names instead of Go field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// webhookHandler handles inbound bank payment notifications.
type webhookHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newWebhookHandler creates a new webhookHandler.
func newWebhookHandler(ps portssvc.PaymentSvcFacade) *webhookHandler {
	return &webhookHandler{
		paymentService: ps,
	}
}

// RegisterWebhookRoutes registers the bank webhook route.
func RegisterWebhookRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, extra ...gin.HandlerFunc) {
	h := newWebhookHandler(paymentService)

	webhook := rg.Group("/webhook", extra...)
	{
		webhook.POST("/bank", h.handleBankWebhook)
	}
}

// bindingErrorResponse turns a gin binding failure into field-level error
// details when the underlying cause is a validator error; malformed JSON and
// type mismatches fall back to a single message.
func bindingErrorResponse(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				details[fe.Field()] = "this field is required"
			case "max":
				details[fe.Field()] = fmt.Sprintf("must be at most %s characters", fe.Param())
			default:
				details[fe.Field()] = fmt.Sprintf("failed '%s' validation", fe.Tag())
			}
		}
		return gin.H{"errors": details}
	}
	return gin.H{"error": "Invalid request format: " + err.Error()}
}

// handleBankWebhook godoc
// @Summary Process a bank payment webhook
// @Description Records the payment and credits the payer organization's balance exactly once per operation id. Retried deliveries of a known operation id succeed without any effect.
// @Tags webhook
// @Accept  json
// @Produce  json
// @Param   payment body dto.BankWebhookRequest true "Payment notification"
// @Success 200 "Duplicate operation id, nothing recorded"
// @Success 201 "Payment recorded and balance credited"
// @Failure 400 {object} map[string]string "Invalid input with field-level details"
// @Failure 500 {object} map[string]string "Processing failure"
// @Router /webhook/bank [post]
func (h *webhookHandler) handleBankWebhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BankWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind bank webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	outcome, err := h.paymentService.ProcessWebhook(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error processing webhook", slog.String("operation_id", req.OperationID.String()), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Detail stays in the server-side log; the bank sees an opaque failure
		// and is expected to retry.
		logger.Error("Failed to process webhook", slog.String("operation_id", req.OperationID.String()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch outcome {
	case domain.OutcomeDuplicate:
		c.Status(http.StatusOK)
	default:
		c.Status(http.StatusCreated)
	}
}
