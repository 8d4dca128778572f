package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"insurance-renewal-assistant/internal/payment"
	"insurance-renewal-assistant/pkg/response"
)

// Process godoc
// @Summary     Initiate a payment
// @Description Stores a pending payment for the order summary carried by the chat payment link. Returns the transaction reference the client shows while polling for status.
// @Tags        Payment
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Order summary and payment method"
// @Success     200 {object} response.Resp "Success"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/payment/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, processResp{
		Success:        true,
		PaymentID:      output.PaymentID,
		TransactionRef: output.TransactionRef,
		Status:         string(output.Status),
		Message:        "Payment initiated",
	})
}

// Status godoc
// @Summary     Poll payment status
// @Description Returns the verified server-side status of a payment. Pending payments past their expiry window are reported as expired. Order details are included only once confirmed.
// @Tags        Payment
// @Produce     json
// @Param       id path string true "Payment ID"
// @Success     200 {object} response.Resp "Success"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/payment/status/{id} [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Status(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			response.NotFound(c, "Payment not found")
			return
		}
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newStatusResp(output.Payment))
}

// Confirm godoc
// @Summary     Confirm or fail a payment
// @Description Gateway webhook stand-in. Requires the shared confirmation secret. Set failed=true to record a failed attempt instead. Confirming twice is a no-op.
// @Tags        Payment
// @Accept      json
// @Produce     json
// @Param       body body confirmReq true "Confirmation payload"
// @Success     200 {object} response.Resp "Success"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/payment/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.runConfirm(c, req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrUnauthorized):
			response.Unauthorized(c)
		case errors.Is(err, payment.ErrNotFound):
			response.NotFound(c, "Payment not found")
		default:
			h.l.Errorf(ctx, "uc.Confirm: %v", err)
			response.Error(c, err, nil)
		}
		return
	}

	message := "Payment confirmed successfully"
	if req.Failed {
		message = "Payment marked as failed"
	}
	if output.AlreadyConfirmed {
		message = "Payment already confirmed"
	}

	response.OK(c, confirmResp{
		Success:   true,
		PaymentID: output.Payment.ID,
		Status:    string(output.Payment.Status),
		Message:   message,
		Payment:   newPaymentDetail(output.Payment),
	})
}

func (h *handler) runConfirm(c *gin.Context, req confirmReq) (payment.ConfirmOutput, error) {
	ctx := c.Request.Context()

	if req.Failed {
		return h.uc.Fail(ctx, payment.FailInput{
			PaymentID: req.PaymentID,
			Secret:    req.Secret,
			Reason:    req.Reason,
		})
	}
	return h.uc.Confirm(ctx, payment.ConfirmInput{
		PaymentID:      req.PaymentID,
		Secret:         req.Secret,
		TransactionRef: req.TransactionRef,
	})
}

// processProcessReq binds and validates the process request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
