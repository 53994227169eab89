package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"comercialsoares.com/app/internal/config"
	"comercialsoares.com/app/internal/http/middleware"
	"comercialsoares.com/app/internal/http/validation"
	"comercialsoares.com/app/internal/mailer"
	"comercialsoares.com/app/internal/modules/orders"
	"comercialsoares.com/app/internal/receipt"
	"comercialsoares.com/app/internal/shared/apperr"
	"comercialsoares.com/app/pkg/view"
)

type ReceiptsHandler struct {
	svc  *orders.Service
	gen  *receipt.Generator
	mail mailer.Service
	smtp config.SMTPConfig
}

func NewReceiptsHandler(svc *orders.Service, gen *receipt.Generator, mail mailer.Service, smtp config.SMTPConfig) *ReceiptsHandler {
	return &ReceiptsHandler{svc: svc, gen: gen, mail: mail, smtp: smtp}
}

// Download serves the receipt PDF for a finalized order. The document is
// drawn from the current snapshot, so a reopened-and-refinalized order
// downloads its latest contents.
func (h *ReceiptsHandler) Download(c *gin.Context) {
	o, raw, err := h.build(c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.Filename(o)))
	c.Data(http.StatusOK, "application/pdf", raw)
}

// Reprint re-renders the receipt through the emitter, refreshing the
// archived copy with the order's current snapshot.
func (h *ReceiptsHandler) Reprint(c *gin.Context) {
	o, err := h.svc.Reprint(c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, view.NewOrder(o))
}

type emailInput struct {
	To string `json:"to" binding:"required,email"`
}

// Email sends the receipt PDF as an attachment.
func (h *ReceiptsHandler) Email(c *gin.Context) {
	var in emailInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Informe um e-mail válido.", validation.FromBindError(err, &in)))
		return
	}

	o, raw, err := h.build(c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	msg := mailer.Email{
		FromName: h.smtp.FromName,
		From:     h.smtp.From,
		To:       []string{in.To},
		Subject:  fmt.Sprintf("Pedido Nº %d - %s", o.Number, o.Customer),
		TextBody: fmt.Sprintf("Segue em anexo o pedido Nº %d de %s.", o.Number, o.Date),
		Attachments: []mailer.Attachment{{
			Filename:    receipt.Filename(o),
			ContentType: "application/pdf",
			Data:        raw,
		}},
	}
	if err := h.mail.Send(c.Request.Context(), msg); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ReceiptsHandler) build(id string) (orders.Order, []byte, error) {
	o, err := h.svc.Get(id)
	if err != nil {
		return orders.Order{}, nil, orderErr(err)
	}
	if !o.Finalized {
		return orders.Order{}, nil, apperr.ConflictErr("Finalize o pedido antes de emitir o recibo.")
	}
	raw, err := h.gen.Generate(o)
	if err != nil {
		return orders.Order{}, nil, apperr.Wrap(err)
	}
	return o, raw, nil
}
