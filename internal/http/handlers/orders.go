package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"comercialsoares.com/app/internal/http/middleware"
	"comercialsoares.com/app/internal/http/validation"
	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
	"comercialsoares.com/app/internal/shared/apperr"
	"comercialsoares.com/app/pkg/view"
)

type OrdersHandler struct {
	svc       *orders.Service
	customers *customers.Repo
}

func NewOrdersHandler(svc *orders.Service, cust *customers.Repo) *OrdersHandler {
	return &OrdersHandler{svc: svc, customers: cust}
}

// List returns orders most recent first. ?finalized=true narrows to the
// history view; ?search= filters by customer name or order number.
func (h *OrdersHandler) List(c *gin.Context) {
	var list []orders.Order
	if c.Query("finalized") == "true" {
		list = h.svc.ListFinalized()
	} else {
		list = h.svc.List()
	}

	if term := strings.ToLower(strings.TrimSpace(c.Query("search"))); term != "" {
		filtered := list[:0]
		for _, o := range list {
			if strings.Contains(strings.ToLower(o.Customer), term) ||
				strings.Contains(strconv.Itoa(o.Number), term) {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}

	c.JSON(http.StatusOK, gin.H{"orders": view.NewOrders(list)})
}

type startInput struct {
	CustomerID string `json:"customerId" binding:"required"`
}

// Start opens an empty sale for a registered customer.
func (h *OrdersHandler) Start(c *gin.Context) {
	var in startInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Selecione um cliente da lista.", validation.FromBindError(err, &in)))
		return
	}

	cust, ok := h.customers.Get(in.CustomerID)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Cliente não encontrado."))
		return
	}

	o := h.svc.Start(cust.ID, cust.Name)
	c.JSON(http.StatusCreated, view.NewOrder(o))
}

func (h *OrdersHandler) Get(c *gin.Context) {
	o, err := h.svc.Get(c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, view.NewOrder(o))
}

func (h *OrdersHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type addItemInput struct {
	Product  string          `json:"produto" binding:"required"`
	Quantity int             `json:"quantidade"`
	Price    decimal.Decimal `json:"preco"`
}

func (h *OrdersHandler) AddItem(c *gin.Context) {
	var in addItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Preencha todos os campos.", validation.FromBindError(err, &in)))
		return
	}
	if in.Quantity <= 0 || in.Price.IsNegative() {
		middleware.Fail(c, apperr.InvalidErr("Valores inválidos.", nil))
		return
	}

	o, err := h.svc.AddItem(c.Param("id"), orders.Item{
		Product:  strings.TrimSpace(in.Product),
		Quantity: in.Quantity,
		Price:    in.Price,
	})
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, view.NewOrder(o))
}

func (h *OrdersHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Item inválido.", nil))
		return
	}
	o, err := h.svc.RemoveItem(c.Param("id"), index)
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, view.NewOrder(o))
}

type bulkInput struct {
	Text string `json:"text" binding:"required"`
}

// AddBulk runs the paste parser. added=0 tells the frontend to keep the
// paste buffer; individual malformed segments are never reported.
func (h *OrdersHandler) AddBulk(c *gin.Context) {
	var in bulkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Cole a lista de itens.", validation.FromBindError(err, &in)))
		return
	}

	o, added, err := h.svc.AddBulk(c.Param("id"), in.Text)
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added, "order": view.NewOrder(o)})
}

type copyInput struct {
	IsCopy *bool `json:"isCopy" binding:"required"`
}

func (h *OrdersHandler) SetCopy(c *gin.Context) {
	var in copyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Valor inválido.", validation.FromBindError(err, &in)))
		return
	}
	o, err := h.svc.SetCopy(c.Param("id"), *in.IsCopy)
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, view.NewOrder(o))
}

func (h *OrdersHandler) Finalize(c *gin.Context) {
	o, err := h.svc.Finalize(c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, view.NewOrder(o))
}

func (h *OrdersHandler) Reopen(c *gin.Context) {
	o, err := h.svc.Reopen(c.Param("id"))
	if err != nil {
		middleware.Fail(c, orderErr(err))
		return
	}
	c.JSON(http.StatusOK, view.NewOrder(o))
}

func orderErr(err error) error {
	switch {
	case errors.Is(err, orders.ErrNotFound):
		return apperr.NotFoundErr("Pedido não encontrado.")
	case errors.Is(err, orders.ErrNoItems):
		return apperr.InvalidErr("Adicione itens ao pedido.", nil)
	case errors.Is(err, orders.ErrAlreadyFinalized):
		return apperr.ConflictErr("Pedido já finalizado.")
	case errors.Is(err, orders.ErrNotFinalized):
		return apperr.ConflictErr("Pedido ainda não foi finalizado.")
	case errors.Is(err, orders.ErrItemOutOfRange):
		return apperr.InvalidErr("Item inválido.", nil)
	default:
		return apperr.Wrap(err)
	}
}
