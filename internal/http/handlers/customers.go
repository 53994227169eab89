package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"comercialsoares.com/app/internal/http/middleware"
	"comercialsoares.com/app/internal/http/validation"
	"comercialsoares.com/app/internal/modules/customers"
	"comercialsoares.com/app/internal/modules/orders"
	"comercialsoares.com/app/internal/shared/apperr"
	"comercialsoares.com/app/pkg/view"
)

// CustomerWriter mirrors directory mutations to persistence, fire-and-forget.
type CustomerWriter interface {
	SaveCustomer(c customers.Customer)
	DeleteCustomer(id string)
}

type CustomersHandler struct {
	repo   *customers.Repo
	orders *orders.Service
	writer CustomerWriter
}

func NewCustomersHandler(repo *customers.Repo, svc *orders.Service, w CustomerWriter) *CustomersHandler {
	return &CustomersHandler{repo: repo, orders: svc, writer: w}
}

func (h *CustomersHandler) List(c *gin.Context) {
	list := h.repo.Search(c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"customers": view.NewCustomers(list)})
}

type customerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

func (h *CustomersHandler) Create(c *gin.Context) {
	var in customerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Informe o nome do cliente.", validation.FromBindError(err, &in)))
		return
	}

	cust := customers.Customer{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: customers.NowDate(),
	}
	h.repo.Save(cust)
	h.writer.SaveCustomer(cust)
	c.JSON(http.StatusCreated, view.NewCustomer(cust))
}

func (h *CustomersHandler) Update(c *gin.Context) {
	cust, ok := h.repo.Get(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Cliente não encontrado."))
		return
	}

	var in customerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Informe o nome do cliente.", validation.FromBindError(err, &in)))
		return
	}

	cust.Name = strings.TrimSpace(in.Name)
	cust.Phone = strings.TrimSpace(in.Phone)
	cust.Email = strings.TrimSpace(in.Email)
	cust.Notes = strings.TrimSpace(in.Notes)
	h.repo.Save(cust)
	h.writer.SaveCustomer(cust)
	c.JSON(http.StatusOK, view.NewCustomer(cust))
}

// Delete removes a customer from the directory. Orders keep the copied
// customer name, so history is unaffected.
func (h *CustomersHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.repo.Delete(id) {
		middleware.Fail(c, apperr.NotFoundErr("Cliente não encontrado."))
		return
	}
	h.writer.DeleteCustomer(id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CustomersHandler) Stats(c *gin.Context) {
	cust, ok := h.repo.Get(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Cliente não encontrado."))
		return
	}
	st := customers.StatsFor(cust, h.orders.List())
	c.JSON(http.StatusOK, gin.H{
		"customer": view.NewCustomer(cust),
		"stats":    view.NewCustomerStats(st),
	})
}
