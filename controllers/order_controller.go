package controllers

import (
	"github.com/nguyendat030805/FinalProjectMobile/pkg/resp"
	"github.com/nguyendat030805/FinalProjectMobile/services"
	"github.com/nguyendat030805/FinalProjectMobile/utils"

	"github.com/gin-gonic/gin"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders — checkout the current cart
func (ct *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ct.Orders.Checkout(utils.CurrentUsername(c), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /orders — history, most recent first
func (ct *OrderController) List(c *gin.Context) {
	resp.OK(c, ct.Orders.Orders(utils.CurrentUsername(c)))
}

// PATCH /orders/:id/status
func (ct *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	found, err := ct.Orders.UpdateStatus(utils.CurrentUsername(c), c.Param("id"), req.Status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, gin.H{"orderId": c.Param("id"), "status": req.Status})
}
