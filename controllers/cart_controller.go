package controllers

import (
	"strconv"

	"github.com/nguyendat030805/FinalProjectMobile/pkg/resp"
	"github.com/nguyendat030805/FinalProjectMobile/services"
	"github.com/nguyendat030805/FinalProjectMobile/utils"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"gte=1"`
	Color     string `json:"color"`
}
type UpdateCartRequest struct {
	Quantity int    `json:"quantity" binding:"gte=1"`
	Color    string `json:"color"`
}

type CartController struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

func NewCartController(cart *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{Cart: cart, Catalog: catalog}
}

// GET /cart
func (ct *CartController) List(c *gin.Context) {
	username := utils.CurrentUsername(c)
	resp.OK(c, gin.H{
		"items": ct.Cart.Items(username),
		"total": ct.Cart.Total(username),
	})
}

// POST /cart
func (ct *CartController) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// snapshot the product now; later catalog edits must not touch the line
	var found bool
	for _, p := range ct.Catalog.Products() {
		if p.ID == req.ProductID {
			ct.Cart.Add(utils.CurrentUsername(c), p, req.Quantity, req.Color)
			found = true
			break
		}
	}
	if !found {
		resp.NotFound(c, "product not found")
		return
	}
	resp.OK(c, gin.H{"items": ct.Cart.Items(utils.CurrentUsername(c))})
}

// PATCH /cart/:productId
func (ct *CartController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	username := utils.CurrentUsername(c)
	ct.Cart.Update(username, uint(id), req.Quantity, req.Color)
	resp.OK(c, gin.H{"items": ct.Cart.Items(username)})
}

// DELETE /cart/:productId
func (ct *CartController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	username := utils.CurrentUsername(c)
	ct.Cart.Remove(username, uint(id))
	resp.OK(c, gin.H{"items": ct.Cart.Items(username)})
}

// DELETE /cart
func (ct *CartController) Clear(c *gin.Context) {
	ct.Cart.Clear(utils.CurrentUsername(c))
	resp.OK(c, gin.H{"items": []any{}})
}
