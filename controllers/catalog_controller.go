package controllers

import (
	"strconv"

	"github.com/nguyendat030805/FinalProjectMobile/entity"
	"github.com/nguyendat030805/FinalProjectMobile/pkg/resp"
	"github.com/nguyendat030805/FinalProjectMobile/services"
	"github.com/nguyendat030805/FinalProjectMobile/utils"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// ProductView is a product row plus its resolved image reference.
type ProductView struct {
	entity.Product
	Image utils.ImageRef `json:"image"`
}

type ProductRequest struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"gte=0"`
	Img        string  `json:"img"`
	CategoryID uint    `json:"categoryId"`
}
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

func productViews(products []entity.Product) []ProductView {
	return lo.Map(products, func(p entity.Product, _ int) ProductView {
		return ProductView{Product: p, Image: utils.ResolveImage(p.Img)}
	})
}

// GET /categories
func (ct *CatalogController) ListCategories(c *gin.Context) {
	resp.OK(c, ct.Catalog.Categories())
}

// GET /products
func (ct *CatalogController) ListProducts(c *gin.Context) {
	resp.OK(c, productViews(ct.Catalog.Products()))
}

// GET /categories/:id/products
func (ct *CatalogController) ProductsByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	resp.OK(c, productViews(ct.Catalog.ProductsByCategory(uint(id))))
}

// GET /products/search?keyword=&minPrice=&maxPrice=
func (ct *CatalogController) Search(c *gin.Context) {
	keyword := c.Query("keyword")

	var minPrice, maxPrice *float64
	if v := c.Query("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid minPrice")
			return
		}
		minPrice = &p
	}
	if v := c.Query("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid maxPrice")
			return
		}
		maxPrice = &p
	}

	resp.OK(c, productViews(ct.Catalog.Search(keyword, minPrice, maxPrice)))
}

// POST /admin/products
func (ct *CatalogController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p := entity.Product{Name: req.Name, Price: req.Price, Img: req.Img, CategoryID: req.CategoryID}
	if err := ct.Catalog.AddProduct(&p); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, ProductView{Product: p, Image: utils.ResolveImage(p.Img)})
}

// PATCH /admin/products/:id
func (ct *CatalogController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p := entity.Product{ID: uint(id), Name: req.Name, Price: req.Price, Img: req.Img, CategoryID: req.CategoryID}
	if err := ct.Catalog.UpdateProduct(&p); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, ProductView{Product: p, Image: utils.ResolveImage(p.Img)})
}

// DELETE /admin/products/:id
func (ct *CatalogController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	if err := ct.Catalog.DeleteProduct(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /admin/categories
func (ct *CatalogController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ct.Catalog.AddCategory(req.Name)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cat)
}

// PATCH /admin/categories/:id
func (ct *CatalogController) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ct.Catalog.UpdateCategory(uint(id), req.Name); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id, "name": req.Name})
}

// DELETE /admin/categories/:id
func (ct *CatalogController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	if err := ct.Catalog.DeleteCategory(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
