package controllers

import (
	"strconv"

	"github.com/nguyendat030805/FinalProjectMobile/configs"
	"github.com/nguyendat030805/FinalProjectMobile/pkg/resp"
	"github.com/nguyendat030805/FinalProjectMobile/services"

	"github.com/gin-gonic/gin"
)

type AdminUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AdminController covers the back-office: user management and factory reset.
type AdminController struct {
	Auth *services.AuthService
	DB   *configs.Database
}

func NewAdminController(auth *services.AuthService, db *configs.Database) *AdminController {
	return &AdminController{Auth: auth, DB: db}
}

// GET /admin/users?keyword=
func (a *AdminController) Users(c *gin.Context) {
	users, err := a.Auth.Users(c.Query("keyword"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /admin/users
func (a *AdminController) CreateUser(c *gin.Context) {
	var req AdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Auth.Register(req.Username, req.Password, req.Role)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}

// PATCH /admin/users/:id
func (a *AdminController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	var req AdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Auth.UpdateUser(uint(id), req.Username, req.Password, req.Role)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}

// DELETE /admin/users/:id
func (a *AdminController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if err := a.Auth.DeleteUser(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /admin/reset — factory reset: drop the catalog and reseed
func (a *AdminController) Reset(c *gin.Context) {
	if err := a.DB.ResetAndReinit(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"reset": true})
}
