package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/app"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

func (uc *UserController) Create(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := uc.Repo.CreateUser(c.Request.Context(), in.Name, in.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	log.Printf("user %q created with id %d", u.Name, u.ID)
	c.JSON(http.StatusCreated, u)
}

func (uc *UserController) Get(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	u, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Repo.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) Update(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var in struct {
		Name  *string `json:"name"`
		Email *string `json:"email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := uc.Repo.UpdateUser(c.Request.Context(), id, in.Name, in.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (uc *UserController) Delete(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := uc.Repo.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	log.Printf("user %d deleted", id)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
