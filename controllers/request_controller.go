package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/app"
	"github.com/inwakeofquake/shareit/models"
)

type RequestController struct{ *Srv }

func NewRequestController(s *Srv) *RequestController { return &RequestController{Srv: s} }

func (rc *RequestController) Create(c *gin.Context) {
	userID, _ := app.UserID(c)
	var in struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	req, err := rc.Repo.CreateRequest(c.Request.Context(), userID, in.Description, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, RequestView{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       []models.Item{},
	})
}

func (rc *RequestController) views(c *gin.Context, reqs []models.ItemRequest) ([]*RequestView, bool) {
	views := make([]*RequestView, 0, len(reqs))
	for i := range reqs {
		v, err := requestView(c.Request.Context(), rc.Repo, &reqs[i])
		if err != nil {
			writeError(c, err)
			return nil, false
		}
		views = append(views, v)
	}
	return views, true
}

func (rc *RequestController) GetOwn(c *gin.Context) {
	userID, _ := app.UserID(c)
	reqs, err := rc.Repo.ListOwnRequests(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	views, ok := rc.views(c, reqs)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetAll pages through other users' requests.
func (rc *RequestController) GetAll(c *gin.Context) {
	userID, _ := app.UserID(c)
	from, size, err := pageParams(c)
	if err != nil {
		writeError(c, err)
		return
	}
	reqs, err := rc.Repo.ListOtherRequests(c.Request.Context(), userID, from, size)
	if err != nil {
		writeError(c, err)
		return
	}
	views, ok := rc.views(c, reqs)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, views)
}

func (rc *RequestController) Get(c *gin.Context) {
	userID, _ := app.UserID(c)
	id, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	req, err := rc.Repo.FindRequestByID(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	view, err := requestView(c.Request.Context(), rc.Repo, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
