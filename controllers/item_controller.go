package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/app"
	"github.com/inwakeofquake/shareit/db"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

func (ic *ItemController) Add(c *gin.Context) {
	userID, _ := app.UserID(c)
	var in struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description" binding:"required"`
		Available   *bool  `json:"available" binding:"required"`
		RequestID   *int64 `json:"requestId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	it, err := ic.Repo.CreateItem(c.Request.Context(), userID, db.ItemInput{
		Name:        &in.Name,
		Description: &in.Description,
		Available:   in.Available,
		RequestID:   in.RequestID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	log.Printf("item %q added by user %d", it.Name, userID)
	c.JSON(http.StatusCreated, it)
}

func (ic *ItemController) Update(c *gin.Context) {
	userID, _ := app.UserID(c)
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var in struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Available   *bool   `json:"available"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	it, err := ic.Repo.UpdateItem(c.Request.Context(), id, userID, db.ItemInput{
		Name:        in.Name,
		Description: in.Description,
		Available:   in.Available,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	_ = ic.Cache.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, it)
}

// Get returns the denormalized view; the owner additionally sees the last and
// next approved bookings. Cached per (item, viewer role).
func (ic *ItemController) Get(c *gin.Context) {
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	userID, _ := app.UserID(c)

	it, err := ic.Repo.FindItemByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	ownerView := it.OwnerID == userID

	var cached ItemView
	if hit, err := ic.Cache.Get(c.Request.Context(), id, ownerView, &cached); err == nil && hit {
		c.JSON(http.StatusOK, cached)
		return
	}
	view, err := itemView(c.Request.Context(), ic.Repo, it, ownerView, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	_ = ic.Cache.Set(c.Request.Context(), id, ownerView, view)
	c.JSON(http.StatusOK, view)
}

func (ic *ItemController) GetAll(c *gin.Context) {
	userID, _ := app.UserID(c)
	from, size, err := pageParams(c)
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := ic.Repo.ListItemsByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		writeError(c, err)
		return
	}
	now := time.Now()
	views := make([]*ItemView, 0, len(items))
	for i := range items {
		v, err := itemView(c.Request.Context(), ic.Repo, &items[i], true, now)
		if err != nil {
			writeError(c, err)
			return
		}
		views = append(views, v)
	}
	c.JSON(http.StatusOK, views)
}

func (ic *ItemController) Search(c *gin.Context) {
	from, size, err := pageParams(c)
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := ic.Repo.SearchItems(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ic *ItemController) Delete(c *gin.Context) {
	userID, _ := app.UserID(c)
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	if err := ic.Repo.DeleteItem(c.Request.Context(), id, userID); err != nil {
		writeError(c, err)
		return
	}
	_ = ic.Cache.Invalidate(c.Request.Context(), id)
	log.Printf("item %d deleted by user %d", id, userID)
	c.Status(http.StatusNoContent)
}

func (ic *ItemController) AddComment(c *gin.Context) {
	userID, _ := app.UserID(c)
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var in struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	comment, err := ic.Repo.AddComment(c.Request.Context(), id, userID, in.Text, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	_ = ic.Cache.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, CommentView{
		ID:         comment.ID,
		Text:       comment.Text,
		AuthorName: comment.Author.Name,
		Created:    comment.Created,
	})
}

func (ic *ItemController) GetComments(c *gin.Context) {
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	comments, err := ic.Repo.ListComments(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentViews(comments))
}
