package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/inwakeofquake/shareit/app"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type UserDto struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type ItemDto struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type BookingDto struct {
	ItemID int64      `json:"itemId" validate:"required"`
	Start  *time.Time `json:"start" validate:"required"`
	End    *time.Time `json:"end" validate:"required"`
}

type CommentDto struct {
	Text string `json:"text" validate:"required"`
}

type RequestDto struct {
	Description string `json:"description" validate:"required"`
}

// bindBody reads the raw payload, checks it against dto's rules and returns
// the untouched bytes for forwarding.
func bindBody(c *gin.Context, dto any) ([]byte, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return nil, false
	}
	if err := json.Unmarshal(raw, dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return nil, false
	}
	if err := validate.Struct(dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidation(err)})
		return nil, false
	}
	return raw, true
}

func formatValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// requireHeader mirrors the server's identity check so garbage never leaves
// the gateway.
func requireHeader(c *gin.Context) bool {
	if _, err := strconv.ParseInt(c.GetHeader(app.HeaderUserID), 10, 64); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid " + app.HeaderUserID + " header"})
		return false
	}
	return true
}

var knownStates = map[string]struct{}{
	"ALL": {}, "CURRENT": {}, "PAST": {}, "FUTURE": {}, "WAITING": {}, "REJECTED": {},
}

func checkState(c *gin.Context) bool {
	state := strings.ToUpper(c.DefaultQuery("state", "ALL"))
	if _, ok := knownStates[state]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown state: " + c.Query("state")})
		return false
	}
	return true
}

func checkPage(c *gin.Context) bool {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad page params"})
		return false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad page params"})
		return false
	}
	return true
}
