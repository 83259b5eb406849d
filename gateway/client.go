package gateway

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inwakeofquake/shareit/app"
)

// Client forwards validated requests to the server tier unchanged.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Forward relays method, path, query, identity header and body, then copies
// the server's status and payload back to the caller.
func (cl *Client) Forward(c *gin.Context, body []byte) {
	u := cl.base + c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		u += "?" + q
	}
	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, u, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if v := c.GetHeader(app.HeaderUserID); v != "" {
		req.Header.Set(app.HeaderUserID, v)
	}
	if v := c.GetHeader(app.HeaderRequestID); v != "" {
		req.Header.Set(app.HeaderRequestID, v)
	}

	resp, err := cl.http.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "server unreachable: " + err.Error()})
		return
	}
	defer resp.Body.Close()

	c.DataFromReader(resp.StatusCode, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, nil)
}
