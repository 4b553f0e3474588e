package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DemoController serves the stateless demo endpoints
type DemoController struct{}

// NewDemoController creates a new demo controller
func NewDemoController() *DemoController {
	return &DemoController{}
}

// ReadRoot returns the hello-world payload
// GET /
func (dc *DemoController) ReadRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "World"})
}

// ReadItem echoes an item ID and the optional query parameter
// GET /items/:id
func (dc *DemoController) ReadItem(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		unprocessable(c, intParsingDetail([]string{"path", "item_id"}, raw))
		return
	}

	var q interface{}
	if v, ok := c.GetQuery("q"); ok {
		q = v
	}

	c.JSON(http.StatusOK, gin.H{"item_id": id, "q": q})
}

// updateItemRequest is the body of PUT /items/:id. Pointer fields so
// that absent and zero values can be told apart during validation.
type updateItemRequest struct {
	Name    *string  `json:"name"`
	Price   *float64 `json:"price"`
	IsOffer *bool    `json:"is_offer"`
}

// UpdateItem echoes the updated item name and ID
// PUT /items/:id
func (dc *DemoController) UpdateItem(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		unprocessable(c, intParsingDetail([]string{"path", "item_id"}, raw))
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		unprocessable(c, missingDetail([]string{"body"}, nil))
		return
	}

	var details []validationDetail
	if req.Name == nil {
		details = append(details, missingDetail([]string{"body", "name"}, req))
	}
	if req.Price == nil {
		details = append(details, missingDetail([]string{"body", "price"}, req))
	}
	if len(details) > 0 {
		unprocessable(c, details...)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item_name": *req.Name, "item_id": id})
}
