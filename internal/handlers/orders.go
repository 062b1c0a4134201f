package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

const maxImageUploadBytes = 10 << 20

// OrdersHandler covers the confirmed-order lifecycle: CRUD, vision images,
// and the cascading delete that also clears stored images.
type OrdersHandler struct {
	db      *supabase.DatabaseClient
	storage *supabase.StorageClient
}

func NewOrdersHandler(db *supabase.DatabaseClient, storage *supabase.StorageClient) *OrdersHandler {
	return &OrdersHandler{db: db, storage: storage}
}

// List godoc
// @Summary     List orders
// @Tags        orders
// @Produce     json
// @Param       start query string false "Earliest event date (YYYY-MM-DD)"
// @Param       end query string false "Latest event date (YYYY-MM-DD)"
// @Success     200 {array} models.Order
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	orders, err := h.db.ListOrders(c.Query("start"), c.Query("end"))
	if err != nil {
		log.Printf("failed to list orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get godoc
// @Summary     Get an order
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} models.Order
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders/{id} [get]
func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.db.GetOrder(id)
	if err != nil {
		respondNotFoundOrError(c, err, "Order not found", "Failed to get order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create godoc
// @Summary     Create an order
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.OrderInput true "Order"
// @Success     201 {object} models.Order
// @Failure     400 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if input.Status != "" && !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status: " + input.Status})
		return
	}
	opID, ok := operatorID(c)
	if !ok {
		return
	}

	order, err := h.db.CreateOrder(opID, input)
	if err != nil {
		log.Printf("failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Update godoc
// @Summary     Update an order
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id path string true "Order ID"
// @Param       request body models.OrderInput true "Order"
// @Success     200 {object} models.Order
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders/{id} [put]
func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if input.Status != "" && !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status: " + input.Status})
		return
	}

	order, err := h.db.UpdateOrder(id, input)
	if err != nil {
		respondNotFoundOrError(c, err, "Order not found", "Failed to update order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// Delete godoc
// @Summary     Delete an order
// @Description Removes the order with its vision images, supply links, and payments
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders/{id} [delete]
func (h *OrdersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	urls, err := h.db.DeleteOrderCascade(id)
	if err != nil {
		respondNotFoundOrError(c, err, "Order not found", "Failed to delete order")
		return
	}

	if h.storage != nil {
		if err := h.storage.RemoveByURLs(urls); err != nil {
			log.Printf("failed to remove images for order %s: %v", id, err)
		}
	}
	c.Status(http.StatusNoContent)
}

// ListImages godoc
// @Summary     List an order's vision images
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {array} models.VisionImage
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders/{id}/images [get]
func (h *OrdersHandler) ListImages(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	images, err := h.db.ListVisionImages(id)
	if err != nil {
		log.Printf("failed to list vision images: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// UploadImage godoc
// @Summary     Upload a vision image for an order
// @Tags        orders
// @Accept      multipart/form-data
// @Produce     json
// @Param       id path string true "Order ID"
// @Param       image formData file true "Image file"
// @Param       caption formData string false "Caption"
// @Success     201 {object} models.UploadImageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /api/v1/orders/{id}/images [post]
func (h *OrdersHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if h.storage == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing image file"})
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Failed to read image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Failed to read image"})
		return
	}

	// Prefix with a fresh UUID so repeated uploads of "cake.jpg" never
	// overwrite each other.
	filename := fmt.Sprintf("%s-%s", uuid.NewString(), fileHeader.Filename)
	url, err := h.storage.UploadOrderImage(id, filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		log.Printf("failed to upload vision image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to upload image"})
		return
	}

	var caption *string
	if v := c.PostForm("caption"); v != "" {
		caption = &v
	}
	img, err := h.db.AddVisionImage(id, url, caption)
	if err != nil {
		log.Printf("failed to record vision image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to record image"})
		return
	}

	c.JSON(http.StatusCreated, models.UploadImageResponse{
		ID:       img.ID.String(),
		ImageURL: img.ImageURL,
	})
}
