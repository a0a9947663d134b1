package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/nikhilkumar92976/FOOD-INSTA/middlewares"
	"github.com/nikhilkumar92976/FOOD-INSTA/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Food           *services.FoodService
	MaxUploadBytes int64
}

func NewFoodController(food *services.FoodService, maxUploadBytes int64) *FoodController {
	return &FoodController{Food: food, MaxUploadBytes: maxUploadBytes}
}

type CreateFoodForm struct {
	Name        string                `form:"name" binding:"required"`
	Description string                `form:"description" binding:"required"`
	Video       *multipart.FileHeader `form:"video" binding:"required"`
}

var errTooLarge = errors.New("video exceeds upload limit")

func (fc *FoodController) readVideo(fh *multipart.FileHeader) ([]byte, error) {
	if fc.MaxUploadBytes > 0 && fh.Size > fc.MaxUploadBytes {
		return nil, errTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if fc.MaxUploadBytes > 0 {
		r = io.LimitReader(f, fc.MaxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if fc.MaxUploadBytes > 0 && int64(len(data)) > fc.MaxUploadBytes {
		return nil, errTooLarge
	}
	return data, nil
}

// POST /api/food (multipart: name, description, video)
func (fc *FoodController) CreateFood(c *gin.Context) {
	partner, ok := middlewares.CurrentFoodPartner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var form CreateFoodForm
	if err := c.ShouldBind(&form); err != nil {
		bindError(c, err)
		return
	}

	data, err := fc.readVideo(form.Video)
	if errors.Is(err, errTooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		serverError(c, "Error in createFood", err)
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required", "error": "video is empty"})
		return
	}

	contentType := form.Video.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	item, err := fc.Food.Create(c.Request.Context(), partner.ID, services.CreateFoodInput{
		Name:        form.Name,
		Description: form.Description,
		Video:       data,
		Filename:    form.Video.Filename,
		ContentType: contentType,
	})
	if err != nil {
		serverError(c, "Error in createFood", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "food created successfully",
		"food":    item,
	})
}

// GET /api/food
func (fc *FoodController) ListFood(c *gin.Context) {
	items, err := fc.Food.ListAll(c.Request.Context())
	if err != nil {
		serverError(c, "Error in getFood", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "food fetched successfully",
		"food":    items,
	})
}

// GET /api/food/getfood
func (fc *FoodController) ListPartnerFood(c *gin.Context) {
	partner, ok := middlewares.CurrentFoodPartner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	items, err := fc.Food.ListByPartner(c.Request.Context(), partner.ID)
	if err != nil {
		serverError(c, "Error in getAllUserFood", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "food fetched successfully",
		"food":    items,
	})
}

// GET /api/food/:id
func (fc *FoodController) GetFood(c *gin.Context) {
	item, err := fc.Food.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}
	if err != nil {
		serverError(c, "Error in getFood", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "food fetched successfully",
		"food":    item,
	})
}
