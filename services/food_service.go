package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nikhilkumar92976/FOOD-INSTA/models"
	"github.com/nikhilkumar92976/FOOD-INSTA/utils"

	"gorm.io/gorm"
)

var ErrFoodNotFound = errors.New("food not found")

// MediaStore is the third-party media host. Upload returns the public URL.
type MediaStore interface {
	Upload(ctx context.Context, body []byte, key, contentType string) (string, error)
}

// Broadcaster fans events out to a partner's live connections.
type Broadcaster interface {
	Broadcast(partnerID string, payload any)
}

type FoodService struct {
	db     *gorm.DB
	media  MediaStore
	events Broadcaster
}

func NewFoodService(db *gorm.DB, media MediaStore, events Broadcaster) *FoodService {
	return &FoodService{db: db, media: media, events: events}
}

type CreateFoodInput struct {
	Name        string
	Description string
	Video       []byte
	Filename    string
	ContentType string
}

// Create uploads the video, then persists the item pointing at the returned URL.
// Nothing is written when the upload fails.
func (s *FoodService) Create(ctx context.Context, partnerID string, in CreateFoodInput) (*models.FoodItem, error) {
	if len(in.Video) == 0 {
		return nil, errors.New("video is empty")
	}
	key := utils.VideoObjectKey(in.Name, in.Filename, in.ContentType)
	url, err := s.media.Upload(ctx, in.Video, key, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}

	item := models.FoodItem{
		Name:          in.Name,
		Description:   in.Description,
		Video:         url,
		FoodPartnerID: partnerID,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		// the object stays on the media host; there is no delete path
		log.Printf("food record for %s failed after upload: %v", url, err)
		return nil, fmt.Errorf("create food: %w", err)
	}

	if s.events != nil {
		s.events.Broadcast(partnerID, map[string]any{
			"kind": "food.created",
			"food": item,
		})
	}
	return &item, nil
}

// ListAll returns every item from every partner, oldest first.
func (s *FoodService) ListAll(ctx context.Context) ([]models.FoodItem, error) {
	items := []models.FoodItem{}
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list food: %w", err)
	}
	return items, nil
}

func (s *FoodService) ListByPartner(ctx context.Context, partnerID string) ([]models.FoodItem, error) {
	items := []models.FoodItem{}
	err := s.db.WithContext(ctx).
		Where("food_partner_id = ?", partnerID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list partner food: %w", err)
	}
	return items, nil
}

func (s *FoodService) Get(ctx context.Context, id string) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &item, nil
}
