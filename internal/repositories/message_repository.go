package repositories

import (
	"stagelink_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByOffer(db *gorm.DB, offerID uint) ([]models.Message, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByOffer(db *gorm.DB, offerID uint) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("offer_id = ?", offerID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
