package repositories

import (
	"errors"

	"stagelink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyExists = errors.New("match already exists for this performer and offer")
)

type MatchRepository interface {
	Create(db *gorm.DB, match *models.Match) error
	FindByOfferAndPerformer(db *gorm.DB, offerID, performerID uint) (*models.Match, error)
	FindByOffer(db *gorm.DB, offerID uint) ([]models.Match, error)
	Update(db *gorm.DB, match *models.Match, fields map[string]interface{}) error
	UpdateStatus(db *gorm.DB, id uint, status models.MatchStatus) error
	SetChatApproved(db *gorm.DB, id uint, approved bool) error
	RejectOthers(db *gorm.DB, offerID, acceptedPerformerID uint) error
}

type MatchRepositoryImpl struct{}

func NewMatchRepository() MatchRepository {
	return &MatchRepositoryImpl{}
}

func (r *MatchRepositoryImpl) Create(db *gorm.DB, match *models.Match) error {
	if err := db.Create(match).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrMatchAlreadyExists
		}
		return err
	}
	return nil
}

func (r *MatchRepositoryImpl) FindByOfferAndPerformer(db *gorm.DB, offerID, performerID uint) (*models.Match, error) {
	var match models.Match
	err := db.Where("offer_id = ? AND performer_id = ?", offerID, performerID).
		First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepositoryImpl) FindByOffer(db *gorm.DB, offerID uint) ([]models.Match, error) {
	var matches []models.Match
	err := db.Where("offer_id = ?", offerID).
		Order("created_at ASC").
		Find(&matches).Error
	return matches, err
}

func (r *MatchRepositoryImpl) Update(db *gorm.DB, match *models.Match, fields map[string]interface{}) error {
	result := db.Model(match).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *MatchRepositoryImpl) UpdateStatus(db *gorm.DB, id uint, status models.MatchStatus) error {
	result := db.Model(&models.Match{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *MatchRepositoryImpl) SetChatApproved(db *gorm.DB, id uint, approved bool) error {
	result := db.Model(&models.Match{}).Where("id = ?", id).Update("chat_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// RejectOthers bulk-rejects every other match on the offer in a single
// statement, so "exactly one accepted, rest rejected" holds inside the
// surrounding transaction.
func (r *MatchRepositoryImpl) RejectOthers(db *gorm.DB, offerID, acceptedPerformerID uint) error {
	return db.Model(&models.Match{}).
		Where("offer_id = ? AND performer_id <> ?", offerID, acceptedPerformerID).
		Update("status", models.MatchStatusRejected).Error
}
