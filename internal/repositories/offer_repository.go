package repositories

import (
	"errors"

	"stagelink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOfferNotFound = errors.New("offer not found")

// AppliedOffer is an offer joined with the status of the performer's own match
// on it, for the "offers I applied to" listing.
type AppliedOffer struct {
	models.Offer
	MatchID     uint               `json:"matchId"`
	MatchStatus models.MatchStatus `json:"matchStatus"`
}

type OfferRepository interface {
	Create(db *gorm.DB, offer *models.Offer) error
	FindByID(db *gorm.DB, id uint) (*models.Offer, error)
	FindAll(db *gorm.DB) ([]models.Offer, error)
	FindByDistributor(db *gorm.DB, distributorID uint) ([]models.Offer, error)
	FindAppliedByPerformer(db *gorm.DB, performerID uint) ([]AppliedOffer, error)
	UpdateStatus(db *gorm.DB, id uint, status models.OfferStatus) error
	SetAcceptedPerformer(db *gorm.DB, id uint, performerID uint) error
}

type OfferRepositoryImpl struct{}

func NewOfferRepository() OfferRepository {
	return &OfferRepositoryImpl{}
}

func (r *OfferRepositoryImpl) Create(db *gorm.DB, offer *models.Offer) error {
	return db.Create(offer).Error
}

func (r *OfferRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := db.First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepositoryImpl) FindAll(db *gorm.DB) ([]models.Offer, error) {
	var offers []models.Offer
	err := db.Order("created_at DESC").Find(&offers).Error
	return offers, err
}

func (r *OfferRepositoryImpl) FindByDistributor(db *gorm.DB, distributorID uint) ([]models.Offer, error) {
	var offers []models.Offer
	err := db.Where("distributor_id = ?", distributorID).
		Order("created_at DESC").
		Find(&offers).Error
	return offers, err
}

func (r *OfferRepositoryImpl) FindAppliedByPerformer(db *gorm.DB, performerID uint) ([]AppliedOffer, error) {
	var applied []AppliedOffer
	err := db.Model(&models.Offer{}).
		Select("offers.*, matches.id AS match_id, matches.status AS match_status").
		Joins("JOIN matches ON matches.offer_id = offers.id").
		Where("matches.performer_id = ?", performerID).
		Order("offers.created_at DESC").
		Scan(&applied).Error
	return applied, err
}

func (r *OfferRepositoryImpl) UpdateStatus(db *gorm.DB, id uint, status models.OfferStatus) error {
	result := db.Model(&models.Offer{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferNotFound
	}
	return nil
}

func (r *OfferRepositoryImpl) SetAcceptedPerformer(db *gorm.DB, id uint, performerID uint) error {
	result := db.Model(&models.Offer{}).Where("id = ?", id).
		Update("accepted_performer_id", performerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferNotFound
	}
	return nil
}
