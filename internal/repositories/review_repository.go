package repositories

import (
	"errors"
	"math"

	"stagelink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this pair and offer")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id uint) (*models.Review, error)
	FindByRated(db *gorm.DB, ratedID uint) ([]models.Review, error)
	Delete(db *gorm.DB, id uint) error
	RecalculateUserRating(db *gorm.DB, userID uint) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

// Create inserts the review and synchronously recomputes the rated user's
// aggregate in the same unit of work.
func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	if err := db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrReviewAlreadyExists
		}
		return err
	}
	return r.RecalculateUserRating(db, review.RatedID)
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByRated(db *gorm.DB, ratedID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("rated_id = ?", ratedID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// Delete removes the review and recomputes the previously rated user's
// aggregate.
func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	review, err := r.FindByID(db, id)
	if err != nil {
		return err
	}

	result := db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	return r.RecalculateUserRating(db, review.RatedID)
}

// RecalculateUserRating re-derives rating_count and rating_avg for the user
// from all review rows that rate them. The average is the arithmetic mean
// rounded to two decimals, 0.0 when no reviews remain.
func (r *ReviewRepositoryImpl) RecalculateUserRating(db *gorm.DB, userID uint) error {
	var stats struct {
		Count int64
		Avg   float64
	}
	err := db.Model(&models.Review{}).
		Where("rated_id = ?", userID).
		Select("COUNT(*) AS count, COALESCE(AVG(score), 0) AS avg").
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"rating_count": stats.Count,
			"rating_avg":   Round2(stats.Avg),
		}).Error
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
