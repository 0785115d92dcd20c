package repositories

import (
	"errors"
	"fiber-erp/models"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type QuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

// GenerateQuotationNumber builds the next sequential number: QTYYMMDDNNNN.
func (r *QuotationRepository) GenerateQuotationNumber() (string, error) {
	var last models.Quotation

	currentDate := time.Now().Format("060102")
	err := r.db.Where("quotation_number LIKE ?", "QT"+currentDate+"%").
		Order("quotation_number DESC").First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	seq := 1
	if last.QuotationNumber != "" && len(last.QuotationNumber) >= 12 {
		if lastSeq, err := strconv.Atoi(last.QuotationNumber[len(last.QuotationNumber)-4:]); err == nil {
			seq = lastSeq + 1
		}
	}

	return fmt.Sprintf("QT%s%04d", currentDate, seq), nil
}

// CreateWithItems persists a quotation and its items in one transaction.
func (r *QuotationRepository) CreateWithItems(quotation *models.Quotation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(quotation).Error
	})
}

// UpdateWithItems replaces the quotation header and its full item set.
func (r *QuotationRepository) UpdateWithItems(quotation *models.Quotation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", quotation.ID).
			Delete(&models.QuotationItem{}).Error; err != nil {
			return err
		}
		return tx.Save(quotation).Error
	})
}
