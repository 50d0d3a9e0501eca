package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayplan-backend/internal/schedule/domain"
)

// gormAppointmentRepository implements AppointmentRepository using GORM
type gormAppointmentRepository struct {
	db *gorm.DB
}

// NewGormAppointmentRepository creates a new GORM-based AppointmentRepository
func NewGormAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &gormAppointmentRepository{db: db}
}

func (r *gormAppointmentRepository) Create(appt *domain.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = time.Now()
	return r.db.Create(appt).Error
}

func (r *gormAppointmentRepository) FindByID(id string) (*domain.Appointment, error) {
	var appt domain.Appointment
	err := r.db.Where("id = ?", id).First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

func (r *gormAppointmentRepository) FindByUserID(userID string) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := r.db.Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

func (r *gormAppointmentRepository) Delete(id string) error {
	return r.db.Delete(&domain.Appointment{}, "id = ?", id).Error
}
