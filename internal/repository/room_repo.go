package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	FindByNumber(ctx context.Context, number string) (*models.Room, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.RoomStatus) (int64, error)
	Updates(ctx context.Context, id uint, fields map[string]any) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error
	Delete(ctx context.Context, id uint) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction. Conflicting booking creations serialize on this lock before
// running the overlap check.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).Clauses(forUpdate()).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, number string) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Where("room_number = ?", number).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&count).Error
	return count, err
}

func (r *roomRepository) CountByStatus(ctx context.Context, status models.RoomStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *roomRepository) Updates(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *roomRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *roomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Room{}, id).Error
}
