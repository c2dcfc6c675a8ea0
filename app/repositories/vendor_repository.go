package repositories

import (
	"context"

	"github.com/dquispe/electromarket/app/models"
	"gorm.io/gorm"
)

type VendorRepositoryImpl interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id string) (*models.Vendor, error)
	GetAll(ctx context.Context) ([]models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id string) error
	FindByName(ctx context.Context, name string) (*models.Vendor, error)
	Count(ctx context.Context) (int64, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepositoryImpl {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	// All fields on the insert, so an explicit IsActive=false is not
	// replaced by the column default.
	return r.db.WithContext(ctx).Select("*").Create(vendor).Error
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Vendor{}, "id = ?", id).Error
}

func (r *vendorRepository) FindByName(ctx context.Context, name string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Vendor{}).Count(&total).Error
	return total, err
}

// GetOrCreateVendor looks a vendor up by exact name and creates it when
// absent. Runs on the handed *gorm.DB (see GetOrCreateCategory).
func GetOrCreateVendor(db *gorm.DB, name string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := db.First(&vendor, "name = ?", name).Error
	if err == nil {
		return &vendor, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	vendor = models.Vendor{Name: name, IsActive: true}
	if err := db.Create(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}
