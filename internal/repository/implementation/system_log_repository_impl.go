package implementation

import (
	"context"

	"agroadvisor-be/internal/model"
	"agroadvisor-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, entry *model.SystemLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
