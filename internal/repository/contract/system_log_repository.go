package contract

import (
	"context"

	"agroadvisor-be/internal/model"
)

type SystemLogRepository interface {
	Create(ctx context.Context, entry *model.SystemLog) error
}
