package admin

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type profilerSrv struct {
	repo port.AdminRepository
}

var _ port.AdminProfiler = (*profilerSrv)(nil)

func NewAdminProfiler(repo port.AdminRepository) port.AdminProfiler {
	return &profilerSrv{repo: repo}
}

func (s *profilerSrv) GetAdminProfile(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return s.repo.GetByID(ctx, id)
}
