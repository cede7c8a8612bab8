// service/model_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/client"
	jerrors "github.com/jupiterai/jupiterctl/errors"
	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/model"
)

// IModelService defines the interface for AI model catalog operations
type IModelService interface {
	ListModels(ctx context.Context, onlyUsable bool) ([]model.AIModel, error)
	GetModel(ctx context.Context, modelID int64) (*model.AIModel, error)
}

// ModelService handles the AI model catalog. The catalog is read-only from
// this side; model management belongs to the backend.
type ModelService struct {
	api client.Models
}

var _ IModelService = &ModelService{}

// NewModelService creates a new instance of ModelService
func NewModelService(api client.Models) *ModelService {
	return &ModelService{api: api}
}

// ListModels retrieves the model catalog, optionally filtered to models that
// can actually serve requests
func (s *ModelService) ListModels(ctx context.Context, onlyUsable bool) ([]model.AIModel, error) {
	models, err := s.api.ListModels(ctx)
	if err != nil {
		logger.Error("Error listing models", zap.Error(err))
		return nil, err
	}
	if !onlyUsable {
		return models, nil
	}

	usable := models[:0]
	for _, m := range models {
		if m.Usable() {
			usable = append(usable, m)
		}
	}
	return usable, nil
}

// GetModel retrieves one catalog entry by ID
func (s *ModelService) GetModel(ctx context.Context, modelID int64) (*model.AIModel, error) {
	m, err := s.api.GetModel(ctx, modelID)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, jerrors.ErrModelNotFound
		}
		logger.Error("Error retrieving model", zap.Error(err), zap.Int64("modelID", modelID))
		return nil, err
	}
	return m, nil
}
