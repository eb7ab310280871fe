package usecase

import (
	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// WarehouseUseCase consultas sobre bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List devuelve todas las bodegas en orden de semilla, sin filtros.
func (uc *WarehouseUseCase) List() []dto.WarehouseResponse {
	list := uc.repo.List()
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WarehouseResponse{
			Code:    w.Code,
			Name:    w.Name,
			City:    w.City,
			Country: w.Country,
		})
	}
	return items
}
