package usecase

import (
	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

// ItemUseCase consultas del catálogo (solo lectura). El stock cambia vía el carrito.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	it, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := dto.ToItemResponse(it)
	return &out, nil
}

// List filtra y pagina el catálogo.
func (uc *ItemUseCase) List(filter entity.ItemFilter, page dto.Page) (*dto.ItemListResponse, error) {
	list, total, err := uc.repo.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.ToItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}
