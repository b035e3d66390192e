package memory

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepository)(nil)

// ItemRepository catálogo en memoria. Conserva el orden de carga para listar.
type ItemRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Item
	order []string
}

// NewItemRepository construye un catálogo vacío.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{byID: make(map[string]*entity.Item)}
}

// Load carga artículos en bloque (arranque). Si alguno viola las invariantes no se carga ninguno.
func (r *ItemRepository) Load(items []*entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if !it.Validate() {
			return fmt.Errorf("cargar catálogo: %w", domain.ErrInvalidInput)
		}
		if _, ok := r.byID[it.ID]; ok {
			return fmt.Errorf("cargar catálogo: id %s: %w", it.ID, domain.ErrDuplicate)
		}
		if _, ok := seen[it.ID]; ok {
			return fmt.Errorf("cargar catálogo: id %s: %w", it.ID, domain.ErrDuplicate)
		}
		seen[it.ID] = struct{}{}
	}
	for _, it := range items {
		cp := *it
		r.byID[cp.ID] = &cp
		r.order = append(r.order, cp.ID)
	}
	return nil
}

// GetByID devuelve una copia del artículo.
func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

// List filtra y pagina. Un offset fuera de rango devuelve página vacía con el total correcto.
func (r *ItemRepository) List(filter entity.ItemFilter, limit, offset int) ([]*entity.Item, int, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, domain.ErrInvalidInput
	}
	m := newMatcher(filter)

	r.mu.RLock()
	defer r.mu.RUnlock()

	page := make([]*entity.Item, 0, limit)
	total := 0
	for _, id := range r.order {
		it := r.byID[id]
		if !m.match(it) {
			continue
		}
		if total >= offset && len(page) < limit {
			cp := *it
			page = append(page, &cp)
		}
		total++
	}
	return page, total, nil
}

// AdjustStock aplica stock += delta bajo el lock de escritura; sin aplicación parcial.
func (r *ItemRepository) AdjustStock(id string, delta int) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if it.Stock+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	it.Stock += delta
	cp := *it
	return &cp, nil
}

// Count número de artículos del catálogo.
func (r *ItemRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// matcher precalcula los filtros con plegado Unicode (cases.Fold).
type matcher struct {
	filter entity.ItemFilter
	caser  cases.Caser
	name   string
	color  string
}

func newMatcher(f entity.ItemFilter) *matcher {
	m := &matcher{filter: f, caser: cases.Fold()}
	m.name = m.caser.String(f.Name)
	m.color = m.caser.String(f.Color)
	return m
}

func (m *matcher) match(it *entity.Item) bool {
	if m.name != "" && !strings.Contains(m.caser.String(it.Name), m.name) {
		return false
	}
	if m.color != "" && m.caser.String(it.Color) != m.color {
		return false
	}
	if m.filter.Size != "" && it.Size != m.filter.Size {
		return false
	}
	if m.filter.MaxPrice != nil && it.Price.GreaterThan(*m.filter.MaxPrice) {
		return false
	}
	return true
}
