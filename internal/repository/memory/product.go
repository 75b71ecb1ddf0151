package memory

import (
	"context"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/google/uuid"
)

type productRepositoryImpl struct {
	store *Store
}

func NewProductRepository(store *Store) product.ProductRepository {
	return &productRepositoryImpl{store: store}
}

// Create implements product.ProductRepository.
func (r *productRepositoryImpl) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Name == newProduct.Name {
			return product.Product{}, product.ErrProductNameExists
		}
	}

	now := s.clk.Now()
	newProduct.ID = uuid.NewString()
	newProduct.CreatedAt = now
	newProduct.UpdatedAt = now

	s.products = append(s.products, newProduct)
	return newProduct, nil
}

// GetByID implements product.ProductRepository.
func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (product.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, product.ErrProductNotFound
}

// GetAll implements product.ProductRepository.
func (r *productRepositoryImpl) GetAll(ctx context.Context) ([]product.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]product.Product, len(s.products))
	copy(result, s.products)
	return result, nil
}

// AdjustQuantity implements product.ProductRepository. The check and the
// write happen under the same lock, so concurrent adjustments cannot drive
// the quantity negative.
func (r *productRepositoryImpl) AdjustQuantity(ctx context.Context, id string, delta int) (product.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if s.products[i].Quantity+delta < 0 {
			return product.Product{}, product.ErrInsufficientStock
		}
		s.products[i].Quantity += delta
		s.products[i].UpdatedAt = s.clk.Now()
		return s.products[i], nil
	}
	return product.Product{}, product.ErrProductNotFound
}
