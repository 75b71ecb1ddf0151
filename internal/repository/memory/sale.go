package memory

import (
	"context"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/google/uuid"
)

type saleRepositoryImpl struct {
	store *Store
}

func NewSaleRepository(store *Store) sale.SaleRepository {
	return &saleRepositoryImpl{store: store}
}

// Create implements sale.SaleRepository.
func (r *saleRepositoryImpl) Create(ctx context.Context, newSale sale.Sale) (sale.Sale, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	newSale.ID = uuid.NewString()
	newSale.CreatedAt = s.clk.Now()
	newSale.Items = append([]sale.SaleItem(nil), newSale.Items...)

	s.sales = append(s.sales, newSale)
	return newSale, nil
}

// GetByID implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sl := range s.sales {
		if sl.ID == id {
			return sl, nil
		}
	}
	return sale.Sale{}, sale.ErrSaleNotFound
}

// GetAll implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetAll(ctx context.Context) ([]sale.Sale, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]sale.Sale, 0, len(s.sales))
	for i := len(s.sales) - 1; i >= 0; i-- {
		result = append(result, s.sales[i])
	}
	return result, nil
}

// GetBetween implements sale.SaleRepository.
func (r *saleRepositoryImpl) GetBetween(ctx context.Context, from, to time.Time) ([]sale.Sale, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []sale.Sale
	for i := len(s.sales) - 1; i >= 0; i-- {
		sl := s.sales[i]
		if sl.Date.Before(from) || !sl.Date.Before(to) {
			continue
		}
		result = append(result, sl)
	}
	return result, nil
}
