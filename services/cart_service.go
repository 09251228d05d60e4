package services

import (
	"sync"

	"github.com/nguyendat030805/FinalProjectMobile/entity"
)

// CartService keeps each user's cart in memory. Carts are not persisted:
// they are cleared on checkout and lost on restart. Lines for the same
// product in the same color merge; quantities never drop below one except
// by removing the line.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]entity.CartItem
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string][]entity.CartItem)}
}

// Items returns a copy of the user's cart lines.
func (s *CartService) Items(username string) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entity.CartItem, len(s.carts[username]))
	copy(items, s.carts[username])
	return items
}

func (s *CartService) Add(username string, product entity.Product, quantity int, color string) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[username]
	for i, item := range items {
		if item.Product.ID == product.ID && item.Color == color {
			items[i].Quantity += quantity
			items[i].Total = float64(items[i].Quantity) * product.Price
			return
		}
	}
	s.carts[username] = append(items, entity.CartItem{
		Product:  product,
		Quantity: quantity,
		Color:    color,
		Total:    float64(quantity) * product.Price,
	})
}

// Update sets quantity (clamped to at least 1) and color for a product line.
func (s *CartService) Update(username string, productID uint, quantity int, color string) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[username]
	for i, item := range items {
		if item.Product.ID == productID {
			items[i].Quantity = quantity
			items[i].Color = color
			items[i].Total = float64(quantity) * item.Product.Price
		}
	}
}

func (s *CartService) Remove(username string, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[username]
	kept := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.carts[username] = kept
}

func (s *CartService) Clear(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, username)
}

func (s *CartService) Total(username string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.carts[username] {
		total += item.Total
	}
	return total
}
