package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nguyendat030805/FinalProjectMobile/entity"
	"github.com/nguyendat030805/FinalProjectMobile/repository"
)

const (
	standardDeliveryFee = 20000
	expressDeliveryFee  = 50000

	// every new order starts here; only the status mutates afterwards
	initialOrderStatus = "pending"
)

type CheckoutReq struct {
	Address        string `json:"address" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	DeliveryMethod string `json:"deliveryMethod" binding:"omitempty,oneof=standard express"`
	PaymentMethod  string `json:"paymentMethod"`
}

// OrderService turns a cart into a StoredOrder and manages the order log.
type OrderService struct {
	repo *repository.OrderRepository
	cart *CartService
}

func NewOrderService(repo *repository.OrderRepository, cart *CartService) *OrderService {
	return &OrderService{repo: repo, cart: cart}
}

// Checkout snapshots the user's cart into a new order, appends it to the log
// and clears the cart. The order id is ORD- plus the creation time in
// milliseconds, unique per user at creation.
func (s *OrderService) Checkout(username string, req *CheckoutReq) (*entity.StoredOrder, error) {
	if req.Address == "" {
		return nil, errors.New("delivery address is required")
	}
	if len(req.Phone) < 10 {
		return nil, errors.New("valid phone number is required")
	}

	items := s.cart.Items(username)
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}

	fee := float64(standardDeliveryFee)
	if req.DeliveryMethod == "express" {
		fee = expressDeliveryFee
	}

	now := time.Now()
	orderID := fmt.Sprintf("ORD-%d", now.UnixMilli())
	order := &entity.StoredOrder{
		ID:              orderID,
		OrderID:         orderID,
		TotalAmount:     s.cart.Total(username) + fee,
		DeliveryAddress: req.Address,
		Phone:           req.Phone,
		DeliveryMethod:  req.DeliveryMethod,
		PaymentMethod:   req.PaymentMethod,
		OrderDate:       now,
		Status:          initialOrderStatus,
		Items:           items,
	}

	if err := s.repo.Save(username, order); err != nil {
		return nil, err
	}
	s.cart.Clear(username)
	return order, nil
}

// Orders returns the user's history, most recent first. Log failures come
// back as an empty history, matching the catalog read policy.
func (s *OrderService) Orders(username string) []entity.StoredOrder {
	orders, err := s.repo.ListByUser(username)
	if err != nil {
		log.Printf("list orders for %s: %v", username, err)
		return []entity.StoredOrder{}
	}
	return orders
}

// UpdateStatus reports whether an order with the given id existed.
func (s *OrderService) UpdateStatus(username, orderID, status string) (bool, error) {
	if status == "" {
		return false, errors.New("status is required")
	}
	return s.repo.UpdateStatus(username, orderID, status)
}
