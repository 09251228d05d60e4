package services

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyendat030805/FinalProjectMobile/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderService(t *testing.T) (*OrderService, *CartService) {
	t.Helper()
	repo, err := repository.OpenOrderRepository(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	cart := NewCartService()
	return NewOrderService(repo, cart), cart
}

func checkoutReq(method string) *CheckoutReq {
	return &CheckoutReq{
		Address:        "12 Nguyen Trai",
		Phone:          "0901234567",
		DeliveryMethod: method,
		PaymentMethod:  "cod",
	}
}

func TestCheckoutStandardDelivery(t *testing.T) {
	svc, cart := newTestOrderService(t)
	cart.Add("user1", taycan, 1, "red")

	order, err := svc.Checkout("user1", checkoutReq("standard"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderID, "ORD-"))
	assert.Equal(t, order.ID, order.OrderID)
	assert.Equal(t, "pending", order.Status)
	assert.EqualValues(t, 980000+20000, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Porsche Taycan", order.Items[0].Product.Name)

	// checkout clears the cart
	assert.Empty(t, cart.Items("user1"))

	// and the order is in the log
	orders := svc.Orders("user1")
	require.Len(t, orders, 1)
	assert.Equal(t, order.OrderID, orders[0].OrderID)
}

func TestCheckoutExpressDeliveryFee(t *testing.T) {
	svc, cart := newTestOrderService(t)
	cart.Add("user1", revuelto, 2, "yellow")

	order, err := svc.Checkout("user1", checkoutReq("express"))
	require.NoError(t, err)
	assert.EqualValues(t, 2*250000+50000, order.TotalAmount)
}

func TestCheckoutValidation(t *testing.T) {
	svc, cart := newTestOrderService(t)
	cart.Add("user1", taycan, 1, "red")

	req := checkoutReq("standard")
	req.Address = ""
	_, err := svc.Checkout("user1", req)
	assert.Error(t, err)

	req = checkoutReq("standard")
	req.Phone = "12345"
	_, err = svc.Checkout("user1", req)
	assert.Error(t, err)

	// cart untouched by failed checkouts
	assert.Len(t, cart.Items("user1"), 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _ := newTestOrderService(t)

	_, err := svc.Checkout("user1", checkoutReq("standard"))
	assert.Error(t, err)
}

func TestUpdateStatusThroughService(t *testing.T) {
	svc, cart := newTestOrderService(t)
	cart.Add("user1", taycan, 1, "red")
	order, err := svc.Checkout("user1", checkoutReq("standard"))
	require.NoError(t, err)

	found, err := svc.UpdateStatus("user1", order.OrderID, "shipped")
	require.NoError(t, err)
	assert.True(t, found)

	orders := svc.Orders("user1")
	require.Len(t, orders, 1)
	assert.Equal(t, "shipped", orders[0].Status)

	found, err = svc.UpdateStatus("user1", "ORD-404", "shipped")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = svc.UpdateStatus("user1", order.OrderID, "")
	assert.Error(t, err)
}
