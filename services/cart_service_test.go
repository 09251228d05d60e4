package services

import (
	"testing"

	"github.com/nguyendat030805/FinalProjectMobile/entity"

	"github.com/stretchr/testify/assert"
)

var taycan = entity.Product{ID: 5, Name: "Porsche Taycan", Price: 980000, CategoryID: 5}
var revuelto = entity.Product{ID: 1, Name: "Lamborghini Revuelto", Price: 250000, CategoryID: 1}

func TestCartAddMergesSameProductAndColor(t *testing.T) {
	cart := NewCartService()

	cart.Add("user1", taycan, 1, "red")
	cart.Add("user1", taycan, 2, "red")

	items := cart.Items("user1")
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.EqualValues(t, 3*980000, items[0].Total)
}

func TestCartAddDifferentColorIsSeparateLine(t *testing.T) {
	cart := NewCartService()

	cart.Add("user1", taycan, 1, "red")
	cart.Add("user1", taycan, 1, "black")

	assert.Len(t, cart.Items("user1"), 2)
}

func TestCartUpdateClampsQuantity(t *testing.T) {
	cart := NewCartService()
	cart.Add("user1", revuelto, 2, "yellow")

	cart.Update("user1", revuelto.ID, 0, "yellow")

	items := cart.Items("user1")
	assert.Equal(t, 1, items[0].Quantity)
	assert.EqualValues(t, 250000, items[0].Total)
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCartService()
	cart.Add("user1", taycan, 1, "red")
	cart.Add("user1", revuelto, 1, "yellow")

	cart.Remove("user1", taycan.ID)
	assert.Len(t, cart.Items("user1"), 1)

	cart.Clear("user1")
	assert.Empty(t, cart.Items("user1"))
}

func TestCartTotalAndIsolation(t *testing.T) {
	cart := NewCartService()
	cart.Add("user1", taycan, 1, "red")
	cart.Add("user2", revuelto, 2, "yellow")

	assert.EqualValues(t, 980000, cart.Total("user1"))
	assert.EqualValues(t, 500000, cart.Total("user2"))
	assert.Len(t, cart.Items("user1"), 1)
}
