package models_test

import (
	"testing"

	"boutique/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCartAddAccumulates(t *testing.T) {
	cart := models.NewCart()

	for i := 0; i < 5; i++ {
		cart.Add("shirt1", "M")
	}
	cart.Add("shirt1", "L")

	assert.Equal(t, 5, cart["shirt1"]["M"])
	assert.Equal(t, 1, cart["shirt1"]["L"])
	assert.Equal(t, 6, cart.Count())
}

func TestCartSetQuantity(t *testing.T) {
	cart := models.NewCart()
	cart.Add("shirt1", "M")

	cart.SetQuantity("shirt1", "M", 4)
	assert.Equal(t, 4, cart["shirt1"]["M"])

	// Setting an absent entry must not create it.
	cart.SetQuantity("hoodie9", "S", 3)
	assert.NotContains(t, cart, "hoodie9")
}

func TestCartSetQuantityZeroPrunes(t *testing.T) {
	cart := models.NewCart()
	cart.Add("shirt1", "M")
	cart.Add("shirt1", "L")

	cart.SetQuantity("shirt1", "M", 0)
	assert.False(t, cart.Has("shirt1", "M"))
	assert.True(t, cart.Has("shirt1", "L"))

	// Removing the last size removes the product key; an empty size
	// map must never remain.
	cart.SetQuantity("shirt1", "L", -2)
	assert.NotContains(t, cart, "shirt1")
	assert.Equal(t, 0, cart.Count())
}

func TestCartClone(t *testing.T) {
	cart := models.NewCart()
	cart.Add("shirt1", "M")

	copied := cart.Clone()
	copied.Add("shirt1", "M")
	copied.Add("pants2", "32")

	assert.Equal(t, 1, cart["shirt1"]["M"])
	assert.NotContains(t, cart, "pants2")
	assert.Equal(t, 2, copied["shirt1"]["M"])
}
