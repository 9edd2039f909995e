package services_test

import (
	"sync"
	"testing"

	"boutique/internal/apperrors"
	"boutique/internal/models"
	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockUserRepository, string) {
	t.Helper()
	userRepo := repositories.NewMockUserRepository()
	user := &models.User{Name: "Test User", Email: "test@example.com", Password: "hashedpassword"}
	assert.NoError(t, userRepo.Create(user))
	return services.NewCartService(userRepo), userRepo, user.ID
}

func TestCartService_AddItemAccumulates(t *testing.T) {
	cartService, _, userID := newCartFixture(t)

	for i := 0; i < 3; i++ {
		assert.NoError(t, cartService.AddItem(userID, "shirt1", "M"))
	}

	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Equal(t, 3, cart["shirt1"]["M"])
}

func TestCartService_AddItemRequiresSize(t *testing.T) {
	cartService, _, userID := newCartFixture(t)

	err := cartService.AddItem(userID, "shirt1", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	err = cartService.AddItem(userID, "", "M")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCartService_AddItemMissingUser(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	err := cartService.AddItem("no-such-user", "shirt1", "M")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cartService, _, userID := newCartFixture(t)

	assert.NoError(t, cartService.AddItem(userID, "shirt1", "M"))
	assert.NoError(t, cartService.UpdateQuantity(userID, "shirt1", "M", 7))

	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Equal(t, 7, cart["shirt1"]["M"])
}

func TestCartService_UpdateQuantityZeroPrunes(t *testing.T) {
	cartService, _, userID := newCartFixture(t)

	assert.NoError(t, cartService.AddItem(userID, "shirt1", "M"))
	assert.NoError(t, cartService.UpdateQuantity(userID, "shirt1", "M", 0))

	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.NotContains(t, cart, "shirt1")
}

func TestCartService_UpdateQuantityAbsentEntry(t *testing.T) {
	cartService, _, userID := newCartFixture(t)

	err := cartService.UpdateQuantity(userID, "shirt1", "M", 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "item or size not in cart")

	// A different size of an existing product is still absent.
	assert.NoError(t, cartService.AddItem(userID, "shirt1", "M"))
	err = cartService.UpdateQuantity(userID, "shirt1", "XL", 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCartService_GetCartMissingUser(t *testing.T) {
	cartService, _, _ := newCartFixture(t)

	cart, err := cartService.GetCart("no-such-user")
	assert.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_ClearCart(t *testing.T) {
	cartService, _, userID := newCartFixture(t)

	assert.NoError(t, cartService.AddItem(userID, "shirt1", "M"))
	assert.NoError(t, cartService.AddItem(userID, "pants2", "32"))
	assert.NoError(t, cartService.ClearCart(userID))

	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_ConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	cartService, _, userID := newCartFixture(t)

	const adds = 50
	var wg sync.WaitGroup
	wg.Add(adds)
	for i := 0; i < adds; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, cartService.AddItem(userID, "shirt1", "M"))
		}()
	}
	wg.Wait()

	cart, err := cartService.GetCart(userID)
	assert.NoError(t, err)
	assert.Equal(t, adds, cart["shirt1"]["M"])
}
