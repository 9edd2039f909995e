// Package shopclient is a Go client for the storefront API. It keeps a
// local copy of the cart so callers get immediate feedback, mirroring
// how the web UI behaves: mutations are applied locally before the
// server round-trip, and any rejection is resolved by re-fetching the
// authoritative cart rather than rolling back the local change.
package shopclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"boutique/internal/models"
)

// Client talks to the storefront API on behalf of one user session.
type Client struct {
	baseURL     string
	deliveryFee float64
	httpClient  *http.Client

	mu    sync.Mutex
	token string
	cart  models.Cart
}

// New creates a client for the API at baseURL. deliveryFee must match
// the server's configured fee for checkout totals to be accepted.
func New(baseURL string, deliveryFee float64) *Client {
	return &Client{
		baseURL:     baseURL,
		deliveryFee: deliveryFee,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		cart:        models.NewCart(),
	}
}

type apiResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Token    string         `json:"token"`
	CartData models.Cart    `json:"cartData"`
	Data     []models.Order `json:"data"`
}

// Register creates an account and starts a session.
func (c *Client) Register(name, email, password string) error {
	resp, err := c.post("/api/user/register", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.token = resp.Token
	c.cart = models.NewCart()
	c.mu.Unlock()
	return nil
}

// Login starts a session and seeds the local cart from the server copy.
func (c *Client) Login(email, password string) error {
	resp, err := c.post("/api/user/login", map[string]string{
		"email": email, "password": password,
	})
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.token = resp.Token
	if resp.CartData != nil {
		c.cart = resp.CartData
	} else {
		c.cart = models.NewCart()
	}
	c.mu.Unlock()
	return nil
}

// Logout drops the session and the local cart copy. The server copy
// persists until an order clears it.
func (c *Client) Logout() {
	c.mu.Lock()
	c.token = ""
	c.cart = models.NewCart()
	c.mu.Unlock()
}

// Cart returns a snapshot of the local cart copy.
func (c *Client) Cart() models.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Clone()
}

// AddToCart optimistically increments the local cart, then asks the
// server to do the same. On any failure the local copy is replaced by
// the server's ground truth.
func (c *Client) AddToCart(itemID, size string) error {
	if size == "" {
		return fmt.Errorf("size is required")
	}
	c.mu.Lock()
	c.cart.Add(itemID, size)
	c.mu.Unlock()

	_, err := c.post("/api/user/cart/add", map[string]string{
		"itemId": itemID, "size": size,
	})
	if err != nil {
		c.reload()
		return err
	}
	return nil
}

// UpdateQuantity optimistically sets the local quantity, then syncs the
// server. On any failure the local copy is replaced by ground truth.
func (c *Client) UpdateQuantity(itemID, size string, quantity int) error {
	c.mu.Lock()
	c.cart.SetQuantity(itemID, size, quantity)
	c.mu.Unlock()

	_, err := c.post("/api/user/cart/update", map[string]interface{}{
		"itemId": itemID, "size": size, "quantity": quantity,
	})
	if err != nil {
		c.reload()
		return err
	}
	return nil
}

// CartAmount computes the item total of the local cart against the
// given catalog prices, excluding the delivery fee.
func (c *Client) CartAmount(prices map[string]float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for itemID, sizes := range c.cart {
		price, ok := prices[itemID]
		if !ok {
			continue
		}
		for _, qty := range sizes {
			total += price * float64(qty)
		}
	}
	return total
}

// PlaceOrder checks out the local cart: line items are assembled from
// the cart and the given catalog, the amount includes the delivery fee,
// and on success the local cart is cleared (the server clears its copy).
func (c *Client) PlaceOrder(catalog map[string]models.Product, address models.Address) error {
	c.mu.Lock()
	items := make([]models.OrderItem, 0, len(c.cart))
	var total float64
	for itemID, sizes := range c.cart {
		product, ok := catalog[itemID]
		if !ok {
			continue
		}
		for size, qty := range sizes {
			items = append(items, models.OrderItem{
				ProductID: itemID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  qty,
				Size:      size,
			})
			total += product.Price * float64(qty)
		}
	}
	c.mu.Unlock()

	if len(items) == 0 {
		return fmt.Errorf("cart is empty")
	}

	_, err := c.post("/api/order/place", map[string]interface{}{
		"items":   items,
		"amount":  total + c.deliveryFee,
		"address": address,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.cart = models.NewCart()
	c.mu.Unlock()
	return nil
}

// Orders fetches the session user's order history.
func (c *Client) Orders() ([]models.Order, error) {
	resp, err := c.get("/api/order/list")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// reload replaces the local cart with the server's authoritative copy.
// Divergence after a failed mutation is resolved this way instead of
// inverse-applying the operation.
func (c *Client) reload() {
	resp, err := c.post("/api/user/cart/get", map[string]string{})
	if err != nil {
		return
	}
	c.mu.Lock()
	if resp.CartData != nil {
		c.cart = resp.CartData
	} else {
		c.cart = models.NewCart()
	}
	c.mu.Unlock()
}

func (c *Client) post(path string, body interface{}) (*apiResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) get(path string) (*apiResponse, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*apiResponse, error) {
	c.mu.Lock()
	if c.token != "" {
		req.Header.Set("token", c.token)
	}
	c.mu.Unlock()

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var resp apiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if httpResp.StatusCode == http.StatusUnauthorized {
		// Session is gone; keep nothing stale around.
		c.Logout()
		return nil, fmt.Errorf("session expired: %s", resp.Message)
	}
	if !resp.Success {
		return nil, fmt.Errorf("server rejected request: %s", resp.Message)
	}
	return &resp, nil
}
