package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/cart"
	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

func TestClientCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)

		var payload OrderPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 2400.0, payload.Total)

		json.NewEncoder(w).Encode(models.Order{
			ID:     "order-1",
			Total:  payload.Total,
			Status: models.OrderStatusPending,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	order, err := client.CreateOrder(context.Background(), OrderPayload{
		FullName: "John Doe",
		Email:    "john@example.com",
		Phone:    "123",
		Address:  "somewhere",
		Items:    []cart.Line{{ID: "p1", Name: "T-Shirt", Price: 1200, Quantity: 2}},
		Total:    2400,
	})

	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestClientCreateOrderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "db down"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.CreateOrder(context.Background(), OrderPayload{})

	var sErr *SubmissionError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, http.StatusInternalServerError, sErr.StatusCode)
	assert.Equal(t, "db down", sErr.Message)
}

func TestClientCreateOrderUndecodableError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.CreateOrder(context.Background(), OrderPayload{})

	var sErr *SubmissionError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, http.StatusBadGateway, sErr.StatusCode)
	assert.Empty(t, sErr.Message)
}

func TestClientGetOrderNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Order not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.GetOrder(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestClientGetOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/order-1", r.URL.Path)
		json.NewEncoder(w).Encode(models.Order{
			ID: "order-1",
			Items: []models.OrderItem{
				{ID: "i1", OrderID: "order-1", MerchandiseID: "p1", Quantity: 2, Price: 1200},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	order, err := client.GetOrder(context.Background(), "order-1")

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}
