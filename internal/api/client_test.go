package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 7, req.UserID)
		assert.Equal(t, "I need a phone under $500", req.Message)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"response": "Here are some options",
			"recommendations": [
				{"id": 1, "brand": "Acme", "model": "X1", "year": 2023, "price": 399, "storage": "128GB", "battery_life": "20h"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 0)
	resp, err := client.Chat(context.Background(), ChatRequest{UserID: 7, Message: "I need a phone under $500"})
	require.NoError(t, err)

	assert.Equal(t, "Here are some options", resp.Response)
	require.Len(t, resp.Recommendations, 1)
	phone := resp.Recommendations[0]
	assert.Equal(t, 1, phone.ID)
	assert.Equal(t, "Acme", phone.Brand)
	assert.Equal(t, float64(399), phone.Price)
	assert.Equal(t, "20h", phone.BatteryLife)
}

func TestChatServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "User not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 0)
	resp, err := client.Chat(context.Background(), ChatRequest{UserID: 99, Message: "hi"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "API error (404)")
	assert.Contains(t, err.Error(), "User not found")
}

func TestChatUnreachable(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", 0)
	_, err := client.Chat(context.Background(), ChatRequest{UserID: 1, Message: "hi"})
	require.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)

		var req UserCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jo", req.Name)
		assert.Equal(t, "en", req.Language)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "name": "Jo", "language": "en"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 0)
	user, err := client.CreateUser(context.Background(), UserCreate{Name: "Jo", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, 42, user.ID)
	assert.Equal(t, "Jo", user.Name)
}

func TestSubmitContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contact-info", r.URL.Path)

		var req ContactSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.CellphoneID)
		assert.Equal(t, 42, req.UserID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ContactAck{Message: "Thank you Jo!", ContactInfo: req})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 0)
	ack, err := client.SubmitContact(context.Background(), ContactSubmission{
		Name: "Jo", Email: "jo@x.com", Phone: "555", CellphoneID: 1, UserID: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "Thank you Jo!", ack.Message)
	assert.Equal(t, "jo@x.com", ack.ContactInfo.Email)
}

func TestAddCellphone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cellphones", r.URL.Path)

		var req CellPhoneCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Acme", req.Brand)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 5, "brand": "Acme", "model": "X1", "year": 2023, "price": 399}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 0)
	phone, err := client.AddCellphone(context.Background(), CellPhoneCreate{
		Brand: "Acme", Model: "X1", Year: 2023, Price: 399,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, phone.ID)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		w.Write([]byte(`{"response": "ok"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/", 0)
	_, err := client.Chat(context.Background(), ChatRequest{UserID: 1, Message: "hi"})
	require.NoError(t, err)
}
