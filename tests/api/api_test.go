//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// End-to-end smoke of the admin booking lifecycle against a running stack
// (API + Postgres). Seed a manager account first:
//   POST /api/v1/admin/staff is itself guarded, so the test expects
//   MANAGER login manager@grandpalm.example / manager-pass to exist.
func TestAPI_AdminBookingFlow(t *testing.T) {
	waitForService(t)

	var token string
	t.Run("Login", func(t *testing.T) {
		resp := post(t, baseURL+"/auth/login", "", map[string]any{
			"email":    "manager@grandpalm.example",
			"password": "manager-pass",
		})
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		token, _ = body["token"].(string)
		require.NotEmpty(t, token)
	})

	roomNumber := fmt.Sprintf("API-%d", time.Now().UnixNano()%100000)
	var roomID float64
	t.Run("CreateRoom", func(t *testing.T) {
		resp := post(t, baseURL+"/api/v1/admin/rooms", token, map[string]any{
			"room_number": roomNumber,
			"type":        "DOUBLE",
			"price":       150,
			"capacity":    2,
		})
		require.Equal(t, 201, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		roomID = body["id"].(float64)
	})

	checkIn := time.Now().UTC().AddDate(0, 0, 3).Format(time.RFC3339)
	checkOut := time.Now().UTC().AddDate(0, 0, 6).Format(time.RFC3339)

	var bookingID float64
	t.Run("CreateBooking", func(t *testing.T) {
		resp := post(t, baseURL+"/api/v1/admin/bookings", token, map[string]any{
			"room_id":          roomID,
			"customer_name":    "API Guest",
			"customer_email":   fmt.Sprintf("api.guest.%s@example.com", roomNumber),
			"check_in_date":    checkIn,
			"check_out_date":   checkOut,
			"number_of_guests": 2,
			"total_amount":     450,
		})
		require.Equal(t, 201, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		bookingID = body["id"].(float64)
		assert.Equal(t, "CONFIRMED", body["status"])
		assert.Regexp(t, `^BK\d{12}$`, body["booking_number"])
	})

	t.Run("DoubleBookingRejected", func(t *testing.T) {
		resp := post(t, baseURL+"/api/v1/admin/bookings", token, map[string]any{
			"room_id":          roomID,
			"customer_name":    "Second Guest",
			"customer_email":   "second.guest@example.com",
			"check_in_date":    checkIn,
			"check_out_date":   checkOut,
			"number_of_guests": 1,
			"total_amount":     450,
		})
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("Cancel", func(t *testing.T) {
		resp := post(t, fmt.Sprintf("%s/api/v1/admin/bookings/%.0f/cancel", baseURL, bookingID), token, nil)
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		assert.Equal(t, "CANCELLED", body["status"])
	})

	t.Run("DailyReport", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, baseURL+"/api/v1/admin/reports/daily", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

func waitForService(t *testing.T) {
	t.Helper()
	for i := 0; i < 30; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service not reachable on " + baseURL)
}

func post(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
