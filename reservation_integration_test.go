package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cafefausse/reservation-api/models"
	"github.com/cafefausse/reservation-api/router"
	"github.com/cafefausse/reservation-api/services"
	"github.com/cafefausse/reservation-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestDB -> migrasi semua model di SQLite in-memory
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Reservation{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func request(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

// loginTest -> daftar akun staff lalu login, kembalikan token JWT
func loginTest(t *testing.T, r *gin.Engine) string {
	w := request(t, r, "POST", "/register", "", map[string]interface{}{
		"name":     "Host",
		"email":    "host@cafefausse.test",
		"password": "rahasia-sekali",
		"role":     "staff",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    "host@cafefausse.test",
		"password": "rahasia-sekali",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	token := data["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func createCustomerTest(t *testing.T, r *gin.Engine, name, email string) string {
	w := request(t, r, "POST", "/customers", "", map[string]interface{}{
		"name":  name,
		"email": email,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	return data["id"].(string)
}

// Limiter global dipasang sebelum registrasi route, jadi harus benar-benar
// membatasi request yang beruntun dari satu IP.
func TestGlobalRateLimiter(t *testing.T) {
	db := setupTestDB(t)
	allocator := services.NewAllocator(db, 30)
	r := router.SetupRouter(db, allocator)

	limited := 0
	for i := 0; i < 250; i++ {
		w := request(t, r, "GET", "/ping", "", nil)
		if w.Code == http.StatusTooManyRequests {
			limited++
		} else {
			assert.Equal(t, http.StatusOK, w.Code)
		}
	}
	assert.Greater(t, limited, 0)
}

// TestReservationEndToEnd menguji flow utama:
// 1. Register + login staff -> token
// 2. Buat customer, penuhi satu slot sampai 30 meja
// 3. Reservasi ke-31 di slot itu gagal conflict
// 4. Pindahkan satu reservasi -> meja lamanya bebas lagi
// 5. Delete customer diblokir selama masih punya reservasi
func TestReservationEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	allocator := services.NewAllocator(db, 30)
	allocator.Seed(99)
	r := router.SetupRouter(db, allocator)

	token := loginTest(t, r)

	// Route staff harus menolak request tanpa token
	w := request(t, r, "GET", "/reservations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	slot := "2025-09-10T18:00:00"
	adaID := createCustomerTest(t, r, "Ada", "ada@example.com")

	// Ada memesan lebih dulu
	w = request(t, r, "POST", "/reservations", "", map[string]interface{}{
		"customer_id": adaID,
		"time_slot":   slot,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	adaRes := decode(t, w)["data"].(map[string]interface{})
	adaResID := adaRes["id"].(string)
	adaTable := int(adaRes["table_number"].(float64))
	assert.GreaterOrEqual(t, adaTable, 1)
	assert.LessOrEqual(t, adaTable, 30)

	// 29 customer lain mengisi sisa meja di slot yang sama
	seen := map[int]bool{adaTable: true}
	for i := 0; i < 29; i++ {
		customerID := createCustomerTest(t, r,
			fmt.Sprintf("Guest %d", i),
			fmt.Sprintf("guest%d@example.com", i))

		w = request(t, r, "POST", "/reservations", "", map[string]interface{}{
			"customer_id": customerID,
			"time_slot":   slot,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		table := int(decode(t, w)["data"].(map[string]interface{})["table_number"].(float64))
		assert.False(t, seen[table], "table %d double-booked", table)
		seen[table] = true
	}
	assert.Len(t, seen, 30)

	// Meja habis: reservasi ke-31 gagal
	extraID := createCustomerTest(t, r, "Terlambat", "late@example.com")
	w = request(t, r, "POST", "/reservations", "", map[string]interface{}{
		"customer_id": extraID,
		"time_slot":   slot,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	response := decode(t, w)
	assert.Equal(t, "conflict", response["error"])
	assert.Contains(t, response["message"], "no tables available")

	// Staff melihat seluruh reservasi
	w = request(t, r, "GET", "/reservations", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]interface{}), 30)

	// Pindahkan reservasi Ada ke slot kosong -> meja lamanya bebas
	w = request(t, r, "PATCH", "/reservations/"+adaResID, token, map[string]interface{}{
		"time_slot": "2025-09-11T19:00:00",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, "POST", "/reservations", "", map[string]interface{}{
		"customer_id": extraID,
		"time_slot":   slot,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Ada masih punya reservasi -> delete customer diblokir
	w = request(t, r, "DELETE", "/customers/"+adaID, token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = request(t, r, "GET", "/reservations/customer/"+adaID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, "DELETE", "/reservations/"+adaResID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, "DELETE", "/customers/"+adaID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, "GET", "/customers/"+adaID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
