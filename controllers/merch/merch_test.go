package merchControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Merchandise{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/merchandise", GetMerchandise(db))
	r.GET("/api/merchandise/:id", GetMerchandiseByID(db))
	r.POST("/api/merchandise", CreateMerchandise(db))
	r.PUT("/api/merchandise/:id", UpdateMerchandise(db))
	r.DELETE("/api/merchandise/:id", DeleteMerchandise(db))
	return r, db
}

func TestCreateAndListMerchandise(t *testing.T) {
	r, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"name": "T-Shirt", "price": 1200.0, "category": "apparel", "stock": 10,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/merchandise", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/merchandise", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.Merchandise
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "T-Shirt", items[0].Name)
	assert.True(t, items[0].IsActive)
}

func TestListSkipsInactiveMerchandise(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Merchandise{ID: "m1", Name: "Live", Price: 10, IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Merchandise{ID: "m2", Name: "Retired", Price: 10, IsActive: false}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/merchandise", nil))

	var items []models.Merchandise
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "m1", items[0].ID)
}

func TestGetMerchandiseNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/merchandise/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMerchandiseDeactivates(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&models.Merchandise{ID: "m1", Name: "Hoodie", Price: 2500, IsActive: true}).Error)

	inactive := false
	body, _ := json.Marshal(map[string]interface{}{
		"name": "Hoodie", "price": 2500.0, "is_active": inactive,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/merchandise/m1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var item models.Merchandise
	require.NoError(t, db.First(&item, "id = ?", "m1").Error)
	assert.False(t, item.IsActive)
}

func TestDeleteMerchandise(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&models.Merchandise{ID: "m1", Name: "Cap", Price: 500}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/merchandise/m1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Merchandise{}).Count(&count)
	assert.Equal(t, int64(0), count)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/merchandise/m1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
