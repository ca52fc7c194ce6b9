package bootstrap

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-food-manager/config"
	"hospital-food-manager/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_ServesAllResources(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open(config.DBConfig{
		Driver:      config.DriverSQLite,
		SQLitePath:  ":memory:",
		AutoMigrate: true,
		LogLevel:    "silent",
	}, log)
	require.NoError(t, err)

	app := &App{DB: db}
	defer app.Close()

	h := NewHandler(db, log)

	for _, path := range []string{"/health", "/patients", "/diet-charts", "/staff", "/tasks", "/deliveries"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/staff", strings.NewReader(`{"name":"Lata","role":"Cook"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Lata"`)
}
