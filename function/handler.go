// Package function adapts the dashboard API to function-style
// deployment platforms that invoke a net/http handler per request.
// It is the second deployment shape of the same CRUD boundary built in
// internal/server; the application is constructed lazily on the first
// invocation and reused afterwards.
package function

import (
	"net/http"
	"sync"

	"sales-service/internal/server"
	"sales-service/pkg/config"
	"sales-service/pkg/database"
	"sales-service/pkg/logger"
	"sales-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	initOnce sync.Once
	app      *echo.Echo
	initErr  error
)

// Handler is the function entry point. Echo implements http.Handler,
// so the shared application serves each invocation directly.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		var cfg *config.Config
		cfg, initErr = config.Load()
		if initErr != nil {
			return
		}
		logger.InitLogger(cfg)
		prometheus.InitMetrics(cfg)

		var db *gorm.DB
		db, initErr = database.Connect(cfg)
		if initErr != nil {
			return
		}
		app = server.New(db)
	})

	if initErr != nil {
		logger.GetLogger().Error("Function initialization failed", zap.Error(initErr))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"service initialization failed"}`))
		return
	}

	app.ServeHTTP(w, r)
}
