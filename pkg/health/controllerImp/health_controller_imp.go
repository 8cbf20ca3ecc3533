package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropyield/pkg/crop"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	table *crop.Table
}

// NewHealthCtrl reports on the crop table and, when db is non-nil, the
// persistence layer. A nil db is reported as disabled, not as a failure.
func NewHealthCtrl(db *gorm.DB, table *crop.Table) *HealthCtrl {
	return &HealthCtrl{db: db, table: table}
}

type sub struct {
	OK       bool   `json:"ok"`
	Disabled bool   `json:"disabled,omitempty"`
	Err      string `json:"err,omitempty"`
	Count    int    `json:"count,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbc := sub{OK: true}
	if h.db == nil {
		dbc.Disabled = true
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbc = sub{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbc = sub{Err: "ping: " + err.Error()}
	}

	tc := sub{OK: h.table != nil && h.table.Len() > 0}
	if h.table != nil {
		tc.Count = h.table.Len()
	}
	if !tc.OK {
		tc.Err = "no crop profiles loaded"
	}

	allOK := dbc.OK && tc.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database":      dbc,
			"crop_profiles": tc,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
