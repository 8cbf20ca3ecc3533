package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"cropyield/config"
	"cropyield/database"
	"cropyield/pkg/crop"
	"cropyield/pkg/middleware"
	"cropyield/pkg/yield"
	"cropyield/router"

	// Predict
	predictCtrlImp "cropyield/pkg/predict/controllerImp"
	predictRepoImp "cropyield/pkg/predict/repositoryImp"
	predictSvcImp "cropyield/pkg/predict/serviceImp"

	// Field
	fieldCtrlImp "cropyield/pkg/field/controllerImp"
	fieldRepoImp "cropyield/pkg/field/repositoryImp"
	fieldSvcImp "cropyield/pkg/field/serviceImp"

	// KB
	kbCtrlImp "cropyield/pkg/kb/controllerImp"
	kbRepoImp "cropyield/pkg/kb/repositoryImp"
	kbServiceImp "cropyield/pkg/kb/serviceImp"

	// Health
	healthCtrlImp "cropyield/pkg/health/controllerImp"
)

func newLogger(level string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if level == "debug" {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func main() {
	// 1) Config
	cfg := config.Load()

	lg, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	// 2) Crop profiles
	table, err := crop.LoadFromFiles(cfg.ProfilesCSV, cfg.ProfilesXLSX)
	if err != nil {
		lg.Fatal("crop profiles", zap.Error(err))
	}
	lg.Info("crop profiles loaded", zap.Int("count", table.Len()), zap.Strings("crops", table.Crops()))

	// 3) Noise
	seed := cfg.NoiseSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	noise := yield.NewSeededNoise(seed)

	// 4) DB (optional)
	var db *gorm.DB
	if cfg.DBPath != "" {
		if db, err = database.OpenSQLite(cfg.DBPath); err != nil {
			lg.Fatal("database", zap.String("path", cfg.DBPath), zap.Error(err))
		}
	} else {
		lg.Info("persistence disabled")
	}

	// 5) Services + controllers
	var ctrls router.Controllers
	if db != nil {
		repo := predictRepoImp.New(db)
		kbSvc := kbServiceImp.New(kbRepoImp.New(db))
		pSvc := predictSvcImp.NewPredictService(table, noise, repo, kbSvc, lg.Named("predict"), cfg.BatchLimit)
		fSvc := fieldSvcImp.NewFieldService(fieldRepoImp.New(db))

		ctrls.Predict = predictCtrlImp.New(pSvc, table)
		ctrls.Field = fieldCtrlImp.New(fSvc, pSvc)
		ctrls.KB = kbCtrlImp.New(kbSvc, cfg.KBAllowedDomains, cfg.KBMaxBytesPerPage)
	} else {
		pSvc := predictSvcImp.NewPredictService(table, noise, nil, nil, lg.Named("predict"), cfg.BatchLimit)
		ctrls.Predict = predictCtrlImp.New(pSvc, table)
	}
	ctrls.Health = healthCtrlImp.NewHealthCtrl(db, table)

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger(lg.Named("http")))
	r := router.New(e, ctrls)

	// 7) Start
	lg.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		lg.Fatal("server", zap.Error(err))
	}
}
