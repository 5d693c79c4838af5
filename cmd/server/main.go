package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cropbook/config"
	"cropbook/database"
	"cropbook/router"

	authCtrlImp "cropbook/pkg/auth/controllerImp"
	healthCtrlImp "cropbook/pkg/health/controllerImp"

	"cropbook/pkg/sheets"

	ingestCtrlImp "cropbook/pkg/ingest/controllerImp"
	snapshotRepoImp "cropbook/pkg/ingest/repositoryImp"
	ingestSvcImp "cropbook/pkg/ingest/serviceImp"

	plantingCtrlImp "cropbook/pkg/planting/controllerImp"
	plantingRepoImp "cropbook/pkg/planting/repositoryImp"

	qualifierCtrlImp "cropbook/pkg/qualifier/controllerImp"
	qualifierRepoImp "cropbook/pkg/qualifier/repositoryImp"

	logCtrlImp "cropbook/pkg/qualitylog/controllerImp"
	logRepoImp "cropbook/pkg/qualitylog/repositoryImp"

	settingsCtrlImp "cropbook/pkg/settings/controllerImp"
	settingsRepoImp "cropbook/pkg/settings/repositoryImp"

	"cropbook/pkg/analytics"
	analyticsCtrlImp "cropbook/pkg/analytics/controllerImp"

	guideCtrlImp "cropbook/pkg/guides/controllerImp"
	guideRepoImp "cropbook/pkg/guides/repositoryImp"
	guideSvcImp "cropbook/pkg/guides/serviceImp"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)

	src := sheets.NewXLSX(cfg.WorkbookDir)

	plantingRepo := plantingRepoImp.New(db)
	qualifierRepo := qualifierRepoImp.New(db)
	logRepo := logRepoImp.New(db)
	settingsRepo := settingsRepoImp.New(db)
	snapshotRepo := snapshotRepoImp.New(db)
	guideRepo := guideRepoImp.New(db)

	syncSvc := ingestSvcImp.New(src, snapshotRepo, plantingRepo, qualifierRepo, settingsRepo)
	guideSvc := guideSvcImp.New(guideRepo)
	agg := analytics.New(logRepo)

	authCtrl := authCtrlImp.NewAuthController(cfg.AdminUIDs)
	settingsCtrl := settingsCtrlImp.New(settingsRepo)
	syncCtrl := ingestCtrlImp.New(syncSvc, settingsRepo)
	plantingCtrl := plantingCtrlImp.New(plantingRepo)
	qualifierCtrl := qualifierCtrlImp.New(qualifierRepo)
	logCtrl := logCtrlImp.New(logRepo, plantingRepo)
	analyticsCtrl := analyticsCtrlImp.New(agg)
	guideCtrl := guideCtrlImp.New(guideSvc, cfg.GuideAllowedDomains)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.WorkbookDir)

	e := echo.New()
	e.Use(echoMiddleware.Recover())

	r := router.New(
		e,
		cfg.AdminUIDs,
		authCtrl,
		settingsCtrl,
		syncCtrl,
		plantingCtrl,
		qualifierCtrl,
		logCtrl,
		analyticsCtrl,
		guideCtrl,
		healthCtrl,
	)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
