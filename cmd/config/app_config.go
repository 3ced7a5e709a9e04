package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/internal/api/handlers"
	"github.com/ysabouh/hama-togather-sub000/internal/api/routes"
	"github.com/ysabouh/hama-togather-sub000/internal/middleware"
	"github.com/ysabouh/hama-togather-sub000/internal/utils"
	"github.com/ysabouh/hama-togather-sub000/pkg/audit"
	"github.com/ysabouh/hama-togather-sub000/pkg/donation"
	"github.com/ysabouh/hama-togather-sub000/pkg/family"
	"github.com/ysabouh/hama-togather-sub000/pkg/jwt"
	"github.com/ysabouh/hama-togather-sub000/pkg/need"
	"github.com/ysabouh/hama-togather-sub000/pkg/reconciliation"
	"github.com/ysabouh/hama-togather-sub000/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Damascus",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	locker := utils.NewResourceLocker()

	// Repository
	userRepository := user.NewUserRepository(db)
	familyRepository := family.NewFamilyRepository(db)
	auditRepository := audit.NewAuditRepository(db)
	needRepository := need.NewNeedRepository(db, auditRepository)
	donationRepository := donation.NewDonationRepository(db, auditRepository)
	reconciliationRepository := reconciliation.NewReconciliationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	familyService := family.NewFamilyService(familyRepository)
	auditService := audit.NewAuditService(auditRepository)
	needService := need.NewNeedService(needRepository, familyRepository, auditRepository, locker)
	donationService := donation.NewDonationService(donationRepository, familyRepository, locker)
	reconciliationService := reconciliation.NewReconciliationService(reconciliationRepository, familyRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	familyHandler := handlers.NewFamilyHandler(familyService, validator)
	needHandler := handlers.NewNeedHandler(needService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	auditHandler := handlers.NewAuditHandler(auditService, validator)
	reconciliationHandler := handlers.NewReconciliationHandler(reconciliationService)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		UserHandler:           userHandler,
		FamilyHandler:         familyHandler,
		NeedHandler:           needHandler,
		DonationHandler:       donationHandler,
		AuditHandler:          auditHandler,
		ReconciliationHandler: reconciliationHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
