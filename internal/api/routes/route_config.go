package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ysabouh/hama-togather-sub000/internal/api/handlers"
	"github.com/ysabouh/hama-togather-sub000/internal/middleware"
	"github.com/ysabouh/hama-togather-sub000/pkg/jwt"
)

type Config struct {
	App                   *fiber.App
	UserHandler           handlers.UserHandler
	FamilyHandler         handlers.FamilyHandler
	NeedHandler           handlers.NeedHandler
	DonationHandler       handlers.DonationHandler
	AuditHandler          handlers.AuditHandler
	ReconciliationHandler handlers.ReconciliationHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Families()
	c.Needs()
	c.Donations()
	c.AuditLog()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Families() {
	families := c.App.Group("/api/v1/families")
	admin := []fiber.Handler{c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly()}

	families.Get("", c.FamilyHandler.GetFamilies)
	families.Get("/:id", c.FamilyHandler.GetFamily)
	families.Get("/:id/reconciliation", c.ReconciliationHandler.GetFamilyReconciliation)
	families.Post("", append(admin, c.FamilyHandler.CreateFamily)...)
	families.Put("/:id", append(admin, c.FamilyHandler.UpdateFamily)...)
	families.Put("/:id/active", append(admin, c.FamilyHandler.ToggleFamilyActive)...)

	// family-scoped need entries and donations
	families.Get("/:id/needs", c.NeedHandler.GetFamilyNeeds)
	families.Post("/:id/needs", append(admin, c.NeedHandler.CreateNeed)...)
	families.Get("/:id/donations", append(admin, c.DonationHandler.GetFamilyDonations)...)
	families.Post("/:id/donations", append(admin, c.DonationHandler.CreateDonation)...)
}

func (c *Config) Needs() {
	admin := []fiber.Handler{c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly()}

	needs := c.App.Group("/api/v1/needs")
	needs.Put("/:id", append(admin, c.NeedHandler.UpdateNeed)...)
	needs.Put("/:id/toggle", append(admin, c.NeedHandler.ToggleNeed)...)
	needs.Delete("/:id", append(admin, c.NeedHandler.DeleteNeed)...)
}

func (c *Config) Donations() {
	admin := []fiber.Handler{c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly()}

	donations := c.App.Group("/api/v1/donations")
	donations.Get("/:id", append(admin, c.DonationHandler.GetDonation)...)
	donations.Put("/:id", append(admin, c.DonationHandler.UpdateDonationDetails)...)
	donations.Put("/:id/status", append(admin, c.DonationHandler.UpdateDonationStatus)...)
	donations.Put("/:id/active", append(admin, c.DonationHandler.ToggleDonationActive)...)
}

func (c *Config) AuditLog() {
	admin := []fiber.Handler{c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly()}
	c.App.Get("/api/v1/audit-log", append(admin, c.AuditHandler.GetAuditLog)...)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/api/v1/stats", c.ReconciliationHandler.GetPlatformStats)
	c.App.Get("/api/v1/need-types", c.FamilyHandler.GetNeedTypes)
	c.App.Get("/api/v1/neighborhoods", c.FamilyHandler.GetNeighborhoods)
}
