package controller

import (
	"strconv"

	"readydoc-bot/internal/config"
	"readydoc-bot/internal/pkg/serverutils"
	"readydoc-bot/internal/service"
	ws "readydoc-bot/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	GetAudits(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	cfg    *config.Config
	admin  service.IAdminService
	audits service.IAuditService
	hub    *ws.Hub
}

func NewAdminController(cfg *config.Config, admin service.IAdminService, audits service.IAuditService, hub *ws.Hub) IAdminController {
	return &adminController{
		cfg:    cfg,
		admin:  admin,
		audits: audits,
		hub:    hub,
	}
}

// adminMiddleware enforces a valid operator JWT on protected routes.
func (c *adminController) adminMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing or invalid authorization header"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.cfg.Admin.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid or expired token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token claims"))
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied: Admins only"))
	}

	ctx.Locals("admin_email", claims["sub"])
	return ctx.Next()
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")

	h.Post("/login", c.Login)

	h.Use(c.adminMiddleware)

	h.Get("/audits", c.GetAudits)
	h.Get("/logs", c.GetLogs)

	// Live dashboard stream. Token auth happened in the middleware above;
	// the upgrade check gates plain HTTP requests.
	h.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	h.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		ws.ServeWs(c.hub, conn)
	}))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req loginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	token, err := c.admin.Login(ctx.Context(), req.Email, req.Password)
	if err != nil {
		// Generic 401 regardless of which check failed.
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid email or password"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Admin login successful", fiber.Map{"token": token}))
}

func (c *adminController) GetAudits(ctx *fiber.Ctx) error {
	if c.audits == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, "Audit trail is not configured"))
	}

	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	audits, total, err := c.audits.List(ctx.Context(), limit, (page-1)*limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Document audits", fiber.Map{
		"items": audits,
		"total": total,
		"page":  page,
		"limit": limit,
	}))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	level := ctx.Query("level", "")

	logs, err := c.admin.GetSystemLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}
