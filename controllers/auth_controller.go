package controllers

import (
	"errors"
	"fiber-erp/config"
	"fiber-erp/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func getClientInfo(ctx *fiber.Ctx) (ip, ua string) {
	return ctx.IP(), ctx.Get("User-Agent")
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	sessionID := uuid.New().String()
	ip, ua := getClientInfo(ctx)
	now := time.Now()

	// default log FAILED, upgraded below on success
	loginLog := models.LoginLog{
		SessionID:   sessionID,
		Username:    input.Email,
		LoginAt:     &now,
		IPAddress:   ip,
		UserAgent:   ua,
		LoginStatus: "FAILED",
		CreatedAt:   now,
	}

	var mUser models.User
	result := c.DB.Where("email = ? OR username = ?", input.Email, input.Email).First(&mUser)
	if result.Error != nil {
		reason := "USER_NOT_FOUND"
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid username or password",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": result.Error.Error(),
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(mUser.Password), []byte(input.Password)) != nil {
		reason := "WRONG_PASSWORD"
		uid := uint64(mUser.ID)
		loginLog.UserID = &uid
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		return ctx.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	// one active session per user: deactivate any previous one
	c.DB.Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", mUser.ID, true).
		Updates(map[string]interface{}{"is_active": false, "last_activity_at": now})

	session := models.UserSession{
		UserID:         uint64(mUser.ID),
		SessionID:      sessionID,
		IPAddress:      ip,
		UserAgent:      ua,
		IsActive:       true,
		LastActivityAt: now,
		ExpiresAt:      now.Add(time.Duration(config.JWTExpiration) * time.Second),
	}
	c.DB.Create(&session)

	uid := uint64(mUser.ID)
	loginLog.UserID = &uid
	loginLog.LoginStatus = "SUCCESS"
	c.DB.Create(&loginLog)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    mUser.ID,
		"session_id": sessionID,
		"username":   mUser.Username,
		"exp":        now.Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
		"jti":        uuid.NewString(),
	})

	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	ctx.Cookie(config.GetTokenCookie(tokenString))

	permissions := []string{}
	var user models.User
	if err := c.DB.Preload("Roles.Permissions").First(&user, mUser.ID).Error; err == nil {
		seen := map[string]bool{}
		for _, role := range user.Roles {
			for _, perm := range role.Permissions {
				if !seen[perm.Name] {
					seen[perm.Name] = true
					permissions = append(permissions, perm.Name)
				}
			}
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token":       tokenString,
			"user_id":     mUser.ID,
			"username":    mUser.Username,
			"name":        mUser.Name,
			"permissions": permissions,
		},
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	now := time.Now()
	c.DB.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &now)

	var userSession models.UserSession
	if err := c.DB.Where("session_id = ? AND is_active = ?", sessionID, true).
		First(&userSession).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	userSession.IsActive = false
	userSession.LastActivityAt = now
	c.DB.Save(&userSession)

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (c *AuthController) IsLoggedIn(ctx *fiber.Ctx) error {
	claims, ok := ctx.Locals("userData").(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Not logged in",
		})
	}

	username, _ := claims["username"].(string)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged in",
		"data":    fiber.Map{"username": strings.TrimSpace(username)},
	})
}
