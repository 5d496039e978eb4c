package controllers

import (
	"Backend-QuestForge/src/models"
	"Backend-QuestForge/src/services/auth"
	"Backend-QuestForge/src/utils"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const refreshTokenTTL = 7 * 24 * time.Hour

// RegisterUser godoc
// @Summary      Register a new account
// @Description  Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.RegisterRequest true "Registration payload"
// @Success      201  {object}  models.User
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := auth.RegisterUser(c.Context(), &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginUser godoc
// @Summary      Log in with email and password
// @Description  Returns an access token and a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := auth.AuthenticateUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"expiresIn":    86400,
		"user":         user,
	})
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	type refreshRequest struct {
		UserID       string `json:"userId"`
		RefreshToken string `json:"refreshToken"`
	}

	var req refreshRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" || req.RefreshToken == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "userId and refreshToken are required")
	}

	valid, err := utils.ValidateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil || !valid {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	userID, err := parseObjectID(req.UserID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	user, err := auth.GetUserByID(c.Context(), userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	// rotate the refresh token on every use
	newRefresh := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(user.ID.Hex(), newRefresh, refreshTokenTTL); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": newRefresh,
		"expiresIn":    86400,
	})
}

// LogoutUser godoc
// @Summary      Log out
// @Description  Revokes the access token and deletes the refresh token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/logout [post]
func LogoutUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	authHeader := c.Get("Authorization")
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr != "" {
		_ = utils.BlacklistToken(tokenStr, 24*time.Hour)
	}
	if userID != "" {
		_ = utils.DeleteRefreshToken(userID)
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}
