package handler

import (
	"errors"
	"net/http"
	"strings"

	"littlelemon/internal/app/auth"
	"littlelemon/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const BearerPrefix = "Bearer "

// authenticate пробует JWT из заголовка, затем cookie сессию
func (h *Handler) authenticate(c *gin.Context) (repository.PublicUser, error) {
	// Приоритет 1: JWT токен из заголовка Authorization
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, BearerPrefix) {
		tokenString := authHeader[len(BearerPrefix):]
		if user, err := h.authenticateByJWT(tokenString); err == nil {
			return user, nil
		}
	}

	// Приоритет 2: Cookie сессия
	sessionID, err := c.Cookie("session_id")
	if err == nil && sessionID != "" {
		return h.authenticateBySession(c, sessionID)
	}

	return repository.PublicUser{}, errors.New("no authentication method found")
}

// WithAuthCheck проверяет авторизацию через JWT или cookie сессию
func (h *Handler) WithAuthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.authenticate(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(auth.UserContextKey, user)
		c.Next()
	}
}

// WithOptionalAuth авторизует если получится, иначе пропускает анонимно.
// Используется на HTML страницах: счётчик корзины для вошедших.
func (h *Handler) WithOptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := h.authenticate(c); err == nil {
			c.Set(auth.UserContextKey, user)
		}
		c.Next()
	}
}

// withRoleCheck авторизует и затем проверяет роль предикатом
func (h *Handler) withRoleCheck(role string, allowed func(repository.PublicUser) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.authenticate(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(auth.UserContextKey, user)

		if !allowed(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " required"})
			return
		}

		c.Next()
	}
}

// WithStaffCheck пропускает только администраторов (is_staff)
func (h *Handler) WithStaffCheck() gin.HandlerFunc {
	return h.withRoleCheck("staff", func(u repository.PublicUser) bool {
		return u.IsStaff
	})
}

// WithManagerCheck пропускает менеджеров и администраторов
func (h *Handler) WithManagerCheck() gin.HandlerFunc {
	return h.withRoleCheck("manager", func(u repository.PublicUser) bool {
		return u.IsManager || u.IsStaff
	})
}

// WithDeliveryCrewCheck пропускает курьеров, менеджеров и администраторов
func (h *Handler) WithDeliveryCrewCheck() gin.HandlerFunc {
	return h.withRoleCheck("delivery crew", func(u repository.PublicUser) bool {
		return u.IsDeliveryCrew || u.IsManager || u.IsStaff
	})
}

// authenticateByJWT аутентифицирует пользователя по JWT токену
func (h *Handler) authenticateByJWT(tokenString string) (repository.PublicUser, error) {
	claims, err := auth.ParseToken(tokenString, h.JWTSecret)
	if err != nil {
		return repository.PublicUser{}, err
	}

	// Загружаем актуальные данные пользователя из БД
	user, err := h.Repository.GetUserByID(claims.UserID)
	if err != nil {
		return repository.PublicUser{}, err
	}

	return user, nil
}

// authenticateBySession аутентифицирует пользователя по сессии в Redis
func (h *Handler) authenticateBySession(c *gin.Context, sessionID string) (repository.PublicUser, error) {
	userID, err := h.RedisClient.GetUserIDBySession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return repository.PublicUser{}, errors.New("session not found")
		}
		return repository.PublicUser{}, err
	}

	// Загружаем данные пользователя из БД
	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		return repository.PublicUser{}, err
	}

	return user, nil
}
