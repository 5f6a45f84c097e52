package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/forest_fire_monitoring/internal/config"
	"github.com/shenikar/forest_fire_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

const actorContextKey = "actor"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warnf("Invalid API key provided: %s", apiKey)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// ActorMiddleware извлекает действующего пользователя из заголовков
// X-User-Email и X-User-Name. Роль выводится из префикса email - правило
// оригинального экрана входа сохранено намеренно. Заголовки опциональны:
// мутирующие обработчики сами требуют наличие актора.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader("X-User-Email"))
		if email == "" {
			c.Next()
			return
		}

		name := strings.TrimSpace(c.GetHeader("X-User-Name"))
		if name == "" {
			name = displayNameFromEmail(email)
		}

		c.Set(actorContextKey, models.User{
			Name:   name,
			Email:  email,
			Role:   models.RoleFromEmail(email),
			Status: models.UserStatusActive,
		})
		c.Next()
	}
}

// actorFromContext возвращает действующего пользователя запроса
func actorFromContext(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return models.User{}, false
	}
	actor, ok := value.(models.User)
	return actor, ok
}

// displayNameFromEmail строит отображаемое имя из локальной части email
// с заглавной первой буквой, как это делал оригинальный экран входа
func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
