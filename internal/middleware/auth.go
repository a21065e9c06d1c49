package middleware

import (
	"net/http"
	"strings"

	"maritime-service/pkg/jwtutil"
	"maritime-service/pkg/logger"
	"maritime-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// JWTAuth verifies the bearer token and stores the account identity in the
// request context. Issuer, audience, lifetime and signature are all checked
// by the token utility; any failure rejects the request.
func JWTAuth(jwt *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			// Track authentication attempts
			prometheus.AuthAttemptsCounter.Inc()

			// Extract the token from the Authorization header
			tokenString := c.Request().Header.Get("Authorization")
			if tokenString == "" {
				log.Warn("Missing authorization token")
				prometheus.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
			}

			// Remove "Bearer " prefix if present
			if len(tokenString) > 7 && strings.EqualFold(tokenString[0:7], "Bearer ") {
				tokenString = tokenString[7:]
			}

			// Validate the token
			claims, err := jwt.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Invalid token", zap.Error(err))
				prometheus.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid or expired token"})
			}

			prometheus.AuthSuccessCounter.Inc()

			// Store account information in the context
			c.Set("username", claims.Username)
			c.Set("email", claims.Email)

			// Update logger with account information
			c.Set("logger", log.With(
				zap.String("username", claims.Username),
				zap.String("email", claims.Email),
			))

			return next(c)
		}
	}
}
