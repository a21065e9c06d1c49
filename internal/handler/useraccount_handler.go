package handler

import (
	"net/http"
	"time"

	"maritime-service/internal/service"
	"maritime-service/pkg/jwtutil"
	"maritime-service/pkg/logger"
	"maritime-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserAccountRequest defines the structure for registration and login requests
type UserAccountRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}

// UserAccountHandler exposes registration and token issuance over HTTP
type UserAccountHandler struct {
	accounts *service.AccountService
	jwt      *jwtutil.JWTUtil
}

// NewUserAccountHandler creates a user account handler
func NewUserAccountHandler(accounts *service.AccountService, jwt *jwtutil.JWTUtil) *UserAccountHandler {
	return &UserAccountHandler{accounts: accounts, jwt: jwt}
}

// RegisterUser registers a new user
func (h *UserAccountHandler) RegisterUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req UserAccountRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAccountError("invalid_request")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}
	if err := c.Validate(&req); err != nil {
		prometheus.RecordAccountError("invalid_request")
		return err
	}

	creds := service.Credentials{Username: req.Username, Email: req.Email, Password: req.Password}

	// Check if the username or email is already taken
	defer prometheus.TrackDBOperation("query")(time.Now())
	exists, err := h.accounts.UserExists(creds)
	if err != nil {
		return err
	}
	if exists {
		log.Warn("Registration failed: username or email already exists",
			zap.String("username", req.Username))
		prometheus.RecordAccountError("duplicate_account")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username or email already exists"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.accounts.Register(creds); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User registered successfully"})
}

// GetToken issues a JWT for valid credentials
func (h *UserAccountHandler) GetToken(c echo.Context) error {
	log := logger.FromContext(c)

	var req UserAccountRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse token request", zap.Error(err))
		prometheus.RecordAccountError("invalid_request")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}
	if err := c.Validate(&req); err != nil {
		prometheus.RecordAccountError("invalid_request")
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	ok, err := h.accounts.VerifyCredentials(service.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	if !ok {
		log.Warn("Token generation failed: invalid username or password",
			zap.String("username", req.Username))
		prometheus.RecordAccountError("invalid_credentials")
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
	}

	token, err := h.jwt.GenerateToken(req.Username, req.Email)
	if err != nil {
		return err
	}
	prometheus.TokenIssuedCounter.Inc()

	log.Info("Token issued", zap.String("username", req.Username))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
