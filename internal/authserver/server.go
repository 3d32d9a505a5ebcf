package authserver

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"eventwall/internal/config"
	"eventwall/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Server wires the auth routes onto a fiber app.
type Server struct {
	db     *gorm.DB
	config *config.Config
}

// NewServer creates an auth server over the given database.
func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{db: db, config: cfg}
}

// SetupRoutes registers the auth endpoints on the app.
func (s *Server) SetupRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)
}

type signupRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	University    string `json:"university"`
	StudentID     string `json:"student_id"`
	Password      string `json:"password"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// Signup handles POST /auth/signup.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		observability.AuthRequests.WithLabelValues("signup", "invalid").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.University == "" || req.Password == "" {
		observability.AuthRequests.WithLabelValues("signup", "invalid").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}
	if !req.TermsAccepted {
		observability.AuthRequests.WithLabelValues("signup", "invalid").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Terms must be accepted"})
	}

	var existing Account
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		observability.AuthRequests.WithLabelValues("signup", "duplicate").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		observability.AuthRequests.WithLabelValues("signup", "error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		observability.AuthRequests.WithLabelValues("signup", "error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	account := Account{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		University:    req.University,
		StudentID:     req.StudentID,
		Password:      string(hashed),
		TermsAccepted: req.TermsAccepted,
	}
	if err := s.db.Create(&account).Error; err != nil {
		observability.AuthRequests.WithLabelValues("signup", "error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	observability.AuthRequests.WithLabelValues("signup", "ok").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		observability.AuthRequests.WithLabelValues("login", "invalid").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	var account Account
	err := s.db.Where("email = ?", req.Email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		observability.AuthRequests.WithLabelValues("login", "rejected").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	}
	if err != nil {
		observability.AuthRequests.WithLabelValues("login", "error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		observability.AuthRequests.WithLabelValues("login", "rejected").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	token, err := s.generateToken(account.ID)
	if err != nil {
		observability.AuthRequests.WithLabelValues("login", "error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	observability.AuthRequests.WithLabelValues("login", "ok").Inc()
	return c.JSON(fiber.Map{
		"token": token,
		"user":  account,
	})
}

// generateToken creates a JWT token for the given account ID.
func (s *Server) generateToken(accountID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(accountID), 10),
		"iss": "eventwall-api",
		"aud": "eventwall-client",
		"exp": now.Add(24 * time.Hour).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks.
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
