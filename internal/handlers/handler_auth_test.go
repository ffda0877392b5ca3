package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/dto"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/handlers"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "inbound-test",
		EditorAccessCode:  "op-code-1234",
	}
	suite.router = gin.New()
	h := handlers.NewAuthHandler(suite.cfg)
	suite.router.POST("/api/v1/auth/token", h.IssueToken)
}

func (suite *AuthHandlerTestSuite) postToken(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestIssueToken_Success() {
	w := suite.postToken(dto.TokenRequest{AccessCode: "op-code-1234"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TokenResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.True(resp.ExpiresAt.After(time.Now()))

	// The issued token is verifiable with the configured secret.
	parsed, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	suite.NoError(err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	suite.Equal("inbound-editor", claims.Subject)
	suite.Equal("inbound-test", claims.Issuer)
}

func (suite *AuthHandlerTestSuite) TestIssueToken_WrongCode() {
	w := suite.postToken(dto.TokenRequest{AccessCode: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestIssueToken_MissingCode() {
	w := suite.postToken(map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestIssueToken_DisabledWithoutConfiguredCode() {
	suite.cfg.EditorAccessCode = ""
	router := gin.New()
	h := handlers.NewAuthHandler(suite.cfg)
	router.POST("/api/v1/auth/token", h.IssueToken)

	payload, _ := json.Marshal(dto.TokenRequest{AccessCode: "anything"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
