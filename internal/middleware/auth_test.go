package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"grc-track-go/internal/model"
	"grc-track-go/pkg/token"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUserService struct {
	user    *model.User
	revoked bool
}

func (m *mockUserService) Login(username, password string) (string, *model.User, error) {
	return "", nil, nil
}
func (m *mockUserService) Logout(tokenString string) error { return nil }
func (m *mockUserService) IsTokenRevoked(ctx context.Context, tokenString string) (bool, error) {
	return m.revoked, nil
}
func (m *mockUserService) GetByID(userID uint) (*model.User, error) {
	if m.user == nil {
		return nil, errors.New("user not found")
	}
	return m.user, nil
}

func newAuthRouter(jwtManager *token.JWTManager, svc *mockUserService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(jwtManager, svc), func(c *gin.Context) {
		claims := c.MustGet("claims").(*token.CustomClaims)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := newAuthRouter(token.NewJWTManager("test-secret", 1), &mockUserService{})

	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status = %d, want 401", w.Code)
	}
	if w := doGet(r, "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong scheme: status = %d, want 401", w.Code)
	}
	if w := doGet(r, "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := token.NewJWTManager("test-secret", -1)
	tokenString, err := expired.GenerateToken(1, "admin", "admin", nil)
	if err != nil {
		t.Fatal(err)
	}

	r := newAuthRouter(token.NewJWTManager("test-secret", 1), &mockUserService{})
	if w := doGet(r, "Bearer "+tokenString); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRevokedToken(t *testing.T) {
	jwtManager := token.NewJWTManager("test-secret", 1)
	tokenString, err := jwtManager.GenerateToken(1, "admin", "admin", nil)
	if err != nil {
		t.Fatal(err)
	}

	r := newAuthRouter(jwtManager, &mockUserService{
		user:    &model.User{ID: 1, Username: "admin", Role: model.RoleAdmin},
		revoked: true,
	})
	if w := doGet(r, "Bearer "+tokenString); w.Code != http.StatusUnauthorized {
		t.Errorf("revoked token: status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	jwtManager := token.NewJWTManager("test-secret", 1)
	tokenString, err := jwtManager.GenerateToken(1, "admin@kpmg.com", "admin", nil)
	if err != nil {
		t.Fatal(err)
	}

	r := newAuthRouter(jwtManager, &mockUserService{
		user: &model.User{ID: 1, Username: "admin@kpmg.com", Role: model.RoleAdmin},
	})
	w := doGet(r, "Bearer "+tokenString)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	newRouter := func(user *model.User) *gin.Engine {
		r := gin.New()
		r.GET("/protected", func(c *gin.Context) {
			c.Set("user", user)
			c.Next()
		}, AdminAuthMiddleware(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	if w := doGet(newRouter(&model.User{Role: model.RoleAdmin}), ""); w.Code != http.StatusOK {
		t.Errorf("admin: status = %d, want 200", w.Code)
	}
	if w := doGet(newRouter(&model.User{Role: model.RoleDirector}), ""); w.Code != http.StatusForbidden {
		t.Errorf("director: status = %d, want 403", w.Code)
	}
}
