package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// tokenWith builds an unsigned JWT carrying the given claims payload.
// Signature validation happens upstream, so a fake signature segment is
// enough here.
func tokenWith(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)
	return header + "." + body + ".sig"
}

func TestExtractClaims(t *testing.T) {
	token := tokenWith(t, map[string]interface{}{
		"email":              "maria@salomao.adv.br",
		"preferred_username": "maria",
		"realm_access":       map[string]interface{}{"roles": []string{"crm-admin"}},
	})

	claims, err := extractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "maria@salomao.adv.br", claims.Email)
	assert.Equal(t, []string{"crm-admin"}, claims.RealmAccess.Roles)
}

func TestExtractClaims_Malformed(t *testing.T) {
	_, err := extractClaims("not.a")
	assert.Error(t, err)

	_, err = extractClaims("a.!!!.c")
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(AuthMiddleware())
	router.GET("/x", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": UserEmail(c)})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Basic abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := tokenWith(t, map[string]interface{}{"email": "joana@salomao.adv.br"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "joana@salomao.adv.br")
	})
}

func TestRequireAdmin(t *testing.T) {
	config.AppConfig = &config.Config{AdminGroup: "crm-admin"}

	router := gin.New()
	router.Use(AuthMiddleware(), RequireAdmin())
	router.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("without role", func(t *testing.T) {
		token := tokenWith(t, map[string]interface{}{
			"email":        "sem-acesso@salomao.adv.br",
			"realm_access": map[string]interface{}{"roles": []string{"user"}},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("with role", func(t *testing.T) {
		token := tokenWith(t, map[string]interface{}{
			"email":        "admin@salomao.adv.br",
			"realm_access": map[string]interface{}{"roles": []string{"crm-admin"}},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUserEmail_FallsBackToPreferredUsername(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("claims", &models.JWTClaims{PreferredUsername: "paulo@salomao.adv.br"})

	assert.Equal(t, "paulo@salomao.adv.br", UserEmail(c))
}
