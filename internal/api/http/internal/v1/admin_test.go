package v1

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/domain"
	"github.com/vopial/kyc-backend/internal/service"
	"github.com/vopial/kyc-backend/pkg/auth"
)

func adminToken(t *testing.T, role string) string {
	t.Helper()

	m, err := auth.NewManager(config.JWTConfig{
		AccessTokenTTL: time.Hour,
		SigningKey:     "test-signing-key",
	})
	require.NoError(t, err)

	token, _, err := m.NewJWT("admin@example.com", role)
	require.NoError(t, err)

	return token
}

func TestAdminLoginEndpoint(t *testing.T) {
	postLogin := func(router *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return doRequest(router, req)
	}

	t.Run("sets the token cookie", func(t *testing.T) {
		admin := new(adminServiceMock)
		router := setupRouter(t, &service.Services{Admin: admin})

		admin.On("Login", mock.Anything, "admin@example.com", "secret").
			Return("signed-token", time.Hour, nil)

		recorder := postLogin(router, `{"email":"admin@example.com","password":"secret"}`)

		var resp response
		decodeBody(t, recorder, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "Logged in successfully.", resp.Message)

		token, ok := cookieValue(recorder, tokenCookie)
		require.True(t, ok)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		admin := new(adminServiceMock)
		router := setupRouter(t, &service.Services{Admin: admin})

		admin.On("Login", mock.Anything, "admin@example.com", "wrong").
			Return("", time.Duration(0), service.ErrInvalidCredentials)

		recorder := postLogin(router, `{"email":"admin@example.com","password":"wrong"}`)

		var resp response
		decodeBody(t, recorder, &resp)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)

		_, ok := cookieValue(recorder, tokenCookie)
		assert.False(t, ok)
	})

	t.Run("malformed payload", func(t *testing.T) {
		admin := new(adminServiceMock)
		router := setupRouter(t, &service.Services{Admin: admin})

		recorder := postLogin(router, `{"email":"not-an-email"}`)

		var resp response
		decodeBody(t, recorder, &resp)
		assert.False(t, resp.Success)
		admin.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAdminUsersEndpoint(t *testing.T) {
	getUsers := func(router *gin.Engine, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: tokenCookie, Value: token})
		}
		return doRequest(router, req)
	}

	t.Run("lists registrants for an admin", func(t *testing.T) {
		registrations := new(registrationsServiceMock)
		router := setupRouter(t, &service.Services{Registrations: registrations})

		registrations.On("GetAll", mock.Anything).Return([]domain.Registration{
			{ContactEmail: "alice@acme.com"},
			{ContactEmail: "bob@acme.com"},
		}, nil)

		recorder := getUsers(router, adminToken(t, "admin"))
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp usersResponse
		decodeBody(t, recorder, &resp)
		assert.True(t, resp.Success)
		require.Len(t, resp.Users, 2)
		assert.Equal(t, "alice@acme.com", resp.Users[0].ContactEmail)
	})

	t.Run("rejections are indistinguishable", func(t *testing.T) {
		tests := []struct {
			name  string
			token string
		}{
			{name: "no cookie", token: ""},
			{name: "garbage token", token: "not-a-token"},
			{name: "wrong role", token: adminToken(t, "user")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				registrations := new(registrationsServiceMock)
				router := setupRouter(t, &service.Services{Registrations: registrations})

				recorder := getUsers(router, tt.token)
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp response
				decodeBody(t, recorder, &resp)
				assert.False(t, resp.Success)
				assert.Equal(t, "Unauthorized", resp.Message)
				registrations.AssertNotCalled(t, "GetAll", mock.Anything)
			})
		}
	})
}

func TestAdminReadFileEndpoint(t *testing.T) {
	postReadFile := func(router *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/read-file", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: tokenCookie, Value: adminToken(t, "admin")})
		return doRequest(router, req)
	}

	t.Run("returns the document base64-encoded", func(t *testing.T) {
		documents := new(documentsServiceMock)
		router := setupRouter(t, &service.Services{Documents: documents})

		documents.On("Fetch", mock.Anything, "https://ik.imagekit.io/demo/front.jpg").
			Return([]byte("jpeg-bytes"), nil)

		recorder := postReadFile(router, `{"filePath":"https://ik.imagekit.io/demo/front.jpg"}`)

		var resp fileResponse
		decodeBody(t, recorder, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "File loaded successfully.", resp.Message)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")), resp.FileBuffer)
	})

	t.Run("missing path", func(t *testing.T) {
		documents := new(documentsServiceMock)
		router := setupRouter(t, &service.Services{Documents: documents})

		recorder := postReadFile(router, `{}`)

		var resp response
		decodeBody(t, recorder, &resp)
		assert.False(t, resp.Success)
		assert.Equal(t, "Data in the fields not found", resp.Message)
		documents.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})

	t.Run("fetch failure", func(t *testing.T) {
		documents := new(documentsServiceMock)
		router := setupRouter(t, &service.Services{Documents: documents})

		documents.On("Fetch", mock.Anything, "https://ik.imagekit.io/demo/missing.jpg").
			Return(nil, errors.New("status 404"))

		recorder := postReadFile(router, `{"filePath":"https://ik.imagekit.io/demo/missing.jpg"}`)

		var resp response
		decodeBody(t, recorder, &resp)
		assert.False(t, resp.Success)
		assert.Equal(t, "Failed to read file. Please try again later.", resp.Message)
	})
}
