package registry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustrails/adviser-shield/pkg/common"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRegistryRouter() *gin.Engine {
	directory := NewStaticDirectory()
	service := NewService(NewVerifier(directory), directory, nil)
	handler := NewHandler(service)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestVerifyEndpoint(t *testing.T) {
	router := setupRegistryRouter()

	tests := []struct {
		name          string
		regNo         string
		expectedValid bool
	}{
		{"active registration", "INA000123456", true},
		{"suspended registration", "RA000987654", false},
		{"unknown registration", "INA00012345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(VerifyRequest{RegNo: tt.regNo})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/verify", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Success bool              `json:"success"`
				Data    RegistrationCheck `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, tt.expectedValid, resp.Data.Valid)
		})
	}
}

func TestVerifyEndpoint_MissingRegNo(t *testing.T) {
	router := setupRegistryRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestSearchEndpoint(t *testing.T) {
	router := setupRegistryRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/registry/search?q=research", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Query   string   `json:"query"`
			Count   int      `json:"count"`
			Results []Record `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "research", resp.Data.Query)
	assert.Equal(t, 2, resp.Data.Count)
}

func TestSearchEndpoint_NoResults(t *testing.T) {
	router := setupRegistryRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/registry/search?q=nonexistent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Count   int      `json:"count"`
			Results []Record `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Data.Count)
	assert.NotNil(t, resp.Data.Results)
}

func TestSearchEndpoint_MissingQuery(t *testing.T) {
	router := setupRegistryRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/registry/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
