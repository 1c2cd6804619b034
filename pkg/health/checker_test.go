package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseChecker_NilDB(t *testing.T) {
	checker := DatabaseChecker(nil)
	assert.EqualError(t, checker(), "database connection is nil")
}

func TestRedisChecker_NilClient(t *testing.T) {
	checker := RedisChecker(nil)
	assert.EqualError(t, checker(), "redis client is nil")
}

func TestHTTPEndpointChecker_Healthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := HTTPEndpointChecker(server.URL)
	assert.NoError(t, checker())
}

func TestHTTPEndpointChecker_Unhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	checker := HTTPEndpointChecker(server.URL)
	assert.Error(t, checker())
}

func TestHTTPEndpointChecker_Unreachable(t *testing.T) {
	checker := HTTPEndpointChecker("http://127.0.0.1:0")
	assert.Error(t, checker())
}
