package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardtoken/internal/config"
	"github.com/allisson/cardtoken/internal/metrics"
	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
	paymentHTTP "github.com/allisson/cardtoken/internal/payment/http"
	"github.com/allisson/cardtoken/internal/payment/usecase/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestServer creates a test server without a database.
func createTestServer() *Server {
	return NewServer(nil, "localhost", 0, discardLogger())
}

// createRoutedServer creates a server with the full router and a mocked payment use case.
func createRoutedServer(t *testing.T, cfg *config.Config) (*Server, *mocks.MockPaymentUseCase) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	mockUseCase := mocks.NewMockPaymentUseCase(t)
	handler := paymentHTTP.NewPaymentHandler(mockUseCase, discardLogger())

	server := createTestServer()
	server.SetupRouter(ctx, cfg, handler, nil)

	return server, mockUseCase
}

func postJSON(handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)
	return w
}

// TestHealthHandler tests the health check endpoint handler.
func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
}

func TestReadinessHandler(t *testing.T) {
	t.Run("NotReady_NilDB", func(t *testing.T) {
		server := createTestServer()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not_ready","components":{"database":"error"}}`, w.Body.String())
	})

	t.Run("Ready_PingSucceeds", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		dbMock.ExpectPing()

		server := NewServer(db, "localhost", 0, discardLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","components":{"database":"ok"}}`, w.Body.String())
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("NotReady_PingFails", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))

		server := NewServer(db, "localhost", 0, discardLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

// TestCustomLoggerMiddleware tests the custom logging middleware.
func TestCustomLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/test", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, w.Header().Get("X-Request-Id"), entry["request_id"])
}

// TestRecoveryMiddleware tests Gin's built-in recovery middleware.
func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_Endpoints(t *testing.T) {
	cfg := &config.Config{RateLimitEnabled: false}

	t.Run("Health", func(t *testing.T) {
		server, _ := createRoutedServer(t, cfg)

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("Ready_NoDatabase", func(t *testing.T) {
		server, _ := createRoutedServer(t, cfg)

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Tokenize", func(t *testing.T) {
		server, mockUseCase := createRoutedServer(t, cfg)

		mockUseCase.On("Tokenize", mock.Anything, mock.Anything).
			Return(&paymentDomain.Token{Value: "abc"}, nil).
			Once()

		w := postJSON(server.GetHandler(), "/v1/cards/tokenize", map[string]any{
			"number":          "4111111111111111",
			"expiration_date": "12/2030",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"token":"abc"}`, w.Body.String())
	})

	t.Run("Authorize", func(t *testing.T) {
		server, mockUseCase := createRoutedServer(t, cfg)

		mockUseCase.On("Authorize", mock.Anything, mock.Anything).
			Return(&paymentDomain.Transaction{
				ID:        uuid.Must(uuid.NewV7()),
				Amount:    "1.00",
				Status:    paymentDomain.TransactionStatusAuthorized,
				CreatedAt: time.Now(),
			}, nil).
			Once()

		w := postJSON(server.GetHandler(), "/v1/transactions", map[string]any{"token": "abc", "amount": "1.00"})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		server, _ := createRoutedServer(t, cfg)

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("NoMetricsEndpoint", func(t *testing.T) {
		server, _ := createRoutedServer(t, cfg)

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_RateLimited(t *testing.T) {
	cfg := &config.Config{
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 0.1,
		RateLimitBurst:          1,
	}
	server, mockUseCase := createRoutedServer(t, cfg)

	mockUseCase.On("Tokenize", mock.Anything, mock.Anything).
		Return(&paymentDomain.Token{Value: "abc"}, nil).
		Once()

	body := map[string]any{"number": "4111111111111111", "expiration_date": "12/2030"}

	w := postJSON(server.GetHandler(), "/v1/cards/tokenize", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(server.GetHandler(), "/v1/cards/tokenize", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Health checks are outside the rate limited group.
	w = httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_WithMetrics(t *testing.T) {
	provider, err := metrics.NewProvider("cardtoken_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockUseCase := mocks.NewMockPaymentUseCase(t)
	mockUseCase.On("Tokenize", mock.Anything, mock.Anything).Return(nil, paymentDomain.ErrCardChecksum).Once()

	server := createTestServer()
	server.SetupRouter(
		ctx,
		&config.Config{MetricsNamespace: "cardtoken_test"},
		paymentHTTP.NewPaymentHandler(mockUseCase, discardLogger()),
		provider,
	)

	w := postJSON(server.GetHandler(), "/v1/cards/tokenize", map[string]any{
		"number":          "4111111111111112",
		"expiration_date": "12/2030",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	metricsServer, err := NewMetricsServer("localhost", 0, discardLogger(), provider)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "cardtoken_test_http_requests_total")
	assert.Contains(t, w.Body.String(), `path="/v1/cards/tokenize"`)
}

func TestNewMetricsServer_RequiresProvider(t *testing.T) {
	metricsServer, err := NewMetricsServer("localhost", 0, discardLogger(), nil)
	assert.Error(t, err)
	assert.Nil(t, metricsServer)
}

func TestMetricsServer_StartPortInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = occupied.Close() }()

	provider, err := metrics.NewProvider("cardtoken_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	port := occupied.Addr().(*net.TCPAddr).Port
	metricsServer, err := NewMetricsServer("127.0.0.1", port, discardLogger(), provider)
	require.NoError(t, err)

	err = metricsServer.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start metrics server")
}

func TestServer_StartWithoutRouter(t *testing.T) {
	server := createTestServer()
	assert.Error(t, server.Start(context.Background()))
}

// TestServer_ShutdownGracefully tests graceful server shutdown.
func TestServer_ShutdownGracefully(t *testing.T) {
	server, _ := createRoutedServer(t, &config.Config{})

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	assert.NoError(t, server.Shutdown(shutdownCtx))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
