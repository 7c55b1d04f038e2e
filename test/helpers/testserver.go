package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"recruitment_backend/database"
	"recruitment_backend/internal/app"
	"recruitment_backend/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer - приложение поверх отдельной in-memory SQLite базы.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	App    *app.App
	Config *config.Config
}

// Option меняет конфигурацию до сборки приложения.
type Option func(t *testing.T, cfg *config.Config)

// WithRedisSessions хранит сессии в miniredis.
func WithRedisSessions() Option {
	return func(t *testing.T, cfg *config.Config) {
		mr := miniredis.RunT(t)
		cfg.Session.Store = "redis"
		cfg.Redis.URL = "redis://" + mr.Addr()
	}
}

// WithMaxUpload ограничивает размер резюме.
func WithMaxUpload(size int64) Option {
	return func(t *testing.T, cfg *config.Config) {
		cfg.Upload.MaxSize = size
	}
}

// NewTestServer создает сервер; все закрывается через t.Cleanup.
func NewTestServer(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	db, err := database.Open(fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString()), database.Options{Env: "test"})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.AutoMigrate(db))

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.SecretKey = "test-secret-key"
	cfg.Storage.BasePath = t.TempDir()
	for _, opt := range opts {
		opt(t, cfg)
	}
	require.NoError(t, cfg.Validate())

	application, err := app.New(context.Background(), cfg, db)
	require.NoError(t, err, "failed to build application")

	server := httptest.NewServer(application.Router)
	ts := &TestServer{Server: server, DB: db, App: application, Config: cfg}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Client - браузер с cookie; редиректы не выполняются, чтобы их проверять.
type Client struct {
	ts   *TestServer
	http *http.Client
}

func (ts *TestServer) NewClient(t *testing.T) *Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &Client{
		ts: ts,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Get запрашивает HTML-страницу.
func (c *Client) Get(t *testing.T, path string) (*http.Response, string) {
	return c.do(t, http.MethodGet, path, "", nil, "text/html")
}

// GetJSON запрашивает ту же страницу в JSON.
func (c *Client) GetJSON(t *testing.T, path string) (*http.Response, string) {
	return c.do(t, http.MethodGet, path, "", nil, "application/json")
}

// PostForm отправляет обычную HTML-форму.
func (c *Client) PostForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	return c.do(t, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), "text/html")
}

// PostAction отправляет форму как асинхронное действие и ждет JSON.
func (c *Client) PostAction(t *testing.T, path string, form url.Values) (*http.Response, string) {
	return c.do(t, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), "application/json")
}

// PostMultipart отправляет поля и, если fileName не пуст, файл cv_file.
func (c *Client) PostMultipart(t *testing.T, path string, fields map[string]string, fileName string, content []byte) (*http.Response, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("cv_file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return c.do(t, http.MethodPost, path, w.FormDataContentType(), &body, "application/json")
}

func (c *Client) do(t *testing.T, method, path, contentType string, body io.Reader, accept string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, c.ts.Server.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", accept)

	res, err := c.http.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(data)
}
