package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_fileapi_backend/models"
	"go_fileapi_backend/queue"
	"go_fileapi_backend/routes"
	"go_fileapi_backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles the wired router with the pieces tests poke at directly
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	queue  *queue.FileQueue
	store  *services.FileStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite database")
	require.NoError(t, models.MigrateUserModels(db))
	require.NoError(t, models.MigrateFileModels(db))

	store, err := services.NewFileStore(t.TempDir())
	require.NoError(t, err)

	q := queue.NewFileQueue()
	router := gin.New()
	routes.SetupRoutes(router, db, q, store)

	return &testEnv{router: router, db: db, queue: q, store: store}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) upload(t *testing.T, filename string, contents []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-file/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), "decode response body")
	return decoded
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	var decoded []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), "decode response list")
	return decoded
}
