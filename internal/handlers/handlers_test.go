package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/idgen-api/internal/domain/vo"
	handlermocks "github.com/joshuarp/idgen-api/internal/mock/handlers"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func performRequest(app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}, []byte) {
	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, nil
	}

	defer resp.Body.Close()
	rawBody, _ := io.ReadAll(resp.Body)
	parsed := map[string]interface{}{}
	_ = json.Unmarshal(rawBody, &parsed)

	return resp, parsed, rawBody
}

func performJSONRequest(app *fiber.App, method, path string, body []byte) (*http.Response, map[string]interface{}, []byte) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return performRequest(app, req)
}

type AuthTokenHandlerSuite struct {
	suite.Suite

	service *handlermocks.AuthTokenService
	handler *AuthTokenHandler
	app     *fiber.App
}

func (s *AuthTokenHandlerSuite) SetupTest() {
	s.service = handlermocks.NewAuthTokenService(s.T())
	s.handler = NewAuthTokenHandler(s.service, newTestLogger())
	s.app = fiber.New()
	s.handler.Register(s.app)
}

func (s *AuthTokenHandlerSuite) TestHandle_TableDriven() {
	serviceErr := errors.New("db down")

	tests := []struct {
		name        string
		body        []byte
		contentType string
		setupMock   func()
		assertion   func(*http.Response, map[string]interface{})
	}{
		{
			name:        "invalid body",
			body:        []byte(`{"client_id":`),
			contentType: fiber.MIMEApplicationJSON,
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid request body", payload["error"])
			},
		},
		{
			name:        "missing credentials",
			body:        []byte(`{"client_id":"svc-a","client_secret":" "}`),
			contentType: fiber.MIMEApplicationJSON,
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "client_id and client_secret are required", payload["error"])
			},
		},
		{
			name:        "invalid credentials",
			body:        []byte(`{"client_id":"svc-a","client_secret":"wrong"}`),
			contentType: fiber.MIMEApplicationJSON,
			setupMock: func() {
				s.service.EXPECT().IssueToken(mock.Anything, "svc-a", "wrong").Return(vo.AuthToken{}, vo.ErrInvalidCredentials)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "invalid client credentials", payload["error"])
			},
		},
		{
			name:        "service failure",
			body:        []byte(`{"client_id":"svc-a","client_secret":"s3cret"}`),
			contentType: fiber.MIMEApplicationJSON,
			setupMock: func() {
				s.service.EXPECT().IssueToken(mock.Anything, "svc-a", "s3cret").Return(vo.AuthToken{}, serviceErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
		{
			name:        "json credentials",
			body:        []byte(`{"client_id":"svc-a","client_secret":"s3cret"}`),
			contentType: fiber.MIMEApplicationJSON,
			setupMock: func() {
				s.service.EXPECT().IssueToken(mock.Anything, "svc-a", "s3cret").Return(vo.AuthToken{
					AccessToken: "jwt-token",
					TokenType:   "Bearer",
					ExpiresIn:   900,
					Scope:       []string{"ids:write"},
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "no-store", resp.Header.Get(fiber.HeaderCacheControl))
				assert.Equal(s.T(), "jwt-token", payload["access_token"])
				assert.Equal(s.T(), "Bearer", payload["token_type"])
				assert.Equal(s.T(), float64(900), payload["expires_in"])
			},
		},
		{
			name:        "form credentials",
			body:        []byte(`client_id=svc-a&client_secret=s3cret`),
			contentType: fiber.MIMEApplicationForm,
			setupMock: func() {
				s.service.EXPECT().IssueToken(mock.Anything, "svc-a", "s3cret").Return(vo.AuthToken{AccessToken: "jwt-token", TokenType: "Bearer"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "jwt-token", payload["access_token"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(tc.body))
			req.Header.Set(fiber.HeaderContentType, tc.contentType)
			resp, payload, _ := performRequest(s.app, req)
			tc.assertion(resp, payload)
		})
	}
}

func TestAuthTokenHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthTokenHandlerSuite))
}

type IDIssueHandlerSuite struct {
	suite.Suite

	service *handlermocks.IDIssueService
	app     *fiber.App
}

func (s *IDIssueHandlerSuite) SetupTest() {
	s.service = handlermocks.NewIDIssueService(s.T())
	s.app = fiber.New()
	s.app.Get("/ids", NewIDIssueHandler(s.service, newTestLogger()).Handle)
	s.app.Post("/ids/batch", NewIDIssueBatchHandler(s.service, newTestLogger()).Handle)
}

func (s *IDIssueHandlerSuite) TestHandle_TableDriven() {
	regression := &shareduid.ClockRegressionError{Last: 10, Current: 7}

	tests := []struct {
		name      string
		setupMock func()
		assertion func(*http.Response, map[string]interface{}, []byte)
	}{
		{
			name: "issues id as number and string",
			setupMock: func() {
				s.service.EXPECT().Issue(mock.Anything).Return(vo.NewIssuedID(shareduid.ID(9007199254740991)), nil)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, raw []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.JSONEq(s.T(), `{"id":9007199254740991,"id_str":"9007199254740991"}`, string(raw))
			},
		},
		{
			name: "clock regression is retryable",
			setupMock: func() {
				s.service.EXPECT().Issue(mock.Anything).Return(vo.IssuedID{}, fmt.Errorf("service: failed to issue id: %w", regression))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusServiceUnavailable, resp.StatusCode)
				assert.Equal(s.T(), "1", resp.Header.Get(fiber.HeaderRetryAfter))
				assert.Equal(s.T(), "clock moved backwards, retry shortly", payload["error"])
			},
		},
		{
			name: "timestamp out of range",
			setupMock: func() {
				s.service.EXPECT().Issue(mock.Anything).Return(vo.IssuedID{}, shareduid.ErrTimestampOutOfRange)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "id space exhausted for the configured epoch", payload["error"])
			},
		},
		{
			name: "unexpected failure",
			setupMock: func() {
				s.service.EXPECT().Issue(mock.Anything).Return(vo.IssuedID{}, errors.New("boom"))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, raw := performJSONRequest(s.app, http.MethodGet, "/ids", nil)
			tc.assertion(resp, payload, raw)
		})
	}
}

func (s *IDIssueHandlerSuite) TestHandleBatch_TableDriven() {
	tests := []struct {
		name      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{}, []byte)
	}{
		{
			name: "invalid body",
			body: []byte(`{"count":"two"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid request body", payload["error"])
			},
		},
		{
			name: "count out of range",
			body: []byte(`{"count":5000}`),
			setupMock: func() {
				s.service.EXPECT().IssueBatch(mock.Anything, 5000).
					Return(vo.IssuedIDBatch{}, fmt.Errorf("%w: count must be between 1 and 1000", vo.ErrInvalidBatchSize))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid batch size: count must be between 1 and 1000", payload["error"])
			},
		},
		{
			name: "issues batch",
			body: []byte(`{"count":3}`),
			setupMock: func() {
				s.service.EXPECT().IssueBatch(mock.Anything, 3).
					Return(vo.IssuedIDBatch{IDs: []shareduid.ID{64, 65, 66}, Count: 3}, nil)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, raw []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.JSONEq(s.T(), `{"ids":[64,65,66],"count":3}`, string(raw))
			},
		},
		{
			name: "cancelled mid batch",
			body: []byte(`{"count":3}`),
			setupMock: func() {
				s.service.EXPECT().IssueBatch(mock.Anything, 3).Return(vo.IssuedIDBatch{}, context.Canceled)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusServiceUnavailable, resp.StatusCode)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, raw := performJSONRequest(s.app, http.MethodPost, "/ids/batch", tc.body)
			tc.assertion(resp, payload, raw)
		})
	}
}

func TestIDIssueHandlerSuite(t *testing.T) {
	suite.Run(t, new(IDIssueHandlerSuite))
}

type IDDecodeHandlerSuite struct {
	suite.Suite

	service *handlermocks.IDDecodeService
	app     *fiber.App
}

func (s *IDDecodeHandlerSuite) SetupTest() {
	s.service = handlermocks.NewIDDecodeService(s.T())
	s.app = fiber.New()
	passthrough := func(c fiber.Ctx) error { return c.Next() }
	NewIDDecodeHandler(s.service, newTestLogger()).Register(s.app, passthrough)
}

func (s *IDDecodeHandlerSuite) TestHandle_TableDriven() {
	at := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		path      string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "malformed id",
			path: "/ids/abc",
			setupMock: func() {
				s.service.EXPECT().Decode(mock.Anything, "abc").
					Return(vo.DecodedID{}, fmt.Errorf("%w: uid: invalid id \"abc\"", vo.ErrInvalidID))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Contains(s.T(), payload["error"], "invalid id")
			},
		},
		{
			name: "decodes parts",
			path: "/ids/4160",
			setupMock: func() {
				s.service.EXPECT().Decode(mock.Anything, "4160").Return(vo.DecodedID{
					ID:           4160,
					IDString:     "4160",
					Timestamp:    at,
					ElapsedMs:    1,
					DatacenterID: 0,
					WorkerID:     1,
					Sequence:     0,
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), float64(4160), payload["id"])
				assert.Equal(s.T(), "4160", payload["id_str"])
				assert.Equal(s.T(), float64(1), payload["worker_id"])
				assert.Equal(s.T(), "2024-03-01T12:00:00Z", payload["timestamp"])
			},
		},
		{
			name: "node info",
			path: "/node",
			setupMock: func() {
				s.service.EXPECT().Node(mock.Anything).Return(vo.NodeInfo{
					DatacenterID: 1,
					WorkerID:     2,
					Epoch:        shareduid.DefaultEpoch,
					Layout:       shareduid.DefaultLayout,
					MaxID:        shareduid.ID(1<<52 - 1),
					IDsPerMs:     64,
				})
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), float64(1), payload["datacenter_id"])
				assert.Equal(s.T(), float64(2), payload["worker_id"])
				assert.Equal(s.T(), float64(64), payload["ids_per_ms"])
				layout, ok := payload["layout"].(map[string]interface{})
				require.True(s.T(), ok)
				assert.Equal(s.T(), float64(41), layout["timestamp_bits"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodGet, tc.path, nil)
			tc.assertion(resp, payload)
		})
	}
}

func TestIDDecodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(IDDecodeHandlerSuite))
}

type FileHandlerSuite struct {
	suite.Suite

	service *handlermocks.FileObjectService
	app     *fiber.App
}

func (s *FileHandlerSuite) SetupTest() {
	s.service = handlermocks.NewFileObjectService(s.T())
	s.app = fiber.New()
	s.app.Post("/files", NewFileUploadHandler(s.service, newTestLogger()).Handle)
	s.app.Delete("/files", NewFileDeleteHandler(s.service, newTestLogger()).Handle)
}

func (s *FileHandlerSuite) multipartRequest(bucket, filename string, content []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if bucket != "" {
		require.NoError(s.T(), writer.WriteField("bucket", bucket))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(s.T(), err)
		_, err = part.Write(content)
		require.NoError(s.T(), err)
	}
	require.NoError(s.T(), writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/files", &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return req
}

func (s *FileHandlerSuite) TestHandleUpload_TableDriven() {
	tests := []struct {
		name      string
		bucket    string
		filename  string
		content   []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "missing file field",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "multipart field \"file\" is required", payload["error"])
			},
		},
		{
			name:     "file too large",
			filename: "big.bin",
			content:  []byte("0123456789"),
			setupMock: func() {
				s.service.EXPECT().Upload(mock.Anything, mock.Anything).
					Return(vo.StoredFile{}, fmt.Errorf("%w: 10 bytes exceeds 4", vo.ErrFileTooLarge))
			},
			assertion: func(resp *http.Response, _ map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusRequestEntityTooLarge, resp.StatusCode)
			},
		},
		{
			name:     "bucket required",
			filename: "a.txt",
			content:  []byte("hello"),
			setupMock: func() {
				s.service.EXPECT().Upload(mock.Anything, mock.Anything).Return(vo.StoredFile{}, vo.ErrBucketRequired)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "bucket is required", payload["error"])
			},
		},
		{
			name:     "stored",
			bucket:   "avatars",
			filename: "Photo.PNG",
			content:  []byte("png-bytes"),
			setupMock: func() {
				s.service.EXPECT().Upload(mock.Anything, mock.MatchedBy(func(upload vo.FileUpload) bool {
					return upload.Bucket == "avatars" &&
						upload.OriginalName == "Photo.PNG" &&
						upload.Size == int64(len("png-bytes")) &&
						upload.Body != nil
				})).Return(vo.StoredFile{
					Bucket:       "avatars",
					ObjectName:   "4160.png",
					OriginalName: "Photo.PNG",
					Size:         9,
					URL:          "https://cdn.example.com/avatars/4160.png",
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.Equal(s.T(), "4160.png", payload["object_name"])
				assert.Equal(s.T(), "https://cdn.example.com/avatars/4160.png", payload["url"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performRequest(s.app, s.multipartRequest(tc.bucket, tc.filename, tc.content))
			tc.assertion(resp, payload)
		})
	}
}

func (s *FileHandlerSuite) TestHandleDelete_TableDriven() {
	tests := []struct {
		name      string
		body      []byte
		setupMock func()
		expected  int
		errorText string
	}{
		{
			name:      "invalid body",
			body:      []byte(`{"object_names":`),
			expected:  fiber.StatusBadRequest,
			errorText: "invalid request body",
		},
		{
			name: "no names",
			body: []byte(`{"bucket":"avatars","object_names":[]}`),
			setupMock: func() {
				s.service.EXPECT().Delete(mock.Anything, "avatars", []string{}).Return(vo.ErrNoObjectNames)
			},
			expected:  fiber.StatusBadRequest,
			errorText: "object_names must not be empty",
		},
		{
			name: "bucket missing",
			body: []byte(`{"bucket":"ghost","object_names":["a.png"]}`),
			setupMock: func() {
				s.service.EXPECT().Delete(mock.Anything, "ghost", []string{"a.png"}).
					Return(fmt.Errorf("%w: ghost", vo.ErrBucketNotFound))
			},
			expected:  fiber.StatusNotFound,
			errorText: "bucket not found",
		},
		{
			name: "deleted",
			body: []byte(`{"bucket":"avatars","object_names":["a.png","b.png"]}`),
			setupMock: func() {
				s.service.EXPECT().Delete(mock.Anything, "avatars", []string{"a.png", "b.png"}).Return(nil)
			},
			expected: fiber.StatusNoContent,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodDelete, "/files", tc.body)
			require.NotNil(s.T(), resp)
			assert.Equal(s.T(), tc.expected, resp.StatusCode)
			if tc.errorText != "" {
				assert.Equal(s.T(), tc.errorText, payload["error"])
			}
		})
	}
}

func TestFileHandlerSuite(t *testing.T) {
	suite.Run(t, new(FileHandlerSuite))
}
