package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/idgen-api/internal/domain"
	"github.com/joshuarp/idgen-api/internal/domain/vo"
	servicemocks "github.com/joshuarp/idgen-api/internal/mock/services"
	jwtmocks "github.com/joshuarp/idgen-api/internal/mock/shared/jwt"
	secretmocks "github.com/joshuarp/idgen-api/internal/mock/shared/secret"
	uidmocks "github.com/joshuarp/idgen-api/internal/mock/shared/uid"
	sharedjwt "github.com/joshuarp/idgen-api/internal/shared/jwt"
	sharedsecret "github.com/joshuarp/idgen-api/internal/shared/secret"
	sharedstorage "github.com/joshuarp/idgen-api/internal/shared/storage"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type AuthTokenServiceSuite struct {
	suite.Suite

	repository   *servicemocks.APIClientRepository
	hasher       *secretmocks.Hasher
	tokenManager *jwtmocks.TokenManager
	tokenIDs     *uidmocks.UIDGenerator
	service      *AuthTokenService
}

func (s *AuthTokenServiceSuite) SetupTest() {
	s.repository = servicemocks.NewAPIClientRepository(s.T())
	s.hasher = secretmocks.NewHasher(s.T())
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.tokenIDs = uidmocks.NewUIDGenerator(s.T())
	s.service = NewAuthTokenService(s.repository, s.hasher, s.tokenManager, s.tokenIDs, newTestLogger())
}

func (s *AuthTokenServiceSuite) TestIssueToken_TableDriven() {
	repoErr := errors.New("repository failure")
	signErr := errors.New("sign failed")
	client := domain.APIClient{ID: "c-1", ClientID: "svc-orders", SecretHash: "hashed", Scopes: []string{"ids:write"}, Status: "active"}

	tests := []struct {
		name         string
		clientID     string
		clientSecret string
		setupMock    func()
		assertion    func(vo.AuthToken, error)
	}{
		{
			name:         "invalid when client id empty",
			clientID:     "  ",
			clientSecret: "secret",
			assertion: func(result vo.AuthToken, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.AuthToken{}, result)
			},
		},
		{
			name:         "invalid when secret empty",
			clientID:     "svc-orders",
			clientSecret: " ",
			assertion: func(_ vo.AuthToken, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:         "propagate repository error",
			clientID:     " svc-orders ",
			clientSecret: "secret",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClientByClientID(mock.Anything, "svc-orders").Return(domain.APIClient{}, repoErr)
			},
			assertion: func(_ vo.AuthToken, err error) {
				assert.ErrorIs(s.T(), err, repoErr)
			},
		},
		{
			name:         "invalid when secret mismatch",
			clientID:     "svc-orders",
			clientSecret: "wrong",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClientByClientID(mock.Anything, "svc-orders").Return(client, nil)
				s.hasher.EXPECT().Compare(mock.Anything, "hashed", "wrong").Return(sharedsecret.ErrMismatch)
			},
			assertion: func(_ vo.AuthToken, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:         "corrupt hash is still invalid credentials",
			clientID:     "svc-orders",
			clientSecret: "secret",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClientByClientID(mock.Anything, "svc-orders").Return(client, nil)
				s.hasher.EXPECT().Compare(mock.Anything, "hashed", "secret").Return(errors.New("hash too short"))
			},
			assertion: func(_ vo.AuthToken, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:         "wraps signing error",
			clientID:     "svc-orders",
			clientSecret: "secret",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClientByClientID(mock.Anything, "svc-orders").Return(client, nil)
				s.hasher.EXPECT().Compare(mock.Anything, "hashed", "secret").Return(nil)
				s.tokenIDs.EXPECT().Generate(mock.Anything).Return("jti-1", nil)
				s.tokenManager.EXPECT().Sign(mock.Anything, mock.Anything).Return("", signErr)
			},
			assertion: func(_ vo.AuthToken, err error) {
				assert.ErrorContains(s.T(), err, "failed to issue token")
				assert.ErrorIs(s.T(), err, signErr)
			},
		},
		{
			name:         "success even if touch fails",
			clientID:     "svc-orders",
			clientSecret: "secret",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClientByClientID(mock.Anything, "svc-orders").Return(client, nil)
				s.hasher.EXPECT().Compare(mock.Anything, "hashed", "secret").Return(nil)
				s.tokenIDs.EXPECT().Generate(mock.Anything).Return("jti-1", nil)
				s.tokenManager.EXPECT().
					Sign(mock.Anything, mock.MatchedBy(func(claims sharedjwt.Claims) bool {
						return claims.Subject == "svc-orders" && claims.ID == "jti-1" && claims.HasScope("ids:write")
					})).
					Return("signed-token", nil)
				s.tokenManager.EXPECT().TTL().Return(15 * time.Minute)
				s.repository.EXPECT().TouchLastToken(mock.Anything, "c-1").Return(errors.New("db down"))
			},
			assertion: func(result vo.AuthToken, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), vo.AuthToken{
					AccessToken: "signed-token",
					TokenType:   "Bearer",
					ExpiresIn:   900,
					Scope:       []string{"ids:write"},
				}, result)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			result, err := s.service.IssueToken(context.Background(), tc.clientID, tc.clientSecret)
			tc.assertion(result, err)
		})
	}
}

func TestAuthTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthTokenServiceSuite))
}

type ClientRegistrationServiceSuite struct {
	suite.Suite

	repository *servicemocks.APIClientWriter
	hasher     *secretmocks.Hasher
	service    *ClientRegistrationService
}

func (s *ClientRegistrationServiceSuite) SetupTest() {
	s.repository = servicemocks.NewAPIClientWriter(s.T())
	s.hasher = secretmocks.NewHasher(s.T())
	s.service = NewClientRegistrationService(s.repository, s.hasher)
}

func (s *ClientRegistrationServiceSuite) TestRegister() {
	var plaintext string
	s.hasher.EXPECT().Hash(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, p string) (string, error) {
			plaintext = p
			return "hashed:" + p, nil
		})
	s.repository.EXPECT().
		CreateAPIClient(mock.Anything, mock.MatchedBy(func(c domain.APIClient) bool {
			return c.ClientID == "svc-orders" && strings.HasPrefix(c.SecretHash, "hashed:") && c.Status == "active"
		})).
		RunAndReturn(func(_ context.Context, c domain.APIClient) (domain.APIClient, error) {
			c.ID = "c-1"
			return c, nil
		})

	registered, err := s.service.Register(context.Background(), " svc-orders ", []string{"ids:write"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "svc-orders", registered.ClientID)
	assert.Equal(s.T(), plaintext, registered.ClientSecret)
	assert.Len(s.T(), registered.ClientSecret, 43)
	assert.Equal(s.T(), []string{"ids:write"}, registered.Scopes)
}

func (s *ClientRegistrationServiceSuite) TestRegister_Validation() {
	_, err := s.service.Register(context.Background(), "", []string{"ids:write"})
	assert.ErrorContains(s.T(), err, "client id is required")

	_, err = s.service.Register(context.Background(), "svc", nil)
	assert.ErrorContains(s.T(), err, "at least one scope")
}

func TestClientRegistrationServiceSuite(t *testing.T) {
	suite.Run(t, new(ClientRegistrationServiceSuite))
}

type IDIssueServiceSuite struct {
	suite.Suite

	generator *servicemocks.IDGenerator
	service   *IDIssueService
}

func (s *IDIssueServiceSuite) SetupTest() {
	s.generator = servicemocks.NewIDGenerator(s.T())
	s.service = NewIDIssueService(s.generator, 3)
}

func (s *IDIssueServiceSuite) TestNewIDIssueService_DefaultsMaxBatch() {
	assert.Equal(s.T(), DefaultMaxBatch, NewIDIssueService(s.generator, 0).MaxBatch())
	assert.Equal(s.T(), 3, s.service.MaxBatch())
}

func (s *IDIssueServiceSuite) TestIssue_TableDriven() {
	tests := []struct {
		name      string
		setupMock func()
		assertion func(vo.IssuedID, error)
	}{
		{
			name: "success",
			setupMock: func() {
				s.generator.EXPECT().NextID().Return(shareduid.ID(9007199254740991), nil)
			},
			assertion: func(result vo.IssuedID, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), shareduid.ID(9007199254740991), result.ID)
				assert.Equal(s.T(), "9007199254740991", result.IDString)
			},
		},
		{
			name: "keeps clock regression detectable",
			setupMock: func() {
				s.generator.EXPECT().NextID().Return(0, &shareduid.ClockRegressionError{Last: 10, Current: 5})
			},
			assertion: func(_ vo.IssuedID, err error) {
				assert.ErrorIs(s.T(), err, shareduid.ErrClockRegression)
				assert.ErrorContains(s.T(), err, "failed to issue id")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()
			result, err := s.service.Issue(context.Background())
			tc.assertion(result, err)
		})
	}
}

func (s *IDIssueServiceSuite) TestIssueBatch_TableDriven() {
	tests := []struct {
		name      string
		count     int
		setupMock func()
		assertion func(vo.IssuedIDBatch, error)
	}{
		{
			name:  "rejects zero",
			count: 0,
			assertion: func(_ vo.IssuedIDBatch, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidBatchSize)
			},
		},
		{
			name:  "rejects above max",
			count: 4,
			assertion: func(_ vo.IssuedIDBatch, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidBatchSize)
				assert.ErrorContains(s.T(), err, "between 1 and 3")
			},
		},
		{
			name:  "issues in order",
			count: 3,
			setupMock: func() {
				s.generator.EXPECT().NextID().Return(1, nil).Once()
				s.generator.EXPECT().NextID().Return(2, nil).Once()
				s.generator.EXPECT().NextID().Return(3, nil).Once()
			},
			assertion: func(result vo.IssuedIDBatch, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), []shareduid.ID{1, 2, 3}, result.IDs)
				assert.Equal(s.T(), 3, result.Count)
			},
		},
		{
			name:  "discards partial batch on failure",
			count: 3,
			setupMock: func() {
				s.generator.EXPECT().NextID().Return(1, nil).Once()
				s.generator.EXPECT().NextID().Return(0, &shareduid.ClockRegressionError{Last: 2, Current: 1}).Once()
			},
			assertion: func(result vo.IssuedIDBatch, err error) {
				assert.ErrorIs(s.T(), err, shareduid.ErrClockRegression)
				assert.ErrorContains(s.T(), err, "id 2 of 3")
				assert.Empty(s.T(), result.IDs)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}
			result, err := s.service.IssueBatch(context.Background(), tc.count)
			tc.assertion(result, err)
		})
	}
}

func (s *IDIssueServiceSuite) TestIssueBatch_StopsOnCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.service.IssueBatch(ctx, 2)
	assert.ErrorIs(s.T(), err, context.Canceled)
}

func TestIDIssueServiceSuite(t *testing.T) {
	suite.Run(t, new(IDIssueServiceSuite))
}

type IDDecodeServiceSuite struct {
	suite.Suite

	generator *shareduid.Snowflake
	service   *IDDecodeService
}

func (s *IDDecodeServiceSuite) SetupTest() {
	now := shareduid.DefaultEpoch.Add(24 * time.Hour)
	generator, err := shareduid.NewSnowflake(shareduid.SnowflakeOptions{
		DatacenterID: 2,
		WorkerID:     5,
		Now:          func() time.Time { return now },
	})
	require.NoError(s.T(), err)
	s.generator = generator
	s.service = NewIDDecodeService(generator)
}

func (s *IDDecodeServiceSuite) TestDecode_TableDriven() {
	id, err := s.generator.NextID()
	require.NoError(s.T(), err)

	tests := []struct {
		name      string
		raw       string
		assertion func(vo.DecodedID, error)
	}{
		{
			name: "round trips an issued id",
			raw:  id.String(),
			assertion: func(result vo.DecodedID, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), id, result.ID)
				assert.Equal(s.T(), int64(2), result.DatacenterID)
				assert.Equal(s.T(), int64(5), result.WorkerID)
				assert.Equal(s.T(), int64(0), result.Sequence)
				assert.Equal(s.T(), int64(24*time.Hour/time.Millisecond), result.ElapsedMs)
				assert.True(s.T(), result.Timestamp.Equal(shareduid.DefaultEpoch.Add(24*time.Hour)))
			},
		},
		{
			name: "rejects garbage",
			raw:  "abc",
			assertion: func(_ vo.DecodedID, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidID)
			},
		},
		{
			name: "rejects negative",
			raw:  "-1",
			assertion: func(_ vo.DecodedID, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidID)
			},
		},
		{
			name: "rejects signed form",
			raw:  "+" + id.String(),
			assertion: func(_ vo.DecodedID, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidID)
				assert.ErrorContains(s.T(), err, "canonical form")
			},
		},
		{
			name: "rejects zero padded form",
			raw:  "00" + id.String(),
			assertion: func(_ vo.DecodedID, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidID)
			},
		},
		{
			name: "rejects above layout maximum",
			raw:  "4503599627370496",
			assertion: func(_ vo.DecodedID, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidID)
				assert.ErrorContains(s.T(), err, "exceeds layout maximum")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			result, err := s.service.Decode(context.Background(), tc.raw)
			tc.assertion(result, err)
		})
	}
}

func (s *IDDecodeServiceSuite) TestNode() {
	info := s.service.Node(context.Background())

	assert.Equal(s.T(), int64(2), info.DatacenterID)
	assert.Equal(s.T(), int64(5), info.WorkerID)
	assert.Equal(s.T(), shareduid.DefaultLayout, info.Layout)
	assert.Equal(s.T(), shareduid.ID(1<<52-1), info.MaxID)
	assert.Equal(s.T(), int64(64), info.IDsPerMs)
	assert.Equal(s.T(), 2092, info.ValidUntil.Year())
}

func TestIDDecodeServiceSuite(t *testing.T) {
	suite.Run(t, new(IDDecodeServiceSuite))
}

type FileObjectServiceSuite struct {
	suite.Suite

	storage *servicemocks.ObjectStorage
	names   *uidmocks.UIDGenerator
	service *FileObjectService
}

func (s *FileObjectServiceSuite) SetupTest() {
	s.storage = servicemocks.NewObjectStorage(s.T())
	s.names = uidmocks.NewUIDGenerator(s.T())
	s.service = NewFileObjectService(s.storage, s.names, 10)
}

func (s *FileObjectServiceSuite) TestUpload_TableDriven() {
	storeErr := errors.New("minio down")

	tests := []struct {
		name      string
		upload    vo.FileUpload
		setupMock func(body io.Reader)
		assertion func(vo.StoredFile, error)
	}{
		{
			name:   "rejects empty file",
			upload: vo.FileUpload{OriginalName: "a.png", Size: 0},
			assertion: func(_ vo.StoredFile, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrEmptyFile)
			},
		},
		{
			name:   "rejects oversize file",
			upload: vo.FileUpload{OriginalName: "a.png", Size: 11},
			assertion: func(_ vo.StoredFile, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrFileTooLarge)
			},
		},
		{
			name:   "no bucket configured",
			upload: vo.FileUpload{OriginalName: "a.png", Size: 3},
			setupMock: func(io.Reader) {
				s.storage.EXPECT().Bucket("").Return("", sharedstorage.ErrNoBucket)
			},
			assertion: func(_ vo.StoredFile, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrBucketRequired)
			},
		},
		{
			name:   "names object by id and lowercased extension",
			upload: vo.FileUpload{OriginalName: "Photo.PNG", ContentType: "image/png", Size: 3},
			setupMock: func(body io.Reader) {
				s.storage.EXPECT().Bucket("").Return("uploads", nil)
				s.names.EXPECT().Generate(mock.Anything).Return("123", nil)
				s.storage.EXPECT().Put(mock.Anything, "uploads", "123.png", body, int64(3), "image/png").
					Return(sharedstorage.Object{Bucket: "uploads", Name: "123.png", Size: 3, URL: "http://minio/uploads/123.png"}, nil)
			},
			assertion: func(result vo.StoredFile, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), vo.StoredFile{
					Bucket:       "uploads",
					ObjectName:   "123.png",
					OriginalName: "Photo.PNG",
					Size:         3,
					URL:          "http://minio/uploads/123.png",
				}, result)
			},
		},
		{
			name:   "no extension and default content type",
			upload: vo.FileUpload{Bucket: "docs", OriginalName: "README", Size: 3},
			setupMock: func(body io.Reader) {
				s.storage.EXPECT().Bucket("docs").Return("docs", nil)
				s.names.EXPECT().Generate(mock.Anything).Return("124", nil)
				s.storage.EXPECT().Put(mock.Anything, "docs", "124", body, int64(3), "application/octet-stream").
					Return(sharedstorage.Object{Bucket: "docs", Name: "124", Size: 3}, nil)
			},
			assertion: func(result vo.StoredFile, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "124", result.ObjectName)
			},
		},
		{
			name:   "wraps storage error",
			upload: vo.FileUpload{OriginalName: "a.txt", Size: 3},
			setupMock: func(body io.Reader) {
				s.storage.EXPECT().Bucket("").Return("uploads", nil)
				s.names.EXPECT().Generate(mock.Anything).Return("125", nil)
				s.storage.EXPECT().Put(mock.Anything, "uploads", "125.txt", body, int64(3), "application/octet-stream").
					Return(sharedstorage.Object{}, storeErr)
			},
			assertion: func(_ vo.StoredFile, err error) {
				assert.ErrorIs(s.T(), err, storeErr)
				assert.ErrorContains(s.T(), err, `failed to store "a.txt"`)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.upload.Size > 0 {
				tc.upload.Body = strings.NewReader("abc")
			}
			if tc.setupMock != nil {
				tc.setupMock(tc.upload.Body)
			}
			result, err := s.service.Upload(context.Background(), tc.upload)
			tc.assertion(result, err)
		})
	}
}

func (s *FileObjectServiceSuite) TestDelete_TableDriven() {
	tests := []struct {
		name      string
		bucket    string
		objects   []string
		setupMock func()
		wantErr   error
	}{
		{
			name:    "requires names",
			objects: []string{" ", ""},
			wantErr: vo.ErrNoObjectNames,
		},
		{
			name:    "single object",
			bucket:  "docs",
			objects: []string{"a.txt"},
			setupMock: func() {
				s.storage.EXPECT().Bucket("docs").Return("docs", nil)
				s.storage.EXPECT().Remove(mock.Anything, "docs", "a.txt").Return(nil)
			},
		},
		{
			name:    "single object in missing bucket",
			bucket:  "gone",
			objects: []string{"a.txt"},
			setupMock: func() {
				s.storage.EXPECT().Bucket("gone").Return("gone", nil)
				s.storage.EXPECT().Remove(mock.Anything, "gone", "a.txt").Return(sharedstorage.ErrBucketNotFound)
			},
			wantErr: vo.ErrBucketNotFound,
		},
		{
			name:    "several objects in default bucket",
			objects: []string{"a", " b "},
			setupMock: func() {
				s.storage.EXPECT().Bucket("").Return("uploads", nil)
				s.storage.EXPECT().RemoveMany(mock.Anything, "uploads", []string{"a", "b"}).Return(nil)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}
			err := s.service.Delete(context.Background(), tc.bucket, tc.objects)
			if tc.wantErr != nil {
				assert.ErrorIs(s.T(), err, tc.wantErr)
				return
			}
			assert.NoError(s.T(), err)
		})
	}
}

func TestFileObjectServiceSuite(t *testing.T) {
	suite.Run(t, new(FileObjectServiceSuite))
}
