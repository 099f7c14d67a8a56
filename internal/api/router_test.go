package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/welldanyogia/webrana-posts-backend/internal/api/middleware"
	"github.com/welldanyogia/webrana-posts-backend/internal/auth"
	"github.com/welldanyogia/webrana-posts-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RouterTestSuite drives the full HTTP stack against an in-memory database
type RouterTestSuite struct {
	suite.Suite
	db     *gorm.DB
	tokens *auth.TokenManager
	echo   *echo.Echo
}

func (s *RouterTestSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(s.T(), db.AutoMigrate(&models.Post{}))

	s.db = db
	s.tokens = auth.NewTokenManager("router-test-secret", time.Hour)
	s.echo = s.newRouter(false)
}

func (s *RouterTestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) newRouter(csrf bool) *echo.Echo {
	return NewRouter(&RouterConfig{
		DB:             s.db,
		Verifier:       s.tokens,
		AllowedOrigins: []string{"http://localhost:3000"},
		CSRFEnabled:    csrf,
	})
}

func (s *RouterTestSuite) bearer(roles ...auth.Role) string {
	token, err := s.tokens.Issue("user", roles...)
	require.NoError(s.T(), err)
	return "Bearer " + token
}

func (s *RouterTestSuite) do(method, path, body, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) stored() []models.Post {
	var posts []models.Post
	require.NoError(s.T(), s.db.Order("id ASC").Find(&posts).Error)
	return posts
}

func (s *RouterTestSuite) seed(title, content, author string) uint {
	post := models.NewPost(title, content, author)
	require.NoError(s.T(), s.db.Create(post).Error)
	return post.ID
}

func decodeID(t *testing.T, rec *httptest.ResponseRecorder) uint {
	t.Helper()
	var id uint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &id))
	return id
}

// ==================== Create ====================

func (s *RouterTestSuite) TestCreate_UserStoresOneRecord() {
	rec := s.do(http.MethodPost, "/api/v1/posts",
		`{"title":"title","content":"content","author":"author"}`, s.bearer(auth.RoleUser))

	s.Equal(http.StatusOK, rec.Code)
	id := decodeID(s.T(), rec)

	posts := s.stored()
	s.Require().Len(posts, 1)
	s.Equal(id, posts[0].ID)
	s.Equal("title", posts[0].Title)
	s.Equal("content", posts[0].Content)
	s.Equal("author", posts[0].Author)
}

func (s *RouterTestSuite) TestCreate_TwoCallsGiveDistinctIDs() {
	first := decodeID(s.T(), s.do(http.MethodPost, "/api/v1/posts",
		`{"title":"a","content":"a","author":"a"}`, s.bearer(auth.RoleUser)))
	second := decodeID(s.T(), s.do(http.MethodPost, "/api/v1/posts",
		`{"title":"b","content":"b","author":"b"}`, s.bearer(auth.RoleUser)))

	s.NotEqual(first, second)
	s.Len(s.stored(), 2)
}

func (s *RouterTestSuite) TestCreate_NoTokenUnauthorized() {
	rec := s.do(http.MethodPost, "/api/v1/posts", `{"title":"t","content":"c","author":"a"}`, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Empty(s.stored())
}

func (s *RouterTestSuite) TestCreate_NoRoleForbidden() {
	rec := s.do(http.MethodPost, "/api/v1/posts",
		`{"title":"title","content":"content","author":"author"}`, s.bearer())

	s.Equal(http.StatusForbidden, rec.Code)
	s.Empty(s.stored())
}

func (s *RouterTestSuite) TestCreate_MissingFieldBadRequest() {
	rec := s.do(http.MethodPost, "/api/v1/posts", `{"title":"t","content":null}`, s.bearer(auth.RoleUser))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Empty(s.stored())
}

// ==================== Update ====================

func (s *RouterTestSuite) TestUpdate_ChangesTitleAndContentKeepsAuthor() {
	id := s.seed("title", "content", "author")

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/v1/posts/%d", id),
		`{"title":"title2","content":"content2"}`, s.bearer(auth.RoleUser))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(id, decodeID(s.T(), rec))

	posts := s.stored()
	s.Require().Len(posts, 1)
	s.Equal("title2", posts[0].Title)
	s.Equal("content2", posts[0].Content)
	s.Equal("author", posts[0].Author)
}

func (s *RouterTestSuite) TestUpdate_AuthorInBodyIgnored() {
	id := s.seed("title", "content", "author")

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/v1/posts/%d", id),
		`{"title":"t","content":"c","author":"mallory"}`, s.bearer(auth.RoleUser))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("author", s.stored()[0].Author)
}

func (s *RouterTestSuite) TestUpdate_UnknownIDNotFoundCreatesNothing() {
	rec := s.do(http.MethodPut, "/api/v1/posts/4242",
		`{"title":"t","content":"c"}`, s.bearer(auth.RoleUser))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(s.stored())
}

func (s *RouterTestSuite) TestUpdate_NoRoleLeavesRecordUntouched() {
	id := s.seed("title", "content", "author")

	rec := s.do(http.MethodPut, fmt.Sprintf("/api/v1/posts/%d", id),
		`{"title":"x","content":"y"}`, s.bearer(auth.RoleGuest))

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("title", s.stored()[0].Title)
}

// ==================== Reads ====================

func (s *RouterTestSuite) TestGet_OpenToAnonymousCallers() {
	id := s.seed("title", "content", "author")

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", id), "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"author":"author"`)
}

func (s *RouterTestSuite) TestList_NewestFirst() {
	s.seed("old", "c", "a")
	s.seed("new", "c", "a")

	rec := s.do(http.MethodGet, "/api/v1/posts?limit=1", "", "")

	s.Equal(http.StatusOK, rec.Code)
	var resp struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Data, 1)
	s.Equal("new", resp.Data[0].Title)
	s.Equal(int64(2), resp.Meta.Total)
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

// ==================== CSRF ====================

func (s *RouterTestSuite) TestCSRF_MissingTokenRejectedBeforeStore() {
	s.echo = s.newRouter(true)

	rec := s.do(http.MethodPost, "/api/v1/posts",
		`{"title":"t","content":"c","author":"a"}`, s.bearer(auth.RoleUser))

	s.Equal(http.StatusForbidden, rec.Code)
	s.Empty(s.stored())
}

func (s *RouterTestSuite) TestCSRF_TokenRoundTrip() {
	s.echo = s.newRouter(true)

	first := s.do(http.MethodGet, "/api/v1/posts", "", "")
	var cookie *http.Cookie
	for _, c := range first.Result().Cookies() {
		if c.Name == middleware.CSRFCookieName {
			cookie = c
		}
	}
	s.Require().NotNil(cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
		strings.NewReader(`{"title":"t","content":"c","author":"a"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, s.bearer(auth.RoleUser))
	req.Header.Set(middleware.CSRFHeaderName, cookie.Value)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.stored(), 1)
}

func TestNewRouter_RateLimitApplied(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	e := NewRouter(&RouterConfig{
		DB:        db,
		Verifier:  auth.NewTokenManager("secret", time.Hour),
		RateLimit: 1,
		RateBurst: 1,
	})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
