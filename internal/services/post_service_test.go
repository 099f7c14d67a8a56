package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/welldanyogia/webrana-posts-backend/internal/auth"
	apperrors "github.com/welldanyogia/webrana-posts-backend/internal/errors"
	"github.com/welldanyogia/webrana-posts-backend/internal/mocks"
	"github.com/welldanyogia/webrana-posts-backend/internal/models"
	"github.com/welldanyogia/webrana-posts-backend/internal/repository"
	"github.com/welldanyogia/webrana-posts-backend/internal/services"
)

// PostServiceTestSuite is the test suite for PostService
type PostServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.MockPostRepository
	service  services.PostService
	userCtx  context.Context
}

// SetupTest runs before each test
func (s *PostServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.MockPostRepository)
	s.service = services.NewPostService(s.mockRepo, nil)
	s.userCtx = auth.WithIdentity(context.Background(), &auth.Identity{
		Subject: "alice",
		Roles:   []auth.Role{auth.RoleUser},
	})
}

// TearDownTest runs after each test
func (s *PostServiceTestSuite) TearDownTest() {
	s.mockRepo.AssertExpectations(s.T())
}

// TestPostServiceTestSuite runs the test suite
func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}

// ==================== Create Tests ====================

func (s *PostServiceTestSuite) TestCreate_SavesMappedRecord() {
	cmd := services.CreatePostCommand{Title: "title", Content: "content", Author: "author"}

	s.mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		return p.ID == 0 && p.Title == "title" && p.Content == "content" && p.Author == "author"
	})).Return(uint(1), nil)

	id, err := s.service.Create(s.userCtx, cmd)

	s.NoError(err)
	s.Equal(uint(1), id)
}

func (s *PostServiceTestSuite) TestCreate_AnonymousRejectedBeforeStore() {
	id, err := s.service.Create(context.Background(), services.CreatePostCommand{Title: "t"})

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.Zero(id)
	s.mockRepo.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *PostServiceTestSuite) TestCreate_GuestForbidden() {
	ctx := auth.WithIdentity(context.Background(), &auth.Identity{Subject: "g", Roles: []auth.Role{auth.RoleGuest}})

	_, err := s.service.Create(ctx, services.CreatePostCommand{Title: "t"})

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *PostServiceTestSuite) TestCreate_AdminAllowed() {
	ctx := auth.WithIdentity(context.Background(), &auth.Identity{Subject: "root", Roles: []auth.Role{auth.RoleAdmin}})
	s.mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.Post")).Return(uint(9), nil)

	id, err := s.service.Create(ctx, services.CreatePostCommand{Title: "t", Content: "c", Author: "a"})

	s.NoError(err)
	s.Equal(uint(9), id)
}

func (s *PostServiceTestSuite) TestCreate_StorageErrorPropagates() {
	s.mockRepo.On("Save", mock.Anything, mock.Anything).
		Return(uint(0), errors.Join(repository.ErrStorage, errors.New("connection refused")))

	_, err := s.service.Create(s.userCtx, services.CreatePostCommand{Title: "t", Content: "c", Author: "a"})

	s.ErrorIs(err, apperrors.ErrStorage)
}

// ==================== Update Tests ====================

func (s *PostServiceTestSuite) TestUpdate_ReturnsSameID() {
	s.mockRepo.On("Update", mock.Anything, uint(5), "title2", "content2").Return(nil)

	id, err := s.service.Update(s.userCtx, 5, services.UpdatePostCommand{Title: "title2", Content: "content2"})

	s.NoError(err)
	s.Equal(uint(5), id)
}

func (s *PostServiceTestSuite) TestUpdate_NotFound() {
	s.mockRepo.On("Update", mock.Anything, uint(404), "t", "c").Return(repository.ErrNotFound)

	id, err := s.service.Update(s.userCtx, 404, services.UpdatePostCommand{Title: "t", Content: "c"})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Zero(id)
}

func (s *PostServiceTestSuite) TestUpdate_AnonymousRejectedBeforeStore() {
	_, err := s.service.Update(context.Background(), 1, services.UpdatePostCommand{})

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.mockRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// ==================== Read Tests ====================

func (s *PostServiceTestSuite) TestFindByID_NoRoleRequired() {
	post := &models.Post{ID: 2, Title: "t", Content: "c", Author: "a"}
	s.mockRepo.On("FindByID", mock.Anything, uint(2)).Return(post, nil)

	got, err := s.service.FindByID(context.Background(), 2)

	s.NoError(err)
	s.Equal(post, got)
}

func (s *PostServiceTestSuite) TestFindByID_NotFound() {
	s.mockRepo.On("FindByID", mock.Anything, uint(3)).Return(nil, repository.ErrNotFound)

	_, err := s.service.FindByID(context.Background(), 3)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PostServiceTestSuite) TestList_PassesPaging() {
	posts := []models.Post{{ID: 2}, {ID: 1}}
	s.mockRepo.On("FindAllDesc", mock.Anything, 20, 0).Return(posts, int64(2), nil)

	got, total, err := s.service.List(context.Background(), 20, 0)

	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(got, 2)
}

func TestCreatePostCommand_ToPost(t *testing.T) {
	post := services.CreatePostCommand{Title: "t", Content: "c", Author: "a"}.ToPost()

	assert.Zero(t, post.ID)
	assert.Equal(t, "a", post.Author)
}
