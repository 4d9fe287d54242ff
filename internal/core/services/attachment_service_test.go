package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/piksel-lt/orderdesk/internal/core/domain"
	portssvc "github.com/piksel-lt/orderdesk/internal/core/ports/services"
	"github.com/piksel-lt/orderdesk/internal/core/services"
)

// --- Mock AttachmentRepository ---
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) ListAttachmentsByOrder(ctx context.Context, orderID string) ([]domain.FileAttachment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FileAttachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, fileID string) (*domain.FileAttachment, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileAttachment), args.Error(1)
}

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.FileAttachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) DeleteAttachment(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

// --- Mock ObjectStore ---
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, contentType string, size int64, body io.Reader) error {
	args := m.Called(ctx, key, contentType, size, body)
	return args.Error(0)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectStore) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

// --- Test Suite ---
type AttachmentServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockAttachmentRepository
	mockOrderRepo *MockOrderRepository
	mockStore     *MockObjectStore
	service       portssvc.AttachmentSvc
}

func (suite *AttachmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAttachmentRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockStore = new(MockObjectStore)
	suite.service = services.NewAttachmentService(suite.mockRepo, suite.mockOrderRepo, suite.mockStore)
}

func (suite *AttachmentServiceTestSuite) TestUploadAttachment_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	body := strings.NewReader("printscreen bytes")

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{OrderID: orderID}, nil).Once()

	keyMatcher := func(key string) bool {
		return strings.HasPrefix(key, orderID+"/") && strings.HasSuffix(key, "_screen.png")
	}
	suite.mockStore.On("Put", ctx, mock.MatchedBy(keyMatcher), "image/png", int64(17), body).Return(nil).Once()
	suite.mockStore.On("PublicURL", mock.MatchedBy(keyMatcher)).Return("https://cdn.example.test/some/key").Once()
	suite.mockRepo.On("SaveAttachment", ctx, mock.MatchedBy(func(a domain.FileAttachment) bool {
		return a.OrderID == orderID && a.Filename == "screen.png" && keyMatcher(a.StorageKey) &&
			a.FileURL == "https://cdn.example.test/some/key" && a.SizeBytes == 17
	})).Return(nil).Once()

	attachment, err := suite.service.UploadAttachment(ctx, orderID, "screen.png", "image/png", 17, body)

	suite.Require().NoError(err)
	suite.Equal("screen.png", attachment.Filename)
	suite.Equal("image/png", attachment.FileType)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestUploadAttachment_EmptyFilename() {
	ctx := context.Background()

	_, err := suite.service.UploadAttachment(ctx, uuid.NewString(), "", "image/png", 1, strings.NewReader("x"))

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockStore.AssertNotCalled(suite.T(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AttachmentServiceTestSuite) TestUploadAttachment_MetadataFailureRemovesObject() {
	ctx := context.Background()
	orderID := uuid.NewString()
	body := strings.NewReader("bytes")

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{OrderID: orderID}, nil).Once()
	suite.mockStore.On("Put", ctx, mock.Anything, "application/pdf", int64(5), body).Return(nil).Once()
	suite.mockStore.On("PublicURL", mock.Anything).Return("https://cdn.example.test/k").Once()
	suite.mockRepo.On("SaveAttachment", ctx, mock.Anything).Return(errors.New("insert failed")).Once()
	suite.mockStore.On("Delete", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.UploadAttachment(ctx, orderID, "media.pdf", "application/pdf", 5, body)

	suite.Require().Error(err)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestDeleteAttachment_ObjectThenRow() {
	ctx := context.Background()
	fileID := uuid.NewString()
	attachment := &domain.FileAttachment{FileID: fileID, StorageKey: "order/123_file.png"}

	suite.mockRepo.On("FindAttachmentByID", ctx, fileID).Return(attachment, nil).Once()
	suite.mockStore.On("Delete", ctx, "order/123_file.png").Return(nil).Once()
	suite.mockRepo.On("DeleteAttachment", ctx, fileID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteAttachment(ctx, fileID))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AttachmentServiceTestSuite) TestDeleteAttachment_ObjectFailureKeepsRow() {
	ctx := context.Background()
	fileID := uuid.NewString()
	attachment := &domain.FileAttachment{FileID: fileID, StorageKey: "order/123_file.png"}

	suite.mockRepo.On("FindAttachmentByID", ctx, fileID).Return(attachment, nil).Once()
	suite.mockStore.On("Delete", ctx, "order/123_file.png").Return(errors.New("storage down")).Once()

	err := suite.service.DeleteAttachment(ctx, fileID)

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAttachment", mock.Anything, mock.Anything)
}

func TestAttachmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}
