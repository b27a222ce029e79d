package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestProjectService_Get(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockProjectRepository)
		expectedError error
	}{
		{
			name: "found",
			id:   1,
			setupMock: func(m *MockProjectRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1, Title: "Modern Villa"}, nil)
			},
			expectedError: nil,
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(m *MockProjectRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrProjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProjectRepository)
			tt.setupMock(mockRepo)

			svc := NewProjectService(mockRepo, nil)
			project, err := svc.Get(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, project)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, project)
				assert.Equal(t, tt.id, project.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Create(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	svc := NewProjectService(mockRepo, nil)
	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "Kültür Merkezi",
		Description: "Çok amaçlı kültür merkezi",
		Location:    "İzmir, Konak",
		Year:        "2024",
		Category:    "Kültürel",
		Image:       "https://example.com/kultur.jpg",
		IsFeatured:  true,
	})

	assert.NoError(t, err)
	assert.NotNil(t, project)
	assert.Equal(t, "Kültür Merkezi", project.Title)
	assert.True(t, project.IsFeatured)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Update(t *testing.T) {
	newTitle := "Yeni Başlık"
	featured := false

	tests := []struct {
		name          string
		id            uint
		input         UpdateProjectInput
		setupMock     func(*MockProjectRepository)
		check         func(*testing.T, *model.Project)
		expectedError error
	}{
		{
			name:  "partial update only touches present fields",
			id:    1,
			input: UpdateProjectInput{Title: &newTitle, IsFeatured: &featured},
			setupMock: func(m *MockProjectRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Project{
					ID:         1,
					Title:      "Eski Başlık",
					Category:   "Konut",
					IsFeatured: true,
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
			},
			check: func(t *testing.T, p *model.Project) {
				assert.Equal(t, "Yeni Başlık", p.Title)
				assert.Equal(t, "Konut", p.Category)
				assert.False(t, p.IsFeatured)
			},
		},
		{
			name:  "not found",
			id:    42,
			input: UpdateProjectInput{Title: &newTitle},
			setupMock: func(m *MockProjectRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrProjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProjectRepository)
			tt.setupMock(mockRepo)

			svc := NewProjectService(mockRepo, nil)
			project, err := svc.Update(context.Background(), tt.id, tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, project)
			} else {
				assert.NoError(t, err)
				tt.check(t, project)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockProjectRepository)
		expectedError error
	}{
		{
			name: "deleted",
			id:   1,
			setupMock: func(m *MockProjectRepository) {
				m.On("Delete", mock.Anything, uint(1)).Return(nil)
			},
		},
		{
			name: "missing id is an error, not a no-op",
			id:   99,
			setupMock: func(m *MockProjectRepository) {
				m.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrProjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProjectRepository)
			tt.setupMock(mockRepo)

			svc := NewProjectService(mockRepo, nil)
			err := svc.Delete(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
