package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mimarfolio/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Testimonial{},
		&model.Service{},
		&model.TeamMember{},
		&model.ContactMessage{},
	))
	return db
}

func seedProjects(t *testing.T, repo ProjectRepository) {
	t.Helper()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	projects := []model.Project{
		{Title: "Villa", Category: "Konut", IsFeatured: true, CreatedAt: base},
		{Title: "Ofis", Category: "Ticari", IsFeatured: true, CreatedAt: base.Add(time.Hour)},
		{Title: "Otel", Category: "Turizm", IsFeatured: false, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "Loft", Category: "Konut", IsFeatured: false, CreatedAt: base.Add(3 * time.Hour)},
	}
	for i := range projects {
		require.NoError(t, repo.Create(context.Background(), &projects[i]))
	}
}

func TestProjectRepository_List(t *testing.T) {
	featured := true

	tests := []struct {
		name       string
		filter     ProjectFilter
		wantTitles []string
	}{
		{
			name:       "newest first, no filter",
			filter:     ProjectFilter{},
			wantTitles: []string{"Loft", "Otel", "Ofis", "Villa"},
		},
		{
			name:       "featured only",
			filter:     ProjectFilter{Featured: &featured},
			wantTitles: []string{"Ofis", "Villa"},
		},
		{
			name:       "by category",
			filter:     ProjectFilter{Category: "Konut"},
			wantTitles: []string{"Loft", "Villa"},
		},
		{
			name:       "limit",
			filter:     ProjectFilter{Limit: 2},
			wantTitles: []string{"Loft", "Otel"},
		},
		{
			name:       "featured category combo",
			filter:     ProjectFilter{Featured: &featured, Category: "Konut"},
			wantTitles: []string{"Villa"},
		},
	}

	repo := NewProjectRepository(newTestDB(t))
	seedProjects(t, repo)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)

			titles := make([]string, 0, len(projects))
			for _, p := range projects {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestProjectRepository_Delete(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	project := &model.Project{Title: "Villa", Category: "Konut"}
	require.NoError(t, repo.Create(context.Background(), project))

	assert.NoError(t, repo.Delete(context.Background(), project.ID))

	_, err := repo.FindByID(context.Background(), project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// second delete of the same id must not be a silent no-op
	err = repo.Delete(context.Background(), project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectRepository_UpdateAndCount(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	seedProjects(t, repo)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	projects, err := repo.List(context.Background(), ProjectFilter{Category: "Turizm"})
	require.NoError(t, err)
	require.Len(t, projects, 1)

	projects[0].Title = "Butik Otel"
	require.NoError(t, repo.Update(context.Background(), &projects[0]))

	found, err := repo.FindByID(context.Background(), projects[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Butik Otel", found.Title)
}

func TestProjectRepository_DeleteAll(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	seedProjects(t, repo)

	require.NoError(t, repo.DeleteAll(context.Background()))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
