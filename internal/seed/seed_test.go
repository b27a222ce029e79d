package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
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

func TestRun(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, "admin@mimarportfolyo.com", "admin123"))

	users := repository.NewUserRepository(db)
	admin, err := users.FindByEmail(ctx, "admin@mimarportfolyo.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	projectCount, err := repository.NewProjectRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(sampleProjects)), projectCount)

	testimonialCount, err := repository.NewTestimonialRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(sampleTestimonials)), testimonialCount)

	teamCount, err := repository.NewTeamMemberRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(sampleTeamMembers)), teamCount)
}

func TestRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, "admin@mimarportfolyo.com", "admin123"))
	require.NoError(t, Run(ctx, db, "admin@mimarportfolyo.com", "admin123"))

	var userCount int64
	require.NoError(t, db.Model(&model.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), userCount)

	projectCount, err := repository.NewProjectRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(sampleProjects)), projectCount)
}

func TestRunKeepsExistingAdminPassword(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, "admin@mimarportfolyo.com", "first-password"))
	require.NoError(t, Run(ctx, db, "admin@mimarportfolyo.com", "second-password"))

	admin, err := repository.NewUserRepository(db).FindByEmail(ctx, "admin@mimarportfolyo.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("first-password")))
}
