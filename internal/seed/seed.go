package seed

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
)

const bcryptCost = 12

// Run bootstraps the database: the admin user is upserted by email and the
// sample content tables are wiped and refilled. Safe to run repeatedly; meant
// to run out-of-band, never under request load.
func Run(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) error {
	if err := ensureAdmin(ctx, db, adminEmail, adminPassword); err != nil {
		return err
	}
	if err := seedProjects(ctx, db); err != nil {
		return err
	}
	if err := seedTestimonials(ctx, db); err != nil {
		return err
	}
	if err := seedServices(ctx, db); err != nil {
		return err
	}
	if err := seedTeamMembers(ctx, db); err != nil {
		return err
	}
	return nil
}

func ensureAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	users := repository.NewUserRepository(db)

	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		log.WithField("email", existing.Email).Info("admin user already exists")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Email:        email,
		Name:         "Admin Kullanıcı",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	log.WithField("email", email).Info("admin user created")
	return nil
}

func seedProjects(ctx context.Context, db *gorm.DB) error {
	projects := repository.NewProjectRepository(db)

	if err := projects.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}
	for i := range sampleProjects {
		p := sampleProjects[i]
		if err := projects.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}

	log.WithField("count", len(sampleProjects)).Info("projects seeded")
	return nil
}

func seedTestimonials(ctx context.Context, db *gorm.DB) error {
	testimonials := repository.NewTestimonialRepository(db)

	if err := testimonials.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear testimonials: %w", err)
	}
	for i := range sampleTestimonials {
		t := sampleTestimonials[i]
		if err := testimonials.Create(ctx, &t); err != nil {
			return fmt.Errorf("seed testimonial %q: %w", t.Name, err)
		}
	}

	log.WithField("count", len(sampleTestimonials)).Info("testimonials seeded")
	return nil
}

func seedServices(ctx context.Context, db *gorm.DB) error {
	services := repository.NewServiceRepository(db)

	if err := services.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear services: %w", err)
	}
	for i := range sampleServices {
		s := sampleServices[i]
		if err := services.Create(ctx, &s); err != nil {
			return fmt.Errorf("seed service %q: %w", s.Title, err)
		}
	}

	log.WithField("count", len(sampleServices)).Info("services seeded")
	return nil
}

func seedTeamMembers(ctx context.Context, db *gorm.DB) error {
	team := repository.NewTeamMemberRepository(db)

	if err := team.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear team members: %w", err)
	}
	for i := range sampleTeamMembers {
		m := sampleTeamMembers[i]
		if err := team.Create(ctx, &m); err != nil {
			return fmt.Errorf("seed team member %q: %w", m.Name, err)
		}
	}

	log.WithField("count", len(sampleTeamMembers)).Info("team members seeded")
	return nil
}
