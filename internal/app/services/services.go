package services

import (
	"github.com/mertcan/coursehub/internal/app/repositories"
	"github.com/mertcan/coursehub/internal/pkg/auth"
	"github.com/mertcan/coursehub/internal/pkg/filestorage"
)

// Services bundles every service implementation for wiring into controllers.
type Services struct {
	AuthService       AuthService
	CourseService     CourseService
	CurriculumService CurriculumService
	ReviewService     ReviewService
	TaxonomyService   TaxonomyService
}

// NewServices creates all services over the shared repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, fileStorage filestorage.FileStorage) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		CourseService:     NewCourseService(repos.CourseRepository, repos.TaxonomyRepository, fileStorage),
		CurriculumService: NewCurriculumService(repos.CourseRepository, repos.UnitRepository, repos.LessonRepository),
		ReviewService:     NewReviewService(repos.CourseRepository),
		TaxonomyService:   NewTaxonomyService(repos.TaxonomyRepository),
	}
}
