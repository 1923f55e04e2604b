package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UniversityRepository *UniversityRepository
	AdminRepository      *AdminRepository
	UserRepository       *UserRepository
	DirectionRepository  *DirectionRepository
	KafedraRepository    *KafedraRepository
	SubjectRepository    *SubjectRepository
	LiteratureRepository *LiteratureRepository
	NewsRepository       *NewsRepository
	StatsRepository      *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UniversityRepository: NewUniversityRepository(db),
		AdminRepository:      NewAdminRepository(db),
		UserRepository:       NewUserRepository(db),
		DirectionRepository:  NewDirectionRepository(db),
		KafedraRepository:    NewKafedraRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		LiteratureRepository: NewLiteratureRepository(db),
		NewsRepository:       NewNewsRepository(db),
		StatsRepository:      NewStatsRepository(db),
	}
}
