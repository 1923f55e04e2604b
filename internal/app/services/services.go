package services

// Services defined in this package:
// - AuthService: login, registration, admin creation and token refresh
// - UniversityService: tenant root CRUD
// - DirectionService: study direction CRUD
// - KafedraService: kafedra CRUD
// - SubjectService: bulk subject creation and CRUD
// - LiteratureService: literature CRUD, uploads and availability
// - NewsService: news and tag management
// - UserService: account management and self-service profile updates
// - AdminService: owner-side superadmin management
// - StatsService: aggregate statistics and the xlsx export

// Services holds all the service instances
type Services struct {
	AuthService       AuthService
	UniversityService UniversityService
	DirectionService  DirectionService
	KafedraService    KafedraService
	SubjectService    SubjectService
	LiteratureService LiteratureService
	NewsService       NewsService
	UserService       UserService
	AdminService      AdminService
	StatsService      StatsService
}
