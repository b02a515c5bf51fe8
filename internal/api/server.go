package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/muhu-travel/backoffice-api/docs"
	"github.com/muhu-travel/backoffice-api/internal/access"
	v1 "github.com/muhu-travel/backoffice-api/internal/api/handler/v1"
	"github.com/muhu-travel/backoffice-api/internal/api/middleware"
	"github.com/muhu-travel/backoffice-api/internal/config"
	"github.com/muhu-travel/backoffice-api/internal/repository"
	"github.com/muhu-travel/backoffice-api/internal/repository/dao"
	"github.com/muhu-travel/backoffice-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Feed   *v1.FeedHandler
}

type handlers struct {
	auth         *v1.AuthHandler
	users        *v1.UserHandler
	clients      *v1.ClientHandler
	staff        *v1.StaffHandler
	packages     *v1.PackageHandler
	reservations *v1.ReservationHandler
	dashboard    *v1.DashboardHandler
	feed         *v1.FeedHandler
}

type repositories struct {
	users        *repository.UserRepository
	clients      *repository.ClientRepository
	employees    *repository.EmployeeRepository
	providers    *repository.ProviderRepository
	packages     *repository.PackageRepository
	reservations *repository.ReservationRepository
	dashboard    *repository.DashboardRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		users:        repository.NewUserRepository(dao.NewUserDAO(db)),
		clients:      repository.NewClientRepository(dao.NewClientDAO(db)),
		employees:    repository.NewEmployeeRepository(dao.NewEmployeeDAO(db)),
		providers:    repository.NewProviderRepository(dao.NewProviderDAO(db)),
		packages:     repository.NewPackageRepository(dao.NewPackageDAO(db)),
		reservations: repository.NewReservationRepository(dao.NewReservationDAO(db)),
		dashboard:    repository.NewDashboardRepository(dao.NewDashboardDAO(db)),
	}
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	repos := newRepositories(db)
	h := &handlers{
		auth:      s.initAuthHandler(repos),
		users:     v1.NewUserHandler(service.NewUserService(repos.users)),
		clients:   v1.NewClientHandler(service.NewClientService(repos.clients)),
		staff:     v1.NewStaffHandler(service.NewEmployeeService(repos.employees), service.NewProviderService(repos.providers)),
		packages:  v1.NewPackageHandler(service.NewPackageService(repos.packages)),
		dashboard: v1.NewDashboardHandler(service.NewDashboardService(repos.dashboard)),
		feed:      v1.NewFeedHandler(),
	}
	h.reservations = s.initReservationHandler(repos, h.feed)
	s.Feed = h.feed

	s.MountHandlers(h)

	return s
}

// NewSeeder wires the seeder to the same repositories the handlers use.
func NewSeeder(db *gorm.DB) *service.Seeder {
	repos := newRepositories(db)

	return service.NewSeeder(repos.users, repos.packages, repos.employees, repos.providers)
}

func (s *Server) initAuthHandler(repos *repositories) *v1.AuthHandler {
	svc := service.NewAuthService(repos.users)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initReservationHandler(repos *repositories, feed *v1.FeedHandler) *v1.ReservationHandler {
	svc := service.NewReservationService(repos.reservations, repos.packages, repos.clients)
	handler := v1.NewReservationHandler(svc, feed)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h *handlers) {
	const basePath = "/api/v1"

	can := middleware.RequireAccess

	auth := s.Router.Group(basePath + "/auth")
	{
		auth.POST("/login", h.auth.HandleLogin)
		auth.POST("/register", h.auth.HandleRegister)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())

	session := authenticated.Group("/auth")
	{
		session.GET("/profile", h.auth.HandleProfile)
		session.GET("/permissions", h.auth.HandlePermissions)
	}

	users := authenticated.Group("/users")
	{
		users.GET("", can(access.ActionRead, access.ResourceUsers), h.users.HandleListUsers)
		users.POST("", can(access.ActionCreate, access.ResourceUsers), h.users.HandleCreateUser)
		users.GET("/:userID", can(access.ActionRead, access.ResourceUsers), h.users.HandleGetUser)
		users.PUT("/:userID", can(access.ActionUpdate, access.ResourceUsers), h.users.HandleUpdateUser)
		users.DELETE("/:userID", can(access.ActionDelete, access.ResourceUsers), h.users.HandleDeleteUser)
	}

	clients := authenticated.Group("/clients")
	{
		clients.GET("", can(access.ActionRead, access.ResourceClients), h.clients.HandleListClients)
		clients.POST("", can(access.ActionCreate, access.ResourceClients), h.clients.HandleCreateClient)
		clients.POST("/upsert", can(access.ActionCreate, access.ResourceClients), can(access.ActionUpdate, access.ResourceClients), h.clients.HandleUpsertClient)
		clients.GET("/:clientID", can(access.ActionRead, access.ResourceClients), h.clients.HandleGetClient)
		clients.PUT("/:clientID", can(access.ActionUpdate, access.ResourceClients), h.clients.HandleUpdateClient)
	}

	employees := authenticated.Group("/employees")
	{
		employees.GET("", can(access.ActionRead, access.ResourceEmployees), h.staff.HandleListEmployees)
		employees.POST("", can(access.ActionCreate, access.ResourceEmployees), h.staff.HandleCreateEmployee)
		employees.GET("/:employeeID", can(access.ActionRead, access.ResourceEmployees), h.staff.HandleGetEmployee)
		employees.PUT("/:employeeID", can(access.ActionUpdate, access.ResourceEmployees), h.staff.HandleUpdateEmployee)
		employees.DELETE("/:employeeID", can(access.ActionDelete, access.ResourceEmployees), h.staff.HandleDeleteEmployee)
	}

	providers := authenticated.Group("/providers")
	{
		providers.GET("", can(access.ActionRead, access.ResourceProviders), h.staff.HandleListProviders)
		providers.POST("", can(access.ActionCreate, access.ResourceProviders), h.staff.HandleCreateProvider)
		providers.GET("/:providerID", can(access.ActionRead, access.ResourceProviders), h.staff.HandleGetProvider)
		providers.PUT("/:providerID", can(access.ActionUpdate, access.ResourceProviders), h.staff.HandleUpdateProvider)
		providers.DELETE("/:providerID", can(access.ActionDelete, access.ResourceProviders), h.staff.HandleDeleteProvider)
	}

	packages := authenticated.Group("/packages")
	{
		packages.GET("", can(access.ActionRead, access.ResourcePackages), h.packages.HandleListPackages)
		packages.POST("", can(access.ActionCreate, access.ResourcePackages), h.packages.HandleCreatePackage)
		packages.GET("/:packageID", can(access.ActionRead, access.ResourcePackages), h.packages.HandleGetPackage)
		packages.PUT("/:packageID", can(access.ActionUpdate, access.ResourcePackages), h.packages.HandleUpdatePackage)
		packages.DELETE("/:packageID", can(access.ActionDelete, access.ResourcePackages), h.packages.HandleDeletePackage)
	}

	reservations := authenticated.Group("/reservations")
	{
		reservations.GET("", can(access.ActionRead, access.ResourceReservations), h.reservations.HandleListReservations)
		reservations.POST("", can(access.ActionCreate, access.ResourceReservations), h.reservations.HandleCreateReservation)
		reservations.GET("/feed", can(access.ActionRead, access.ResourceReservations), h.feed.HandleFeed)
		reservations.GET("/:reservationID", can(access.ActionRead, access.ResourceReservations), h.reservations.HandleGetReservation)
		reservations.PUT("/:reservationID", can(access.ActionUpdate, access.ResourceReservations), h.reservations.HandleUpdateReservation)
		reservations.DELETE("/:reservationID", can(access.ActionDelete, access.ResourceReservations), h.reservations.HandleDeleteReservation)
	}

	authenticated.GET("/dashboard/stats", can(access.ActionRead, access.ResourceReservations), h.dashboard.HandleStats)

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/health", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Muhu Travel back office API"
	docs.SwaggerInfo.Description = "Reservations, clients, packages and staff of the travel agency."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
