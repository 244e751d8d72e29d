package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/controller"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/service"
	"schoolhub_backend/pkg/database"
	"schoolhub_backend/pkg/logger"
	"schoolhub_backend/pkg/monitoring"
	"schoolhub_backend/pkg/security"
	"schoolhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	cron     *cron.Cron
}

type repositories struct {
	user         *repository.UserRepository
	applicant    *repository.ApplicantRepository
	student      *repository.StudentRepository
	section      *repository.SectionRepository
	class        *repository.ClassRepository
	quiz         *repository.QuizRepository
	attempt      *repository.AttemptRepository
	assignment   *repository.AssignmentRepository
	grade        *repository.GradeRepository
	attendance   *repository.AttendanceRepository
	announcement *repository.AnnouncementRepository
	material     *repository.MaterialRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	admission    *service.AdmissionService
	section      *service.SectionService
	class        *service.ClassService
	quiz         *service.QuizService
	assignment   *service.AssignmentService
	gradebook    *service.GradebookService
	attendance   *service.AttendanceService
	announcement *service.AnnouncementService
	material     *service.MaterialService
	parent       *service.ParentService
	storage      *service.StorageService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	admission    *controller.AdmissionController
	section      *controller.SectionController
	class        *controller.ClassController
	quiz         *controller.QuizController
	studentQuiz  *controller.StudentQuizController
	assignment   *controller.AssignmentController
	gradebook    *controller.GradebookController
	attendance   *controller.AttendanceController
	announcement *controller.AnnouncementController
	material     *controller.MaterialController
	parent       *controller.ParentController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		applicant:    repository.NewApplicantRepository(db),
		student:      repository.NewStudentRepository(db),
		section:      repository.NewSectionRepository(db),
		class:        repository.NewClassRepository(db),
		quiz:         repository.NewQuizRepository(db),
		attempt:      repository.NewAttemptRepository(db),
		assignment:   repository.NewAssignmentRepository(db),
		grade:        repository.NewGradeRepository(db),
		attendance:   repository.NewAttendanceRepository(db),
		announcement: repository.NewAnnouncementRepository(db),
		material:     repository.NewMaterialRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.admission = service.NewAdmissionService(repos.applicant, repos.user, repos.student, cfg, db)
	s.section = service.NewSectionService(repos.section, repos.student, repos.user)
	s.class = service.NewClassService(repos.class, repos.section, repos.user)
	s.quiz = service.NewQuizService(repos.quiz, repos.attempt, repos.class, repos.student, rdb, cfg.School.PassingPercent)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.class, s.storage)
	s.gradebook = service.NewGradebookService(repos.grade, repos.class, repos.student)
	s.attendance = service.NewAttendanceService(repos.attendance, repos.class, repos.student)
	s.announcement = service.NewAnnouncementService(repos.announcement, repos.student)
	s.material = service.NewMaterialService(repos.material, repos.class, s.storage)
	s.parent = service.NewParentService(repos.student, repos.user, db)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		admission:    controller.NewAdmissionController(s.admission),
		section:      controller.NewSectionController(s.section, s.class),
		class:        controller.NewClassController(s.class),
		quiz:         controller.NewQuizController(s.quiz),
		studentQuiz:  controller.NewStudentQuizController(s.quiz),
		assignment:   controller.NewAssignmentController(s.assignment, s.quiz),
		gradebook:    controller.NewGradebookController(s.gradebook, s.quiz),
		attendance:   controller.NewAttendanceController(s.attendance, s.quiz),
		announcement: controller.NewAnnouncementController(s.announcement),
		material:     controller.NewMaterialController(s.material),
		parent:       controller.NewParentController(s.parent, s.gradebook, s.attendance, s.quiz),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundJobs 定时任务：到期测验自动关闭、定时公告发布
func (a *App) startBackgroundJobs(s *services) {
	a.cron = cron.New()

	a.cron.AddFunc("@every 1m", func() {
		if err := s.quiz.CloseOverdueQuizzes(); err != nil {
			logger.Log.Error("close overdue quizzes job failed", zap.Error(err))
			monitoring.ScheduledJobCounter.WithLabelValues("close_overdue_quizzes", "error").Inc()
			return
		}
		monitoring.ScheduledJobCounter.WithLabelValues("close_overdue_quizzes", "ok").Inc()
	})
	a.cron.AddFunc("@every 1m", func() {
		if err := s.announcement.PublishDueScheduled(); err != nil {
			logger.Log.Error("publish scheduled announcements job failed", zap.Error(err))
			monitoring.ScheduledJobCounter.WithLabelValues("publish_announcements", "error").Inc()
			return
		}
		monitoring.ScheduledJobCounter.WithLabelValues("publish_announcements", "ok").Inc()
	})

	a.cron.Start()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, statistics cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("schoolhub-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundJobs(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.cron != nil {
		a.cron.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
