package router

import (
	"net/http"
	"time"

	"vivah/config"
	"vivah/internal/cache"
	"vivah/internal/handler"
	"vivah/internal/middleware"
	"vivah/internal/repository"
	"vivah/internal/response"
	"vivah/internal/service"
	"vivah/pkg/payment"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup builds the dependency graph and mounts every route. A nil cache
// disables the projection layer without disabling any endpoint.
func Setup(cfg *config.Config, db *gorm.DB, profileCache *cache.ProfileCache) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	limRepo := repository.NewLimitationRepository(db)
	listingRepo := repository.NewListingRepository(db)
	interestRepo := repository.NewInterestRepository(db, limRepo)
	shortlistRepo := repository.NewShortlistRepository(db)
	ignoreRepo := repository.NewIgnoreRepository(db)
	contactRepo := repository.NewContactRepository(db, limRepo)
	eduRepo := repository.NewEducationRepository(db)
	careerRepo := repository.NewCareerRepository(db)
	galleryRepo := repository.NewGalleryRepository(db, limRepo)
	pkgRepo := repository.NewPackageRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	formatter := service.NewFormatter(cfg.Assets.BaseURL)
	authSvc := service.NewAuthService(cfg, userRepo, limRepo)
	profileSvc := service.NewProfileService(db, userRepo, profileCache)
	notifier := service.NewNotificationService(notifRepo)
	gateway := payment.NewRazorpayProvider(cfg.Razorpay.BaseURL, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	profileH := handler.NewProfileHandler(profileRepo, profileSvc)
	eduH := handler.NewEducationHandler(eduRepo, profileSvc)
	careerH := handler.NewCareerHandler(careerRepo, profileSvc)
	galleryH := handler.NewGalleryHandler(galleryRepo, profileSvc, formatter)
	memberH := handler.NewMemberHandler(listingRepo, profileRepo, formatter, profileCache)
	interestH := handler.NewInterestHandler(interestRepo, userRepo, formatter, notifier)
	shortlistH := handler.NewShortlistHandler(shortlistRepo, userRepo, formatter)
	ignoreH := handler.NewIgnoreHandler(ignoreRepo, userRepo, formatter)
	contactH := handler.NewContactHandler(contactRepo, userRepo, formatter, notifier)
	pkgH := handler.NewPackageHandler(pkgRepo)
	paymentH := handler.NewPaymentHandler(paymentRepo, pkgRepo, limRepo, gateway, notifier, cfg.Razorpay.Currency)
	ticketH := handler.NewTicketHandler(ticketRepo)
	notifH := handler.NewNotificationHandler(notifRepo)
	meH := handler.NewMeHandler(userRepo, limRepo, formatter, profileCache)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(120, time.Minute)))

	r.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, gin.H{"status": "up"})
	})

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	authed := v1.Group("")
	authed.Use(middleware.AuthRequired(&cfg.JWT))
	{
		authed.PATCH("/auth/change-password", authH.ChangePassword)
		authed.GET("/me", meH.Info)

		profile := authed.Group("/profile")
		{
			profile.GET("/basic-info", profileH.GetBasicInfo)
			profile.PUT("/basic-info", profileH.UpdateBasicInfo)
			profile.PUT("/physical", profileH.UpdatePhysical)
			profile.PUT("/family", profileH.UpdateFamily)
			profile.PUT("/partner-expectation", profileH.UpdatePartnerExpectation)
			profile.POST("/skip-step", profileH.SkipStep)

			profile.GET("/educations", eduH.List)
			profile.POST("/educations", eduH.Create)
			profile.PUT("/educations/:id", eduH.Update)
			profile.DELETE("/educations/:id", eduH.Delete)

			profile.GET("/careers", careerH.List)
			profile.POST("/careers", careerH.Create)
			profile.PUT("/careers/:id", careerH.Update)
			profile.DELETE("/careers/:id", careerH.Delete)

			profile.GET("/gallery", galleryH.List)
			profile.POST("/gallery", galleryH.Add)
			profile.DELETE("/gallery/:id", galleryH.Delete)
		}

		members := authed.Group("/members")
		{
			members.GET("", memberH.List)
			members.GET("/search", memberH.Search)
			members.GET("/:id", memberH.Detail)
		}

		interests := authed.Group("/interests")
		{
			interests.POST("/:id", interestH.Express)
			interests.DELETE("/:id", interestH.Remove)
			interests.POST("/:id/accept", interestH.Accept)
			interests.GET("/sent", interestH.ListSent)
			interests.GET("/received", interestH.ListReceived)
		}

		shortlist := authed.Group("/shortlist")
		{
			shortlist.GET("", shortlistH.List)
			shortlist.POST("", shortlistH.Add)
			shortlist.DELETE("/:id", shortlistH.Remove)
		}

		ignored := authed.Group("/ignored")
		{
			ignored.GET("", ignoreH.List)
			ignored.POST("", ignoreH.Add)
			ignored.DELETE("/:id", ignoreH.Remove)
		}

		contacts := authed.Group("/contacts")
		{
			contacts.GET("", contactH.ListUnlocked)
			contacts.POST("/:id/unlock", contactH.Unlock)
		}

		authed.GET("/packages", pkgH.List)
		payments := authed.Group("/payments")
		{
			payments.POST("/razorpay/order", paymentH.CreateOrder)
			payments.POST("/razorpay/verify", paymentH.Verify)
			payments.GET("", paymentH.History)
		}

		tickets := authed.Group("/tickets")
		{
			tickets.POST("", ticketH.Create)
			tickets.GET("", ticketH.List)
			tickets.GET("/:id", ticketH.Get)
			tickets.POST("/:id/replies", ticketH.Reply)
			tickets.POST("/:id/close", ticketH.Close)
		}

		notifications := authed.Group("/notifications")
		{
			notifications.GET("", notifH.List)
			notifications.POST("/:id/read", notifH.MarkRead)
		}
	}

	return r
}
