package routes

import (
	"clinicflash-backend/config"
	"clinicflash-backend/controllers"
	"clinicflash-backend/data"
	"clinicflash-backend/services"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps bundles the shared stores and services the controllers need.
type Deps struct {
	Store     *data.Store
	KV        storage.KV
	Assistant *services.Assistant
	Reminders *services.ReminderService
	Payments  *services.PaymentService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	sessions := storage.NewSessionStore(deps.KV)
	chat := storage.NewChatStore(deps.KV)
	bookings := storage.NewBookingStore(deps.KV)
	phrases := storage.NewPhraseStore(deps.KV)
	gallery := storage.NewGalleryStore(deps.KV)
	settings := storage.NewSettingsStore(deps.KV)
	points := storage.NewPointsStore(deps.KV, deps.Store)

	authCtl := &controllers.AuthController{Store: deps.Store, Sessions: sessions}
	chatCtl := &controllers.ChatController{
		Assistant: deps.Assistant,
		Chat:      chat,
		Sessions:  sessions,
		Store:     deps.Store,
		Reminders: deps.Reminders,
	}
	menuCtl := &controllers.MenuController{}
	clinicCtl := &controllers.ClinicController{Store: deps.Store, Sessions: sessions}
	bookingCtl := &controllers.BookingController{Bookings: bookings, Payments: deps.Payments}
	historyCtl := &controllers.HistoryController{Store: deps.Store, Sessions: sessions}
	pointsCtl := &controllers.PointsController{Points: points, Store: deps.Store, Sessions: sessions}
	galleryCtl := &controllers.GalleryController{Gallery: gallery}
	phrasesCtl := &controllers.PhrasesController{Phrases: phrases}
	settingsCtl := &controllers.SettingsController{Settings: settings}
	dashboardCtl := &controllers.DashboardController{
		Store:    deps.Store,
		Sessions: sessions,
		Bookings: bookings,
		Points:   points,
		Settings: settings,
	}
	customerCtl := &controllers.CustomerController{Store: deps.Store, Bookings: bookings, Points: points}
	weatherCtl := controllers.NewWeatherController()

	auth := r.Group("/auth")
	{
		auth.POST("/patient", authCtl.PatientLogin)
		auth.POST("/admin/login", authCtl.AdminLogin)
		auth.GET("/me", authCtl.Me)
		auth.POST("/logout", authCtl.Logout)
		auth.GET("/remembered", authCtl.GetRememberedPatientNumber)
		auth.DELETE("/remembered", authCtl.ClearRememberedPatientNumber)
	}

	api := r.Group("/api")
	{
		chatGroup := api.Group("/chat")
		chatGroup.Use(utils.RateLimitMiddleware(5, 10))
		{
			chatGroup.GET("/init", chatCtl.Init)
			chatGroup.POST("/messages", chatCtl.SendMessage)
			chatGroup.GET("/history", chatCtl.GetHistory)
			chatGroup.DELETE("/history", chatCtl.ClearHistory)
			chatGroup.GET("/reminder", chatCtl.GetReminder)
			chatGroup.POST("/intent", chatCtl.ParseIntent)
		}

		menus := api.Group("/menus")
		{
			menus.GET("", menuCtl.GetMenus)
			menus.GET("/popular", menuCtl.GetPopularMenus)
			menus.GET("/prices", menuCtl.GetPriceList)
			menus.GET("/:id", menuCtl.GetMenu)
		}

		clinic := api.Group("/clinic")
		{
			clinic.GET("", clinicCtl.GetClinicInfo)
			clinic.GET("/hours", clinicCtl.GetHours)
			clinic.GET("/downtime-care", clinicCtl.GetDowntimeCare)
			clinic.GET("/address", clinicCtl.GetAddress)
			clinic.PUT("/address", clinicCtl.UpdateAddress)
			clinic.PUT("/address/full", clinicCtl.UpdateFullAddress)
		}
		api.GET("/clinics/nearby", clinicCtl.GetNearbyClinics)
		api.GET("/clinics/:id/slots", clinicCtl.GetClinicSlots)

		api.GET("/slots", bookingCtl.GetSlots)
		bookingGroup := api.Group("/bookings")
		{
			bookingGroup.GET("", bookingCtl.GetBookings)
			bookingGroup.POST("", bookingCtl.CreateBooking)
			bookingGroup.PATCH("/:id/cancel", bookingCtl.CancelBooking)
		}

		payments := api.Group("/payments")
		{
			payments.POST("/checkout", bookingCtl.Checkout)
			payments.POST("/notify", bookingCtl.PaymentNotify)
		}

		history := api.Group("/history")
		{
			history.GET("", historyCtl.GetHistory)
			history.PUT("/:id/notes", historyCtl.UpdateNotes)
			history.POST("/:id/feedback", historyCtl.SaveFeedback)
		}
		api.GET("/contracts", historyCtl.GetContracts)
		api.GET("/interval-check", historyCtl.GetIntervalCheck)

		pointsGroup := api.Group("/points")
		{
			pointsGroup.GET("", pointsCtl.GetPoints)
			pointsGroup.POST("/use", pointsCtl.UsePoints)
			pointsGroup.POST("/earn", pointsCtl.EarnPoints)
			pointsGroup.GET("/expiring", pointsCtl.GetExpiringPoints)
		}
		api.GET("/coupons", pointsCtl.GetCoupons)
		api.POST("/coupons/:id/use", pointsCtl.UseCoupon)
		api.GET("/referral", pointsCtl.GetReferral)
		api.GET("/referral/code/:code", pointsCtl.LookupReferralCode)

		galleryGroup := api.Group("/gallery")
		{
			galleryGroup.GET("/photos", galleryCtl.GetPhotos)
			galleryGroup.POST("/photos", galleryCtl.SavePhoto)
			galleryGroup.DELETE("/photos/:id", galleryCtl.DeletePhoto)
			galleryGroup.GET("/pairs", galleryCtl.GetPairs)
			galleryGroup.POST("/pairs", galleryCtl.SavePair)
			galleryGroup.DELETE("/pairs/:id", galleryCtl.DeletePair)
			galleryGroup.GET("/settings", galleryCtl.GetSettings)
			galleryGroup.PUT("/settings", galleryCtl.UpdateSettings)
			galleryGroup.GET("/usage", galleryCtl.GetUsage)
		}

		notif := api.Group("/settings/notifications")
		{
			notif.GET("", settingsCtl.GetSettings)
			notif.PUT("", settingsCtl.UpdateSettings)
			notif.DELETE("", settingsCtl.ResetSettings)
			notif.PUT("/booking-reminder", settingsCtl.UpdateBookingReminder)
			notif.PUT("/campaign", settingsCtl.UpdateCampaignNotification)
			notif.PUT("/course-reminder", settingsCtl.UpdateCourseReminder)
		}

		phrasesGroup := api.Group("/phrases")
		{
			phrasesGroup.GET("", phrasesCtl.GetPhrases)
			phrasesGroup.POST("", phrasesCtl.SavePhrase)
			phrasesGroup.DELETE("/:id", phrasesCtl.DeletePhrase)
			phrasesGroup.POST("/:id/use", phrasesCtl.UsePhrase)
			phrasesGroup.POST("/reset", phrasesCtl.ResetPhrases)
		}

		api.GET("/dashboard", dashboardCtl.GetDashboard)

		weather := api.Group("/weather")
		{
			weather.GET("", weatherCtl.GetForecast)
			weather.GET("/geocode", weatherCtl.Geocode)
		}

		admin := api.Group("/admin")
		admin.Use(utils.AuthMiddleware(), utils.AdminMiddleware())
		{
			admin.GET("/customers", customerCtl.GetCustomers)
			admin.GET("/customers/:id", customerCtl.GetCustomer)
			admin.GET("/reservations", customerCtl.GetReservations)
		}
	}

	return r
}
