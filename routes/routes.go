package routes

import (
	"samaj-backend/constants"
	authController "samaj-backend/controllers/auth"
	bookingController "samaj-backend/controllers/booking"
	contactController "samaj-backend/controllers/contact"
	contentController "samaj-backend/controllers/content"
	formController "samaj-backend/controllers/form"
	samuhLaganController "samaj-backend/controllers/samuhlagan"
	studentAwardController "samaj-backend/controllers/studentaward"
	userController "samaj-backend/controllers/user"
	"samaj-backend/logger"
	"samaj-backend/middleware"
	"samaj-backend/services/mailer"
	otpService "samaj-backend/services/otp"
	"samaj-backend/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	mailService := mailer.NewService(db, mailer.NewSMTPSender())
	otp := otpService.NewService(db, mailService)

	auth := authController.NewAuthController(db, otp, asyncLogger)
	users := userController.NewUserController(db, asyncLogger)
	bookings := bookingController.NewBookingController(db, mailService, asyncLogger)
	samuhLagan := samuhLaganController.NewSamuhLaganController(db, mailService, asyncLogger)
	awards := studentAwardController.NewStudentAwardController(db, mailService, asyncLogger)
	forms := formController.NewFormController(db, asyncLogger)
	home := contentController.NewHomeContentController(db, asyncLogger)
	gallery := contentController.NewGalleryController(db, asyncLogger)
	contact := contactController.NewContactController(db, mailService, asyncLogger)

	// Background workers: request logging and the email outbox.
	go asyncLogger.ProcessLog()
	go mailService.Dispatch()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: "Samaj backend is running",
			Status:  fiber.StatusOK,
		})
	})

	api := app.Group("/api")

	requireUser := middleware.RequireRoles(constants.RoleUser, constants.RoleAdmin)
	requireAdmin := middleware.RequireRoles(constants.RoleAdmin)

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	authGroup := api.Group("/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/verify-otp", auth.VerifyOTP)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/forgot-password", middleware.PasswordResetLimiter(), auth.ForgotPassword)
	authGroup.Post("/resend-otp", middleware.PasswordResetLimiter(), auth.ResendOTP)
	authGroup.Post("/verify-reset-otp", auth.VerifyResetOTP)
	authGroup.Post("/reset-password", auth.ResetPassword)

	/*=============================================================================
	| User Routes
	===============================================================================*/
	userGroup := api.Group("/users")
	userGroup.Get("/profile", requireUser, users.GetProfile)
	userGroup.Put("/profile", requireUser, users.UpdateProfile)
	userGroup.Put("/profile/password", requireUser, users.UpdatePassword)
	userGroup.Put("/profile/notifications", requireUser, users.UpdateNotifications)
	userGroup.Post("/profile/image", requireUser, users.UploadProfileImage)
	userGroup.Get("/bookings", requireUser, bookings.GetUserBookings)
	userGroup.Post("/bookings/:id/cancel", requireUser, bookings.Cancel)

	userGroup.Get("/all", requireAdmin, users.GetAll)
	userGroup.Put("/:id", requireAdmin, users.AdminUpdate)
	userGroup.Delete("/:id", requireAdmin, users.AdminDelete)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Post("/submit", bookings.Submit)
	bookingGroup.Post("/upload-document", bookings.UploadDocument)
	bookingGroup.Get("/", requireAdmin, bookings.GetAll)
	bookingGroup.Put("/approve/:id", requireAdmin, bookings.Approve)
	bookingGroup.Put("/reject/:id", requireAdmin, bookings.Reject)
	bookingGroup.Put("/confirm-payment/:id", requireAdmin, bookings.ConfirmPayment)
	bookingGroup.Put("/confirm-booking/:id", requireAdmin, bookings.ConfirmBooking)
	bookingGroup.Put("/update/:id", requireAdmin, bookings.Update)
	bookingGroup.Delete("/delete/:id", requireAdmin, bookings.Delete)

	/*=============================================================================
	| Samuh Lagan Routes
	===============================================================================*/
	samuhGroup := bookingGroup.Group("/samuh-lagan")
	samuhGroup.Post("/submit", requireUser, forms.RequireOpen(constants.FormTypeSamuhLagan), samuhLagan.Submit)
	samuhGroup.Get("/my-registrations", requireUser, samuhLagan.GetMine)
	samuhGroup.Get("/", requireAdmin, samuhLagan.GetAll)
	samuhGroup.Put("/approve/:id", requireAdmin, samuhLagan.Approve)
	samuhGroup.Put("/confirm/:id", requireAdmin, samuhLagan.Confirm)
	samuhGroup.Put("/reject/:id", requireAdmin, samuhLagan.Reject)
	samuhGroup.Delete("/delete/:id", requireAdmin, samuhLagan.Delete)

	/*=============================================================================
	| Student Award Routes
	===============================================================================*/
	awardGroup := bookingGroup.Group("/student-awards")
	awardGroup.Post("/register", forms.RequireOpen(constants.FormTypeStudentAwards), awards.Register)
	awardGroup.Get("/", requireAdmin, awards.GetAll)
	awardGroup.Put("/approve/:id", requireAdmin, awards.Approve)
	awardGroup.Put("/reject/:id", requireAdmin, awards.Reject)
	awardGroup.Delete("/delete/:id", requireAdmin, awards.Delete)

	// Registered after the nested groups so their static prefixes match first.
	bookingGroup.Get("/:id", requireAdmin, bookings.GetByID)

	/*=============================================================================
	| Form Gate Routes
	===============================================================================*/
	formGroup := api.Group("/admin/forms")
	formGroup.Get("/public/status", forms.GetAllStatus)
	formGroup.Get("/check-form-visibility/:formName", forms.CheckVisibility)
	formGroup.Get("/can-access-form/:formName", requireUser, forms.CanAccess)
	formGroup.Get("/status/:formType", requireAdmin, forms.GetStatus)
	formGroup.Put("/status/:formType", requireAdmin, forms.UpdateStatus)
	formGroup.Post("/set-form-timer", requireAdmin, forms.SetTimer)

	/*=============================================================================
	| Content Routes
	===============================================================================*/
	contentGroup := api.Group("/content")
	contentGroup.Get("/home", home.Get)
	contentGroup.Post("/home", requireAdmin, home.Update)
	contentGroup.Put("/home/introduction", requireAdmin, home.UpdateIntroduction)
	contentGroup.Put("/home/about", requireAdmin, home.UpdateAbout)
	contentGroup.Put("/home/leadership", requireAdmin, home.UpdateLeadership)
	contentGroup.Delete("/home/leadership/members/:id", requireAdmin, home.DeleteLeadershipMember)
	contentGroup.Post("/home/hero-slide", requireAdmin, home.AddHeroSlide)
	contentGroup.Put("/home/hero-slide/:id", requireAdmin, home.UpdateHeroSlide)
	contentGroup.Delete("/home/hero-slide/:id", requireAdmin, home.DeleteHeroSlide)

	contentGroup.Get("/gallery", gallery.GetAll)
	contentGroup.Post("/gallery", requireAdmin, gallery.Create)
	contentGroup.Put("/gallery/:id", requireAdmin, gallery.Update)
	contentGroup.Delete("/gallery/:id", requireAdmin, gallery.Delete)
	contentGroup.Post("/gallery/:id/like", gallery.Like)

	/*=============================================================================
	| Contact Routes
	===============================================================================*/
	contactGroup := api.Group("/contact")
	contactGroup.Post("/", requireUser, middleware.ContactLimiter(), contact.Submit)
	contactGroup.Get("/", requireAdmin, contact.GetAll)
}
