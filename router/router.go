package router

import (
	"github.com/cafefausse/reservation-api/controllers"
	"github.com/cafefausse/reservation-api/middlewares"
	"github.com/cafefausse/reservation-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, allocator *services.Allocator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global per IP. Dipasang sebelum route didaftarkan;
	// gin membekukan handler chain saat registrasi.
	rateLimiter := middlewares.NewRateLimiter(100, 1)
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	customerCtrl := controllers.NewCustomerController(db)
	reservationCtrl := controllers.NewReservationController(db, allocator)
	tableCtrl := controllers.NewTableController(db, allocator)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Tamu bisa mendaftar dan memesan meja tanpa login
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.POST("/reservations", reservationCtrl.CreateReservation)

	// ----------------------------------------------------------------
	//                      STAFF ROUTES (JWT)
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		auth.GET("/customers", customerCtrl.GetAllCustomers)
		auth.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
		auth.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)
		auth.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

		auth.GET("/reservations", reservationCtrl.GetAllReservations)
		auth.GET("/reservations/customer/:customer_id", reservationCtrl.GetReservationsByCustomer)
		auth.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
		auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
		auth.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

		auth.GET("/tables/availability", tableCtrl.GetAvailability)
	}

	return r
}
