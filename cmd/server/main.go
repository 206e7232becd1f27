package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"hostelia/internal/api"
	"hostelia/internal/auth"
	"hostelia/internal/repository"
	"hostelia/internal/service"
)

func main() {
	godotenv.Load()
	log.SetFormatter(&log.JSONFormatter{})

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	hostelRepo := repository.NewHostelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	backofficeRepo := repository.NewBackofficeRepository(db)
	jobRepo := repository.NewJobRepository(db)

	sender := service.NewSenderService()
	authSvc := service.NewAuthService(userRepo)
	hostelSvc := service.NewHostelService(hostelRepo, guestRepo)
	guestSvc := service.NewGuestService(guestRepo, userRepo, hostelRepo)
	roomSvc := service.NewRoomService(roomRepo, hostelRepo, reservationRepo)
	reservationSvc := service.NewReservationService(reservationRepo, roomRepo, hostelRepo, guestRepo, userRepo, sender)
	eventSvc := service.NewEventService(eventRepo, hostelRepo)
	backofficeSvc := service.NewBackofficeService(backofficeRepo)
	stripeSvc := service.NewStripeService(hostelRepo)
	jobSvc := service.NewJobService(jobRepo)

	authHandler := api.NewAuthHandler(authSvc)
	hostelHandler := api.NewHostelHandler(hostelSvc)
	guestHandler := api.NewGuestHandler(guestSvc)
	roomHandler := api.NewRoomHandler(roomSvc)
	reservationHandler := api.NewReservationHandler(reservationSvc)
	eventHandler := api.NewEventHandler(eventSvc)
	backofficeHandler := api.NewBackofficeHandler(backofficeSvc)
	stripeHandler := api.NewStripeHandler(stripeSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/google", authHandler.GoogleLogin).Methods("POST")
	r.HandleFunc("/api/auth/apple", authHandler.AppleLogin).Methods("POST")

	// Stripe redirects the hostel owner's browser here after onboarding,
	// so these cannot sit behind the Bearer middleware.
	r.HandleFunc("/api/stripe/success", stripeHandler.OnboardingSuccess).Methods("GET")
	r.HandleFunc("/api/stripe/refresh", stripeHandler.OnboardingRefresh).Methods("GET")

	// Authenticated endpoints
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(auth.Middleware)
	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	authed.HandleFunc("/guests", guestHandler.SaveGuest).Methods("POST")
	authed.HandleFunc("/guests/me", guestHandler.GetOwnProfile).Methods("GET")
	authed.HandleFunc("/guests/me", guestHandler.SaveGuest).Methods("PUT")
	authed.HandleFunc("/guests/me/photos", guestHandler.AddPhoto).Methods("POST")
	authed.HandleFunc("/guests/me/photos", guestHandler.RemovePhoto).Methods("DELETE")
	authed.HandleFunc("/guests/{username}", guestHandler.SearchGuest).Methods("GET")

	// Host-only endpoints
	host := authed.NewRoute().Subrouter()
	host.Use(auth.RequireRole(service.RoleHost))
	host.HandleFunc("/hostels", hostelHandler.CreateHostel).Methods("POST")
	host.HandleFunc("/hostels/me", hostelHandler.GetHostel).Methods("GET")
	host.HandleFunc("/rooms", roomHandler.CreateRoom).Methods("POST")
	host.HandleFunc("/rooms", roomHandler.ListRooms).Methods("GET")
	host.HandleFunc("/reservations", reservationHandler.CreateReservation).Methods("POST")
	host.HandleFunc("/availability", reservationHandler.GetAvailability).Methods("GET")
	host.HandleFunc("/events", eventHandler.CreateEvent).Methods("POST")
	host.HandleFunc("/events", eventHandler.ListEvents).Methods("GET")
	host.HandleFunc("/stripe/account", stripeHandler.CreateOnboardingLink).Methods("POST")
	host.HandleFunc("/backoffice/users-stats", backofficeHandler.UserStats).Methods("GET")
	host.HandleFunc("/backoffice/hostels-stats", backofficeHandler.HostelStats).Methods("GET")

	// Reservation statuses move forward on a daily sweep.
	c := cron.New()
	if _, err := c.AddFunc("@daily", func() {
		if err := jobSvc.SweepReservationStatuses(); err != nil {
			log.WithError(err).Error("reservation status sweep failed")
		}
	}); err != nil {
		log.Fatalf("Failed to schedule status sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
