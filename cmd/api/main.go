package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/astrosight/astrosight-backend/internal/appointment"
	"github.com/astrosight/astrosight-backend/internal/blog"
	"github.com/astrosight/astrosight-backend/internal/chart"
	"github.com/astrosight/astrosight-backend/internal/config"
	"github.com/astrosight/astrosight-backend/internal/contact"
	"github.com/astrosight/astrosight-backend/internal/mailer"
	"github.com/astrosight/astrosight-backend/internal/middleware"
	"github.com/astrosight/astrosight-backend/internal/user"
	"github.com/astrosight/astrosight-backend/internal/zodiac"
)

// repositories groups one backend's worth of stores. Either the postgres
// set or the in-memory set is built at startup; the two are never mixed.
type repositories struct {
	users        user.Repository
	signs        zodiac.Repository
	posts        blog.Repository
	messages     contact.Repository
	charts       chart.Repository
	appointments appointment.Repository
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	repos := buildRepositories(cfg)
	sender := buildSender(cfg)

	userHandler := user.NewHandler(user.NewService(repos.users))

	zodiacService := zodiac.NewService(repos.signs)
	if err := zodiacService.SeedIfEmpty(); err != nil {
		log.Fatalf("seed zodiac signs: %v", err)
	}
	zodiacHandler := zodiac.NewHandler(zodiacService)

	blogService := blog.NewService(repos.posts)
	if err := blogService.SeedIfEmpty(); err != nil {
		log.Fatalf("seed blog posts: %v", err)
	}
	blogHandler := blog.NewHandler(blogService)

	contactHandler := contact.NewHandler(contact.NewService(repos.messages, sender))
	chartHandler := chart.NewHandler(chart.NewService(repos.charts))
	appointmentHandler := appointment.NewHandler(appointment.NewService(repos.appointments, sender))

	app.Use(middleware.RateLimit(middleware.NewRateLimiter(5, 10)))

	userHandler.RegisterPublicRoutes(app)
	zodiacHandler.RegisterPublicRoutes(app)
	blogHandler.RegisterPublicRoutes(app)
	contactHandler.RegisterPublicRoutes(app)
	chartHandler.RegisterPublicRoutes(app)
	appointmentHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	appointmentHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func buildRepositories(cfg config.Config) repositories {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory storage")
		return repositories{
			users:        user.NewInMemoryRepository(nil),
			signs:        zodiac.NewInMemoryRepository(),
			posts:        blog.NewInMemoryRepository(),
			messages:     contact.NewInMemoryRepository(),
			charts:       chart.NewInMemoryRepository(),
			appointments: appointment.NewInMemoryRepository(),
		}
	}

	db := mustOpenDB(cfg.DatabaseURL)
	mustEnsureSchema(db)
	return repositories{
		users:        user.NewPostgresRepository(db),
		signs:        zodiac.NewPostgresRepository(db),
		posts:        blog.NewPostgresRepository(db),
		messages:     contact.NewPostgresRepository(db),
		charts:       chart.NewPostgresRepository(db),
		appointments: appointment.NewPostgresRepository(db),
	}
}

func buildSender(cfg config.Config) mailer.Sender {
	if cfg.SMTPHost == "" {
		log.Println("SMTP_HOST not set, logging outgoing mail instead")
		return mailer.NewLogSender()
	}
	return mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPass)
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	log.Println("connected to postgres")
	return db
}

// mustEnsureSchema creates the tables on first run. The unique indexes on
// users are the authoritative uniqueness guarantee; handlers only pre-check.
func mustEnsureSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			email TEXT NOT NULL,
			first_name TEXT,
			last_name TEXT,
			birth_date TIMESTAMP,
			birth_time TEXT,
			birth_place TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (lower(username))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (lower(email))`,
		`CREATE TABLE IF NOT EXISTS zodiac_signs (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			symbol TEXT NOT NULL,
			element TEXT NOT NULL,
			planet TEXT NOT NULL,
			date_range TEXT NOT NULL,
			traits TEXT NOT NULL,
			strengths TEXT NOT NULL,
			weaknesses TEXT NOT NULL,
			description TEXT NOT NULL,
			compatibility TEXT NOT NULL,
			image_url TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS zodiac_signs_name_key ON zodiac_signs (lower(name))`,
		`CREATE TABLE IF NOT EXISTS blog_posts (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			content TEXT NOT NULL,
			excerpt TEXT NOT NULL,
			image_url TEXT NOT NULL,
			category TEXT NOT NULL,
			published_at TIMESTAMP NOT NULL DEFAULT NOW(),
			author TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS birth_charts (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			name TEXT NOT NULL,
			birth_date TIMESTAMP NOT NULL,
			birth_time TEXT NOT NULL,
			birth_place TEXT NOT NULL,
			chart_data JSONB NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL DEFAULT 0,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			appointment_date TIMESTAMP NOT NULL,
			appointment_time TEXT NOT NULL,
			appointment_type TEXT NOT NULL,
			notes TEXT,
			confirmed BOOLEAN NOT NULL DEFAULT FALSE,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Duration = %v\n", c.OriginalURL(), c.Method(), time.Since(start))
	return err
}
