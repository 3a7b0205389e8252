package main

import (
	"fmt"
	"log"
	"os"

	"clinicflash-backend/config"
	"clinicflash-backend/data"
	"clinicflash-backend/models"
	"clinicflash-backend/routes"
	"clinicflash-backend/services"
	"clinicflash-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	// Without DB_URL the service runs DB-less on the in-memory store,
	// which is enough for local development against the fixtures.
	var kv storage.KV
	if os.Getenv("DB_URL") != "" {
		config.ConnectDB()
		config.DB.AutoMigrate(
			&models.StorageRecord{},
			&models.AdminUser{},
			&models.ReminderLog{},
		)
		seedAdminUser()
		kv = storage.NewGormKV(config.DB)
	} else {
		log.Println("DB_URL not set, using in-memory storage")
		kv = storage.NewMemoryKV()
	}

	store := data.NewStore()
	settings := storage.NewSettingsStore(kv)
	reminders := services.NewReminderService(config.DB, store, settings)

	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		reminders.StartScheduler()
	}

	r := routes.SetupRouter(routes.Deps{
		Store:     store,
		KV:        kv,
		Assistant: services.NewAssistant(store),
		Reminders: reminders,
		Payments:  services.NewPaymentService(),
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func seedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	config.DB.Model(&models.AdminUser{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	admin := models.AdminUser{
		Email:    email,
		Password: password, // hashed in BeforeCreate
		Name:     "Administrator",
		Role:     "owner",
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", email)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
