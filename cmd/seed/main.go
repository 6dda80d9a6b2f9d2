package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"adboard/internal/database"
	"adboard/internal/domain"
)

func main() {
	db, err := database.Connect("adboard.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM advertisements")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
		FirstName:    "Site",
		LastName:     "Admin",
		Email:        "admin@adboard.local",
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("failed to create admin:", err)
	}

	users := make([]domain.User, 0, 3)
	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		u := domain.User{
			Username:     fmt.Sprintf("user%d", i),
			PasswordHash: string(hash),
			FirstName:    fmt.Sprintf("User%d", i),
			LastName:     "Demo",
			Email:        fmt.Sprintf("user%d@adboard.local", i),
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatal("failed to create user:", err)
		}
		users = append(users, u)
	}

	// ================== ADVERTISEMENTS ==================
	log.Println("Creating advertisements...")

	statuses := []domain.AdStatus{domain.StatusOpen, domain.StatusOpen, domain.StatusClosed, domain.StatusDraft}
	var ads []domain.Advertisement
	for _, u := range users {
		for i, status := range statuses {
			ad := domain.Advertisement{
				Title:       fmt.Sprintf("%s: объявление #%d", u.Username, i+1),
				Description: "Демонстрационное объявление",
				Status:      status,
				CreatorID:   u.ID,
			}
			if err := db.Create(&ad).Error; err != nil {
				log.Fatal("failed to create advertisement:", err)
			}
			ads = append(ads, ad)
		}
	}

	// ================== FAVORITES ==================
	log.Println("Creating favorites...")

	// Каждый пользователь добавляет в избранное первое открытое чужое объявление
	for _, u := range users {
		for _, ad := range ads {
			if ad.CreatorID != u.ID && ad.Status == domain.StatusOpen {
				fav := domain.Favorite{UserID: u.ID, AdvertisementID: ad.ID}
				if err := db.Create(&fav).Error; err != nil {
					log.Fatal("failed to create favorite:", err)
				}
				break
			}
		}
	}

	log.Printf("Seed complete: %d users (+admin), %d advertisements", len(users), len(ads))
	log.Println("Login as admin/admin123 or user1/password123")
}
