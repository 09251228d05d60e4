package configs

import (
	"log"
	"strings"

	"github.com/nguyendat030805/FinalProjectMobile/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCategories = []entity.Category{
	{ID: 1, Name: "Lamborghini"},
	{ID: 2, Name: "Audi"},
	{ID: 3, Name: "Ferrari"},
	{ID: 4, Name: "Maserati"},
	{ID: 5, Name: "Porsche"},
}

var seedProducts = []entity.Product{
	{ID: 1, Name: "Lamborghini Revuelto", Price: 250000, Img: "./assets/hinh-anh-sieu-xe-lamborghini-doc-dao_062150116.jpg", CategoryID: 1},
	{ID: 2, Name: "Lamborghini Aventador", Price: 1100000, Img: "./assets/Hình-siêu-xe-4k-cực-nét-cho-laptop-máy-tính-scaled.jpg", CategoryID: 2},
	{ID: 3, Name: "Ferrari F8 Tributo / Spider", Price: 490000, Img: "./assets/Hình-Siêu-xe-4k-cực-đẹp-scaled.jpg", CategoryID: 3},
	{ID: 4, Name: "Maserati MC20 / MC20 Cielo", Price: 120000, Img: "./assets/Hình-Siêu-xe-4k-cực-đẹp-scaled.jpg", CategoryID: 4},
	{ID: 5, Name: "Porsche Taycan", Price: 980000, Img: "./assets/Hình-siêu-xe-Lamborghini-cực-đẹp-scaled.jpg", CategoryID: 5},
}

var seedUsers = []struct {
	Username string
	Password string
	Role     string
}{
	{"admin", "123456", "admin"},
	{"user1", "password1", "user"},
	{"user2", "password2", "user"},
	{"guest1", "guestpass", "guest"},
}

// SeedCatalog inserts the factory rows that are not already present.
// Existing rows are left alone, including rows an admin has edited in place.
func SeedCatalog(db *gorm.DB) error {
	for _, cat := range seedCategories {
		var count int64
		if err := db.Model(&entity.Category{}).Where("id = ?", cat.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
	}

	for _, prod := range seedProducts {
		var count int64
		if err := db.Model(&entity.Product{}).Where("id = ?", prod.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&prod).Error; err != nil {
			return err
		}
	}

	for _, u := range seedUsers {
		var count int64
		if err := db.Model(&entity.User{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{Username: u.Username, Password: string(hash), Role: u.Role}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	return nil
}

// MigrateLegacyImages rewrites old items_Picture/ image paths to the
// ./assets/ convention. Rewritten rows no longer match the pattern, so the
// sweep is a no-op on later runs.
func MigrateLegacyImages(db *gorm.DB) error {
	var outdated []entity.Product
	if err := db.Where("img LIKE ?", "%items_Picture/%").Find(&outdated).Error; err != nil {
		return err
	}
	for _, p := range outdated {
		parts := strings.Split(strings.ReplaceAll(p.Img, "\\", "/"), "/")
		newImg := "./assets/" + parts[len(parts)-1]
		if err := db.Model(&entity.Product{}).Where("id = ?", p.ID).Update("img", newImg).Error; err != nil {
			return err
		}
		log.Printf("migrated product %d image to %s", p.ID, newImg)
	}
	return nil
}
