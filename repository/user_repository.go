package repository

import (
	"errors"

	"github.com/nguyendat030805/FinalProjectMobile/configs"
	"github.com/nguyendat030805/FinalProjectMobile/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository talks to the users table.
type UserRepository struct {
	DB *configs.Database
}

func NewUserRepository(db *configs.Database) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Fetch() ([]entity.User, error) {
	db, err := r.DB.Conn()
	if err != nil {
		return nil, err
	}
	var users []entity.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Search(keyword string) ([]entity.User, error) {
	db, err := r.DB.Conn()
	if err != nil {
		return nil, err
	}
	like := "%" + keyword + "%"
	var users []entity.User
	if err := db.Where("username LIKE ? OR role LIKE ?", like, like).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	db, err := r.DB.Conn()
	if err != nil {
		return nil, err
	}
	var user entity.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	db, err := r.DB.Conn()
	if err != nil {
		return nil, err
	}
	var user entity.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCredentials returns the matching user, or (nil, nil) when the
// username is unknown or the password does not match the stored hash.
func (r *UserRepository) FindByCredentials(username, password string) (*entity.User, error) {
	user, err := r.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// Create inserts the user; the uniqueness constraint on username surfaces
// as an error.
func (r *UserRepository) Create(user *entity.User) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Create(user).Error
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the user row. Orders are keyed by username, not user id,
// so the order log is deliberately left untouched.
func (r *UserRepository) Delete(id uint) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Delete(&entity.User{}, id).Error
}
