package repository

import (
	"github.com/nguyendat030805/FinalProjectMobile/configs"
	"github.com/nguyendat030805/FinalProjectMobile/entity"
)

// CatalogRepository talks to the categories and products tables. It holds
// the Database owner rather than a raw handle so a factory reset is
// transparent to callers: every method re-acquires the connection.
type CatalogRepository struct {
	DB *configs.Database
}

func NewCatalogRepository(db *configs.Database) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) FetchCategories() ([]entity.Category, error) {
	db, err := r.DB.Conn()
	if err != nil {
		return nil, err
	}
	var cats []entity.Category
	if err := db.Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CatalogRepository) FetchProducts() ([]entity.Product, error) {
	db, err := r.DB.Conn()
	if err != nil {
		return nil, err
	}
	var products []entity.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) FetchProductsByCategory(categoryID uint) ([]entity.Product, error) {
	db, err := r.DB.Conn()
	if err != nil {
		return nil, err
	}
	var products []entity.Product
	if err := db.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts matches keyword against the product name or the owning
// category's name.
func (r *CatalogRepository) SearchProducts(keyword string) ([]entity.Product, error) {
	return r.SearchProductsAdvanced(keyword, nil, nil)
}

// SearchProductsAdvanced adds optional price bounds to the keyword search.
// The bounds are AND-combined as given; minPrice > maxPrice is not rejected,
// it simply matches nothing.
func (r *CatalogRepository) SearchProductsAdvanced(keyword string, minPrice, maxPrice *float64) ([]entity.Product, error) {
	db, err := r.DB.Conn()
	if err != nil {
		return nil, err
	}

	like := "%" + keyword + "%"
	q := db.Model(&entity.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.name LIKE ? OR categories.name LIKE ?", like, like)
	if minPrice != nil {
		q = q.Where("products.price >= ?", *minPrice)
	}
	if maxPrice != nil {
		q = q.Where("products.price <= ?", *maxPrice)
	}

	var products []entity.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Create(p).Error
}

func (r *CatalogRepository) UpdateProduct(p *entity.Product) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Model(&entity.Product{}).Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"price":       p.Price,
			"img":         p.Img,
			"category_id": p.CategoryID,
		}).Error
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Delete(&entity.Product{}, id).Error
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Create(cat).Error
}

func (r *CatalogRepository) UpdateCategory(cat *entity.Category) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Model(&entity.Category{}).Where("id = ?", cat.ID).
		Update("name", cat.Name).Error
}

// DeleteCategory removes the row only. Products referencing the category
// keep their categoryId; orphans are tolerated, matching the schema.
func (r *CatalogRepository) DeleteCategory(id uint) error {
	db, err := r.DB.Conn()
	if err != nil {
		return err
	}
	return db.Delete(&entity.Category{}, id).Error
}
