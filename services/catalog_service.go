package services

import (
	"errors"
	"log"
	"strings"

	"github.com/nguyendat030805/FinalProjectMobile/entity"
	"github.com/nguyendat030805/FinalProjectMobile/repository"
)

// CatalogService wraps the catalog repository with the storefront policy:
// reads never fail the listing — a store failure is logged and comes back as
// an empty list — while mutations validate and report their errors.
type CatalogService struct {
	repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Categories() []entity.Category {
	cats, err := s.repo.FetchCategories()
	if err != nil {
		log.Printf("fetch categories: %v", err)
		return []entity.Category{}
	}
	return cats
}

func (s *CatalogService) Products() []entity.Product {
	products, err := s.repo.FetchProducts()
	if err != nil {
		log.Printf("fetch products: %v", err)
		return []entity.Product{}
	}
	return products
}

func (s *CatalogService) ProductsByCategory(categoryID uint) []entity.Product {
	products, err := s.repo.FetchProductsByCategory(categoryID)
	if err != nil {
		log.Printf("fetch products for category %d: %v", categoryID, err)
		return []entity.Product{}
	}
	return products
}

func (s *CatalogService) Search(keyword string, minPrice, maxPrice *float64) []entity.Product {
	products, err := s.repo.SearchProductsAdvanced(keyword, minPrice, maxPrice)
	if err != nil {
		log.Printf("search products %q: %v", keyword, err)
		return []entity.Product{}
	}
	return products
}

func (s *CatalogService) AddProduct(p *entity.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.CreateProduct(p)
}

func (s *CatalogService) UpdateProduct(p *entity.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.UpdateProduct(p)
}

func (s *CatalogService) DeleteProduct(id uint) error {
	return s.repo.DeleteProduct(id)
}

func (s *CatalogService) AddCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}
	cat := &entity.Category{Name: name}
	if err := s.repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) UpdateCategory(id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("category name is required")
	}
	return s.repo.UpdateCategory(&entity.Category{ID: id, Name: name})
}

func (s *CatalogService) DeleteCategory(id uint) error {
	return s.repo.DeleteCategory(id)
}

func validateProduct(p *entity.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}
