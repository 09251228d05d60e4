package entity

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	// Declared but not enforced on delete: removing a category leaves its
	// products pointing at the old id.
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
