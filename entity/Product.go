package entity

type Product struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `json:"price"`

	// Img is the stored image reference: a ./assets/ path, a bare filename,
	// an http(s) URL or a device-local uri. utils.ResolveImage turns it into
	// something displayable.
	Img string `json:"img"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`
}
