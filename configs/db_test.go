package configs

import (
	"path/filepath"
	"testing"

	"github.com/nguyendat030805/FinalProjectMobile/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	d := NewDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	t.Cleanup(func() { d.Close() })
	return d
}

func countRows(t *testing.T, d *Database, model any) int64 {
	t.Helper()
	db, err := d.Conn()
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestInitializeIdempotent(t *testing.T) {
	d := newTestDatabase(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, d.Initialize(), "initialize run %d", i)
	}

	assert.EqualValues(t, 5, countRows(t, d, &entity.Category{}))
	assert.EqualValues(t, 5, countRows(t, d, &entity.Product{}))
	assert.EqualValues(t, 4, countRows(t, d, &entity.User{}))
}

func TestInitializeSeedsFactoryCategories(t *testing.T) {
	d := newTestDatabase(t)
	require.NoError(t, d.Initialize())

	db, err := d.Conn()
	require.NoError(t, err)

	var cats []entity.Category
	require.NoError(t, db.Order("id").Find(&cats).Error)

	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Lamborghini", "Audi", "Ferrari", "Maserati", "Porsche"}, names)
}

func TestSeedPreservesAdminEdits(t *testing.T) {
	d := newTestDatabase(t)
	require.NoError(t, d.Initialize())

	db, err := d.Conn()
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Category{}).Where("id = ?", 1).Update("name", "Lambo").Error)

	// re-running the seed must not undo the rename or duplicate the row
	require.NoError(t, d.Initialize())

	var cat entity.Category
	require.NoError(t, db.First(&cat, 1).Error)
	assert.Equal(t, "Lambo", cat.Name)
	assert.EqualValues(t, 5, countRows(t, d, &entity.Category{}))
}

func TestMigrateLegacyImages(t *testing.T) {
	d := newTestDatabase(t)
	require.NoError(t, d.Initialize())

	db, err := d.Conn()
	require.NoError(t, err)
	legacy := entity.Product{ID: 99, Name: "Old Row", Price: 10, Img: "items_Picture/foo.jpg", CategoryID: 1}
	require.NoError(t, db.Create(&legacy).Error)

	require.NoError(t, d.Initialize())

	var p entity.Product
	require.NoError(t, db.First(&p, 99).Error)
	assert.Equal(t, "./assets/foo.jpg", p.Img)

	// stable: a second sweep must not rewrite again
	require.NoError(t, d.Initialize())
	require.NoError(t, db.First(&p, 99).Error)
	assert.Equal(t, "./assets/foo.jpg", p.Img)
}

func TestResetAndReinitRestoresFactorySeed(t *testing.T) {
	d := newTestDatabase(t)
	require.NoError(t, d.Initialize())

	db, err := d.Conn()
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Category{Name: "Bugatti"}).Error)
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", 1).Update("price", 1).Error)

	require.NoError(t, d.ResetAndReinit())

	assert.EqualValues(t, 5, countRows(t, d, &entity.Category{}))
	assert.EqualValues(t, 5, countRows(t, d, &entity.Product{}))
	assert.EqualValues(t, 4, countRows(t, d, &entity.User{}))

	db, err = d.Conn()
	require.NoError(t, err)
	var p entity.Product
	require.NoError(t, db.First(&p, 1).Error)
	assert.EqualValues(t, 250000, p.Price)
}
