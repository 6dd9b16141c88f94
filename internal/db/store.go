// Store exposes the persistence surface handed to the API layer.
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/openummah/masjidmap/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// mosque functions
	ListMosques() ([]model.Mosque, error)
	GetMosqueByID(id string) (model.Mosque, error)
	CreateMosque(m model.Mosque) (model.Mosque, error)
	UpdateMosque(id string, name, address *string, capacity *int) error
	UpdateMosqueTimings(id string, fajr, dhuhr, asr, maghrib, isha string) error
	DeleteMosque(id string) error
	SeedMosques(mosques []model.Mosque) error

	// display functions
	ListDisplaysForMosque(mosqueID string) ([]model.Display, error)
	GetDisplayByID(id int) (model.Display, error)
	CreateDisplay(mosqueID, name string) (model.Display, error)
	PairDisplay(id int, deviceID string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
