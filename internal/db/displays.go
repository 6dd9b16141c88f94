package db

import (
	"github.com/openummah/masjidmap/internal/model"
)

func ListDisplaysForMosque(mosqueID string) ([]model.Display, error) {
	var displays []model.Display
	err := DB.Select(&displays, `
		SELECT id, mosque_id, device_id, name, paired, created_at, updated_at
		FROM displays
		WHERE mosque_id = $1
		ORDER BY id
		`, mosqueID)
	return displays, err
}

func GetDisplayByID(id int) (model.Display, error) {
	var d model.Display
	err := DB.Get(&d, `
		SELECT id, mosque_id, device_id, name, paired, created_at, updated_at
		FROM displays
		WHERE id = $1
		`, id)
	return d, err
}

func CreateDisplay(mosqueID, name string) (model.Display, error) {
	var d model.Display
	err := DB.Get(&d, `
		INSERT INTO displays (mosque_id, name, paired, created_at, updated_at)
		VALUES ($1, $2, false, now(), now())
		RETURNING id, mosque_id, device_id, name, paired, created_at, updated_at;
		`, mosqueID, name)
	return d, err
}

func PairDisplay(id int, deviceID string) error {
	_, err := DB.Exec(`
		UPDATE displays
		SET device_id = $2,
		paired = TRUE,
		updated_at = now()
		WHERE id = $1
		`, id, deviceID)
	return err
}

func (s *pgStore) ListDisplaysForMosque(mosqueID string) ([]model.Display, error) {
	return ListDisplaysForMosque(mosqueID)
}

func (s *pgStore) GetDisplayByID(id int) (model.Display, error) {
	return GetDisplayByID(id)
}

func (s *pgStore) CreateDisplay(mosqueID, name string) (model.Display, error) {
	return CreateDisplay(mosqueID, name)
}

func (s *pgStore) PairDisplay(id int, deviceID string) error {
	return PairDisplay(id, deviceID)
}
