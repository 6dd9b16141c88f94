package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/openummah/masjidmap/internal/model"
)

const mosqueColumns = `id, name, address, city, latitude, longitude,
	fajr, dhuhr, asr, maghrib, isha, capacity, facilities, created_at, updated_at`

func ListMosques() ([]model.Mosque, error) {
	var mosques []model.Mosque
	err := DB.Select(&mosques, `
		SELECT `+mosqueColumns+`
		FROM mosques
		ORDER BY id
		`)
	return mosques, err
}

func GetMosqueByID(id string) (model.Mosque, error) {
	var m model.Mosque
	err := DB.Get(&m, `
		SELECT `+mosqueColumns+`
		FROM mosques
		WHERE id = $1
		`, id)
	return m, err
}

func CreateMosque(m model.Mosque) (model.Mosque, error) {
	var out model.Mosque
	q := `
	INSERT INTO mosques (id, name, address, city, latitude, longitude,
		fajr, dhuhr, asr, maghrib, isha, capacity, facilities, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
	RETURNING ` + mosqueColumns + `;`
	if err := DB.Get(&out, q,
		m.ID, m.Name, m.Address, m.City, m.Latitude, m.Longitude,
		m.Fajr, m.Dhuhr, m.Asr, m.Maghrib, m.Isha,
		m.Capacity, pq.Array([]string(m.Facilities))); err != nil {
		log.Error().Err(err).Str("id", m.ID).Msg("failed to create mosque")
		return model.Mosque{}, err
	}
	return out, nil
}

func UpdateMosque(id string, name, address *string, capacity *int) error {
	_, err := DB.Exec(`
		UPDATE mosques
		SET name = COALESCE($2, name),
		address = COALESCE($3, address),
		capacity = COALESCE($4, capacity),
		updated_at = now()
		WHERE id = $1
		`, id, name, address, capacity)
	return err
}

func UpdateMosqueTimings(id string, fajr, dhuhr, asr, maghrib, isha string) error {
	_, err := DB.Exec(`
		UPDATE mosques
		SET fajr = $2, dhuhr = $3, asr = $4, maghrib = $5, isha = $6,
		updated_at = now()
		WHERE id = $1
		`, id, fajr, dhuhr, asr, maghrib, isha)
	return err
}

func DeleteMosque(id string) error {
	_, err := DB.Exec(`DELETE FROM mosques WHERE id = $1`, id)
	return err
}

// SeedMosques upserts the bundled dataset at startup. Rows edited through
// the admin API keep their values only until the next seed overwrites them
// with the dataset copy, so dataset and database are kept in step by ID.
func SeedMosques(mosques []model.Mosque) error {
	for _, m := range mosques {
		_, err := DB.Exec(`
			INSERT INTO mosques (id, name, address, city, latitude, longitude,
				fajr, dhuhr, asr, maghrib, isha, capacity, facilities, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				address = EXCLUDED.address,
				city = EXCLUDED.city,
				latitude = EXCLUDED.latitude,
				longitude = EXCLUDED.longitude,
				fajr = EXCLUDED.fajr,
				dhuhr = EXCLUDED.dhuhr,
				asr = EXCLUDED.asr,
				maghrib = EXCLUDED.maghrib,
				isha = EXCLUDED.isha,
				capacity = EXCLUDED.capacity,
				facilities = EXCLUDED.facilities,
				updated_at = now()
			`,
			m.ID, m.Name, m.Address, m.City, m.Latitude, m.Longitude,
			m.Fajr, m.Dhuhr, m.Asr, m.Maghrib, m.Isha,
			m.Capacity, pq.Array([]string(m.Facilities)))
		if err != nil {
			log.Error().Err(err).Str("id", m.ID).Msg("failed to seed mosque")
			return err
		}
	}
	log.Info().Int("count", len(mosques)).Msg("seeded mosque dataset")
	return nil
}

func (s *pgStore) ListMosques() ([]model.Mosque, error)              { return ListMosques() }
func (s *pgStore) GetMosqueByID(id string) (model.Mosque, error)     { return GetMosqueByID(id) }
func (s *pgStore) CreateMosque(m model.Mosque) (model.Mosque, error) { return CreateMosque(m) }

func (s *pgStore) UpdateMosque(id string, name, address *string, capacity *int) error {
	return UpdateMosque(id, name, address, capacity)
}

func (s *pgStore) UpdateMosqueTimings(id string, fajr, dhuhr, asr, maghrib, isha string) error {
	return UpdateMosqueTimings(id, fajr, dhuhr, asr, maghrib, isha)
}

func (s *pgStore) DeleteMosque(id string) error       { return DeleteMosque(id) }
func (s *pgStore) SeedMosques(m []model.Mosque) error { return SeedMosques(m) }
