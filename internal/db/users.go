package db

import (
	"database/sql"
	"errors"

	"github.com/openummah/masjidmap/internal/model"
)

func GetUserByID(id int) (*model.User, error) {
	var user model.User
	err := DB.Get(&user, `
		SELECT id, email, hashed_password, name, created_at, updated_at
		FROM users
		WHERE id = $1
		`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := DB.Get(&user, `
		SELECT id, email, hashed_password, name, created_at, updated_at
		FROM users
		WHERE email = $1
		`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(email, hashedPassword string, name *string) (int, error) {
	var id int
	err := DB.Get(&id, `
		INSERT INTO users (email, hashed_password, name, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id
		`, email, hashedPassword, name)
	return id, err
}

func UpdateUserProfile(id int, email string, name *string) error {
	_, err := DB.Exec(`
		UPDATE users
		SET email = $2,
		name = COALESCE($3, name),
		updated_at = now()
		WHERE id = $1
		`, id, email, name)
	return err
}

func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	return GetUserByEmail(email)
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	return GetUserByID(id)
}

func (s *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}
