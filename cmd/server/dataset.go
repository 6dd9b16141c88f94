package main

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/openummah/masjidmap/internal/db"
	"github.com/openummah/masjidmap/internal/model"
	"github.com/openummah/masjidmap/internal/storage"
)

// datasetSource selects where the bundled mosque dataset is read from.
func datasetSource(env Environment) storage.DatasetSource {
	if env.UseSpaces {
		source, err := storage.NewSpacesDataset(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesKey,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces dataset source")
		}
		log.Info().Str("bucket", env.SpacesBucket).Msg("using Spaces dataset")
		return source
	}

	log.Info().Str("path", env.DatasetPath).Msg("using local dataset")
	return storage.NewLocalDataset(env.DatasetPath)
}

// LoadDataset parses the bundled dataset, seeds it into Postgres and returns
// the records the session layer serves for the rest of the process lifetime.
func LoadDataset(env Environment) []model.Mosque {
	reader, err := datasetSource(env).Open()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open mosque dataset")
	}
	defer reader.Close()

	var mosques []model.Mosque
	if err := json.NewDecoder(reader).Decode(&mosques); err != nil {
		log.Fatal().Err(err).Msg("failed to parse mosque dataset")
	}
	if len(mosques) == 0 {
		log.Fatal().Msg("mosque dataset is empty")
	}

	if err := db.SeedMosques(mosques); err != nil {
		log.Fatal().Err(err).Msg("failed to seed mosque dataset")
	}

	// serve the database copy so seeded timestamps are populated
	seeded, err := db.ListMosques()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load seeded mosques")
	}
	return seeded
}
