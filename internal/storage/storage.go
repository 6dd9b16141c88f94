// Package storage abstracts where the bundled mosque dataset is read from:
// a file shipped next to the binary, or an object in an S3-compatible
// Spaces bucket for fleet deployments.
package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

type DatasetSource interface {
	Open() (io.ReadCloser, error)
}

type LocalDataset struct {
	path string
}

type SpacesDataset struct {
	client *s3.S3
	bucket string
	key    string
}

func NewLocalDataset(path string) *LocalDataset {
	return &LocalDataset{path: path}
}

func NewSpacesDataset(endpoint, region, bucket, key, accessKey, secretKey string) (*SpacesDataset, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesDataset{
		client: s3.New(sess),
		bucket: bucket,
		key:    key,
	}, nil
}

func (l *LocalDataset) Open() (io.ReadCloser, error) {
	log.Debug().Str("path", l.path).Msg("opening local dataset")
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", l.path, err)
	}
	return f, nil
}

func (s *SpacesDataset) Open() (io.ReadCloser, error) {
	log.Debug().Str("bucket", s.bucket).Str("key", s.key).Msg("fetching dataset from Spaces")
	out, err := s.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset %s/%s: %w", s.bucket, s.key, err)
	}
	return out.Body, nil
}
