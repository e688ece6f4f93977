// Package storage persists barber profile images. Uploads are re-encoded
// to webp before landing in S3 so clients get a single predictable format.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/udayanalone/BarberConnect/internal/config"
)

const webpQuality = 80

type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	baseURL := cfg.ImageBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &ImageStore{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}
}

// Upload decodes the image (jpeg, png or webp), re-encodes it as webp and
// stores it under a profile-scoped key. Returns the public URL.
func (s *ImageStore) Upload(ctx context.Context, profileID uint, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("profiles/%d/%s.webp", profileID, uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.baseURL + "/" + key, nil
}
