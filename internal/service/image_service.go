package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/connectik/connectik_api/internal/config"
	"github.com/connectik/connectik_api/internal/utils"
)

// ObjectsPathPrefix is the public path under which stored images are served.
const ObjectsPathPrefix = "/objects/"

const (
	tagOwner      = "owner"
	tagVisibility = "visibility"
)

type objectPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type objectTagger interface {
	PutObjectTagging(ctx context.Context, params *s3.PutObjectTaggingInput, optFns ...func(*s3.Options)) (*s3.PutObjectTaggingOutput, error)
	GetObjectTagging(ctx context.Context, params *s3.GetObjectTaggingInput, optFns ...func(*s3.Options)) (*s3.GetObjectTaggingOutput, error)
}

// ImageService hands out presigned upload URLs for product images and
// controls which uploaded objects are publicly readable. Image bytes never
// go through the API.
type ImageService struct {
	bucket      string
	prefix      string
	uploadTTL   time.Duration
	downloadTTL time.Duration
	presigner   objectPresigner
	tagger      objectTagger
}

// NewImageService builds an ImageService backed by S3 or an S3-compatible endpoint.
func NewImageService(ctx context.Context, cfg *config.S3Config) (*ImageService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("S3 config is nil")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newImageService(cfg, s3.NewPresignClient(client), client), nil
}

func newImageService(cfg *config.S3Config, presigner objectPresigner, tagger objectTagger) *ImageService {
	return &ImageService{
		bucket:      cfg.Bucket,
		prefix:      strings.Trim(cfg.Prefix, "/"),
		uploadTTL:   cfg.UploadURLTTL,
		downloadTTL: cfg.DownloadURLTTL,
		presigner:   presigner,
		tagger:      tagger,
	}
}

// UploadURL returns a presigned PUT URL for a fresh object under uploads/.
func (s *ImageService) UploadURL(ctx context.Context) (string, error) {
	if s.bucket == "" {
		return "", errors.New("S3_BUCKET is not configured")
	}

	key := s.keyFor("uploads/" + uuid.NewString())
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.uploadTTL))
	if err != nil {
		return "", fmt.Errorf("presign upload: %w", err)
	}

	log.Debug().Str("key", key).Msg("Issued image upload URL")
	return req.URL, nil
}

// SetPublicPolicy marks an uploaded image as owned by the admin and publicly
// readable, and returns its canonical /objects/... path. URLs that do not
// point into this bucket are returned unchanged.
func (s *ImageService) SetPublicPolicy(ctx context.Context, imageURL string) (string, error) {
	key, ok := s.keyFromURL(imageURL)
	if !ok {
		return imageURL, nil
	}

	_, err := s.tagger.PutObjectTagging(ctx, &s3.PutObjectTaggingInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Tagging: &types.Tagging{TagSet: []types.Tag{
			{Key: aws.String(tagOwner), Value: aws.String("admin")},
			{Key: aws.String(tagVisibility), Value: aws.String("public")},
		}},
	})
	if err != nil {
		if isMissingObject(err) {
			return "", utils.ErrNotFound
		}
		return "", fmt.Errorf("tag object %s: %w", key, err)
	}

	log.Info().Str("key", key).Msg("Image marked public")
	return ObjectsPathPrefix + s.entityPath(key), nil
}

// PublicURL returns a short-lived download URL for entityPath (the part
// after /objects/). Objects that are missing or not public yield
// utils.ErrNotFound.
func (s *ImageService) PublicURL(ctx context.Context, entityPath string) (string, error) {
	entityPath = strings.TrimPrefix(entityPath, "/")
	if entityPath == "" || strings.Contains(entityPath, "..") {
		return "", utils.ErrNotFound
	}
	key := s.keyFor(entityPath)

	out, err := s.tagger.GetObjectTagging(ctx, &s3.GetObjectTaggingInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isMissingObject(err) {
			return "", utils.ErrNotFound
		}
		return "", fmt.Errorf("read object tags %s: %w", key, err)
	}
	if !isPublic(out.TagSet) {
		return "", utils.ErrNotFound
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.downloadTTL))
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return req.URL, nil
}

func (s *ImageService) keyFor(entityPath string) string {
	if s.prefix == "" {
		return entityPath
	}
	return s.prefix + "/" + entityPath
}

func (s *ImageService) entityPath(key string) string {
	if s.prefix == "" {
		return key
	}
	return strings.TrimPrefix(key, s.prefix+"/")
}

// keyFromURL accepts an /objects/... path or a URL of this bucket, in either
// virtual-hosted or path style.
func (s *ImageService) keyFromURL(raw string) (string, bool) {
	if strings.HasPrefix(raw, ObjectsPathPrefix) {
		entity := strings.TrimPrefix(raw, ObjectsPathPrefix)
		if entity == "" {
			return "", false
		}
		return s.keyFor(entity), true
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || s.bucket == "" {
		return "", false
	}
	path := strings.TrimPrefix(u.Path, "/")
	switch {
	case strings.HasPrefix(u.Host, s.bucket+"."):
	case strings.HasPrefix(path, s.bucket+"/"):
		path = strings.TrimPrefix(path, s.bucket+"/")
	default:
		return "", false
	}
	if path == "" || (s.prefix != "" && !strings.HasPrefix(path, s.prefix+"/")) {
		return "", false
	}
	return path, true
}

func isPublic(tags []types.Tag) bool {
	for _, t := range tags {
		if aws.ToString(t.Key) == tagVisibility && aws.ToString(t.Value) == "public" {
			return true
		}
	}
	return false
}

func isMissingObject(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
