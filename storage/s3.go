package storage

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"content-humanizer/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Settings beschreibt einen S3-kompatiblen Endpunkt (z.B. Strato HiDrive).
type S3Settings struct {
	URL    string
	Region string
	Key    string
	Secret string
}

// NewS3Client erstellt einen S3-Client für einen S3-kompatiblen Endpunkt.
func NewS3Client(ctx context.Context, s S3Settings) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               s.URL,
				SigningRegion:     s.Region,
				HostnameImmutable: true,
			}, nil
		},
	)
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.Key, s.Secret, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg), nil
}

// ObjectAPI is the subset of *s3.Client used here.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Bucket bündelt Client, Bucket-Name und die öffentliche Basis-URL.
type Bucket struct {
	Client  ObjectAPI
	Name    string
	BaseURL string
	Logger  *zap.Logger
}

// Upload lädt data hoch und gibt den Link zurück.
func (b *Bucket) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(b.Name),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := b.Client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", b.Name, key, err)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(b.BaseURL, "/"), b.Name, key), nil
}

// Rotate keeps the newest keep objects under prefix and deletes the rest.
// Failed deletes are logged and skipped. It returns the number deleted.
func (b *Bucket) Rotate(ctx context.Context, prefix string, keep int) (int, error) {
	output, err := b.Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(b.Name),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return 0, fmt.Errorf("list s3://%s/%s: %w", b.Name, prefix, err)
	}

	if len(output.Contents) <= keep {
		b.logger().Info("Keine Rotation nötig", zap.Int("objects", len(output.Contents)), zap.Int("keep", keep))
		return 0, nil
	}

	objects := output.Contents
	sort.Slice(objects, func(i, j int) bool {
		return aws.ToTime(objects[i].LastModified).After(aws.ToTime(objects[j].LastModified))
	})

	deleted := 0
	for _, obj := range objects[keep:] {
		key := aws.ToString(obj.Key)
		b.logger().Info("Lösche altes Objekt", zap.String("key", key))
		_, err := b.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(b.Name),
			Key:    obj.Key,
		})
		if err != nil {
			b.logger().Warn("Löschen fehlgeschlagen", zap.String("key", key), zap.Error(err))
			continue
		}
		deleted++
	}
	return deleted, nil
}

func (b *Bucket) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

// ReportStore legt Humanizer-Run-Reports als JSON im Bucket ab.
type ReportStore struct {
	Bucket *Bucket
}

// NewReportStore baut den Report-Store aus der Konfiguration.
func NewReportStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ReportStore, error) {
	client, err := NewS3Client(ctx, S3Settings{
		URL:    cfg.ReportS3URL,
		Region: cfg.ReportS3Region,
		Key:    cfg.ReportS3Key,
		Secret: cfg.ReportS3Secret,
	})
	if err != nil {
		return nil, err
	}
	return &ReportStore{Bucket: &Bucket{
		Client:  client,
		Name:    cfg.ReportS3Bucket,
		BaseURL: cfg.ReportS3URL,
		Logger:  logger,
	}}, nil
}

func (r *ReportStore) SaveReport(ctx context.Context, key string, body []byte) (string, error) {
	return r.Bucket.Upload(ctx, key, "application/json", body)
}
