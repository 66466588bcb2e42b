package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
)

// Config selects and configures a backend.
type Config struct {
	// Source is one of "memory", "disk" or "s3".
	Source string
	// URI is the base directory for disk.
	URI string

	Bucket   string
	Region   string
	Endpoint string
	// AccessKey and SecretKey, when both set, replace the default AWS
	// credential chain.
	AccessKey string
	SecretKey string
}

var ErrUnsupportedSource = errors.New("unsupported storage system")

// Open builds the backend described by cfg.
func Open(ctx context.Context, cfg Config) (System, error) {
	switch cfg.Source {
	case "memory":
		return NewMemoryStorage(), nil
	case "disk", "":
		uri := cfg.URI
		if uri == "" {
			uri = "."
		}
		return NewDiskStorage(uri), nil
	case "s3":
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3Storage(client, cfg.Bucket), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedSource, "%q", cfg.Source)
	}
}

func newS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 storage needs a bucket")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
