package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"
)

// S3API is the part of the S3 client S3Storage needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	s3.ListObjectsV2APIClient
}

type S3Storage struct {
	Client     S3API
	BucketName string
}

func NewS3Storage(client S3API, bucketName string) *S3Storage {
	return &S3Storage{Client: client, BucketName: bucketName}
}

func (s *S3Storage) GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var matched []string
	paginator := s3.NewListObjectsV2Paginator(s.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.BucketName),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list S3 objects")
		}

		for _, obj := range page.Contents {
			matched = append(matched, aws.ToString(obj.Key))
		}
	}

	return matched, nil
}

func (s *S3Storage) Write(ctx context.Context, key string, data []byte) error {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
		ACL:    types.ObjectCannedACLPrivate,
	})
	return errors.Wrapf(err, "can not put %s", key)
}

type s3StreamWriter struct {
	pipeWriter *io.PipeWriter
	wg         sync.WaitGroup
	err        error
}

func (w *s3StreamWriter) Write(data []byte) (int, error) {
	return w.pipeWriter.Write(data)
}

// Close ends the upload and waits for S3 to acknowledge it.
func (w *s3StreamWriter) Close() error {
	if err := w.pipeWriter.Close(); err != nil {
		return err
	}
	w.wg.Wait()
	return w.err
}

// Abort fails the upload so S3 never stores the object.
func (w *s3StreamWriter) Abort() error {
	w.pipeWriter.CloseWithError(ErrStreamAborted)
	w.wg.Wait()
	return nil
}

// BeginStream uploads whatever is written to the returned writer as a
// single object.
func (s *S3Storage) BeginStream(ctx context.Context, key string) (StreamWriter, error) {
	pipeReader, pipeWriter := io.Pipe()
	w := &s3StreamWriter{pipeWriter: pipeWriter}
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()

		_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.BucketName),
			Key:    aws.String(key),
			Body:   pipeReader,
		}, func(o *s3.Options) {
			// A pipe can not be rewound.
			o.Retryer = aws.NopRetryer{}
		})
		if err != nil {
			w.err = errors.Wrapf(err, "S3 upload of %s failed", key)
		}
		pipeReader.CloseWithError(err)
	}()

	return w, nil
}

func (s *S3Storage) Read(ctx context.Context, key string) ([]byte, error) {
	resp, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, ErrDoesNotExist
		}
		return nil, errors.Wrapf(err, "failed to get object %s", key)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "can not read object")
	}
	return data, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil
		}
		return errors.Wrapf(err, "can not delete %s", key)
	}
	return nil
}
