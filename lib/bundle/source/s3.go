package source

import (
	"context"
	"errors"
	"io"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the *s3.Client used by the S3 source.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Source creates a source that reads objects below prefix from an S3 bucket.
func NewS3Source(client S3API, bucket, prefix string) ISource {
	return &s3SourceImpl{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

type s3SourceImpl struct {
	client S3API
	bucket string
	prefix string
}

// --------------------------------------------------------------------------
// Interface Methods (docu see source.ISource)
// --------------------------------------------------------------------------

func (s *s3SourceImpl) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := joinKey(s.prefix, name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var notFoundErr *types.NotFound
		if errors.As(err, &noSuchKey) || errors.As(err, &notFoundErr) {
			return nil, notFound("s3://"+s.bucket+"/"+key, err)
		}
		return nil, bundle.WrapError(bundle.RetCInternalError, "getting s3://"+s.bucket+"/"+key, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, bundle.WrapError(bundle.RetCInternalError, "reading s3://"+s.bucket+"/"+key, err)
	}
	return b, nil
}

func (s *s3SourceImpl) String() string {
	return "s3://" + joinKey(s.bucket, s.prefix)
}
