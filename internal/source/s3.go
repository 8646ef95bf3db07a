package source

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/calliope-ml/go-audiocond/internal/types"
)

// FromS3 downloads the object at an s3://bucket/key URL as a clip keyed by
// the object's base name without extension.
func FromS3(ctx context.Context, url, region string) (types.Clip, error) {
	bucket, key, err := splitS3URL(url)
	if err != nil {
		return types.Clip{}, err
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return types.Clip{}, fmt.Errorf("create aws session: %w", err)
	}

	buf := aws.NewWriteAtBuffer([]byte{})
	downloader := s3manager.NewDownloader(sess)
	if _, err := downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return types.Clip{}, fmt.Errorf("download s3://%s/%s: %w", bucket, key, err)
	}

	base := path.Base(key)
	clipKey := strings.TrimSuffix(base, path.Ext(base))
	return types.Clip{Key: clipKey, RawData: buf.Bytes()}, nil
}

func splitS3URL(url string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(url, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 url: %s", url)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 url missing bucket or key: %s", url)
	}
	return bucket, key, nil
}
