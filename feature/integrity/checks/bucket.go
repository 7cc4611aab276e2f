package checks

import (
	"context"
	"fmt"

	"levelcode/core/storage"

	"go.uber.org/zap"
)

// BucketReport is the result of the catalog bucket check.
type BucketReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Created bool   `json:"created"`
}

// CheckBucket verifies the catalog bucket exists and creates it when fix is set.
func CheckBucket(ctx context.Context, client storage.Client, bucket, region string, fix bool, logger *zap.Logger) (*BucketReport, error) {
	report := &BucketReport{Bucket: bucket}

	if fix {
		created, err := storage.EnsureBucket(ctx, client, bucket, region)
		if err != nil {
			return nil, err
		}
		if created {
			logger.Info("Created missing catalog bucket", zap.String("bucket", bucket))
		}
		report.Exists = true
		report.Created = created
		return report, nil
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	return report, nil
}
