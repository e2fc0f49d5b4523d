package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"dairy-backend/internal/config"
	"dairy-backend/internal/ledger"
	"dairy-backend/internal/metrics"
	"dairy-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BackupService uploads timestamped snapshot exports to an S3-compatible
// bucket (Cloudflare R2 in production). The exported blob is exactly
// what the snapshot import endpoint accepts, so a restore is a plain import.
type BackupService struct {
	cfg    *config.Config
	ledger *ledger.Service

	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

func NewBackupService(cfg *config.Config, ledgerService *ledger.Service) *BackupService {
	return &BackupService{cfg: cfg, ledger: ledgerService}
}

func (s *BackupService) client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.Backup.AccessKey,
			s.cfg.Backup.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Backup.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("configure R2 client: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.Backup.Endpoint)
	}), nil
}

// Run exports the document and uploads it. Returns the object key.
func (s *BackupService) Run(ctx context.Context) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		metrics.SnapshotBackupsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	blob, err := s.ledger.ExportSnapshot()
	if err != nil {
		metrics.SnapshotBackupsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	key := fmt.Sprintf("snapshots/dairy_data_%s.json", timeutil.Now().Format("20060102_150405"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Backup.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(blob),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		metrics.SnapshotBackupsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("upload snapshot: %w", err)
	}

	metrics.SnapshotBackupsTotal.WithLabelValues("ok").Inc()
	log.Printf("[Backup] Uploaded %s (%d bytes)", key, len(blob))
	return key, nil
}

// Start launches the periodic backup loop. No-op if already running.
func (s *BackupService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		return
	}

	interval := time.Duration(s.cfg.Backup.IntervalMinutes) * time.Minute
	s.ticker = time.NewTicker(interval)
	s.done = make(chan struct{})
	log.Printf("[Backup] Scheduler started, interval %s", interval)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				if _, err := s.Run(ctx); err != nil {
					log.Printf("[Backup] Scheduled backup failed: %v", err)
				}
				cancel()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop halts the periodic backup loop.
func (s *BackupService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	log.Println("[Backup] Scheduler stopped")
}
