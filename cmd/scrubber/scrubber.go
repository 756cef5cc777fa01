// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package main

import (
	// stdlib
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	// 3p
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// datadog
	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"

	// project
	"github.com/DataDog/pii-scrubber/internal/config"
	"github.com/DataDog/pii-scrubber/internal/cursor"
	"github.com/DataDog/pii-scrubber/internal/deadletterqueue"
	"github.com/DataDog/pii-scrubber/internal/environment"
	"github.com/DataDog/pii-scrubber/internal/logs"
	"github.com/DataDog/pii-scrubber/internal/metrics"
	"github.com/DataDog/pii-scrubber/internal/storage"
	customtime "github.com/DataDog/pii-scrubber/internal/time"
)

const channelSize = 1000

// jobConfig selects what a run scrubs and where the result goes.
type jobConfig struct {
	SourcePrefix         string
	DestinationContainer string
	GoroutineAmount      int
	Scrubber             config.Config
}

// scrubbedSegment is the scrubbed part of a blob, ready to be stored.
type scrubbedSegment struct {
	segment storage.BlobSegment
	cleaned []byte
	// length is the number of bytes of the segment that were scrubbed
	length int64
	counts map[string]int64
}

// destinationBlobName keeps the source container in the name of the scrubbed blob.
func destinationBlobName(b storage.Blob) string {
	return b.Container.Name + "/" + b.Name
}

func run(ctx context.Context, logger *log.Entry, job jobConfig, datadogConfig *datadog.Configuration, azBlobClient storage.AzureBlobClient, now customtime.Now) (err error) {
	span, ctx := tracer.StartSpanFromContext(ctx, "scrubber.run")
	defer span.Finish(tracer.WithError(err))

	start := now()
	storageClient := storage.NewClient(azBlobClient)

	var logsClient *logs.Client
	if datadogConfig != nil {
		logsClient = logs.NewClient(datadogV2.NewLogsApi(datadog.NewAPIClient(datadogConfig)))
	}

	cursors, err := cursor.Load(ctx, storageClient, logger)
	if err != nil {
		return err
	}
	dlq, err := deadletterqueue.Load(ctx, storageClient)
	if err != nil {
		return err
	}
	counter := metrics.NewCounter()

	processErr := processBlobs(ctx, logger, job, storageClient, cursors, dlq, counter, logsClient, now)

	dlq.Prune(logger)
	err = errors.Join(
		processErr,
		cursors.Save(ctx, storageClient),
		dlq.Save(ctx, storageClient),
		writeMetrics(ctx, storageClient, counter, start, now),
	)
	if logsClient != nil {
		err = errors.Join(err, logsClient.Flush(ctx))
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	entry := counter.Entry(now().Unix(), now().Sub(start).Seconds())
	logger.Infof("Scrubbed %d documents", entry.DocumentsScrubbed)
	return nil
}

// processBlobs lists the blobs to scrub and runs them through download, scrub and store stages.
// Failures of a single blob go to the dead letter queue and do not fail the run.
func processBlobs(ctx context.Context, logger *log.Entry, job jobConfig, storageClient *storage.Client, cursors *cursor.Cursors, dlq *deadletterqueue.DeadLetterQueue, counter *metrics.Counter, logsClient *logs.Client, now customtime.Now) error {
	eg, ctx := errgroup.WithContext(ctx)

	blobCh := make(chan storage.Blob, channelSize)
	segmentCh := make(chan storage.BlobSegment, channelSize)
	scrubbedCh := make(chan scrubbedSegment, channelSize)
	reportCh := make(chan datadogV2.HTTPLogItem, channelSize)

	eg.Go(func() error {
		defer close(blobCh)
		return listBlobs(ctx, logger, job, storageClient, cursors, dlq, blobCh)
	})

	eg.Go(func() error {
		defer close(segmentCh)
		return runWorkers(ctx, job.GoroutineAmount, func(ctx context.Context) error {
			for b := range blobCh {
				segment, err := downloadSegment(ctx, storageClient, cursors, b)
				if err != nil {
					logger.WithError(err).Errorf("Failed to download blob %s", b.Key())
					dlq.Add(b.Container.Name, b.Name, err)
					continue
				}
				if len(segment.Content) == 0 {
					continue
				}
				if err = send(ctx, segmentCh, segment); err != nil {
					return err
				}
			}
			return nil
		})
	})

	eg.Go(func() error {
		defer close(scrubbedCh)
		return runWorkers(ctx, job.GoroutineAmount, func(ctx context.Context) error {
			for segment := range segmentCh {
				scrubbed, err := scrubSegment(logger, job.Scrubber, segment)
				if err != nil {
					logger.WithError(err).Errorf("Failed to scrub blob %s", segment.Blob.Key())
					dlq.Add(segment.Blob.Container.Name, segment.Blob.Name, err)
					continue
				}
				if scrubbed.length == 0 {
					continue
				}
				if err = send(ctx, scrubbedCh, scrubbed); err != nil {
					return err
				}
			}
			return nil
		})
	})

	eg.Go(func() error {
		defer close(reportCh)
		return runWorkers(ctx, job.GoroutineAmount, func(ctx context.Context) error {
			for scrubbed := range scrubbedCh {
				b := scrubbed.segment.Blob
				if err := storeSegment(ctx, storageClient, job.DestinationContainer, scrubbed); err != nil {
					logger.WithError(err).Errorf("Failed to store scrubbed blob %s", b.Key())
					dlq.Add(b.Container.Name, b.Name, err)
					continue
				}
				cursors.Set(b.Container.Name, b.Name, scrubbed.segment.Offset+scrubbed.length)
				dlq.Remove(b.Container.Name, b.Name)
				counter.AddDocument(scrubbed.counts)
				report := logs.NewScrubReport(b, scrubbed.counts, scrubbed.length, now())
				if err := send(ctx, reportCh, report); err != nil {
					return err
				}
			}
			return nil
		})
	})

	eg.Go(func() error {
		for report := range reportCh {
			if logsClient == nil {
				continue
			}
			if err := logsClient.AddFormattedLog(ctx, now, logger, report); err != nil {
				logger.WithError(err).Warning("Failed to submit scrub report")
			}
		}
		return nil
	})

	return eg.Wait()
}

// listBlobs sends the blobs of the dead letter queue first, then every blob that changed since
// it was last scrubbed.
func listBlobs(ctx context.Context, logger *log.Entry, job jobConfig, storageClient *storage.Client, cursors *cursor.Cursors, dlq *deadletterqueue.DeadLetterQueue, blobCh chan<- storage.Blob) error {
	queued := make(map[string]bool)
	for _, entry := range dlq.Entries() {
		queued[entry.Container+"/"+entry.Blob] = true
	}

	var retries, changed []storage.Blob
	for c, err := range storageClient.GetContainersMatchingPrefix(ctx, job.SourcePrefix) {
		if err != nil {
			return err
		}
		if c.Name == job.DestinationContainer {
			continue
		}
		for b, err := range storageClient.ListBlobs(ctx, c.Name) {
			if err != nil {
				return err
			}
			if queued[b.Key()] {
				retries = append(retries, b)
				delete(queued, b.Key())
				continue
			}
			if cursors.Unchanged(b) {
				continue
			}
			changed = append(changed, b)
		}
	}

	for _, entry := range dlq.Entries() {
		if queued[entry.Container+"/"+entry.Blob] {
			logger.Warnf("Dropping %s/%s from the dead letter queue, the blob no longer exists", entry.Container, entry.Blob)
			dlq.Remove(entry.Container, entry.Blob)
		}
	}

	for _, b := range slices.Concat(retries, changed) {
		if err := send(ctx, blobCh, b); err != nil {
			return err
		}
	}
	return nil
}

// downloadSegment downloads what was appended to a blob since it was last scrubbed. A blob that
// shrank was replaced and is scrubbed again from the start.
func downloadSegment(ctx context.Context, storageClient *storage.Client, cursors *cursor.Cursors, b storage.Blob) (storage.BlobSegment, error) {
	offset := cursors.Get(b.Container.Name, b.Name)
	if offset > b.ContentLength {
		offset = 0
	}
	return storageClient.DownloadSegment(ctx, b, offset)
}

// scrubSegment scrubs the complete lines of a segment. A trailing partial line is left for the
// next run.
func scrubSegment(logger *log.Entry, scrubberConfig config.Config, segment storage.BlobSegment) (scrubbedSegment, error) {
	end := bytes.LastIndexByte(segment.Content, '\n') + 1
	if end == 0 {
		return scrubbedSegment{segment: segment}, nil
	}

	s, err := scrubberConfig.NewScrubber(logger.WithField("blob", segment.Blob.Key()))
	if err != nil {
		return scrubbedSegment{}, err
	}
	cleaned, counts, err := s.CleanAndCount(string(segment.Content[:end]))
	if err != nil {
		return scrubbedSegment{}, err
	}
	return scrubbedSegment{
		segment: segment,
		cleaned: []byte(cleaned),
		length:  int64(end),
		counts:  counts,
	}, nil
}

// storeSegment writes a scrubbed segment to the destination container, replacing the scrubbed
// blob when the segment starts the blob.
func storeSegment(ctx context.Context, storageClient *storage.Client, destinationContainer string, scrubbed scrubbedSegment) error {
	name := destinationBlobName(scrubbed.segment.Blob)
	if scrubbed.segment.Offset == 0 {
		return storageClient.UploadBlob(ctx, destinationContainer, name, scrubbed.cleaned)
	}
	return storageClient.AppendBlob(ctx, destinationContainer, name, scrubbed.cleaned)
}

func writeMetrics(ctx context.Context, storageClient *storage.Client, counter *metrics.Counter, start time.Time, now customtime.Now) error {
	end := now()
	data, err := counter.Entry(end.Unix(), end.Sub(start).Seconds()).ToBytes()
	if err != nil {
		return fmt.Errorf("error while marshalling metrics: %w", err)
	}
	return storageClient.AppendBlob(context.WithoutCancel(ctx), storage.MetricsContainer, customtime.HourlyBlobName(end), data)
}

func runWorkers(ctx context.Context, amount int, work func(context.Context) error) error {
	workers, ctx := errgroup.WithContext(ctx)
	for range max(amount, 1) {
		workers.Go(func() error {
			return work(ctx)
		})
	}
	return workers.Wait()
}

func send[T any](ctx context.Context, ch chan<- T, item T) error {
	select {
	case ch <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func startProfiler(logger *log.Entry) func() {
	tracer.Start()
	err := profiler.Start(
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
			profiler.BlockProfile,
			profiler.MutexProfile,
			profiler.GoroutineProfile,
		),
	)
	if err != nil {
		logger.WithError(err).Warning("Failed to start the profiler")
	}
	return func() {
		profiler.Stop()
		tracer.Stop()
	}
}

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

func execute() (err error) {
	start := time.Now()
	// use JSONFormatter
	log.SetFormatter(&log.JSONFormatter{})
	logger := log.WithFields(log.Fields{"service": logs.ServiceName})

	if environment.ApmEnabled() {
		stop := startProfiler(logger)
		defer stop()
	}

	span, ctx := tracer.StartSpanFromContext(context.Background(), "scrubber.main")
	defer func() {
		span.Finish(tracer.WithError(err))
	}()

	logger.Infof("Start time: %v", start.String())

	scrubberConfig, err := config.Load(environment.GetOr(environment.ConfigPath, config.DefaultPath))
	if err != nil {
		logger.WithError(err).Error("error loading the scrubber configuration")
		return err
	}

	azBlobClient, err := azblob.NewClientFromConnectionString(environment.Get(environment.AzureWebJobsStorage), nil)
	if err != nil {
		logger.WithError(err).Error("error creating azure storage client")
		return err
	}

	var datadogConfig *datadog.Configuration
	if environment.Enabled(environment.ForwardLogs) {
		ctx = context.WithValue(ctx, datadog.ContextAPIKeys, map[string]datadog.APIKey{
			"apiKeyAuth": {Key: environment.Get(environment.DdApiKey)},
		})
		ctx = context.WithValue(ctx, datadog.ContextServerVariables, map[string]string{
			"site": environment.GetOr(environment.DdSite, "datadoghq.com"),
		})
		datadogConfig = datadog.NewConfiguration()

		hook, hookErr := newLogHook(ctx, datadogConfig, scrubberConfig)
		if hookErr != nil {
			logger.WithError(hookErr).Error("error creating the log hook")
			return hookErr
		}
		log.AddHook(hook)
		defer func() {
			if flushErr := hook.Flush(ctx); flushErr != nil {
				fmt.Fprintf(os.Stderr, "error flushing logs: %v\n", flushErr)
			}
		}()
	}

	job := jobConfig{
		SourcePrefix:         environment.Get(environment.SourcePrefix),
		DestinationContainer: environment.GetOr(environment.DestinationContainer, storage.DefaultDestinationContainer),
		GoroutineAmount:      runtime.GOMAXPROCS(0),
		Scrubber:             scrubberConfig,
	}
	err = run(ctx, logger, job, datadogConfig, azBlobClient, time.Now)
	if err != nil {
		logger.WithError(err).Error("error while running")
	}
	logger.Infof("Run time: %v", time.Since(start).String())
	return err
}

// newLogHook creates the hook that scrubs the job's own logs before sending them to Datadog.
func newLogHook(ctx context.Context, datadogConfig *datadog.Configuration, scrubberConfig config.Config) (*logs.Hook, error) {
	hookLogger := log.New()
	hookLogger.SetFormatter(&log.JSONFormatter{})
	hookEntry := log.NewEntry(hookLogger)

	cleaner, err := scrubberConfig.NewScrubber(hookEntry)
	if err != nil {
		return nil, err
	}
	client := logs.NewClient(datadogV2.NewLogsApi(datadog.NewAPIClient(datadogConfig)))
	return logs.NewHook(ctx, client, cleaner, hookEntry, time.Now), nil
}
