package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/lafaom-mao/portal/internal/catalog"
	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/lafaom-mao/portal/internal/logger"
	"github.com/lafaom-mao/portal/internal/metrics"
	"github.com/lafaom-mao/portal/internal/rotator"
	"github.com/lafaom-mao/portal/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the local catalog fresh",
	Long: "Refresh news, jobs and trainings on an interval, rotate through the " +
		"latest headlines, prune stale snapshots and expose metrics.",
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	snapshots, err := a.openDb()
	if err != nil {
		return err
	}

	metrics.StartMetricsServer(cfg.Watch.MetricsPort)

	expiration := cfg.Storage.SnapshotExpirationInDays
	if expiration == 0 {
		expiration = 30
	}
	cleaner, err := store.NewCleaner(snapshots, expiration)
	if err != nil {
		return err
	}
	defer cleaner.Stop()

	refreshInterval := cfg.Watch.RefreshInterval
	if refreshInterval <= 0 {
		refreshInterval = 15 * time.Minute
	}

	line := headlineLine(refreshAll(ctx, a, snapshots))
	line.Start()
	defer func() { line.Stop() }()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			line.Stop()
			line = headlineLine(refreshAll(ctx, a, snapshots))
			line.Start()
		case <-ctx.Done():
			fmt.Println()
			log.Info("Shutting down...")
			return nil
		}
	}
}

// headlineLine builds the rotating one-line display over its own copy of
// the headlines; a later refresh never touches a line already handed out.
func headlineLine(headlines []string) *rotator.Rotator {
	return rotator.New(len(headlines), cfg.Watch.RotateInterval, func(index int) {
		fmt.Printf("\r\033[K%s", headlines[index])
	})
}

// refreshAll reloads the three presentation catalogs, snapshotting what it
// gets, and returns the headlines to rotate through.
func refreshAll(ctx context.Context, a *app, snapshots *store.Snapshots) []string {

	started := time.Now()
	refreshed := 0
	var headlines []string

	news := catalog.NewListWithSnapshots(store.CollectionNews,
		func(ctx context.Context, page int) (*lafaom.Page[entities.BlogPost], error) {
			defer observe("blog_posts", time.Now())
			return a.client.BlogPosts(ctx, lafaom.PageParams{Page: page})
		},
		snapshots,
		func(p entities.BlogPost) string { return p.ID })
	if err := news.Load(ctx, 1); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeApi).Errorf("failed to refresh news: %v", err)
	} else {
		refreshed += len(news.Items())
		for _, post := range news.Items() {
			headlines = append(headlines, fmt.Sprintf("[%s] %s", post.Category, post.Title))
		}
	}

	jobs := catalog.NewListWithSnapshots(store.CollectionJobs,
		func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
			defer observe("job_offers", time.Now())
			return a.client.JobOffers(ctx, lafaom.PageParams{Page: page})
		},
		snapshots,
		func(o entities.JobOffer) string { return o.ID })
	if err := jobs.Load(ctx, 1); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeApi).Errorf("failed to refresh jobs: %v", err)
	} else {
		refreshed += len(jobs.Items())
	}

	trainings := catalog.NewListWithSnapshots(store.CollectionTrainings,
		func(ctx context.Context, page int) (*lafaom.Page[entities.Training], error) {
			defer observe("trainings", time.Now())
			return a.client.Trainings(ctx, lafaom.PageParams{Page: page})
		},
		snapshots,
		func(t entities.Training) string { return t.ID })
	if err := trainings.Load(ctx, 1); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeApi).Errorf("failed to refresh trainings: %v", err)
	} else {
		refreshed += len(trainings.Items())
	}

	metrics.RefreshDuration.Observe(time.Since(started).Seconds())
	metrics.RefreshedEntriesCounter.Add(float64(refreshed))
	log.Infof("catalog refreshed, %d entries", refreshed)

	if len(headlines) == 0 {
		headlines = []string{"no news available"}
	}
	return headlines
}

func observe(operation string, started time.Time) {
	metrics.RequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
