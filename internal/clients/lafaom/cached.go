package lafaom

import (
	"context"
	"time"

	"github.com/lafaom-mao/portal/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type detailClient interface {
	JobOffer(ctx context.Context, id string) (*entities.JobOffer, error)
	Training(ctx context.Context, id string) (*entities.Training, error)
	TrainingSessions(ctx context.Context, trainingID string, params PageParams) (*Page[entities.TrainingSession], error)
}

// CachedDetails memoizes the detail-panel lookups so re-opening the same
// offer or training within a short window does not refetch it.
type CachedDetails struct {
	client detailClient
	cache  *gocache.Cache
}

func NewCachedDetails(client detailClient) *CachedDetails {
	return &CachedDetails{client: client, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedDetails) JobOffer(ctx context.Context, id string) (*entities.JobOffer, error) {
	if value, found := c.cache.Get("job:" + id); found {
		return value.(*entities.JobOffer), nil
	}

	offer, err := c.client.JobOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Add("job:"+id, offer, gocache.DefaultExpiration)
	return offer, nil
}

func (c *CachedDetails) Training(ctx context.Context, id string) (*entities.Training, error) {
	if value, found := c.cache.Get("training:" + id); found {
		return value.(*entities.Training), nil
	}

	training, err := c.client.Training(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Add("training:"+id, training, gocache.DefaultExpiration)
	return training, nil
}

func (c *CachedDetails) TrainingSessions(ctx context.Context, trainingID string) ([]entities.TrainingSession, error) {
	if value, found := c.cache.Get("sessions:" + trainingID); found {
		return value.([]entities.TrainingSession), nil
	}

	page, err := c.client.TrainingSessions(ctx, trainingID, PageParams{})
	if err != nil {
		return nil, err
	}
	_ = c.cache.Add("sessions:"+trainingID, page.Items, gocache.DefaultExpiration)
	return page.Items, nil
}
