package lafaom

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lafaom-mao/portal/internal/entities"
)

// BlogPosts fetches one page of published news posts.
func (c *Client) BlogPosts(ctx context.Context, params PageParams) (*Page[entities.BlogPost], error) {

	if params.Extra == nil {
		params.Extra = url.Values{}
	}
	params.Extra.Set("is_published", "true")

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epBlogPosts)+"?"+params.values().Encode(), nil,
		requestOptions{})
	if err != nil {
		return nil, err
	}

	return decodePage[entities.BlogPost](body, params.effectivePageSize())
}

func (c *Client) BlogPost(ctx context.Context, id string) (*entities.BlogPost, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epBlogPosts)+"/"+id, nil, requestOptions{})
	if err != nil {
		return nil, err
	}

	return decodeRecord[entities.BlogPost](body)
}
