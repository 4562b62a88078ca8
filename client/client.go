// Package client is a small Go client for the roster service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/campusops/roster"
)

const (
	defaultTimeout  = 10 * time.Second
	serviceCacheKey = "service-document"
)

type Client struct {
	client *http.Client
	cache  *cache.Cache
	base   string
	token  string
}

// New builds a client for the service at base, authenticating with the
// given bearer token.
func New(base string, token string) *Client {
	return &Client{
		client: &http.Client{Timeout: defaultTimeout},
		cache:  cache.New(10*time.Minute, 15*time.Minute),
		base:   base,
		token:  token,
	}
}

// Service fetches the discovery document. The document is static per
// deployment, so it is cached client-side.
func (c *Client) Service(ctx context.Context) (*roster.ServiceInfo, error) {
	if cached, found := c.cache.Get(serviceCacheKey); found {
		info := cached.(roster.ServiceInfo)
		return &info, nil
	}

	var info roster.ServiceInfo
	if err := c.get(ctx, "/api/v1/service", nil, &info); err != nil {
		return nil, err
	}
	c.cache.Set(serviceCacheKey, info, cache.DefaultExpiration)
	return &info, nil
}

func (c *Client) ListUsers(ctx context.Context, limit int) ([]roster.UserRecord, error) {
	var users []roster.UserRecord
	if err := c.get(ctx, "/api/v1/users", limitQuery(limit), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListCourses(ctx context.Context, limit int) ([]roster.CourseRecord, error) {
	var courses []roster.CourseRecord
	if err := c.get(ctx, "/api/v1/courses", limitQuery(limit), &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) ListUsersCourses(ctx context.Context, limit int) ([]roster.UserCoursesRecord, error) {
	var records []roster.UserCoursesRecord
	if err := c.get(ctx, "/api/v1/users/courses", limitQuery(limit), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// limitQuery omits the parameter for negative limits so the server default
// applies.
func limitQuery(limit int) url.Values {
	if limit < 0 {
		return nil
	}
	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, response any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var remote struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&remote); err == nil && remote.Error != "" {
			return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, remote.Error)
		}
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}

	return nil
}
