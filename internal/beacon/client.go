// Package beacon provides client functionality for the beacon.tv GraphQL API
package beacon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"beacon-dl/pkg/models"
)

const (
	// DefaultEndpoint is the beacon.tv GraphQL API endpoint
	DefaultEndpoint = "https://beacon.tv/api/graphql"

	// maxSlugLength bounds slug inputs before query interpolation
	maxSlugLength = 200
)

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateSlug checks that a slug is safe to interpolate into a GraphQL
// query. The beacon.tv API requires literal values in where clauses (it does
// not support variables there), so inputs must be validated first.
func ValidateSlug(slug, fieldName string) error {
	if slug == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("invalid %s %q: only alphanumeric characters, hyphens, and underscores are allowed", fieldName, slug)
	}
	if len(slug) > maxSlugLength {
		return fmt.Errorf("%s too long (max %d characters)", fieldName, maxSlugLength)
	}
	return nil
}

// Client represents a beacon.tv GraphQL API client. Authentication uses the
// session cookies captured at login.
type Client struct {
	endpoint   string
	httpClient *http.Client
	cookies    map[string]string
	userAgent  string

	// collectionIDs caches slug -> collection id lookups
	collectionIDs map[string]string
}

// New creates a new beacon.tv API client using the given session cookies
func New(cookies map[string]string, userAgent string) *Client {
	return &Client{
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cookies:   cookies,
		userAgent: userAgent,
		collectionIDs: map[string]string{
			// Well-known collection, cached to save a round trip
			"campaign-4": "68caf69e7a76bce4b7aa689a",
		},
	}
}

// graphQLRequest is the JSON payload posted to the endpoint
type graphQLRequest struct {
	Query string `json:"query"`
}

// graphQLResponse is the generic response envelope
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// query executes a GraphQL query and returns the raw data payload
func (c *Client) query(ctx context.Context, query string) (json.RawMessage, error) {
	body, err := json.Marshal(graphQLRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var gqlResp graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	return gqlResp.Data, nil
}

// CollectionID resolves a collection slug to its internal id, consulting the
// cache first. Returns ("", nil) when the collection does not exist.
func (c *Client) CollectionID(ctx context.Context, collectionSlug string) (string, error) {
	if err := ValidateSlug(collectionSlug, "collection slug"); err != nil {
		return "", err
	}

	if id, ok := c.collectionIDs[collectionSlug]; ok {
		return id, nil
	}

	query := fmt.Sprintf(`
	query GetCollection {
	  Collections(where: { slug: { equals: %q } }, limit: 1) {
	    docs {
	      id
	      name
	      slug
	    }
	  }
	}`, collectionSlug)

	data, err := c.query(ctx, query)
	if err != nil {
		return "", err
	}

	var payload struct {
		Collections struct {
			Docs []collectionDoc `json:"docs"`
		} `json:"Collections"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("failed to parse collections: %w", err)
	}

	if len(payload.Collections.Docs) == 0 {
		return "", nil
	}

	id := payload.Collections.Docs[0].ID
	c.collectionIDs[collectionSlug] = id
	return id, nil
}

// LatestEpisode returns the most recently released episodic content of a
// series, or (nil, nil) when the series is unknown or has no episodes.
func (c *Client) LatestEpisode(ctx context.Context, seriesSlug string) (*models.Episode, error) {
	collectionID, err := c.CollectionID(ctx, seriesSlug)
	if err != nil {
		return nil, err
	}
	if collectionID == "" {
		return nil, nil
	}

	query := fmt.Sprintf(`
	query GetLatestEpisode {
	  Contents(
	    where: {
	      primaryCollection: { equals: %q }
	      seasonNumber: { not_equals: null }
	      episodeNumber: { not_equals: null }
	    }
	    sort: "-releaseDate"
	    limit: 1
	  ) {
	    docs {
	      id
	      title
	      slug
	      seasonNumber
	      episodeNumber
	      releaseDate
	      duration
	      description
	      primaryCollection {
	        id
	        name
	        slug
	      }
	    }
	  }
	}`, collectionID)

	episodes, err := c.queryContents(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return nil, nil
	}
	return episodes[0], nil
}

// ContentBySlug returns content metadata for a URL slug, or (nil, nil) when
// no such content exists
func (c *Client) ContentBySlug(ctx context.Context, slug string) (*models.Episode, error) {
	if err := ValidateSlug(slug, "content slug"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
	query GetContentBySlug {
	  Contents(where: { slug: { equals: %q } }, limit: 1) {
	    docs {
	      id
	      title
	      slug
	      seasonNumber
	      episodeNumber
	      releaseDate
	      duration
	      description
	      primaryCollection {
	        id
	        name
	        slug
	      }
	    }
	  }
	}`, slug)

	episodes, err := c.queryContents(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return nil, nil
	}
	return episodes[0], nil
}

// SeriesEpisodes returns all episodic content of a series sorted by season
// and episode number. An unknown series yields an empty slice.
func (c *Client) SeriesEpisodes(ctx context.Context, seriesSlug string) ([]*models.Episode, error) {
	collectionID, err := c.CollectionID(ctx, seriesSlug)
	if err != nil {
		return nil, err
	}
	if collectionID == "" {
		return nil, nil
	}

	query := fmt.Sprintf(`
	query GetSeriesEpisodes {
	  Contents(
	    where: {
	      primaryCollection: { equals: %q }
	      seasonNumber: { not_equals: null }
	      episodeNumber: { not_equals: null }
	    }
	    sort: "seasonNumber,episodeNumber"
	    limit: 200
	  ) {
	    docs {
	      id
	      title
	      slug
	      seasonNumber
	      episodeNumber
	      releaseDate
	      duration
	      description
	    }
	  }
	}`, collectionID)

	return c.queryContents(ctx, query)
}

// Collections lists all series collections sorted by name
func (c *Client) Collections(ctx context.Context) ([]*models.Collection, error) {
	query := `
	query GetCollections {
	  Collections(where: { isSeries: { equals: true } } sort: "name", limit: 100) {
	    docs {
	      id
	      name
	      slug
	      isSeries
	      itemCount
	    }
	  }
	}`

	data, err := c.query(ctx, query)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Collections struct {
			Docs []collectionDoc `json:"docs"`
		} `json:"Collections"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse collections: %w", err)
	}

	collections := make([]*models.Collection, 0, len(payload.Collections.Docs))
	for _, doc := range payload.Collections.Docs {
		collections = append(collections, doc.toModel())
	}
	return collections, nil
}

// CollectionInfo returns collection metadata for a slug, or (nil, nil) when
// the collection does not exist
func (c *Client) CollectionInfo(ctx context.Context, collectionSlug string) (*models.Collection, error) {
	collectionID, err := c.CollectionID(ctx, collectionSlug)
	if err != nil {
		return nil, err
	}
	if collectionID == "" {
		return nil, nil
	}

	query := fmt.Sprintf(`
	query GetCollection {
	  Collection(id: %q) {
	    id
	    name
	    slug
	    isSeries
	    itemCount
	  }
	}`, collectionID)

	data, err := c.query(ctx, query)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Collection *collectionDoc `json:"Collection"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}
	if payload.Collection == nil {
		return nil, nil
	}
	return payload.Collection.toModel(), nil
}

// queryContents runs a Contents query and adapts the documents
func (c *Client) queryContents(ctx context.Context, query string) ([]*models.Episode, error) {
	data, err := c.query(ctx, query)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Contents struct {
			Docs []contentDoc `json:"docs"`
		} `json:"Contents"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse contents: %w", err)
	}

	episodes := make([]*models.Episode, 0, len(payload.Contents.Docs))
	for _, doc := range payload.Contents.Docs {
		episodes = append(episodes, doc.toModel())
	}
	return episodes, nil
}
