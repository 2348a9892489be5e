package beacon

import (
	"time"

	"beacon-dl/pkg/models"
)

// contentDoc is the wire shape of a Contents document. The adapter keeps the
// untyped API surface inside this package; the rest of the application only
// sees pkg/models types.
type contentDoc struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Slug              string         `json:"slug"`
	SeasonNumber      *int           `json:"seasonNumber"`
	EpisodeNumber     *int           `json:"episodeNumber"`
	ReleaseDate       string         `json:"releaseDate"`
	Duration          int64          `json:"duration"`
	Description       string         `json:"description"`
	PrimaryCollection *collectionDoc `json:"primaryCollection"`
}

type collectionDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsSeries  bool   `json:"isSeries"`
	ItemCount int    `json:"itemCount"`
}

func (d contentDoc) toModel() *models.Episode {
	episode := &models.Episode{
		ID:             d.ID,
		Title:          d.Title,
		Slug:           d.Slug,
		SeasonNumber:   d.SeasonNumber,
		EpisodeNumber:  d.EpisodeNumber,
		DurationMillis: d.Duration,
		Description:    d.Description,
	}

	if d.ReleaseDate != "" {
		if parsed, err := time.Parse(time.RFC3339, d.ReleaseDate); err == nil {
			episode.ReleaseDate = &parsed
		}
	}

	if d.PrimaryCollection != nil {
		episode.PrimaryCollection = d.PrimaryCollection.toModel()
	}

	return episode
}

func (d collectionDoc) toModel() *models.Collection {
	return &models.Collection{
		ID:        d.ID,
		Name:      d.Name,
		Slug:      d.Slug,
		IsSeries:  d.IsSeries,
		ItemCount: d.ItemCount,
	}
}
