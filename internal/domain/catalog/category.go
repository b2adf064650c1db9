package catalog

import (
	"strings"

	"github.com/google/uuid"
)

type Category struct {
	id        uuid.UUID
	name      string
	sortOrder int
}

func NewCategory(id uuid.UUID, name string, sortOrder int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Category{id: id, name: name, sortOrder: sortOrder}, nil
}

func (c *Category) ID() uuid.UUID  { return c.id }
func (c *Category) Name() string   { return c.name }
func (c *Category) SortOrder() int { return c.sortOrder }

type GalleryItem struct {
	id          uuid.UUID
	imageURL    string
	description string
	visible     bool
	sortOrder   int
}

func NewGalleryItem(id uuid.UUID, imageURL, description string, visible bool, sortOrder int) (*GalleryItem, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, ErrEmptyImageURL
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &GalleryItem{
		id:          id,
		imageURL:    imageURL,
		description: strings.TrimSpace(description),
		visible:     visible,
		sortOrder:   sortOrder,
	}, nil
}

func (g *GalleryItem) ID() uuid.UUID       { return g.id }
func (g *GalleryItem) ImageURL() string    { return g.imageURL }
func (g *GalleryItem) Description() string { return g.description }
func (g *GalleryItem) IsVisible() bool     { return g.visible }
func (g *GalleryItem) SortOrder() int      { return g.sortOrder }
