package gallery

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

const DefaultCategory = "ostalo"

var (
	ErrMissingSource     = errors.New("image source is required")
	ErrUnsupportedFormat = errors.New("only jpeg, jpg, png, gif and webp images are allowed")
)

var allowedExtensions = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// CheckFormat accepts a file only when both its extension and sniffed content
// type are on the allow list.
func CheckFormat(filename, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	want, ok := allowedExtensions[ext]
	if !ok {
		return ErrUnsupportedFormat
	}
	if contentType != want {
		return ErrUnsupportedFormat
	}
	return nil
}

type Image struct {
	id        int64
	src       string
	title     string
	alt       string
	category  string
	visible   bool
	sortOrder int
	createdAt time.Time
}

func NewImage(src, title, alt, category string, sortOrder int) (*Image, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrMissingSource
	}
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	return &Image{
		src:       src,
		title:     title,
		alt:       alt,
		category:  category,
		visible:   true,
		sortOrder: sortOrder,
	}, nil
}

func ReconstructImage(id int64, src, title, alt, category string, visible bool, sortOrder int, createdAt time.Time) *Image {
	return &Image{
		id:        id,
		src:       src,
		title:     title,
		alt:       alt,
		category:  category,
		visible:   visible,
		sortOrder: sortOrder,
		createdAt: createdAt,
	}
}

type Changes struct {
	Title     *string
	Alt       *string
	Category  *string
	Visible   *bool
	SortOrder *int
}

func (i *Image) Apply(ch Changes) *Image {
	next := *i
	if ch.Title != nil {
		next.title = *ch.Title
	}
	if ch.Alt != nil {
		next.alt = *ch.Alt
	}
	if ch.Category != nil {
		next.category = strings.TrimSpace(*ch.Category)
		if next.category == "" {
			next.category = DefaultCategory
		}
	}
	if ch.Visible != nil {
		next.visible = *ch.Visible
	}
	if ch.SortOrder != nil {
		next.sortOrder = *ch.SortOrder
	}
	return &next
}

func (i *Image) ID() int64            { return i.id }
func (i *Image) Src() string          { return i.src }
func (i *Image) Title() string        { return i.title }
func (i *Image) Alt() string          { return i.alt }
func (i *Image) Category() string     { return i.category }
func (i *Image) Visible() bool        { return i.visible }
func (i *Image) SortOrder() int       { return i.sortOrder }
func (i *Image) CreatedAt() time.Time { return i.createdAt }
