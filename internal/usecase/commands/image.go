package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/image.go -package=commandsmock

import (
	"context"
	"io"
	"log/slog"

	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/usecase/shared"
)

type UploadImageInput struct {
	Filename string
	// ContentType is sniffed from the file body, not taken from the client.
	ContentType string
	Body        io.Reader
	Title       string
	Alt         string
	Category    string
}

type ImageCommands interface {
	Upload(ctx context.Context, in UploadImageInput) (*gallery.Image, error)
	Update(ctx context.Context, id int64, ch gallery.Changes) (*gallery.Image, error)
	Delete(ctx context.Context, id int64) error
}

type imageCommandsImpl struct {
	uow   shared.UnitOfWork
	files FileStore
}

func NewImageCommands(uow shared.UnitOfWork, files FileStore) ImageCommands {
	return &imageCommandsImpl{uow: uow, files: files}
}

func (c *imageCommandsImpl) Upload(ctx context.Context, in UploadImageInput) (*gallery.Image, error) {
	if err := gallery.CheckFormat(in.Filename, in.ContentType); err != nil {
		return nil, classify(err)
	}

	src, err := c.files.Save(ctx, in.Filename, in.Body)
	if err != nil {
		return nil, err
	}

	var created *gallery.Image
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		order, err := tx.Images().NextSortOrder(ctx, tx.DB())
		if err != nil {
			return err
		}
		img, err := gallery.NewImage(src, in.Title, in.Alt, in.Category, order)
		if err != nil {
			return err
		}
		created, err = tx.Images().Create(ctx, tx.DB(), img)
		return err
	})
	if err != nil {
		c.removeFile(ctx, src)
		return nil, classify(err)
	}
	return created, nil
}

func (c *imageCommandsImpl) Update(ctx context.Context, id int64, ch gallery.Changes) (*gallery.Image, error) {
	var updated *gallery.Image
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Images().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		updated, err = tx.Images().Update(ctx, tx.DB(), current.Apply(ch))
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	return updated, nil
}

// Delete drops the row first; the stored file is removed afterwards on a best
// effort basis.
func (c *imageCommandsImpl) Delete(ctx context.Context, id int64) error {
	var removed *gallery.Image
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		removed, err = tx.Images().Delete(ctx, tx.DB(), id)
		return err
	})
	if err != nil {
		return classify(err)
	}
	c.removeFile(ctx, removed.Src())
	return nil
}

func (c *imageCommandsImpl) removeFile(ctx context.Context, src string) {
	if err := c.files.Remove(ctx, src); err != nil {
		slog.WarnContext(ctx, "failed to remove image file", "src", src, "error", err.Error())
	}
}
