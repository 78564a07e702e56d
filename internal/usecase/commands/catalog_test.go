//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/domain/resourcepool"
	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/infra"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/pkg/ptr"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/shared"
	commandsmock "ranch-booking/tests/mock/commands"
	sharedmock "ranch-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	services *sharedmock.MockServiceRepository
	slots    *sharedmock.MockSlotRepository
	images   *sharedmock.MockImageRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		services: sharedmock.NewMockServiceRepository(ctrl),
		slots:    sharedmock.NewMockSlotRepository(ctrl),
		images:   sharedmock.NewMockImageRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Services().Return(m.services).AnyTimes()
	m.tx.EXPECT().Slots().Return(m.slots).AnyTimes()
	m.tx.EXPECT().Images().Return(m.images).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

func TestSlotCommands_Create(t *testing.T) {
	day := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewSlotCommands(m.uow, config.NewTestConfig())

		m.slots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, s *ridingslot.Slot) (*ridingslot.Slot, error) {
				return ridingslot.ReconstructSlot(11, s.Date(), s.Time(), s.Capacity(), day), nil
			})

		slot, err := cmds.Create(context.Background(), day, "09:30", 8)

		require.NoError(t, err)
		assert.Equal(t, int64(11), slot.ID())
		assert.Equal(t, "09:30", slot.Time())
	})

	t.Run("error: duplicate date and time is a conflict", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewSlotCommands(m.uow, config.NewTestConfig())

		m.slots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := cmds.Create(context.Background(), day, "09:30", 8)

		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.True(t, errs.Is(err, commands.ErrSlotExists))
	})

	t.Run("error: malformed time never reaches the repository", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewSlotCommands(m.uow, config.NewTestConfig())

		_, err := cmds.Create(context.Background(), day, "25:99", 8)

		assert.True(t, errs.Is(err, errs.ErrMalformedInput))
	})
}

func TestSlotCommands_Generate(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)

	t.Run("success: counts created and skipped pairs", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewSlotCommands(m.uow, config.NewTestConfig())

		calls := 0
		m.slots.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ *ridingslot.Slot) (bool, error) {
				calls++
				return calls%2 == 1, nil
			}).Times(6)

		res, err := cmds.Generate(context.Background(), commands.GenerateSlotsInput{
			From: from, To: to, Times: []string{"09:00", "14:00"}, Capacity: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, commands.GenerateSlotsResult{Created: 3, Skipped: 3}, *res)
	})

	t.Run("error: no times", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewSlotCommands(m.uow, config.NewTestConfig())

		_, err := cmds.Generate(context.Background(), commands.GenerateSlotsInput{From: from, To: to})

		assert.True(t, errs.Is(err, commands.ErrEmptyTimes))
		assert.True(t, errs.Is(err, errs.ErrMalformedInput))
	})

	t.Run("error: inverted range", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewSlotCommands(m.uow, config.NewTestConfig())

		_, err := cmds.Generate(context.Background(), commands.GenerateSlotsInput{From: to, To: from, Times: []string{"09:00"}})

		assert.True(t, errs.Is(err, errs.ErrMalformedInput))
	})

	t.Run("error: range longer than the calendar limit", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cfg := config.NewTestConfig()
		cfg.Booking.MaxCalendarDays = 2
		cmds := commands.NewSlotCommands(m.uow, cfg)

		_, err := cmds.Generate(context.Background(), commands.GenerateSlotsInput{From: from, To: to, Times: []string{"09:00"}})

		assert.True(t, errs.Is(err, commands.ErrRangeTooLong))
	})
}

func TestServiceCommands_Create(t *testing.T) {
	t.Run("success: mode defaults to open", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewServiceCommands(m.uow)

		m.services.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, svc *service.Service) (*service.Service, error) {
				return svc, nil
			})

		svc, err := cmds.Create(context.Background(), commands.ServiceInput{Name: "Lunch", Price: 5000, Active: true})

		require.NoError(t, err)
		assert.Equal(t, service.ModeOpen, svc.Mode())
	})

	t.Run("success: pooled service checks the pool exists", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewServiceCommands(m.uow)

		m.reads.EXPECT().PoolByID(gomock.Any(), "cabins").Return(resourcepool.ReconstructPool("cabins", "Cabins", 4), nil)
		m.services.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, svc *service.Service) (*service.Service, error) {
				return svc, nil
			})

		svc, err := cmds.Create(context.Background(), commands.ServiceInput{
			Name: "Cabin", Price: 40000, Mode: service.ModePool, PoolID: ptr.Of("cabins"), Active: true,
		})

		require.NoError(t, err)
		assert.Equal(t, ptr.Of("cabins"), svc.PoolID())
	})

	t.Run("error: unknown pool", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewServiceCommands(m.uow)

		m.reads.EXPECT().PoolByID(gomock.Any(), "barn").Return(nil, infra.NotFound("pool"))

		_, err := cmds.Create(context.Background(), commands.ServiceInput{
			Name: "Barn stay", Mode: service.ModePool, PoolID: ptr.Of("barn"),
		})

		assert.True(t, errs.Is(err, commands.ErrUnknownPool))
		assert.True(t, errs.Is(err, errs.ErrMalformedInput))
	})

	t.Run("error: blank name", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewServiceCommands(m.uow)

		_, err := cmds.Create(context.Background(), commands.ServiceInput{Name: "  "})

		assert.True(t, errs.Is(err, errs.ErrMalformedInput))
	})
}

func TestServiceCommands_Update(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	current := service.ReconstructService(4, "Trail Ride", "", "1h", 15000, service.ModeSlot, nil, true, now, now)

	t.Run("success: partial change keeps other fields", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewServiceCommands(m.uow)

		m.reads.EXPECT().ServiceByID(gomock.Any(), int64(4)).Return(current, nil)
		m.services.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, svc *service.Service) (*service.Service, error) {
				return svc, nil
			})

		svc, err := cmds.Update(context.Background(), 4, service.Changes{Price: ptr.Of(int64(18000))})

		require.NoError(t, err)
		assert.Equal(t, int64(18000), svc.Price())
		assert.Equal(t, "Trail Ride", svc.Name())
		assert.Equal(t, int64(15000), current.Price(), "receiver must not change")
	})

	t.Run("error: missing service", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewServiceCommands(m.uow)

		m.reads.EXPECT().ServiceByID(gomock.Any(), int64(4)).Return(nil, infra.NotFound("service"))

		_, err := cmds.Update(context.Background(), 4, service.Changes{})

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestImageCommands(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("upload success: stores the file then the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		files := commandsmock.NewMockFileStore(ctrl)
		cmds := commands.NewImageCommands(m.uow, files)

		files.EXPECT().Save(gomock.Any(), "horse.png", gomock.Any()).Return("/uploads/abc.png", nil)
		m.images.EXPECT().NextSortOrder(gomock.Any(), gomock.Any()).Return(3, nil)
		m.images.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, img *gallery.Image) (*gallery.Image, error) {
				return gallery.ReconstructImage(1, img.Src(), img.Title(), img.Alt(), img.Category(), img.Visible(), img.SortOrder(), created), nil
			})

		img, err := cmds.Upload(context.Background(), commands.UploadImageInput{
			Filename: "horse.png", ContentType: "image/png", Body: bytes.NewReader([]byte("png")), Title: "Horse",
		})

		require.NoError(t, err)
		assert.Equal(t, "/uploads/abc.png", img.Src())
		assert.Equal(t, 3, img.SortOrder())
		assert.Equal(t, gallery.DefaultCategory, img.Category())
	})

	t.Run("upload error: unsupported format is rejected before saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		cmds := commands.NewImageCommands(m.uow, commandsmock.NewMockFileStore(ctrl))

		_, err := cmds.Upload(context.Background(), commands.UploadImageInput{
			Filename: "notes.txt", ContentType: "text/plain", Body: bytes.NewReader(nil),
		})

		assert.True(t, errs.Is(err, gallery.ErrUnsupportedFormat))
		assert.True(t, errs.Is(err, errs.ErrMalformedInput))
	})

	t.Run("upload error: failed insert removes the stored file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		files := commandsmock.NewMockFileStore(ctrl)
		cmds := commands.NewImageCommands(m.uow, files)

		files.EXPECT().Save(gomock.Any(), "horse.jpg", gomock.Any()).Return("/uploads/abc.jpg", nil)
		m.images.EXPECT().NextSortOrder(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
		files.EXPECT().Remove(gomock.Any(), "/uploads/abc.jpg").Return(nil)

		_, err := cmds.Upload(context.Background(), commands.UploadImageInput{
			Filename: "horse.jpg", ContentType: "image/jpeg", Body: bytes.NewReader(nil),
		})

		assert.Error(t, err)
	})

	t.Run("delete: drops the row then the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		files := commandsmock.NewMockFileStore(ctrl)
		cmds := commands.NewImageCommands(m.uow, files)

		removed := gallery.ReconstructImage(5, "/uploads/x.webp", "", "", gallery.DefaultCategory, true, 0, created)
		gomock.InOrder(
			m.images.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(5)).Return(removed, nil),
			files.EXPECT().Remove(gomock.Any(), "/uploads/x.webp").Return(errors.New("gone")),
		)

		assert.NoError(t, cmds.Delete(context.Background(), 5))
	})

	t.Run("delete: missing image is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		cmds := commands.NewImageCommands(m.uow, commandsmock.NewMockFileStore(ctrl))

		m.images.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(5)).Return(nil, infra.NotFound("image"))

		assert.True(t, errs.Is(cmds.Delete(context.Background(), 5), errs.ErrNotFound))
	})
}
