//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/handler/api"
	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/pkg/ptr"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/queries"
	"ranch-booking/tests/common/httptest"
	commandsmock "ranch-booking/tests/mock/commands"
	queriesmock "ranch-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type ImageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockImageCommands
	mockQueries  *queriesmock.MockImageQueries
}

func (s *ImageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockImageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockImageQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	cfg.Upload.MaxBytes = 64
	h := api.NewImageHandler(s.mockCommands, s.mockQueries, cfg)

	s.router.GET("/gallery", h.List)
	s.router.POST("/gallery", fakeAdmin, h.Upload)
	s.router.PUT("/gallery/:id", fakeAdmin, h.Update)
	s.router.DELETE("/gallery/:id", fakeAdmin, h.Delete)
}

func (s *ImageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestImageHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImageHandlerTestSuite))
}

func (s *ImageHandlerTestSuite) upload(fields map[string]string, filename string, content []byte) *nethttptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		s.Require().NoError(w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(w.Close())

	req := nethttptest.NewRequest(http.MethodPost, "/gallery", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ImageHandlerTestSuite) TestList() {
	s.Run("success: forwards category and visibility", func() {
		views := []*queries.ImageView{{ID: 1, Src: "/uploads/a.png", Category: "horses", Visible: true}}
		s.mockQueries.EXPECT().List(gomock.Any(), ptr.Of("horses"), ptr.Of(true)).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gallery?category=horses&visible=true", nil, "")

		var body []resdto.ImageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("/uploads/a.png", body[0].Src)
	})

	s.Run("success: no filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*string)(nil), (*bool)(nil)).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gallery", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ImageHandlerTestSuite) TestUpload() {
	content := append(append([]byte{}, pngHeader...), []byte("pixels")...)

	s.Run("success: content type is sniffed and the body is passed whole", func() {
		stored := gallery.ReconstructImage(7, "/uploads/abc.png", "Sunset", "Horses at sunset", "horses", true, 0, time.Now())
		s.mockCommands.EXPECT().Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.UploadImageInput) (*gallery.Image, error) {
				s.Equal("sunset.png", in.Filename)
				s.Equal("image/png", in.ContentType)
				s.Equal("Sunset", in.Title)
				s.Equal("horses", in.Category)
				got, err := io.ReadAll(in.Body)
				s.Require().NoError(err)
				s.Equal(content, got)
				return stored, nil
			}).Times(1)

		rec := s.upload(map[string]string{"title": "Sunset", "alt": "Horses at sunset", "category": "horses"}, "sunset.png", content)

		var body resdto.ImageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(7), body.ID)
		s.Equal("/uploads/abc.png", body.Src)
	})

	s.Run("error: disguised file is rejected by the usecase", func() {
		s.mockCommands.EXPECT().Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.UploadImageInput) (*gallery.Image, error) {
				s.Equal("text/plain; charset=utf-8", in.ContentType)
				return nil, errs.Mark(gallery.ErrUnsupportedFormat, errs.ErrMalformedInput)
			}).Times(1)

		rec := s.upload(nil, "notes.png", []byte("just some text"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: missing file", func() {
		rec := s.upload(map[string]string{"title": "x"}, "", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Image file is required")
	})

	s.Run("error: file too large", func() {
		big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 200)...)
		rec := s.upload(nil, "big.png", big)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "Image file is too large")
	})
}

func (s *ImageHandlerTestSuite) TestUpdate() {
	s.Run("success", func() {
		want := gallery.Changes{Visible: ptr.Of(false), SortOrder: ptr.Of(2)}
		updated := gallery.ReconstructImage(7, "/uploads/abc.png", "", "", "general", false, 2, time.Now())
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(7), want).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/gallery/7", map[string]any{"visible": false, "sortOrder": 2}, "admin-token")

		var body resdto.ImageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Visible)
		s.Equal(2, body.SortOrder)
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(8), gomock.Any()).
			Return(nil, errs.Mark(errors.New("gone"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/gallery/8", map[string]any{"title": "x"}, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *ImageHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/gallery/7", nil, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/gallery/x", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
