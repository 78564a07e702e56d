package api

import (
	"bytes"
	"io"
	"net/http"

	reqdto "ranch-booking/internal/handler/dto/request"
	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/handler/httperr"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const sniffLen = 512

var (
	ErrMissingFile  = errs.New("image file is required")
	ErrFileTooLarge = errs.New("image file is too large")
)

type ImageHandler struct {
	cmds     commands.ImageCommands
	q        queries.ImageQueries
	maxBytes int64
}

func NewImageHandler(cmds commands.ImageCommands, q queries.ImageQueries, cfg config.Config) *ImageHandler {
	return &ImageHandler{cmds: cmds, q: q, maxBytes: cfg.Upload.MaxBytes}
}

// @Summary List gallery images
// @Tags images
// @Produce json
// @Param category query string false "Category"
// @Param visible query bool false "Visibility"
// @Success 200 {array} resdto.ImageResponse
// @Router /images [get]
func (h *ImageHandler) List(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}
	views, err := h.q.List(c.Request.Context(), category, optionalBool(c.Query("visible")))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromImageViews(views))
}

// @Summary Upload gallery image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "jpeg, png, gif or webp"
// @Param title formData string false "Title"
// @Param alt formData string false "Alt text"
// @Param category formData string false "Category"
// @Success 201 {object} resdto.ImageResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		// multipart overhead on top of the file itself
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+sniffLen*2)
	}

	fh, err := c.FormFile("image")
	if err != nil {
		badRequest(c, errs.Mark(err, ErrMissingFile), "Image file is required")
		return
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, ErrFileTooLarge, "Image file is too large", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read upload", nil)
		return
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read upload", nil)
		return
	}
	head = head[:n]

	img, err := h.cmds.Upload(c.Request.Context(), commands.UploadImageInput{
		Filename:    fh.Filename,
		ContentType: http.DetectContentType(head),
		Body:        io.MultiReader(bytes.NewReader(head), f),
		Title:       c.PostForm("title"),
		Alt:         c.PostForm("alt"),
		Category:    c.PostForm("category"),
	})
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromImage(img))
}

// @Summary Update gallery image
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Param request body reqdto.UpdateImageRequest true "Changes"
// @Success 200 {object} resdto.ImageResponse
// @Failure 404 {object} httperr.Response
// @Router /images/{id} [put]
func (h *ImageHandler) Update(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	img, err := h.cmds.Update(c.Request.Context(), id, req.ToChanges())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromImage(img))
}

// @Summary Delete gallery image
// @Tags images
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /images/{id} [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
