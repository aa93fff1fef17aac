// AngelaMos | 2026
// handler.go

package banner

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/petal-commerce/internal/core"
)

// 10 MiB upload cap, matching the storefront's banner size guidance.
const maxUploadSize = 10 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/banners", h.ListBanners)
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/banners", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Post("/", h.UploadBanner)
		r.Delete("/{bannerID}", h.DeleteBanner)
	})
}

func (h *Handler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.ListActive(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBannerResponseList(banners))
}

func (h *Handler) UploadBanner(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		core.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		core.BadRequest(w, "missing image file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	banner, err := h.service.Upload(
		r.Context(),
		header.Filename,
		contentType,
		file,
		header.Size,
	)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "unsupported image type")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToBannerResponse(banner))
}

func (h *Handler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "bannerID")

	if err := h.service.Delete(r.Context(), bannerID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "banner")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
