// AngelaMos | 2026
// dto.go

package banner

import (
	"time"
)

type BannerResponse struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

func ToBannerResponse(b *Banner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		ImageURL:  b.ImageURL,
		CreatedAt: b.CreatedAt,
	}
}

func ToBannerResponseList(banners []Banner) []BannerResponse {
	responses := make([]BannerResponse, 0, len(banners))
	for _, b := range banners {
		responses = append(responses, ToBannerResponse(&b))
	}
	return responses
}
