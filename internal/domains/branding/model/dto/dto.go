package dto

import "strings"

// SetLogoRequest carries the logo as a data URL, e.g. "data:image/png;base64,...".
type SetLogoRequest struct {
	Logo string `json:"logo" example:"data:image/png;base64,iVBORw0KGgo=" validate:"required,mimetypes=image/png image/jpeg image/jpg image/gif image/webp image/svg+xml"`
}

func (r *SetLogoRequest) Normalize() {
	r.Logo = strings.TrimSpace(r.Logo)
}

type LogoResponse struct {
	Logo *string `json:"logo" example:"https://cdn.example.com/branding/logo/3f2a.png"`
}

func (r *LogoResponse) FromURL(url string) {
	if url == "" {
		r.Logo = nil
		return
	}

	r.Logo = &url
}

type SetLogoResponse struct {
	Success bool   `json:"success" example:"true"`
	Logo    string `json:"logo"    example:"https://cdn.example.com/branding/logo/3f2a.png"`
}
