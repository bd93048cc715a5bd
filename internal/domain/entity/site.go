package entity

import "strings"

// PublicSite is the remote branding/configuration payload of the storefront,
// served by the public store API per site slug.
type PublicSite struct {
	OK      bool          `json:"ok"`
	Expired bool          `json:"expired"`
	Message string        `json:"message,omitempty"`
	Store   *Store        `json:"store,omitempty"`
	Site    *SiteSettings `json:"sitio,omitempty"`
	Owner   *Owner        `json:"owner,omitempty"`
}

// Store is the seller record inside the public-site payload.
type Store struct {
	Name        string `json:"name,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// SiteSettings carries the configurable look and contact data of the site.
// Field names follow the upstream API, which is Spanish.
type SiteSettings struct {
	Title     string   `json:"titulo,omitempty"`
	Logo      string   `json:"logo,omitempty"`
	Carousel  []string `json:"carrusel,omitempty"`
	Facebook  string   `json:"facebook,omitempty"`
	Instagram string   `json:"instagram,omitempty"`
	Twitter   string   `json:"twitter,omitempty"`
	TikTok    string   `json:"tiktok,omitempty"`
	WhatsApp  string   `json:"whatsapp,omitempty"`
	Telefono  string   `json:"telefono,omitempty"`
	Phone     string   `json:"phone,omitempty"`
}

// Owner is the account owner record inside the public-site payload.
type Owner struct {
	WhatsApp string `json:"whatsapp,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Telefono string `json:"telefono,omitempty"`
}

// Socials groups the site's social network links.
type Socials struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
}

// StoreName resolves the display name: site title, then store name, then a
// generic fallback.
func (s *PublicSite) StoreName() string {
	if s != nil && s.Site != nil && s.Site.Title != "" {
		return s.Site.Title
	}
	if s != nil && s.Store != nil && s.Store.Name != "" {
		return s.Store.Name
	}

	return "Mi tienda"
}

// WhatsAppNumber walks the preferred chain of contact fields (site settings,
// then store, then owner) and returns the first non-empty one reduced to
// digits. Empty means the site exposes no reachable number.
func (s *PublicSite) WhatsAppNumber() string {
	if s == nil {
		return ""
	}

	var candidates []string
	if s.Site != nil {
		candidates = append(candidates, s.Site.WhatsApp, s.Site.Telefono, s.Site.Phone)
	}
	if s.Store != nil {
		candidates = append(candidates, s.Store.WhatsApp, s.Store.Phone, s.Store.Telefono, s.Store.PhoneNumber)
	}
	if s.Owner != nil {
		candidates = append(candidates, s.Owner.WhatsApp, s.Owner.Phone, s.Owner.Telefono)
	}

	for _, candidate := range candidates {
		if candidate != "" {
			return onlyDigits(candidate)
		}
	}

	return ""
}

// Carousel returns the configured carousel images with empty slots dropped.
func (s *PublicSite) Carousel() []string {
	if s == nil || s.Site == nil {
		return nil
	}

	out := make([]string, 0, len(s.Site.Carousel))
	for _, img := range s.Site.Carousel {
		if img != "" {
			out = append(out, img)
		}
	}

	return out
}

// HeroImages is the hero subset of the carousel: the first slide plus slides
// 7 through 10, deduplicated. The storefront reserves the skipped slides for
// other page sections.
func (s *PublicSite) HeroImages() []string {
	carousel := s.Carousel()
	if len(carousel) == 0 {
		return nil
	}

	picked := []string{carousel[0]}
	for i := 6; i < 10 && i < len(carousel); i++ {
		picked = append(picked, carousel[i])
	}

	seen := make(map[string]struct{}, len(picked))
	out := make([]string, 0, len(picked))
	for _, img := range picked {
		if _, ok := seen[img]; ok {
			continue
		}
		seen[img] = struct{}{}
		out = append(out, img)
	}

	return out
}

// SocialLinks returns the configured social links.
func (s *PublicSite) SocialLinks() Socials {
	if s == nil || s.Site == nil {
		return Socials{}
	}

	return Socials{
		Facebook:  s.Site.Facebook,
		Instagram: s.Site.Instagram,
		Twitter:   s.Site.Twitter,
		TikTok:    s.Site.TikTok,
	}
}

func onlyDigits(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
