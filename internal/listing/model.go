package listing

import "strings"

// Operation is the listing's transaction type.
type Operation string

const (
	OperationSale   Operation = "venta"
	OperationRental Operation = "alquiler"
)

// PropertyData is the structured listing record produced by the scraper.
type PropertyData struct {
	Operation     Operation `json:"operation"`
	PropertyType  string    `json:"propertyType"`
	Price         *float64  `json:"price"`
	Currency      string    `json:"currency"`
	Expenses      *float64  `json:"expenses,omitempty"`
	Address       string    `json:"address,omitempty"`
	Neighborhood  string    `json:"neighborhood,omitempty"`
	City          string    `json:"city,omitempty"`
	Province      string    `json:"province,omitempty"`
	Bedrooms      *int      `json:"bedrooms,omitempty"`
	Bathrooms     *int      `json:"bathrooms,omitempty"`
	TotalAreaM2   *float64  `json:"totalAreaM2,omitempty"`
	CoveredAreaM2 *float64  `json:"coveredAreaM2,omitempty"`
	Amenities     []string  `json:"amenities,omitempty"`
	Description   string    `json:"description,omitempty"`
}

// IsRental reports whether the listing is for rent. Anything else renders as a sale.
func (p PropertyData) IsRental() bool {
	return Operation(strings.ToLower(string(p.Operation))) == OperationRental
}

// PostTexts are the user-edited strings bound to text layers.
type PostTexts struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Location string `json:"location"`
	Features string `json:"features"`
	CTA      string `json:"cta"`
}

type BrandConfig struct {
	AgencyID        string `json:"agencyId"`
	AgencyName      string `json:"agencyName"`
	LogoURL         string `json:"logoUrl"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	FontFamily      string `json:"fontFamily"`
	InstagramHandle string `json:"instagramHandle,omitempty"`
	WhatsApp        string `json:"whatsapp,omitempty"`
	Website         string `json:"website,omitempty"`
}

// ContactLink picks the best link to encode for the brand: website, then a
// WhatsApp chat, then the Instagram profile.
func (b BrandConfig) ContactLink() string {
	if b.Website != "" {
		return b.Website
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, b.WhatsApp)
	if digits != "" {
		return "https://wa.me/" + digits
	}
	if h := strings.TrimPrefix(b.InstagramHandle, "@"); h != "" {
		return "https://instagram.com/" + h
	}
	return ""
}

// CropData is carried for clients; the rasterizer does not apply it.
type CropData struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type SelectedImage struct {
	URL      string    `json:"url"`
	Order    int       `json:"order"`
	CropData *CropData `json:"cropData,omitempty"`
}
