// Package content loads the product listing shown on the page.
//
// Only the numeric ratings and the description drive page behaviour; the
// rest is display data passed straight through to the views.
package content

import "storefront/internal/rating"

// Content is the full listing record.
type Content struct {
	App         App         `json:"app" yaml:"app" validate:"required"`
	Screenshots []string    `json:"screenshots" yaml:"screenshots" validate:"dive,required"`
	Description string      `json:"description" yaml:"description"`
	WhatsNew    WhatsNew    `json:"whatsNew" yaml:"whatsNew"`
	Ratings     Ratings     `json:"ratings" yaml:"ratings"`
	Reviews     []Review    `json:"reviews" yaml:"reviews" validate:"dive"`
	Information Information `json:"information" yaml:"information"`
}

// App is the listing header.
type App struct {
	Name          string  `json:"name" yaml:"name" validate:"required"`
	Developer     string  `json:"developer" yaml:"developer"`
	Icon          string  `json:"icon" yaml:"icon"`
	PriceType     string  `json:"priceType" yaml:"priceType"`
	OverallRating float64 `json:"overallRating" yaml:"overallRating" validate:"gte=0,lte=5"`
	TotalRatings  int     `json:"totalRatings" yaml:"totalRatings" validate:"gte=0"`
	ButtonText    string  `json:"buttonText" yaml:"buttonText"`
	AgeRating     string  `json:"ageRating" yaml:"ageRating"`
	LiveAppLink   string  `json:"liveAppLink" yaml:"liveAppLink" validate:"omitempty,url"`
}

// WhatsNew describes the latest release.
type WhatsNew struct {
	Version string `json:"version" yaml:"version"`
	Content string `json:"content" yaml:"content"`
}

// Ratings is the aggregate rating summary.
type Ratings struct {
	Overall      float64             `json:"overall" yaml:"overall" validate:"gte=0,lte=5"`
	Distribution rating.Distribution `json:"distribution" yaml:"distribution" validate:"dive,keys,oneof=1 2 3 4 5,endkeys,gte=0,lte=100"`
	TotalRatings int                 `json:"totalRatings" yaml:"totalRatings" validate:"gte=0"`
}

// Review is a single user review.
type Review struct {
	Title   string  `json:"title" yaml:"title" validate:"required"`
	Date    string  `json:"date" yaml:"date"`
	Rating  float64 `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	User    string  `json:"user" yaml:"user"`
	Content string  `json:"content" yaml:"content"`
}

// Information is the listing's fact sheet.
type Information struct {
	Seller         string      `json:"seller" yaml:"seller"`
	Category       string      `json:"category" yaml:"category"`
	Size           string      `json:"size" yaml:"size"`
	Language       string      `json:"language" yaml:"language"`
	Compatibility  string      `json:"compatibility" yaml:"compatibility"`
	AgeRating      string      `json:"ageRating" yaml:"ageRating"`
	InAppPurchases bool        `json:"inAppPurchases" yaml:"inAppPurchases"`
	Pricing        []PriceTier `json:"pricing" yaml:"pricing" validate:"dive"`
}

// PriceTier is one in-app purchase option.
type PriceTier struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Price string `json:"price" yaml:"price" validate:"required"`
}

// ShowPricing reports whether the in-app purchase list should be displayed.
func (i Information) ShowPricing() bool {
	return i.InAppPurchases && len(i.Pricing) > 0
}
