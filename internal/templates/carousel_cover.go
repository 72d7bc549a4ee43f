package templates

// carouselCover is a cover slide with the listing data followed by one full
// bleed photo slide per additional image. Only the cover and the photo
// pattern are declared; the renderer expands the pattern per image.
func carouselCover() *Definition {
	return &Definition{
		ID:               "carousel-cover",
		Version:          "1.0.0",
		Name:             "Carrusel con Cover",
		Description:      "Cover con datos + slides de fotos individuales (carrusel IG)",
		Category:         CategoryCarousel,
		ImageCount:       2,
		MaxImages:        10,
		SupportedFormats: []CanvasFormat{FormatSquare, FormatPortrait},
		SafeArea:         SafeArea{Top: 60, Bottom: 60, Left: 40, Right: 40},
		Tags:             []string{"carousel", "carrusel", "multi-foto"},
		Slides: map[CanvasFormat][]Slide{
			FormatSquare:   {carouselCoverSlide(1080), carouselPhotoSlide(1080)},
			FormatPortrait: {carouselCoverSlide(1350), carouselPhotoSlide(1350)},
			FormatStory:    {},
		},
	}
}

func carouselCoverSlide(canvasHeight int) Slide {
	square := canvasHeight == 1080
	pick := func(sq, tall int) int {
		if square {
			return sq
		}
		return tall
	}
	gradientStart := pick(440, 650)

	return Slide{
		ID: "cover",
		Layers: []Layer{
			ImageLayer{ID: "cover-image", ImageIndex: 0, Rect: rect(0, 0, 1080, canvasHeight), Fit: FitCover, ZIndex: 0},
			ShapeLayer{
				ID:    "gradient",
				Shape: ShapeGradient,
				Rect:  rect(0, gradientStart, 1080, canvasHeight-gradientStart),
				Gradient: &Gradient{
					Type:      "linear",
					Direction: ToBottom,
					Stops: []GradientStop{
						{Offset: 0, Color: "#000000", Opacity: 0},
						{Offset: 0.35, Color: "#000000", Opacity: 0.6},
						{Offset: 1, Color: "#000000", Opacity: 0.88},
					},
				},
				ZIndex: 1,
			},
			ShapeLayer{ID: "badge-bg", Shape: ShapeRect, Rect: rect(60, 60, 200, 48), Fill: BrandPrimary, BorderRadius: 8, ZIndex: 2},
			TextLayer{
				ID:          LayerBadgeText,
				Field:       FieldCustom,
				Rect:        rect(60, 60, 200, 48),
				DefaultText: "EN VENTA",
				Style: TextStyle{
					FontFamily: "Inter", Color: "#FFFFFF", FontSize: 22, FontWeight: WeightBold,
					TextAlign: AlignCenter, TextTransform: TransformUppercase, LetterSpacing: 2,
				},
				ZIndex: 3,
			},
			ShapeLayer{ID: "carousel-indicator-bg", Shape: ShapeRect, Rect: rect(920, 60, 100, 48), Fill: "#000000", Opacity: opacity(0.5), BorderRadius: 24, ZIndex: 2},
			TextLayer{
				ID:          LayerCarouselIndicator,
				Field:       FieldCustom,
				Rect:        rect(920, 60, 100, 48),
				DefaultText: "1/N",
				Style:       TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 20, FontWeight: WeightBold, TextAlign: AlignCenter},
				ZIndex:      3,
			},
			TextLayer{
				ID:    "title",
				Field: FieldTitle,
				Rect:  rect(60, pick(720, 980), 960, 50),
				Style: TextStyle{
					FontFamily: "Inter", Color: "#FFFFFF", FontSize: 40, FontWeight: WeightBold,
					TextAlign: AlignLeft, LineHeight: 1.1, MaxLines: 1,
				},
				ZIndex: 2,
			},
			TextLayer{
				ID:     "price",
				Field:  FieldPrice,
				Rect:   rect(60, pick(775, 1040), 960, 60),
				Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 52, FontWeight: WeightBlack, TextAlign: AlignLeft},
				ZIndex: 2,
			},
			TextLayer{
				ID:     "location",
				Field:  FieldLocation,
				Rect:   rect(60, pick(845, 1110), 600, 40),
				Style:  TextStyle{FontFamily: "Inter", Color: "#CCCCCC", FontSize: 26, FontWeight: WeightNormal, TextAlign: AlignLeft},
				ZIndex: 2,
			},
			TextLayer{
				ID:     "features",
				Field:  FieldFeatures,
				Rect:   rect(60, pick(885, 1155), 700, 35),
				Style:  TextStyle{FontFamily: "Inter", Color: "#AAAAAA", FontSize: 22, FontWeight: WeightNormal, TextAlign: AlignLeft, MaxLines: 1},
				ZIndex: 2,
			},
			LogoLayer{ID: "logo", Rect: rect(860, pick(910, 1180), 160, 90), Fit: FitContain, ZIndex: 2},
			TextLayer{
				ID:     "cta",
				Field:  FieldCTA,
				Rect:   rect(60, pick(980, 1250), 700, 35),
				Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 20, FontWeight: WeightBold, TextAlign: AlignLeft},
				ZIndex: 2,
			},
		},
	}
}

// carouselPhotoSlide is the per-image pattern. Its image index is rewritten
// for every expanded slide.
func carouselPhotoSlide(canvasHeight int) Slide {
	return Slide{
		ID: "photo-slide",
		Layers: []Layer{
			ImageLayer{ID: "slide-image", ImageIndex: 1, Rect: rect(0, 0, 1080, canvasHeight), Fit: FitCover, ZIndex: 0},
			ShapeLayer{
				ID:    "bottom-gradient",
				Shape: ShapeGradient,
				Rect:  rect(0, canvasHeight-120, 1080, 120),
				Gradient: &Gradient{
					Type:      "linear",
					Direction: ToBottom,
					Stops: []GradientStop{
						{Offset: 0, Color: "#000000", Opacity: 0},
						{Offset: 1, Color: "#000000", Opacity: 0.5},
					},
				},
				ZIndex: 1,
			},
			LogoLayer{ID: "logo-small", Rect: rect(900, canvasHeight-90, 130, 60), Fit: FitContain, ZIndex: 2},
			ShapeLayer{ID: "indicator-bg", Shape: ShapeRect, Rect: rect(920, 60, 100, 48), Fill: "#000000", Opacity: opacity(0.5), BorderRadius: 24, ZIndex: 2},
			TextLayer{
				ID:          LayerIndicatorText,
				Field:       FieldCustom,
				Rect:        rect(920, 60, 100, 48),
				DefaultText: "N/N",
				Style:       TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 20, FontWeight: WeightBold, TextAlign: AlignCenter},
				ZIndex:      3,
			},
		},
	}
}
