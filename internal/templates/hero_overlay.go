package templates

// heroOverlay: one full bleed photo with a dark gradient and the listing data
// over it. It is the only template laid out for stories.
func heroOverlay() *Definition {
	return &Definition{
		ID:               "hero-overlay",
		Version:          "1.0.0",
		Name:             "Hero Overlay",
		Description:      "1 foto a sangre con degradado y datos superpuestos",
		Category:         CategoryHero,
		ImageCount:       1,
		SupportedFormats: []CanvasFormat{FormatSquare, FormatPortrait, FormatStory},
		SafeArea:         SafeArea{Top: 60, Bottom: 60, Left: 40, Right: 40},
		Tags:             []string{"hero", "overlay", "1-foto", "historia"},
		Slides: map[CanvasFormat][]Slide{
			FormatSquare:   {heroOverlaySlide(1080, 0)},
			FormatPortrait: {heroOverlaySlide(1350, 0)},
			// Stories keep 250px clear at the top and bottom for the platform UI.
			FormatStory: {heroOverlaySlide(1920, 250)},
		},
	}
}

// heroOverlaySlide anchors the data block to the bottom of the canvas, inset
// by reserve pixels.
func heroOverlaySlide(canvasHeight, reserve int) Slide {
	bottom := canvasHeight - reserve
	gradientTop := canvasHeight * 2 / 5

	return Slide{
		ID:              "main",
		BackgroundColor: "#000000",
		Layers: []Layer{
			ImageLayer{ID: "main-image", ImageIndex: 0, Rect: rect(0, 0, 1080, canvasHeight), Fit: FitCover, ZIndex: 0},
			ShapeLayer{
				ID:    "gradient",
				Shape: ShapeGradient,
				Rect:  rect(0, gradientTop, 1080, canvasHeight-gradientTop),
				Gradient: &Gradient{
					Type:      "linear",
					Direction: ToBottom,
					Stops: []GradientStop{
						{Offset: 0, Color: "#000000", Opacity: 0},
						{Offset: 0.4, Color: "#000000", Opacity: 0.55},
						{Offset: 1, Color: "#000000", Opacity: 0.9},
					},
				},
				ZIndex: 1,
			},
			ShapeLayer{ID: "badge-bg", Shape: ShapeRect, Rect: rect(60, reserve+60, 200, 48), Fill: BrandPrimary, BorderRadius: 8, ZIndex: 2},
			TextLayer{
				ID: LayerOperationText, Field: FieldCustom, Rect: rect(60, reserve+60, 200, 48), DefaultText: "EN VENTA",
				Style: TextStyle{
					FontFamily: "Inter", Color: "#FFFFFF", FontSize: 22, FontWeight: WeightBold,
					TextAlign: AlignCenter, TextTransform: TransformUppercase, LetterSpacing: 2,
				},
				ZIndex: 3,
			},
			LogoLayer{ID: "logo", Rect: rect(840, reserve+40, 180, 90), Fit: FitContain, ZIndex: 2},
			TextLayer{
				ID: "title", Field: FieldTitle, Rect: rect(60, bottom-330, 960, 55),
				Style: TextStyle{
					FontFamily: "Inter", Color: "#FFFFFF", FontSize: 44, FontWeight: WeightBold,
					TextAlign: AlignLeft, LineHeight: 1.1, MaxLines: 1,
				},
				ZIndex: 2,
			},
			TextLayer{
				ID: "price", Field: FieldPrice, Rect: rect(60, bottom-265, 960, 70),
				Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 58, FontWeight: WeightBlack, TextAlign: AlignLeft},
				ZIndex: 2,
			},
			ShapeLayer{ID: "divider", Shape: ShapeRect, Rect: rect(60, bottom-180, 80, 4), Fill: BrandSecondary, BorderRadius: 2, ZIndex: 2},
			TextLayer{
				ID: "location", Field: FieldLocation, Rect: rect(60, bottom-160, 960, 40),
				Style:  TextStyle{FontFamily: "Inter", Color: "#DDDDDD", FontSize: 28, FontWeight: WeightNormal, TextAlign: AlignLeft, MaxLines: 1},
				ZIndex: 2,
			},
			TextLayer{
				ID: "features", Field: FieldFeatures, Rect: rect(60, bottom-115, 960, 35),
				Style:  TextStyle{FontFamily: "Inter", Color: "#BBBBBB", FontSize: 24, FontWeight: WeightNormal, TextAlign: AlignLeft, MaxLines: 1},
				ZIndex: 2,
			},
			TextLayer{
				ID: "cta", Field: FieldCTA, Rect: rect(60, bottom-70, 960, 35),
				Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 22, FontWeight: WeightBold, TextAlign: AlignLeft},
				ZIndex: 2,
			},
		},
	}
}
