package templates

// heroMinimal: one photo with a side data panel (square) or a framed photo
// over a brand background (portrait).
func heroMinimal() *Definition {
	return &Definition{
		ID:               "hero-minimal",
		Version:          "1.0.0",
		Name:             "Hero Minimal",
		Description:      "1 foto con panel lateral de datos, estilo premium",
		Category:         CategoryHero,
		ImageCount:       1,
		SupportedFormats: []CanvasFormat{FormatSquare, FormatPortrait},
		SafeArea:         SafeArea{Top: 40, Bottom: 40, Left: 40, Right: 40},
		Tags:             []string{"hero", "minimal", "premium", "1-foto"},
		Slides: map[CanvasFormat][]Slide{
			FormatSquare: {{
				ID:              "main",
				BackgroundColor: "#FFFFFF",
				Layers: []Layer{
					ImageLayer{ID: "main-image", ImageIndex: 0, Rect: rect(0, 0, 700, 1080), Fit: FitCover, ZIndex: 0},
					ShapeLayer{ID: "right-panel", Shape: ShapeRect, Rect: rect(700, 0, 380, 1080), Fill: BrandPrimary, ZIndex: 1},
					ShapeLayer{ID: "badge-bg", Shape: ShapeRect, Rect: rect(730, 60, 180, 44), Fill: BrandSecondary, BorderRadius: 6, Opacity: opacity(0.2), ZIndex: 2},
					TextLayer{
						ID: LayerOperationText, Field: FieldCustom, Rect: rect(730, 60, 180, 44), DefaultText: "EN VENTA",
						Style: TextStyle{
							FontFamily: "Inter", Color: BrandSecondary, FontSize: 18, FontWeight: WeightBold,
							TextAlign: AlignCenter, TextTransform: TransformUppercase, LetterSpacing: 3,
						},
						ZIndex: 3,
					},
					TextLayer{
						ID: "title", Field: FieldTitle, Rect: rect(730, 150, 320, 90),
						Style: TextStyle{
							FontFamily: "Inter", Color: "#FFFFFF", FontSize: 32, FontWeight: WeightBold,
							TextAlign: AlignLeft, LineHeight: 1.2, MaxLines: 3,
						},
						ZIndex: 2,
					},
					TextLayer{
						ID: "price", Field: FieldPrice, Rect: rect(730, 280, 320, 55),
						Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 40, FontWeight: WeightBlack, TextAlign: AlignLeft},
						ZIndex: 2,
					},
					ShapeLayer{ID: "divider", Shape: ShapeRect, Rect: rect(730, 360, 60, 4), Fill: BrandSecondary, BorderRadius: 2, ZIndex: 2},
					TextLayer{
						ID: "location", Field: FieldLocation, Rect: rect(730, 390, 320, 35),
						Style:  TextStyle{FontFamily: "Inter", Color: "#CCCCCC", FontSize: 22, FontWeight: WeightNormal, TextAlign: AlignLeft},
						ZIndex: 2,
					},
					TextLayer{
						ID: "features", Field: FieldFeatures, Rect: rect(730, 440, 320, 120),
						Style: TextStyle{
							FontFamily: "Inter", Color: "#AAAAAA", FontSize: 20, FontWeight: WeightNormal,
							TextAlign: AlignLeft, LineHeight: 1.6, MaxLines: 4,
						},
						ZIndex: 2,
					},
					LogoLayer{ID: "logo", Rect: rect(730, 880, 180, 80), Fit: FitContain, ZIndex: 2},
					TextLayer{
						ID: "cta", Field: FieldCTA, Rect: rect(730, 980, 320, 35),
						Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 18, FontWeight: WeightBold, TextAlign: AlignLeft},
						ZIndex: 2,
					},
				},
			}},
			FormatPortrait: {{
				ID:              "main",
				BackgroundColor: BrandPrimary,
				Layers: []Layer{
					ImageLayer{ID: "main-image", ImageIndex: 0, Rect: rect(30, 30, 1020, 850), Fit: FitCover, BorderRadius: 16, ZIndex: 1},
					ShapeLayer{ID: "badge-bg", Shape: ShapeRect, Rect: rect(60, 50, 180, 44), Fill: BrandPrimary, BorderRadius: 6, ZIndex: 2},
					TextLayer{
						ID: LayerOperationText, Field: FieldCustom, Rect: rect(60, 50, 180, 44), DefaultText: "EN VENTA",
						Style: TextStyle{
							FontFamily: "Inter", Color: "#FFFFFF", FontSize: 18, FontWeight: WeightBold,
							TextAlign: AlignCenter, TextTransform: TransformUppercase, LetterSpacing: 3,
						},
						ZIndex: 3,
					},
					TextLayer{
						ID: "title", Field: FieldTitle, Rect: rect(60, 920, 960, 50),
						Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 36, FontWeight: WeightBold, TextAlign: AlignLeft, MaxLines: 1},
						ZIndex: 2,
					},
					TextLayer{
						ID: "price", Field: FieldPrice, Rect: rect(60, 980, 500, 55),
						Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 46, FontWeight: WeightBlack, TextAlign: AlignLeft},
						ZIndex: 2,
					},
					ShapeLayer{ID: "divider", Shape: ShapeRect, Rect: rect(60, 1055, 60, 4), Fill: BrandSecondary, BorderRadius: 2, ZIndex: 2},
					TextLayer{
						ID: "location", Field: FieldLocation, Rect: rect(60, 1080, 500, 35),
						Style:  TextStyle{FontFamily: "Inter", Color: "#CCCCCC", FontSize: 24, FontWeight: WeightNormal, TextAlign: AlignLeft},
						ZIndex: 2,
					},
					TextLayer{
						ID: "features", Field: FieldFeatures, Rect: rect(60, 1125, 600, 35),
						Style:  TextStyle{FontFamily: "Inter", Color: "#AAAAAA", FontSize: 22, FontWeight: WeightNormal, TextAlign: AlignLeft, MaxLines: 1},
						ZIndex: 2,
					},
					LogoLayer{ID: "logo", Rect: rect(860, 1050, 160, 80), Fit: FitContain, ZIndex: 2},
					TextLayer{
						ID: "cta", Field: FieldCTA, Rect: rect(60, 1190, 500, 35),
						Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 22, FontWeight: WeightBold, TextAlign: AlignLeft},
						ZIndex: 2,
					},
				},
			}},
			FormatStory: {},
		},
	}
}
