package templates

// collage2: two photos side by side over a brand colored data bar.
func collage2() *Definition {
	return &Definition{
		ID:               "collage-2",
		Version:          "1.0.0",
		Name:             "Collage 2 Fotos",
		Description:      "2 fotos lado a lado con datos abajo",
		Category:         CategoryCollage,
		ImageCount:       2,
		SupportedFormats: []CanvasFormat{FormatSquare, FormatPortrait},
		SafeArea:         SafeArea{Top: 40, Bottom: 40, Left: 40, Right: 40},
		Tags:             []string{"collage", "2-fotos", "dual"},
		Slides: map[CanvasFormat][]Slide{
			FormatSquare: {{
				ID:              "main",
				BackgroundColor: "#FFFFFF",
				Layers: []Layer{
					ImageLayer{ID: "img-left", ImageIndex: 0, Rect: rect(20, 20, 518, 680), Fit: FitCover, BorderRadius: 12, ZIndex: 1},
					ImageLayer{ID: "img-right", ImageIndex: 1, Rect: rect(542, 20, 518, 680), Fit: FitCover, BorderRadius: 12, ZIndex: 1},
					ShapeLayer{ID: "bottom-bar", Shape: ShapeRect, Rect: rect(0, 720, 1080, 360), Fill: BrandPrimary, ZIndex: 2},
					TextLayer{
						ID: "title", Field: FieldTitle, Rect: rect(60, 750, 960, 50),
						Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 36, FontWeight: WeightBold, TextAlign: AlignLeft, MaxLines: 1},
						ZIndex: 3,
					},
					TextLayer{
						ID: "price", Field: FieldPrice, Rect: rect(60, 810, 500, 55),
						Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 44, FontWeight: WeightBlack, TextAlign: AlignLeft},
						ZIndex: 3,
					},
					TextLayer{
						ID: "location", Field: FieldLocation, Rect: rect(60, 870, 500, 35),
						Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 24, FontWeight: WeightNormal, TextAlign: AlignLeft},
						ZIndex: 3,
					},
					TextLayer{
						ID: "features", Field: FieldFeatures, Rect: rect(60, 915, 600, 35),
						Style:  TextStyle{FontFamily: "Inter", Color: "#CCCCCC", FontSize: 22, FontWeight: WeightNormal, TextAlign: AlignLeft, MaxLines: 1},
						ZIndex: 3,
					},
					LogoLayer{ID: "logo", Rect: rect(860, 820, 160, 80), Fit: FitContain, ZIndex: 3},
					TextLayer{
						ID: "cta", Field: FieldCTA, Rect: rect(60, 970, 600, 35),
						Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 20, FontWeight: WeightBold, TextAlign: AlignLeft},
						ZIndex: 3,
					},
				},
			}},
			FormatPortrait: {{
				ID:              "main",
				BackgroundColor: "#FFFFFF",
				Layers: []Layer{
					ImageLayer{ID: "img-left", ImageIndex: 0, Rect: rect(20, 20, 518, 880), Fit: FitCover, BorderRadius: 12, ZIndex: 1},
					ImageLayer{ID: "img-right", ImageIndex: 1, Rect: rect(542, 20, 518, 880), Fit: FitCover, BorderRadius: 12, ZIndex: 1},
					ShapeLayer{ID: "bottom-bar", Shape: ShapeRect, Rect: rect(0, 920, 1080, 430), Fill: BrandPrimary, ZIndex: 2},
					TextLayer{
						ID: "title", Field: FieldTitle, Rect: rect(60, 950, 960, 55),
						Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 38, FontWeight: WeightBold, TextAlign: AlignLeft, MaxLines: 1},
						ZIndex: 3,
					},
					TextLayer{
						ID: "price", Field: FieldPrice, Rect: rect(60, 1015, 500, 60),
						Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 48, FontWeight: WeightBlack, TextAlign: AlignLeft},
						ZIndex: 3,
					},
					TextLayer{
						ID: "location", Field: FieldLocation, Rect: rect(60, 1085, 500, 40),
						Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 26, FontWeight: WeightNormal, TextAlign: AlignLeft},
						ZIndex: 3,
					},
					TextLayer{
						ID: "features", Field: FieldFeatures, Rect: rect(60, 1135, 600, 40),
						Style:  TextStyle{FontFamily: "Inter", Color: "#CCCCCC", FontSize: 24, FontWeight: WeightNormal, TextAlign: AlignLeft, MaxLines: 1},
						ZIndex: 3,
					},
					LogoLayer{ID: "logo", Rect: rect(860, 1060, 160, 80), Fit: FitContain, ZIndex: 3},
					TextLayer{
						ID: "cta", Field: FieldCTA, Rect: rect(60, 1200, 600, 40),
						Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 22, FontWeight: WeightBold, TextAlign: AlignLeft},
						ZIndex: 3,
					},
				},
			}},
			FormatStory: {},
		},
	}
}
