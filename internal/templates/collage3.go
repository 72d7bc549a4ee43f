package templates

// collage3: one large photo on the left, two stacked on the right, data bar
// underneath.
func collage3() *Definition {
	slide := func(gridHeight, canvasHeight int) Slide {
		half := (gridHeight - 8) / 2
		barTop := gridHeight + 40
		return Slide{
			ID:              "main",
			BackgroundColor: "#FFFFFF",
			Layers: []Layer{
				ImageLayer{ID: "img-main", ImageIndex: 0, Rect: rect(20, 20, 640, gridHeight), Fit: FitCover, BorderRadius: 12, ZIndex: 1},
				ImageLayer{ID: "img-top", ImageIndex: 1, Rect: rect(668, 20, 392, half), Fit: FitCover, BorderRadius: 12, ZIndex: 1},
				ImageLayer{ID: "img-bottom", ImageIndex: 2, Rect: rect(668, 28+half, 392, half), Fit: FitCover, BorderRadius: 12, ZIndex: 1},
				ShapeLayer{ID: "bottom-bar", Shape: ShapeRect, Rect: rect(0, gridHeight+20, 1080, canvasHeight-gridHeight-20), Fill: BrandPrimary, ZIndex: 2},
				TextLayer{
					ID: "title", Field: FieldTitle, Rect: rect(60, barTop, 960, 50),
					Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 36, FontWeight: WeightBold, TextAlign: AlignLeft, MaxLines: 1},
					ZIndex: 3,
				},
				TextLayer{
					ID: "price", Field: FieldPrice, Rect: rect(60, barTop+60, 560, 55),
					Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 44, FontWeight: WeightBlack, TextAlign: AlignLeft},
					ZIndex: 3,
				},
				TextLayer{
					ID: "location", Field: FieldLocation, Rect: rect(60, barTop+120, 560, 35),
					Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 24, FontWeight: WeightNormal, TextAlign: AlignLeft},
					ZIndex: 3,
				},
				TextLayer{
					ID: "features", Field: FieldFeatures, Rect: rect(60, barTop+165, 640, 35),
					Style:  TextStyle{FontFamily: "Inter", Color: "#CCCCCC", FontSize: 22, FontWeight: WeightNormal, TextAlign: AlignLeft, MaxLines: 1},
					ZIndex: 3,
				},
				LogoLayer{ID: "logo", Rect: rect(860, barTop+70, 160, 80), Fit: FitContain, ZIndex: 3},
				TextLayer{
					ID: "cta", Field: FieldCTA, Rect: rect(60, barTop+215, 600, 35),
					Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 20, FontWeight: WeightBold, TextAlign: AlignLeft},
					ZIndex: 3,
				},
			},
		}
	}

	return &Definition{
		ID:               "collage-3",
		Version:          "1.0.0",
		Name:             "Collage 3 Fotos",
		Description:      "1 foto grande + 2 chicas con datos abajo",
		Category:         CategoryCollage,
		ImageCount:       3,
		SupportedFormats: []CanvasFormat{FormatSquare, FormatPortrait},
		SafeArea:         SafeArea{Top: 40, Bottom: 40, Left: 40, Right: 40},
		Tags:             []string{"collage", "3-fotos", "mosaico"},
		Slides: map[CanvasFormat][]Slide{
			FormatSquare:   {slide(700, 1080)},
			FormatPortrait: {slide(900, 1350)},
			FormatStory:    {},
		},
	}
}
