package templates

// collage4: a 2x2 photo grid. The square format floats a data card over the
// center; the portrait format puts the data in a bar under the grid.
func collage4() *Definition {
	grid := func() []Layer {
		return []Layer{
			ImageLayer{ID: "img-tl", ImageIndex: 0, Rect: rect(8, 8, 528, 528), Fit: FitCover, BorderRadius: 8, ZIndex: 1},
			ImageLayer{ID: "img-tr", ImageIndex: 1, Rect: rect(544, 8, 528, 528), Fit: FitCover, BorderRadius: 8, ZIndex: 1},
			ImageLayer{ID: "img-bl", ImageIndex: 2, Rect: rect(8, 544, 528, 528), Fit: FitCover, BorderRadius: 8, ZIndex: 1},
			ImageLayer{ID: "img-br", ImageIndex: 3, Rect: rect(544, 544, 528, 528), Fit: FitCover, BorderRadius: 8, ZIndex: 1},
		}
	}

	square := append(grid(),
		ShapeLayer{ID: "center-card", Shape: ShapeRect, Rect: rect(190, 320, 700, 440), Fill: BrandPrimary, Opacity: opacity(0.92), BorderRadius: 16, ZIndex: 5},
		TextLayer{
			ID: "title", Field: FieldTitle, Rect: rect(230, 355, 620, 50),
			Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 34, FontWeight: WeightBold, TextAlign: AlignCenter, MaxLines: 1},
			ZIndex: 6,
		},
		ShapeLayer{ID: "divider", Shape: ShapeRect, Rect: rect(340, 415, 400, 3), Fill: BrandSecondary, BorderRadius: 2, ZIndex: 6},
		TextLayer{
			ID: "price", Field: FieldPrice, Rect: rect(230, 435, 620, 60),
			Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 48, FontWeight: WeightBlack, TextAlign: AlignCenter},
			ZIndex: 6,
		},
		TextLayer{
			ID: "location", Field: FieldLocation, Rect: rect(230, 505, 620, 35),
			Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 26, FontWeight: WeightNormal, TextAlign: AlignCenter},
			ZIndex: 6,
		},
		TextLayer{
			ID: "features", Field: FieldFeatures, Rect: rect(230, 550, 620, 35),
			Style:  TextStyle{FontFamily: "Inter", Color: "#BBBBBB", FontSize: 22, FontWeight: WeightNormal, TextAlign: AlignCenter, MaxLines: 1},
			ZIndex: 6,
		},
		LogoLayer{ID: "logo", Rect: rect(440, 600, 200, 70), Fit: FitContain, ZIndex: 6},
		TextLayer{
			ID: "cta", Field: FieldCTA, Rect: rect(230, 685, 620, 35),
			Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 20, FontWeight: WeightBold, TextAlign: AlignCenter},
			ZIndex: 6,
		},
	)

	portrait := append(grid(),
		ShapeLayer{ID: "bottom-section", Shape: ShapeRect, Rect: rect(0, 1080, 1080, 270), Fill: BrandPrimary, ZIndex: 2},
		TextLayer{
			ID: "title", Field: FieldTitle, Rect: rect(60, 1100, 960, 45),
			Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 36, FontWeight: WeightBold, TextAlign: AlignLeft, MaxLines: 1},
			ZIndex: 3,
		},
		TextLayer{
			ID: "price", Field: FieldPrice, Rect: rect(60, 1155, 500, 55),
			Style:  TextStyle{FontFamily: "Inter", Color: "#FFFFFF", FontSize: 44, FontWeight: WeightBlack, TextAlign: AlignLeft},
			ZIndex: 3,
		},
		TextLayer{
			ID: "location", Field: FieldLocation, Rect: rect(60, 1215, 400, 35),
			Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 24, FontWeight: WeightNormal, TextAlign: AlignLeft},
			ZIndex: 3,
		},
		TextLayer{
			ID: "features", Field: FieldFeatures, Rect: rect(60, 1255, 600, 35),
			Style:  TextStyle{FontFamily: "Inter", Color: "#AAAAAA", FontSize: 22, FontWeight: WeightNormal, TextAlign: AlignLeft, MaxLines: 1},
			ZIndex: 3,
		},
		LogoLayer{ID: "logo", Rect: rect(860, 1185, 160, 70), Fit: FitContain, ZIndex: 3},
		TextLayer{
			ID: "cta", Field: FieldCTA, Rect: rect(60, 1300, 500, 30),
			Style:  TextStyle{FontFamily: "Inter", Color: BrandSecondary, FontSize: 20, FontWeight: WeightBold, TextAlign: AlignLeft},
			ZIndex: 3,
		},
	)

	return &Definition{
		ID:               "collage-4",
		Version:          "1.0.0",
		Name:             "Collage 4 Fotos",
		Description:      "Grid 2x2 con datos superpuestos en el centro",
		Category:         CategoryCollage,
		ImageCount:       4,
		SupportedFormats: []CanvasFormat{FormatSquare, FormatPortrait},
		SafeArea:         SafeArea{Top: 40, Bottom: 40, Left: 40, Right: 40},
		Tags:             []string{"collage", "4-fotos", "grid"},
		Slides: map[CanvasFormat][]Slide{
			FormatSquare:   {{ID: "main", BackgroundColor: "#111111", Layers: square}},
			FormatPortrait: {{ID: "main", BackgroundColor: "#111111", Layers: portrait}},
			FormatStory:    {},
		},
	}
}
