package compose

import "github.com/lvillar/proposal/content"

// Logical font families. The renderer maps them to TrueType files when they
// are available and to the Helvetica core font otherwise.
const (
	FamilySans       = "MicrosoftSansSerif"
	FamilyRoboto     = "Roboto"
	FamilyRobotoBold = "Roboto-Bold"
	FamilyHelvetica  = "Helvetica"
)

// Inch is one inch in points.
const Inch = 72.0

// Brand colors.
var (
	Red   = content.Hex("#C00000")
	Navy  = content.Hex("#002060")
	Slate = content.Hex("#555555")
	Grey  = content.Hex("#808080")
)

// Stylesheet holds every paragraph style the proposal uses.
type Stylesheet struct {
	Title         content.ParagraphStyle
	Heading1      content.ParagraphStyle
	Heading2      content.ParagraphStyle
	Body          content.ParagraphStyle
	Strong        content.ParagraphStyle
	Small         content.ParagraphStyle
	Note          content.ParagraphStyle
	SectionHeader content.ParagraphStyle
	Tagline       content.ParagraphStyle
	Company       content.ParagraphStyle
	TierHead      content.ParagraphStyle
	TierHeadRight content.ParagraphStyle
}

// DefaultStylesheet returns the house style.
func DefaultStylesheet() Stylesheet {
	body := content.ParagraphStyle{
		Name:    "Body",
		Font:    content.FontSpec{Family: FamilySans, Size: 10},
		Leading: 12,
		Color:   Slate,
		Align:   content.AlignJustify,
	}
	small := content.ParagraphStyle{
		Name:    "Small",
		Font:    content.FontSpec{Family: FamilySans, Size: 10},
		Leading: 12,
		Color:   content.Black,
	}
	tierHead := content.ParagraphStyle{
		Name:    "TierHead",
		Font:    content.FontSpec{Family: FamilyHelvetica, Size: 9},
		Leading: 11,
		Color:   content.Black,
	}
	tierHeadRight := tierHead
	tierHeadRight.Name = "TierHeadRight"
	tierHeadRight.Align = content.AlignRight

	return Stylesheet{
		Title: content.ParagraphStyle{
			Name:       "Title",
			Font:       content.FontSpec{Family: FamilyRobotoBold, Size: 20},
			Leading:    24,
			Color:      Red,
			Align:      content.AlignCenter,
			SpaceAfter: 20,
		},
		Heading1: content.ParagraphStyle{
			Name:        "Heading1",
			Font:        content.FontSpec{Family: FamilyRobotoBold, Size: 12},
			Leading:     14.4,
			Color:       Red,
			SpaceBefore: 12,
			SpaceAfter:  10,
		},
		Heading2: content.ParagraphStyle{
			Name:        "Heading2",
			Font:        content.FontSpec{Family: FamilyRobotoBold, Size: 10},
			Leading:     12,
			Color:       Red,
			SpaceBefore: 10,
			SpaceAfter:  8,
		},
		Body: body,
		Strong: content.ParagraphStyle{
			Name:    "Strong",
			Font:    content.FontSpec{Family: FamilyRobotoBold, Size: 10},
			Leading: 12,
			Color:   content.Black,
			Align:   content.AlignJustify,
		},
		Small: small,
		Note: content.ParagraphStyle{
			Name:        "Note",
			Font:        content.FontSpec{Family: FamilySans, Size: 8},
			Leading:     9,
			Color:       Slate,
			SpaceBefore: 6,
			SpaceAfter:  6,
		},
		SectionHeader: content.ParagraphStyle{
			Name:    "SectionHeader",
			Font:    content.FontSpec{Family: FamilySans, Size: 10},
			Leading: 12,
			Color:   content.Black,
		},
		Tagline: content.ParagraphStyle{
			Name:    "Tagline",
			Font:    content.FontSpec{Family: FamilyHelvetica, Size: 10},
			Leading: 12,
			Color:   Grey,
			Align:   content.AlignCenter,
		},
		Company: content.ParagraphStyle{
			Name:    "Company",
			Font:    content.FontSpec{Family: FamilyHelvetica, Style: "B", Size: 18},
			Leading: 22,
			Color:   Navy,
			Align:   content.AlignCenter,
		},
		TierHead:      tierHead,
		TierHeadRight: tierHeadRight,
	}
}
