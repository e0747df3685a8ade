//nolint:revive // types is a standard Go package name pattern
package types

// Template describes a visual resume template from the catalog.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	ATSScore    int            `json:"atsScore"`
	Layout      string         `json:"layout"`
	Colors      TemplateColors `json:"colors"`
	Fonts       TemplateFonts  `json:"fonts"`
	Styles      TemplateStyles `json:"styles"`
}

// TemplateColors is a template's palette as CSS color values.
type TemplateColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Background string `json:"background"`
	Sidebar    string `json:"sidebar"`
}

// TemplateFonts holds CSS font-family stacks.
type TemplateFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// TemplateStyles controls header, divider and bullet rendering.
type TemplateStyles struct {
	HeaderStyle    string `json:"headerStyle"`
	SectionDivider string `json:"sectionDivider"`
	BulletStyle    string `json:"bulletStyle"`
	FontSize       string `json:"fontSize,omitempty"`
	ShowLogos      bool   `json:"showLogos,omitempty"`
}

// TemplateCategory is a filter group shown above the template gallery.
type TemplateCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
