package schedule

import "github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"

// Palette is the default instructor palette: twelve visually distinct hex
// colors. Once the distinct-instructor count exceeds the palette length,
// colors wrap around and are shared.
var Palette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2",
	"#59A14F", "#EDC948", "#B07AA1", "#FF9DA7",
	"#9C755F", "#86BCB6", "#D37295", "#BAB0AC",
}

// AssignColors maps each distinct name, in first-seen order, to
// palette[i mod len(palette)]. The same name sequence always produces the
// same mapping. A nil or empty palette falls back to the default.
func AssignColors(names []string, palette []string) map[string]string {
	if len(palette) == 0 {
		palette = Palette
	}
	colors := make(map[string]string)
	for _, name := range names {
		if _, ok := colors[name]; !ok {
			colors[name] = palette[len(colors)%len(palette)]
		}
	}
	return colors
}

// InstructorOrder returns the distinct instructor names across the sessions
// in first-seen order.
func InstructorOrder(sessions []models.Session) []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range sessions {
		if !seen[s.Instructor] {
			seen[s.Instructor] = true
			names = append(names, s.Instructor)
		}
	}
	return names
}

// Colorize stamps each session with its instructor's assigned color.
func Colorize(sessions []models.Session, colors map[string]string) {
	for i := range sessions {
		sessions[i].Color = colors[sessions[i].Instructor]
	}
}
