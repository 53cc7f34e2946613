package layout

import (
	"math"
	"testing"
	"time"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/models"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/schedule"
)

func composeSession(day, startHour, startMin, endHour, endMin int) models.Session {
	return models.Session{
		Date:          time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC),
		Start:         time.Date(2025, time.September, day, startHour, startMin, 0, 0, time.UTC),
		End:           time.Date(2025, time.September, day, endHour, endMin, 0, 0, time.UTC),
		CourseSection: "MATH 101 01",
		Instructor:    "Smith",
		Color:         "#4E79A7",
		LaneCount:     1,
	}
}

// noBounds are the sentinel user bounds that leave the window to the data.
const (
	noMin = 24
	noMax = 0
)

func TestComposeAutoBounds(t *testing.T) {
	sessions := []models.Session{composeSession(1, 9, 0, 10, 30)}
	scene := Compose(sessions, "", DefaultConfig(), noMin, noMax)

	// 9:00 minus slack floors to 8; 10:30 plus slack ceils to 11.
	if scene.MinHour != 8 || scene.MaxHour != 11 {
		t.Errorf("Window = [%d,%d], expected [8,11]", scene.MinHour, scene.MaxHour)
	}
	if len(scene.Gridlines) != 4 {
		t.Errorf("Expected 4 gridlines, got %d", len(scene.Gridlines))
	}
	if scene.Gridlines[0].Label != "8 AM" {
		t.Errorf("First gridline label = %q, expected \"8 AM\"", scene.Gridlines[0].Label)
	}
}

func TestComposeUserBoundsOnlyWiden(t *testing.T) {
	sessions := []models.Session{composeSession(1, 9, 0, 10, 30)}

	// Settings narrower than the data are ignored.
	narrow := Compose(sessions, "", DefaultConfig(), 10, 9)
	if narrow.MinHour != 8 || narrow.MaxHour != 11 {
		t.Errorf("Narrow settings changed window to [%d,%d]", narrow.MinHour, narrow.MaxHour)
	}

	wide := Compose(sessions, "", DefaultConfig(), 6, 22)
	if wide.MinHour != 6 || wide.MaxHour != 22 {
		t.Errorf("Wide settings gave [%d,%d], expected [6,22]", wide.MinHour, wide.MaxHour)
	}
}

func TestComposeOverlapSplitsColumnWidth(t *testing.T) {
	cfg := DefaultConfig()
	sessions := []models.Session{
		composeSession(1, 9, 0, 11, 0),
		composeSession(1, 10, 0, 12, 0),
	}
	schedule.PackLanes(sessions)
	scene := Compose(sessions, "", cfg, noMin, noMax)

	if len(scene.Columns) != 1 {
		t.Fatalf("Expected 1 column, got %d", len(scene.Columns))
	}
	blocks := scene.Columns[0].Blocks
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}

	half := cfg.ColumnWidth/2 - 2*cfg.BlockPadding
	for i, b := range blocks {
		if math.Abs(b.Width-half) > 0.01 {
			t.Errorf("Block %d width = %v, expected %v", i, b.Width, half)
		}
	}
	if blocks[0].X >= blocks[1].X {
		t.Errorf("Lane blocks not side by side: x0=%v x1=%v", blocks[0].X, blocks[1].X)
	}
}

func TestComposeDisjointKeepFullWidth(t *testing.T) {
	cfg := DefaultConfig()
	sessions := []models.Session{
		composeSession(1, 9, 0, 9, 50),
		composeSession(1, 10, 0, 10, 50),
	}
	schedule.PackLanes(sessions)
	scene := Compose(sessions, "", cfg, noMin, noMax)

	full := cfg.ColumnWidth - 2*cfg.BlockPadding
	for i, b := range scene.Columns[0].Blocks {
		if math.Abs(b.Width-full) > 0.01 {
			t.Errorf("Block %d width = %v, expected full %v", i, b.Width, full)
		}
	}
}

func TestComposeColumnsPerDate(t *testing.T) {
	cfg := DefaultConfig()
	sessions := []models.Session{
		composeSession(1, 9, 0, 10, 0),
		composeSession(2, 9, 0, 10, 0),
	}
	scene := Compose(sessions, "", cfg, noMin, noMax)

	if len(scene.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(scene.Columns))
	}
	if dx := scene.Columns[1].X - scene.Columns[0].X; math.Abs(dx-cfg.ColumnWidth) > 0.01 {
		t.Errorf("Column spacing = %v, expected %v", dx, cfg.ColumnWidth)
	}
}

func TestComposeBlockGeometry(t *testing.T) {
	cfg := DefaultConfig()
	sessions := []models.Session{composeSession(1, 9, 0, 10, 30)}
	scene := Compose(sessions, "", cfg, noMin, noMax)

	b := scene.Columns[0].Blocks[0]
	// Window starts at 8, so a 9:00 start sits one hour below the header.
	wantY := cfg.HeaderHeight + cfg.HourHeight
	if math.Abs(b.Y-wantY) > 0.01 {
		t.Errorf("Block y = %v, expected %v", b.Y, wantY)
	}
	wantH := 1.5 * cfg.HourHeight
	if math.Abs(b.Height-wantH) > 0.01 {
		t.Errorf("Block height = %v, expected %v", b.Height, wantH)
	}
	if len(b.Lines) != 3 || b.Lines[2] != "9:00 AM - 10:30 AM" {
		t.Errorf("Block lines = %v", b.Lines)
	}
}

func TestComposeEmptySessions(t *testing.T) {
	scene := Compose(nil, "THOM 107AC", DefaultConfig(), noMin, noMax)
	if len(scene.Columns) != 0 {
		t.Errorf("Empty input produced %d columns", len(scene.Columns))
	}
	if scene.MinHour != 8 || scene.MaxHour != 18 {
		t.Errorf("Empty window = [%d,%d], expected business hours", scene.MinHour, scene.MaxHour)
	}
	if scene.Room != "THOM 107AC" {
		t.Errorf("Room = %q", scene.Room)
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12 AM"}, {8, "8 AM"}, {12, "12 PM"}, {13, "1 PM"}, {24, "12 AM"},
	}
	for _, tt := range tests {
		if got := hourLabel(tt.hour); got != tt.want {
			t.Errorf("hourLabel(%d) = %q, expected %q", tt.hour, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}

	bad := DefaultConfig()
	bad.Palette = nil
	if err := bad.Validate(); err == nil {
		t.Error("Empty palette passed validation")
	}

	bad = DefaultConfig()
	bad.HourHeight = 0
	if err := bad.Validate(); err == nil {
		t.Error("Zero hour height passed validation")
	}
}

// DefaultConfig hands out copies: mutating one must not leak into the next.
func TestDefaultConfigIsolated(t *testing.T) {
	a := DefaultConfig()
	a.Palette[0] = "#000000"
	b := DefaultConfig()
	if b.Palette[0] == "#000000" {
		t.Error("Palette mutation leaked into a fresh default config")
	}
}
