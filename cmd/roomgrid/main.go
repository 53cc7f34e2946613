// Package main provides the CLI entry point for roomgrid.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/layout"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/parser"
	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/render"
)

var (
	room       string
	outputPath string
	format     string
	minHour    int
	maxHour    int
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roomgrid [input.xlsx]",
		Short: "Render a room-occupancy timetable from a course schedule spreadsheet",
		Long: `roomgrid expands course-section scheduling rows (date ranges, weekday
patterns, meeting times) into per-date session blocks and renders them as an
SVG or PNG timetable for a selected room.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.Flags().StringVarP(&room, "room", "r", "", "Room to render (default: all rooms)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: derived from room)")
	rootCmd.Flags().StringVar(&format, "format", "svg", "Output format: svg, png")
	rootCmd.Flags().IntVar(&minHour, "min-hour", -1, "Earliest visible hour (0-23); can only widen the auto window")
	rootCmd.Flags().IntVar(&maxHour, "max-hour", -1, "Latest visible hour (1-24); can only widen the auto window")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML render config path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(roomsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	// An explicit output extension wins over --format.
	if outputPath != "" {
		if ext := strings.TrimPrefix(filepath.Ext(outputPath), "."); ext == "svg" || ext == "png" {
			format = ext
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("invalid format: %s (must be svg or png)", format)
	}

	cfg := layout.DefaultConfig()
	if configPath != "" {
		c, err := layout.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading render config: %w", err)
		}
		cfg = c
	}

	opts := roomgrid.Options{Room: room, Config: &cfg}
	if minHour >= 0 {
		opts.MinHour = &minHour
	}
	if maxHour >= 0 {
		opts.MaxHour = &maxHour
	}

	scene, err := roomgrid.Generate(inputPath, opts)
	if errors.Is(err, roomgrid.ErrNoRecords) {
		return fmt.Errorf("no usable scheduling rows in %s", inputPath)
	}
	if err != nil {
		return err
	}
	if len(scene.Columns) == 0 {
		log.Warn().Str("room", room).Msg("no sessions matched; rendering an empty timetable")
	}

	if outputPath == "" {
		outputPath = defaultOutputName(room, format)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	defer f.Close()

	if format == "png" {
		if err := render.WritePNG(f, *scene); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	} else {
		render.WriteSVG(f, *scene)
	}

	log.Info().Str("output", outputPath).Int("columns", len(scene.Columns)).Msg("wrote timetable")
	return nil
}

// roomsCmd lists the distinct room values found in a workbook, so a user
// can discover what to pass to --room.
func roomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rooms [input.xlsx]",
		Short: "List the distinct rooms found in a schedule spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := parser.ReadWorkbook(args[0])
			if err != nil {
				return err
			}
			seen := make(map[string]struct{})
			var rooms []string
			for _, rec := range records {
				r := strings.TrimSpace(rec.Room)
				if r == "" {
					continue
				}
				key := strings.ToUpper(r)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				rooms = append(rooms, r)
			}
			sort.Strings(rooms)
			for _, r := range rooms {
				fmt.Println(r)
			}
			return nil
		},
	}
}

// defaultOutputName derives the output file name from the selected room,
// e.g. "THOM 107AC" becomes "THOM_107AC.svg".
func defaultOutputName(room, format string) string {
	name := strings.TrimSpace(room)
	if name == "" {
		name = "timetable"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	return name + "." + format
}
