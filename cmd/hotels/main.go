// hotels loads hotel offers and traveler stays from comma-delimited files
// and prints reports over them as fixed-width tables or another format.
//
// Usage:
//
//	hotels [flags] <report>
//
// Reports: hotels, names, travelers, chosen, unchosen, most-nights, budget.
//
// Lines that fail to parse are logged to stderr and skipped. Defaults for
// the data directory, output format and logging come from HOTELS_*
// environment variables or a .env file in the working directory; flags
// override them.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/bjaus/fixtab"
	"github.com/bjaus/fixtab/hotels"
	"github.com/bjaus/fixtab/internal/config"
	"github.com/bjaus/fixtab/internal/logging"
)

var reports = []string{"hotels", "names", "travelers", "chosen", "unchosen", "most-nights", "budget"}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	hotelsPath    string
	travelersPath string
	format        string
	max           string
	title         string
	out           string
	logLevel      string
	logFormat     string
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	var opts options
	flagSet := pflag.NewFlagSet("hotels", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.hotelsPath, "hotels", cfg.HotelsPath(), "hotels file (name, room type, price per night)")
	flagSet.StringVar(&opts.travelersPath, "travelers", cfg.TravelersPath(), "travelers file (surname, name, hotel, room type, nights)")
	flagSet.StringVarP(&opts.format, "format", "f", cfg.Format, "output format: "+formatNames())
	flagSet.StringVar(&opts.max, "max", "", "spending limit for the budget report")
	flagSet.StringVar(&opts.title, "title", "", "table title (default: report name)")
	flagSet.StringVarP(&opts.out, "out", "o", "", "write the report to this file instead of stdout")
	flagSet.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flagSet.StringVar(&opts.logFormat, "log-format", cfg.LogFormat, "log format: text, json")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}

	rest := flagSet.Args()
	if len(rest) != 1 {
		printHelp(stderr, flagSet)
		return fmt.Errorf("expected exactly one report, got %d", len(rest))
	}
	report := rest[0]
	if !slices.Contains(reports, report) {
		return fmt.Errorf("unknown report %q (want one of %s)", report, strings.Join(reports, ", "))
	}

	format, err := fixtab.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	logger := logging.Setup(stderr, opts.logLevel, opts.logFormat)

	var limit decimal.Decimal
	if report == "budget" {
		if opts.max == "" {
			return fmt.Errorf("--max is required for the budget report")
		}
		if limit, err = decimal.NewFromString(opts.max); err != nil {
			return fmt.Errorf("invalid --max %q: %w", opts.max, err)
		}
	}

	title := opts.title
	if title == "" {
		title = reportTitle(report)
	}

	var buf bytes.Buffer
	if err := render(&buf, logger, report, format, title, opts, limit); err != nil {
		return err
	}

	if opts.out == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	logger.Info("report saved", "report", report, "path", opts.out)
	return nil
}

func render(w io.Writer, logger *slog.Logger, report string, format fixtab.Format, title string, opts options, limit decimal.Decimal) error {
	needHotels := report != "travelers" && report != "most-nights"
	needTravelers := report != "hotels" && report != "names"

	hotelList := &fixtab.List[hotels.Hotel]{}
	if needHotels {
		list, err := load(logger, opts.hotelsPath, hotels.DecodeHotel)
		if err != nil {
			return err
		}
		hotelList = list
	}
	travelerList := &fixtab.List[hotels.Traveler]{}
	if needTravelers {
		list, err := load(logger, opts.travelersPath, hotels.DecodeTraveler)
		if err != nil {
			return err
		}
		travelerList = list
	}

	switch report {
	case "hotels":
		return fixtab.Write(w, format, hotels.HotelsView(title), hotelList.All())
	case "names":
		return fixtab.Write(w, format, hotels.HotelNamesView(title), hotels.Names(hotelList.All()))
	case "travelers":
		return fixtab.Write(w, format, hotels.TravelersView(title), travelerList.All())
	case "chosen":
		chosen := hotels.ChosenHotels(hotelList.All(), travelerList.All())
		return fixtab.Write(w, format, hotels.HotelNamesView(title), hotels.Names(chosen.All()))
	case "unchosen":
		unchosen := hotels.UnchosenHotels(hotelList.All(), travelerList.All())
		return fixtab.Write(w, format, hotels.HotelNamesView(title), hotels.Names(unchosen.All()))
	case "most-nights":
		top := hotels.MostNights(travelerList.All())
		return fixtab.Write(w, format, hotels.FullNamesView(title), hotels.FullNames(top.All()))
	case "budget":
		expenses := hotels.TravelersWithinBudget(hotelList.All(), travelerList.All(), limit)
		return fixtab.Write(w, format, hotels.ExpensesView(title), expenses.All())
	default:
		return fmt.Errorf("unknown report %q (want one of %s)", report, strings.Join(reports, ", "))
	}
}

func load[T any](logger *slog.Logger, path string, decode fixtab.DecodeFunc[T]) (*fixtab.List[T], error) {
	list, diags, err := fixtab.DecodeFile(path, decode, fixtab.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(diags) > 0 {
		logger.Warn("skipped invalid lines", "path", path, "count", len(diags), "loaded", list.Len())
	}
	return list, nil
}

func reportTitle(report string) string {
	switch report {
	case "hotels":
		return "Hotels"
	case "names":
		return "Hotel names"
	case "travelers":
		return "Travelers"
	case "chosen":
		return "Chosen hotels"
	case "unchosen":
		return "Hotels nobody chose"
	case "most-nights":
		return "Longest stays"
	case "budget":
		return "Travelers within budget"
	default:
		return ""
	}
}

func formatNames() string {
	names := make([]string, 0, len(fixtab.Formats()))
	for _, f := range fixtab.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: hotels [flags] <report>\n\n")
	fmt.Fprintf(w, "Reports: %s\n\n", strings.Join(reports, ", "))
	fmt.Fprintf(w, "Flags:\n%s", flagSet.FlagUsages())
}
