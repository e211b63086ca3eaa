package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/routebind/route-runtime/engine"
	"github.com/routebind/route-runtime/params"
	"github.com/routebind/route-runtime/response"
)

func main() {
	var (
		dataset   = flag.String("dataset", "", "Path to prepared dataset (.osrm)")
		shm       = flag.Bool("shm", false, "Attach to a shared-memory dataset instead of files")
		mmap      = flag.Bool("mmap", false, "Memory-map dataset files")
		algorithm = flag.String("algorithm", "ch", "Graph algorithm the dataset was prepared for (ch, mld)")
		verb      = flag.String("verb", "route", "Request verb (route, table, nearest, match, trip)")
		coords    = flag.String("coords", "", "Coordinates as lon,lat;lon,lat;...")
		format    = flag.String("format", "json", "Output format (json, flatbuffers)")
		steps     = flag.Bool("steps", false, "Include turn-by-turn steps (route)")
		verbose   = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *coords == "" || (!*shm && *dataset == "") {
		fmt.Fprintln(os.Stderr, "Usage: route-run -dataset <file.osrm> -coords lon,lat;lon,lat [-verb route] [-algorithm ch]")
		fmt.Fprintln(os.Stderr, "       route-run -shm -coords lon,lat;lon,lat")
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			engine.SetLogger(log)
			defer log.Sync()
		}
	}

	if err := run(*dataset, *shm, *mmap, *algorithm, *verb, *coords, *format, *steps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dataset string, shm, mmap bool, algorithm, verb, coords, format string, steps bool) error {
	alg, err := engine.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}
	f, err := params.ParseFormat(format)
	if err != nil {
		return err
	}
	points, err := parseCoords(coords)
	if err != nil {
		return err
	}

	cfg := engine.DefaultConfig()
	cfg.StoragePath = dataset
	cfg.UseSharedMemory = shm
	cfg.UseMmap = mmap
	cfg.Algorithm = alg

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	resp, err := dispatch(eng, verb, points, f, steps)
	if err != nil {
		return err
	}

	switch resp.Kind() {
	case response.KindJSON:
		rendered, err := resp.JSON()
		if err != nil {
			return err
		}
		fmt.Println(rendered)
	case response.KindFlatBuffers:
		data, err := resp.Flatbuffer()
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	case response.KindBytes:
		data, err := resp.Bytes()
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func dispatch(eng *engine.Engine, verb string, points [][2]float64, f params.Format, steps bool) (*response.Response, error) {
	switch verb {
	case "route":
		p := params.NewRoute()
		if err := addCoords(&p.Base, points); err != nil {
			return nil, err
		}
		if err := p.SetFormat(f); err != nil {
			return nil, err
		}
		if err := p.SetSteps(steps); err != nil {
			return nil, err
		}
		return eng.Route(p)
	case "table":
		p := params.NewTable()
		if err := addCoords(&p.Base, points); err != nil {
			return nil, err
		}
		if err := p.SetFormat(f); err != nil {
			return nil, err
		}
		return eng.Table(p)
	case "nearest":
		p := params.NewNearest()
		if err := addCoords(&p.Base, points); err != nil {
			return nil, err
		}
		if err := p.SetFormat(f); err != nil {
			return nil, err
		}
		return eng.Nearest(p)
	case "match":
		p := params.NewMatch()
		if err := addCoords(&p.Base, points); err != nil {
			return nil, err
		}
		if err := p.SetFormat(f); err != nil {
			return nil, err
		}
		return eng.Match(p)
	case "trip":
		p := params.NewTrip()
		if err := addCoords(&p.Base, points); err != nil {
			return nil, err
		}
		if err := p.SetFormat(f); err != nil {
			return nil, err
		}
		return eng.Trip(p)
	default:
		return nil, fmt.Errorf("unknown verb %q (route, table, nearest, match, trip)", verb)
	}
}

func addCoords(base *params.Base, points [][2]float64) error {
	for _, pt := range points {
		if err := base.AddCoordinate(pt[0], pt[1]); err != nil {
			return err
		}
	}
	return nil
}

// parseCoords reads "lon,lat;lon,lat;..." pairs.
func parseCoords(s string) ([][2]float64, error) {
	var points [][2]float64
	for _, pair := range strings.Split(s, ";") {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed coordinate %q, want lon,lat", pair)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed longitude %q: %w", parts[0], err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed latitude %q: %w", parts[1], err)
		}
		points = append(points, [2]float64{lon, lat})
	}
	return points, nil
}
