package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/campus-parkfinder/parkfinder/internal/adapters/httpclient"
	memmapview "github.com/campus-parkfinder/parkfinder/internal/adapters/memory/mapview"
	"github.com/campus-parkfinder/parkfinder/internal/adapters/stylehttp"
	"github.com/campus-parkfinder/parkfinder/internal/adapters/terminal"
	"github.com/campus-parkfinder/parkfinder/internal/app/filters"
	"github.com/campus-parkfinder/parkfinder/internal/app/mapinit"
	"github.com/campus-parkfinder/parkfinder/internal/app/session"
	"github.com/campus-parkfinder/parkfinder/internal/app/uistate"
	platformclock "github.com/campus-parkfinder/parkfinder/internal/platform/clock"
	"github.com/campus-parkfinder/parkfinder/internal/platform/config"
	mapviewport "github.com/campus-parkfinder/parkfinder/internal/ports/out/mapview"
)

const userAgent = "parkfinder-cli/1.0"

var errUsage = errors.New("usage")

// cli is one wired page: the controllers share a store and write alerts to out.
type cli struct {
	cfg    config.ClientConfig
	out    io.Writer
	logger *slog.Logger

	store   *uistate.Store
	session *session.Service
	filters *filters.Service
	maps    *mapinit.Service
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("parkfinder", flag.ContinueOnError)
	global.SetOutput(stderr)
	verbose := global.Bool("v", false, "log debug output to stderr")
	if err := global.Parse(args); err != nil {
		return errUsage
	}
	if global.NArg() == 0 {
		return errUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadClientConfigFromEnv(mapinit.DefaultCamera())
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c, err := newCLI(cfg, stdout, logger)
	if err != nil {
		return err
	}

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "load":
		return c.load(ctx)
	case "status":
		return c.status(ctx)
	case "profile":
		return c.profile(ctx, rest, stderr)
	case "search":
		return c.search(ctx, rest, stderr)
	case "spots":
		return c.spots(ctx)
	case "layers":
		return c.layers(ctx)
	case "login":
		c.session.Login()
		return nil
	case "logout":
		c.session.Logout()
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		return errUsage
	}
}

func newCLI(cfg config.ClientConfig, out io.Writer, logger *slog.Logger) (*cli, error) {
	client, err := httpclient.NewClient(cfg.BaseURL,
		httpclient.WithHTTPClient(&http.Client{}),
		httpclient.WithTimeout(cfg.HTTPTimeout),
		httpclient.WithUserAgent(userAgent),
		httpclient.WithSessionCookie("session", cfg.SessionCookie),
	)
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}

	notes := terminal.NewNotifier(out)
	notes.ResolveURL = client.URL

	store := uistate.NewStore(uistate.Initial())

	sess := session.NewService(client, store, notes, notes)
	sess.Logger = logger
	flt := filters.NewService(client, store, notes, platformclock.NewSystemClock())
	flt.Logger = logger

	loader := stylehttp.NewLoader(
		stylehttp.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		stylehttp.WithUserAgent(userAgent),
	)
	maps := mapinit.NewService(memmapview.NewFactory(loader), cfg.Camera)
	maps.Logger = logger

	return &cli{
		cfg:     cfg,
		out:     out,
		logger:  logger,
		store:   store,
		session: sess,
		filters: flt,
		maps:    maps,
	}, nil
}

// load mirrors page load: the map and the session check are independent.
func (c *cli) load(ctx context.Context) error {
	var view mapviewport.View
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := c.maps.Bootstrap(gctx)
		view = v
		return err
	})
	g.Go(func() error {
		c.session.CheckAuth(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := terminal.RenderState(c.out, c.store.Snapshot()); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "map: %d layers, %s\n", len(view.Style().Layers), buildingsPlacement(view))
	return nil
}

func (c *cli) status(ctx context.Context) error {
	c.session.CheckAuth(ctx)
	return terminal.RenderState(c.out, c.store.Snapshot())
}

func (c *cli) profile(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var form session.ProfileForm
	var types string
	fs.StringVar(&form.Major, "major", "", "major")
	fs.StringVar(&form.GradeLevel, "grade-level", "", "grade level, e.g. Junior")
	fs.StringVar(&form.GraduationYear, "graduation-year", "", "graduation year")
	fs.StringVar(&form.HousingType, "housing-type", "", "housing type, e.g. On-campus")
	fs.StringVar(&types, "parking-types", "", "comma-separated preferred parking types")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	form.PreferredParkingTypes = splitList(types)

	if err := c.session.SubmitProfile(ctx, form); err != nil {
		return err
	}
	return terminal.RenderState(c.out, c.store.Snapshot())
}

func (c *cli) search(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	campus := fs.String("campus", "", "campus location, e.g. East Bank")
	kind := fs.String("type", "", "parking type, e.g. Ramp")
	maxCost := fs.String("max-cost", "5", "hourly cost ceiling; 5 means no limit")
	queryOnly := fs.Bool("query", false, "print the query string instead of searching")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	c.filters.SetCampus(*campus)
	c.filters.SetParkingType(*kind)
	if err := c.filters.SetMaxCost(*maxCost); err != nil {
		return err
	}

	if *queryOnly {
		q, err := filters.BuildQuery(c.store.Snapshot().Filters)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, q)
		return nil
	}

	if _, err := c.filters.Apply(ctx); err != nil {
		return err
	}
	return terminal.RenderState(c.out, c.store.Snapshot())
}

func (c *cli) spots(ctx context.Context) error {
	spots, err := c.filters.ListAll(ctx)
	if err != nil {
		return err
	}
	return terminal.RenderSpots(c.out, spots)
}

func (c *cli) layers(ctx context.Context) error {
	view, err := c.maps.Bootstrap(ctx)
	if err != nil {
		return err
	}
	for i, l := range view.Style().Layers {
		fmt.Fprintf(c.out, "%3d  %-32s %s\n", i, l.ID, l.Type)
	}
	return nil
}

func buildingsPlacement(view mapviewport.View) string {
	layers := view.Style().Layers
	for i, l := range layers {
		if l.ID != mapinit.BuildingsLayerID {
			continue
		}
		if i+1 < len(layers) {
			return fmt.Sprintf("%s below %s", l.ID, layers[i+1].ID)
		}
		return l.ID + " on top"
	}
	return mapinit.BuildingsLayerID + " missing"
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
