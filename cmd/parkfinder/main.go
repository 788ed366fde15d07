// Command parkfinder drives the campus parking page from a terminal: it runs the same
// controllers as the browser page against a real (or fake) backend.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage: parkfinder [-v] <command> [flags]

commands:
  load     bootstrap the map and check the session concurrently, then print the page state
  status   check the session and print the page state
  profile  submit the profile form (-major, -grade-level, -graduation-year, -housing-type, -parking-types)
  search   run a filtered spot search (-campus, -type, -max-cost, -query)
  spots    list every parking spot
  layers   bootstrap the map and print the resulting layer order
  login    print the login URL
  logout   print the logout URL

environment:
  PARKFINDER_BASE_URL, PARKFINDER_HTTP_TIMEOUT, PARKFINDER_SESSION_COOKIE,
  PARKFINDER_MAP_STYLE_URL, PARKFINDER_MAP_ZOOM, PARKFINDER_MAP_PITCH,
  PARKFINDER_MAP_BEARING, PARKFINDER_MAP_CENTER
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == errUsage {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatalf("parkfinder: %v", err)
	}
}
