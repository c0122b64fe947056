// Command manifestcheck loads every asset group of a manifest headlessly and
// reports whether each group became ready.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/config"
	"github.com/milk9111/keystone/ecs"
	"github.com/milk9111/keystone/ecs/component"
	"github.com/milk9111/keystone/ecs/system"
	"github.com/milk9111/keystone/logging"
	"github.com/milk9111/keystone/manifest"
	"github.com/peterbourgon/ff/v4"
)

type options struct {
	config.Config
	timeout time.Duration
	tick    time.Duration
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ff.ErrHelp) {
			fmt.Fprintf(os.Stderr, "manifestcheck: %v\n", err)
			os.Exit(1)
		}
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	flags := ff.NewFlagSet("manifestcheck")
	opts.AssetFlags(flags)
	flags.DurationVar(&opts.timeout, 't', "timeout", 30*time.Second, "Give up after this long.")
	flags.DurationVar(&opts.tick, 0, "tick", time.Second/60, "Interval between readiness polls.")
	if err := config.ParseFlags(flags, stderr, args); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(stderr, opts.Logging)

	m, err := manifest.LoadManifest(opts.Manifest)
	if err != nil {
		return err
	}
	requests, err := m.Requests()
	if err != nil {
		return err
	}

	server := assets.NewServer(opts.AssetFS(),
		assets.WithWorkers(opts.Workers),
		assets.WithLogger(logger.Logger),
	)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	report, err := check(ctx, server, requests, opts.tick, logger)
	printReport(stdout, report)
	return err
}

type groupReport struct {
	group    component.AssetGroup
	progress component.GroupProgress
	ready    bool
	failures []component.AssetLoadFailedEvent
}

// check ticks the loading systems until every requested group is ready, a
// member failed, or ctx expires.
func check(ctx context.Context, server *assets.Server, requests map[component.AssetGroup]component.LoadAssetGroupRequest, tick time.Duration, logger *logging.Logger) ([]groupReport, error) {
	world := ecs.NewWorld()
	groups := component.NewLoadingGroups()
	reports := make(map[component.AssetGroup]*groupReport, len(requests))
	for group, req := range requests {
		system.RequestAssetGroup(world, &req)
		reports[group] = &groupReport{group: group}
	}

	collect := ecs.SystemFunc(func(w *ecs.World) {
		ecs.Each(w.Events(), ecs.EventAssetsLoaded, func(evt component.AssetsLoadedEvent) {
			if r, ok := reports[evt.Group]; ok {
				r.ready = true
			}
		})
		ecs.Each(w.Events(), ecs.EventAssetLoadFailed, func(evt component.AssetLoadFailedEvent) {
			if r, ok := reports[evt.Group]; ok {
				r.failures = append(r.failures, evt)
			}
		})
		progress := ecs.Singleton(w, component.LoadProgressComponent.Kind())
		for group, r := range reports {
			r.progress = progress.Groups[group]
		}
	})

	scheduler := ecs.NewScheduler(
		system.NewAssetLoaderSystem(server, assets.NewStore(), groups, logger.Logger),
		system.NewAssetReadinessSystem(server, groups, system.WithNotifyOnce()),
		system.NewLoadProgressSystem(server, groups, logger.Logger),
		collect,
	)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		scheduler.Update(world)
		if done, err := settled(reports); done {
			return sortedReports(reports), err
		}
		select {
		case <-ctx.Done():
			return sortedReports(reports), fmt.Errorf("groups not ready: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// settled reports whether every group is either ready or finished with
// failures.
func settled(reports map[component.AssetGroup]*groupReport) (bool, error) {
	var failed []string
	for _, r := range reports {
		switch {
		case r.ready:
		case r.progress.Total > 0 && r.progress.Done() && r.progress.Failed > 0:
			failed = append(failed, r.group.String())
		default:
			return false, nil
		}
	}
	if len(failed) > 0 {
		sort.Strings(failed)
		return true, fmt.Errorf("groups failed: %v", failed)
	}
	return true, nil
}

func sortedReports(reports map[component.AssetGroup]*groupReport) []groupReport {
	out := make([]groupReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].group < out[j].group })
	return out
}

func printReport(w io.Writer, reports []groupReport) {
	for _, r := range reports {
		status := "pending"
		switch {
		case r.ready:
			status = "ready"
		case r.progress.Failed > 0:
			status = "failed"
		}
		fmt.Fprintf(w, "%-6s %-7s %d/%d loaded\n", r.group, status, r.progress.Loaded, r.progress.Total)
		for _, f := range r.failures {
			fmt.Fprintf(w, "  %s: %v\n", f.Path, f.Err)
		}
	}
}
