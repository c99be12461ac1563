// Command catalog validates a mascot prefab and prints its animation
// catalog. With -simulate it runs the cat headless for a while and prints a
// snapshot every time its behavior changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
	"github.com/rouzeris/catroom/ecs/entity"
	"github.com/rouzeris/catroom/mascot"
	"github.com/rouzeris/catroom/prefabs"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func main() {
	log.SetFlags(0)

	prefab := flag.String("prefab", "cat.yaml", "mascot prefab to check")
	prefabRoot := flag.String("prefabs", "prefabs", "directory whose prefabs override the embedded ones")
	simulate := flag.Duration("simulate", 0, "run the mascot headless for this long")
	interval := flag.Duration("interval", time.Second/60, "tick interval while simulating")
	seed := flag.Uint64("seed", 1, "random seed while simulating")
	flag.Parse()

	prefabs.SetRoot(*prefabRoot)

	spec, err := prefabs.LoadMascotSpec(*prefab)
	if err != nil {
		log.Fatal(err)
	}
	if err := check(spec); err != nil {
		log.Fatalf("%s: %v", *prefab, err)
	}
	if mod, ok := prefabs.ModTime(*prefab); ok {
		fmt.Printf("%s (disk, modified %s)\n\n", *prefab, mod.Format(time.DateTime))
	} else {
		fmt.Printf("%s (embedded)\n\n", *prefab)
	}
	printCatalog(os.Stdout, spec.Catalog())

	if *simulate <= 0 {
		return
	}
	if err := run(spec, os.Stdout, *simulate, *interval, *seed); err != nil {
		log.Fatal(err)
	}
}

// check builds the machine config against the catalog, which reports every
// animation key the config names but the catalog lacks.
func check(spec *prefabs.MascotSpec) error {
	cfg, err := spec.Config()
	if err != nil {
		return err
	}
	catalog := spec.Catalog()
	if err := catalog.Validate(); err != nil {
		return err
	}
	return cfg.Validate(catalog)
}

func printCatalog(out io.Writer, catalog mascot.Catalog) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ANIMATION\tFRAMES\tFRAME MS\tLOOP MS")
	for _, key := range catalog.Keys() {
		d, _ := catalog.Lookup(key)
		fmt.Fprintf(tw, "%s\t%d\t%g\t%g\n", key, d.FrameCount, d.FrameDuration, float64(d.FrameCount)*d.FrameDuration)
	}
	tw.Flush()
}

func run(spec *prefabs.MascotSpec, out io.Writer, d, interval time.Duration, seed uint64) error {
	w := ecs.NewWorld()
	e, err := entity.BuildMascot(w, spec, mascot.WithRand(mascot.NewRand(seed)))
	if err != nil {
		return err
	}
	defer entity.Unmount(w, e)

	brain, ok := ecs.Get(w, e, component.MascotBrainComponent.Kind())
	if !ok {
		return fmt.Errorf("mascot %s: no brain", spec.Name)
	}
	m := brain.Mascot

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	loop := mascot.NewLoop(m, interval)
	if err := loop.Start(ctx); err != nil {
		return err
	}
	defer loop.Stop()

	g.Go(func() error {
		<-loop.Done()
		return nil
	})
	g.Go(func() error {
		return printChanges(ctx, out, m, interval)
	})
	return g.Wait()
}

// printChanges writes a YAML snapshot each time the mascot's behavior
// changes, until ctx is done.
func printChanges(ctx context.Context, out io.Writer, m *mascot.Mascot, every time.Duration) error {
	enc := yaml.NewEncoder(out)
	defer enc.Close()

	var last mascot.Behavior = -1
	poll := time.NewTicker(every)
	defer poll.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-poll.C:
			snap := m.Snapshot()
			if snap.Behavior == last {
				continue
			}
			last = snap.Behavior
			if err := enc.Encode(snap); err != nil {
				return err
			}
		}
	}
}
