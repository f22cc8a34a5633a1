package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/membox/alloc"
	"github.com/wippyai/membox/box"
)

func main() {
	var (
		boxes       = flag.Int("boxes", 1000, "Live boxes per cycle")
		cycles      = flag.Int("cycles", 10, "Workload cycles to run")
		budget      = flag.Uint64("budget", 0, "Allocator byte budget (0 = unlimited)")
		verbose     = flag.Bool("v", false, "Verbose allocator logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		alloc.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*boxes, *cycles, uintptr(*budget)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type payload struct {
	ID    uint64
	Label string
	Data  [48]byte
}

func run(boxes, cycles int, budget uintptr) error {
	if boxes <= 0 || cycles <= 0 {
		return fmt.Errorf("boxes and cycles must be positive")
	}

	tracker := newWorkloadAllocator(budget)

	var events uint64
	tracker.Subscribe(alloc.ObserverFunc(func(alloc.Event) { events++ }))

	fmt.Printf("Workload: %d boxes x %d cycles\n\n", boxes, cycles)

	for c := 0; c < cycles; c++ {
		live := make([]*box.Box[payload], 0, boxes)
		for i := 0; i < boxes; i++ {
			b := box.NewIn(tracker, payload{
				ID:    uint64(c*boxes + i),
				Label: fmt.Sprintf("cycle-%d", c),
			})
			b.Ref().Data[0] = byte(i)
			live = append(live, b)
		}

		// half the boxes unwrap (ownership out), half drop in place
		for i, b := range live {
			if i%2 == 0 {
				_ = b.Into()
			} else {
				b.Drop()
			}
		}
	}

	fmt.Printf("Allocations:     %d\n", tracker.Allocs())
	fmt.Printf("Frees:           %d\n", tracker.Frees())
	fmt.Printf("Live slots:      %d\n", tracker.Live())
	fmt.Printf("Bytes handed out: %d\n", tracker.AllocatedBytes())
	fmt.Printf("Observer events: %d\n", events)

	if tracker.Live() != 0 {
		return fmt.Errorf("workload leaked %d slots", tracker.Live())
	}
	return nil
}

// newWorkloadAllocator builds the tracking stack used by both modes.
func newWorkloadAllocator(budget uintptr) *alloc.Tracking {
	if budget > 0 {
		return alloc.NewTracking(alloc.NewLimited(alloc.Default(), budget))
	}
	return alloc.NewTracking(alloc.Default())
}
