package main

import (
	"log"
	"os"

	"github.com/sergiovieri/options"
)

// Options used by this program, defined once at package level. IDs compare by
// identity, so display names never collide with other option tables.
var (
	threadsID = options.NewID("threads", "Threads", "number of worker threads", 't')
	verboseID = options.NewID("verbose", "Verbose", "enable verbose output", 'v')
	backendID = options.NewID("backend-opts", "BackendOptions",
		"backend configuration string, e.g. 'gpu(device=0, scale=1.5), threads=4'", 0)
)

func main() {
	log.SetFlags(0)

	root := options.NewScope()

	reg := options.NewRegistry("example", root)
	reg.IntOption(threadsID, 2)
	reg.BoolOption(verboseID, false)
	reg.StringOption(backendID, "")
	if err := reg.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	log.Printf("threads: %d", options.GetOrDefaultByID(root, threadsID, 1))
	log.Printf("verbose: %v", options.GetOrDefaultByID(root, verboseID, false))

	// The backend string uses the scope grammar: each parenthesized clause
	// becomes a named subscope that inherits from the backend scope.
	backend, err := root.AddSubscope("backend")
	if err != nil {
		log.Fatal(err)
	}
	if text := options.GetOrDefaultByID(root, backendID, ""); text != "" {
		if err := backend.AddFromString(text); err != nil {
			log.Fatal(err)
		}
	}

	for _, name := range backend.ListSubscopes() {
		sub, err := backend.Subscope(name)
		if err != nil {
			log.Fatal(err)
		}
		device := options.GetOrDefault(sub, "device", 0)
		scale := options.GetOrDefault(sub, "scale", 1.0)
		weights := options.GetOrDefault(sub, "", "")
		log.Printf("backend %s: device=%d scale=%.2f weights=%q", name, device, scale, weights)
	}
	// Settings inherited by every backend subscope.
	log.Printf("backend threads: %d", options.GetOrDefault(backend, "threads",
		options.GetOrDefaultByID(root, threadsID, 1)))

	// Anything in the backend string that no subsystem read is a typo.
	if err := root.CheckAllReadRecursive(""); err != nil {
		log.Fatal(err)
	}
}
