package main

import (
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/theflywheel/hashdict"
)

func main() {
	configPath := flag.String("config", "", "optional TOML file with initial-capacity and max-load-factor")
	verbose := flag.Bool("v", false, "log table rehashes")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
	}
	defer logger.Sync()

	var cfg hashdict.Config
	if *configPath != "" {
		var err error
		cfg, err = hashdict.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	d, err := hashdict.NewWithConfig[int, int](hashdict.NewComparableHasher[int](), cfg, hashdict.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create dictionary: %v", err)
	}

	fmt.Printf("Dictionary created with %d slots\n", d.Capacity())

	// Insert some data
	for i := 0; i < 10; i++ {
		d.Add(i, i*100)
	}

	fmt.Println("Inserted 10 key-value pairs")

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		if v, found := d.Get(i); found {
			fmt.Printf("Key %d => Value %d\n", i, v)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	// Update a value
	if old, replaced := d.Add(2, 999); replaced {
		fmt.Printf("Updated key 2 => Value 999 (was %d)\n", old)
	}

	// Remove a value
	if v, found := d.Remove(4); found {
		fmt.Printf("Removed key 4 (had %d), %d entries left\n", v, d.Size())
	}

	// Grow past the load factor
	for i := 10; i < 1000; i++ {
		d.Add(i, i*100)
	}
	s := d.Stats()
	fmt.Printf("After 1000 inserts: size=%d capacity=%d tombstones=%d resizes=%d\n",
		s.Size, s.Capacity, s.Tombstones, s.Resizes)

	keys := d.KeyIterator()
	fmt.Print("First keys in slot order:")
	for i := 0; i < 5 && keys.HasNext(); i++ {
		k, err := keys.Next()
		if err != nil {
			log.Fatalf("Iterator failed: %v", err)
		}
		fmt.Printf(" %d", k)
	}
	fmt.Println()

	d.Clear()
	fmt.Printf("Cleared: empty=%v\n", d.IsEmpty())

	fmt.Println("Example completed successfully")
}
