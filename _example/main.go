package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hupe1980/liteset"
)

// entity is a game-loop style object that moves between several working
// sets every frame.
type entity struct {
	liteset.Tag
	ID int
}

func main() {
	seed := int64(4711)
	size := 100000
	frames := 100

	rng := rand.New(rand.NewSource(seed))

	entities := make([]*entity, size)
	for i := range entities {
		entities[i] = &entity{ID: i}
	}

	// One entity can sit in several sets at once.
	active := liteset.New[*entity]()
	dirty := liteset.New[*entity]()

	fmt.Println("--- Churn ---")
	fmt.Println("Entities:", size)
	fmt.Println("Frames:", frames)

	start := time.Now()

	for frame := 0; frame < frames; frame++ {
		for i := 0; i < size/10; i++ {
			e := entities[rng.Intn(size)]
			active.Add(e)
			if e.ID%2 == 0 {
				dirty.Add(e)
			}
		}
		for _, e := range dirty.Items {
			_ = e.ID // flush would go here
		}
		dirty.Clear()
		for i := 0; i < size/20; i++ {
			active.Remove(entities[rng.Intn(size)])
		}
	}

	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())
	fmt.Println("Active:", active.Len())
	fmt.Println("Dirty:", dirty.Len())
}
