// Profiling:
// go build ./profile/sparse
// go tool pprof -http=":8000" -nodefraction=0.001 ./sparse mem.pprof

package main

import (
	"math/rand"

	"github.com/edwinsyarief/mabara"
	"github.com/pkg/profile"
)

type particle struct {
	X, Y   float32
	VX, VY float32
}

func main() {
	rounds := 50
	iters := 200
	entities := 4096
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, entities int) {
	for r := 0; r < rounds; r++ {
		set, err := mabara.NewFor[particle]()
		if err != nil {
			panic(err)
		}
		for it := 0; it < iters; it++ {
			for i := 0; i < entities; i++ {
				_, _ = mabara.AddComponent(set, uint16(i), particle{
					X: rand.Float32(), Y: rand.Float32(),
					VX: rand.Float32(), VY: rand.Float32(),
				})
			}
			query := mabara.NewQuery[particle](set)
			for query.Next() {
				c := query.Get()
				c.X += c.VX
				c.Y += c.VY
			}
			_ = mabara.SortFunc(set, func(a, b *particle) int {
				switch {
				case a.X < b.X:
					return -1
				case a.X > b.X:
					return 1
				}
				return 0
			})
			set.Clear()
		}
		set.Close()
	}
}
