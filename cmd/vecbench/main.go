package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"seqvec"
)

// Workload describes a randomized op mix to drive the vector with.
// Zero fields fall back to defaults.
type Workload struct {
	Seed    int64 `yaml:"seed"`
	Ops     int   `yaml:"ops"`
	Reserve int   `yaml:"reserve"`

	// relative weights per operation
	PushWeight   int `yaml:"push_weight"`
	InsertWeight int `yaml:"insert_weight"`
	EraseWeight  int `yaml:"erase_weight"`
	PopWeight    int `yaml:"pop_weight"`
	ResizeWeight int `yaml:"resize_weight"`
}

func loadWorkload(path string) (Workload, error) {
	var w Workload
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return w, err
		}
		if err := yaml.Unmarshal(raw, &w); err != nil {
			return w, err
		}
	}
	if w.Seed == 0 {
		w.Seed = 1
	}
	if w.Ops == 0 {
		w.Ops = 100_000
	}
	if w.PushWeight+w.InsertWeight+w.EraseWeight+w.PopWeight+w.ResizeWeight == 0 {
		w.PushWeight = 6
		w.InsertWeight = 2
		w.EraseWeight = 2
		w.PopWeight = 1
		w.ResizeWeight = 1
	}
	return w, nil
}

func main() {
	cfgPath := flag.String("config", "", "path to a YAML workload file")
	flag.Parse()

	w, err := loadWorkload(*cfgPath)
	if err != nil {
		log.Fatalf("[vecbench] load workload: %v", err)
	}
	log.Printf("[vecbench] seed=%d ops=%d", w.Seed, w.Ops)

	rng := rand.New(rand.NewSource(w.Seed))
	v := seqvec.New[int64]()
	if w.Reserve > 0 {
		if err := v.Reserve(w.Reserve); err != nil {
			log.Fatalf("[vecbench] reserve: %v", err)
		}
	}

	// oracle: the same workload applied to a plain slice
	var oracle []int64

	total := w.PushWeight + w.InsertWeight + w.EraseWeight + w.PopWeight + w.ResizeWeight
	start := time.Now()

	for op := 0; op < w.Ops; op++ {
		pick := rng.Intn(total)
		val := rng.Int63n(1 << 20)
		switch {
		case pick < w.PushWeight:
			if err := v.PushBack(val); err != nil {
				log.Fatalf("[vecbench] op %d push: %v", op, err)
			}
			oracle = append(oracle, val)

		case pick < w.PushWeight+w.InsertWeight:
			i := rng.Intn(v.Len() + 1)
			if _, err := v.Insert(i, val); err != nil {
				log.Fatalf("[vecbench] op %d insert: %v", op, err)
			}
			oracle = append(oracle, 0)
			copy(oracle[i+1:], oracle[i:])
			oracle[i] = val

		case pick < w.PushWeight+w.InsertWeight+w.EraseWeight:
			if v.Len() == 0 {
				continue
			}
			i := rng.Intn(v.Len())
			v.Erase(i)
			oracle = append(oracle[:i], oracle[i+1:]...)

		case pick < w.PushWeight+w.InsertWeight+w.EraseWeight+w.PopWeight:
			if v.Len() == 0 {
				continue
			}
			v.PopBack()
			oracle = oracle[:len(oracle)-1]

		default:
			n := rng.Intn(v.Len()*2 + 2)
			if err := v.Resize(n); err != nil {
				log.Fatalf("[vecbench] op %d resize: %v", op, err)
			}
			for len(oracle) > n {
				oracle = oracle[:len(oracle)-1]
			}
			for len(oracle) < n {
				oracle = append(oracle, 0)
			}
		}
	}

	elapsed := time.Since(start)

	if !slices.Equal(v.Slice(), oracle) {
		log.Fatalf("[vecbench] divergence: vector len=%d oracle len=%d", v.Len(), len(oracle))
	}

	st := v.Stats()
	log.Printf("[vecbench] ok: %d ops in %v (%.0f ops/s)",
		w.Ops, elapsed, float64(w.Ops)/elapsed.Seconds())
	log.Printf("[vecbench] final len=%d cap=%d grows=%d relocations=%d",
		v.Len(), v.Cap(), st.Grows, st.Relocations)
}
