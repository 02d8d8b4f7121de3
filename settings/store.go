// Package settings persists showcase control values and palette choices
// between runs.
package settings

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/showcase/canvas"
)

const showcasesObject = "showcases"

// State is the saved tuning of one showcase.
type State struct {
	// Controls maps a control key to its range value.
	Controls map[string]float64 `yaml:"controls,omitempty"`
	// Palettes holds the selected palette of each palette driven object, in
	// registration order.
	Palettes []int `yaml:"palettes,omitempty"`
}

// Store saves showcase state through gdata. A Store with a nil manager keeps
// state in memory only.
type Store struct {
	manager *gdata.Manager
	memory  map[string]*State
}

// New creates a store. manager may be nil.
func New(manager *gdata.Manager) *Store {
	return &Store{manager: manager, memory: make(map[string]*State)}
}

// Open creates a gdata backed store for appName. When the platform storage
// cannot be opened the store falls back to memory and the error is returned
// for logging.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return New(nil), fmt.Errorf("open settings storage: %w", err)
	}
	return New(manager), nil
}

// Persistent reports whether state survives the process.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// propName turns a showcase id into a storage key.
func propName(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Load returns the saved state of a showcase, or an empty state.
func (s *Store) Load(id string) (*State, error) {
	if st, ok := s.memory[id]; ok {
		return st, nil
	}
	st := &State{}
	if s.manager == nil {
		return st, nil
	}
	prop := propName(id)
	if !s.manager.ObjectPropExists(showcasesObject, prop) {
		return st, nil
	}
	data, err := s.manager.LoadObjectProp(showcasesObject, prop)
	if err != nil {
		return st, fmt.Errorf("load %s settings: %w", id, err)
	}
	if err := yaml.Unmarshal(data, st); err != nil {
		return &State{}, fmt.Errorf("unmarshal %s settings: %w", id, err)
	}
	s.memory[id] = st
	return st, nil
}

// Save stores the state of a showcase.
func (s *Store) Save(id string, st *State) error {
	s.memory[id] = st
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal %s settings: %w", id, err)
	}
	if err := s.manager.SaveObjectProp(showcasesObject, propName(id), data); err != nil {
		return fmt.Errorf("save %s settings: %w", id, err)
	}
	return nil
}

// Apply restores saved values onto a showcase's controls and palette driven
// objects. Missing entries keep their current value.
func (s *Store) Apply(id string, controls []*canvas.Control, objects []canvas.Object) error {
	st, err := s.Load(id)
	if err != nil {
		return err
	}
	keys := controlKeys(controls)
	for i, ctl := range controls {
		if v, ok := st.Controls[keys[i]]; ok {
			ctl.Set(v)
		}
	}
	for i, p := range paletted(objects) {
		if i < len(st.Palettes) {
			p.SetPalette(st.Palettes[i])
		}
	}
	return nil
}

// Capture snapshots a showcase's current tuning.
func Capture(controls []*canvas.Control, objects []canvas.Object) *State {
	st := &State{Controls: make(map[string]float64)}
	keys := controlKeys(controls)
	for i, ctl := range controls {
		if ctl.Kind == canvas.ControlRange {
			st.Controls[keys[i]] = ctl.Value
		}
	}
	for _, p := range paletted(objects) {
		st.Palettes = append(st.Palettes, p.Palette())
	}
	return st
}

// SaveAll captures and saves a showcase, logging instead of failing.
func (s *Store) SaveAll(id string, controls []*canvas.Control, objects []canvas.Object) {
	if err := s.Save(id, Capture(controls, objects)); err != nil {
		log.Printf("[settings] %v", err)
	}
}

// controlKeys makes keys unique by numbering repeats: a second "effect-size"
// becomes "effect-size#2".
func controlKeys(controls []*canvas.Control) []string {
	seen := make(map[string]int)
	keys := make([]string, len(controls))
	for i, ctl := range controls {
		seen[ctl.Key]++
		if n := seen[ctl.Key]; n > 1 {
			keys[i] = ctl.Key + "#" + strconv.Itoa(n)
			continue
		}
		keys[i] = ctl.Key
	}
	return keys
}

func paletted(objects []canvas.Object) []canvas.Paletted {
	var out []canvas.Paletted
	for _, obj := range objects {
		if p, ok := obj.(canvas.Paletted); ok {
			out = append(out, p)
		}
	}
	return out
}
