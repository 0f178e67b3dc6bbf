package format

import (
	imgcolor "image/color"
	"slices"
	"strings"
	"sync"

	"github.com/jsvensson/huekit/internal/units"
)

// entry is one registered format. Entries are replaced, never mutated, so a
// copy taken under the read lock stays consistent while the plugin runs.
type entry struct {
	id      string
	aliases []string
	plugin  Plugin
	opts    Options
}

// Registry is an ordered set of format plugins plus default print options.
// The order of registration is the recognition precedence. A Registry is
// safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entries  []entry
	index    map[string]int
	defaults Options
}

// NewRegistry returns an empty registry with DefaultOptions.
func NewRegistry() *Registry {
	return &Registry{
		index:    make(map[string]int),
		defaults: DefaultOptions(),
	}
}

// Handle refers to a registered format.
type Handle struct {
	id  string
	reg *Registry
}

// ID returns the format id.
func (h *Handle) ID() string { return h.id }

// Options returns the format's current options snapshot.
func (h *Handle) Options() Options {
	e, _ := h.reg.lookup(h.id)
	return e.opts
}

// Print renders c with this format. wanted selects a sub-format and may be
// empty.
func (h *Handle) Print(c RGBA, wanted string) (string, error) {
	return h.reg.PrintAs(c, h.id, wanted)
}

// Register adds a format under id and any aliases given with WithAlias. Its
// options are the registry defaults overridden by opts.
//
// Registering an existing id replaces that format, aliases included, and
// keeps its precedence. A name that is only an alias of another format is
// moved to the new format; the other format keeps its id and remaining
// aliases. An alias may not take over another format's id.
func (r *Registry) Register(id string, p Plugin, opts ...Option) (*Handle, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	s := newSettings(opts)

	r.mu.Lock()
	defer r.mu.Unlock()

	slot := r.indexOfID(id)

	var aliases []string
	for _, alias := range s.aliases {
		if alias == id || slices.Contains(aliases, alias) {
			continue
		}
		if i := r.indexOfID(alias); i >= 0 && i != slot {
			log().Warningf("format %q cannot take alias %q: it is the id of another format", id, alias)
			continue
		}
		aliases = append(aliases, alias)
	}

	// Release the names the new format takes from other formats.
	for i, e := range r.entries {
		if i == slot {
			continue
		}
		kept := slices.DeleteFunc(slices.Clone(e.aliases), func(a string) bool {
			return a == id || slices.Contains(aliases, a)
		})
		if len(kept) != len(e.aliases) {
			log().Warningf("format %q takes over aliases of format %q", id, e.id)
			e.aliases = kept
			r.entries[i] = e
		}
	}

	e := entry{
		id:      id,
		aliases: aliases,
		plugin:  p,
		opts:    s.apply(r.defaults),
	}
	if slot < 0 {
		r.entries = append(r.entries, e)
	} else {
		log().Warningf("format %q replaces the existing format", id)
		r.entries[slot] = e
	}
	r.reindex()

	log().Debugf("registered format %q (aliases %v)", id, aliases)
	return &Handle{id: id, reg: r}, nil
}

// indexOfID returns the entry whose id is id, or -1. Callers hold the lock.
func (r *Registry) indexOfID(id string) int {
	for i, e := range r.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

// reindex rebuilds the id and alias index. Callers hold the write lock.
func (r *Registry) reindex() {
	r.index = make(map[string]int, len(r.entries))
	for i, e := range r.entries {
		for _, alias := range e.aliases {
			r.index[alias] = i
		}
	}
	for i, e := range r.entries {
		r.index[e.id] = i
	}
}

// SetDefaults merges opts into the registry defaults and into the options
// of every registered format. A default set here overrides a format's own
// option for the same field.
func (r *Registry) SetDefaults(opts ...Option) {
	s := newSettings(opts)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults = s.apply(r.defaults)
	for i, e := range r.entries {
		e.opts = s.apply(e.opts)
		r.entries[i] = e
	}
}

// Defaults returns the registry-wide default options.
func (r *Registry) Defaults() Options {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults
}

// Formats returns the registered ids in precedence order, without aliases.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	return ids
}

// Has reports whether id names a registered format or alias.
func (r *Registry) Has(id string) bool {
	_, ok := r.lookup(id)
	return ok
}

// Clone returns an independent registry with the same formats and options.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{
		entries:  slices.Clone(r.entries),
		defaults: r.defaults,
	}
	c.reindex()
	return c
}

func (r *Registry) lookup(id string) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return entry{}, false
	}
	return r.entries[i], true
}

func (r *Registry) snapshot() []entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// Result is the outcome of Resolve.
type Result struct {
	RGBA   RGBA
	Format string
	Valid  bool
	// Err is ErrUnrecognized, a *ParseError or nil.
	Err error
}

func invalid(err error) Result {
	return Result{RGBA: RGBA{A: 1}, Err: err}
}

// Resolve parses input with the first format that recognizes it. Strings
// are trimmed and lower-cased; Object, map[string]any and image/color
// values are structured input. Anything else, including nil and the empty
// string, resolves to an invalid opaque black.
func (r *Registry) Resolve(input any) Result {
	in, ok := toInput(input)
	if !ok {
		return invalid(ErrUnrecognized)
	}

	for _, e := range r.snapshot() {
		if !e.plugin.Recognize(in) {
			continue
		}
		c, err := e.plugin.Parse(in)
		if err != nil {
			log().Debugf("format %q recognized %q but failed to parse it: %v", e.id, in.String(), err)
			return invalid(&ParseError{Format: e.id, Input: in, Err: err})
		}
		return Result{RGBA: c, Format: e.id, Valid: true}
	}
	return invalid(ErrUnrecognized)
}

func toInput(input any) (Input, bool) {
	switch v := input.(type) {
	case nil:
		return Input{}, false
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		return Input{Text: text}, text != ""
	case Input:
		return v, v.IsObject() || v.Text != ""
	case Object:
		return Input{Object: v}, v != nil
	case map[string]any:
		return Input{Object: Object(v)}, v != nil
	case imgcolor.Color:
		n := imgcolor.NRGBAModel.Convert(v).(imgcolor.NRGBA)
		return Input{Object: Object{
			"r": n.R,
			"g": n.G,
			"b": n.B,
			"a": float64(n.A) / 255,
		}}, true
	}
	return Input{}, false
}

// Raw exports c in the structured shape of format id. Unknown formats
// yield a Ratio.
func (r *Registry) Raw(c RGBA, id string) any {
	e, ok := r.lookup(id)
	if !ok {
		return Ratio{R: c.R / 255, G: c.G / 255, B: c.B / 255, A: c.A}
	}
	return e.plugin.Raw(c)
}

// Print renders c. The format used is requested when set, else original;
// requested is also passed to the plugin as the wanted sub-format. An
// unknown format yields "[r, g, b, a*255]".
func (r *Registry) Print(c RGBA, original, requested string) (string, error) {
	id := requested
	if id == "" {
		id = original
	}
	return r.PrintAs(c, id, requested)
}

// PrintAs renders c with format id, passing wanted to the plugin as the
// requested sub-format. The name format, for example, distinguishes
// "name" from the strict "toName".
func (r *Registry) PrintAs(c RGBA, id, wanted string) (string, error) {
	e, ok := r.lookup(id)
	if !ok {
		return "[" + units.FormatFloat(c.R) + ", " + units.FormatFloat(c.G) + ", " +
			units.FormatFloat(c.B) + ", " + units.FormatFloat(c.A*255) + "]", nil
	}
	return e.plugin.Stringify(c, Request{
		Wanted:  wanted,
		Options: e.opts,
		Printer: printer{r},
	})
}

type printer struct{ r *Registry }

func (p printer) Print(c RGBA, id string) (string, error) {
	return p.r.Print(c, id, "")
}
