package frost

import (
	"errors"
	"sort"
	"sync"
)

// BlurFilter blurs a working buffer.
//
// Apply writes the blurred src into dst. Both surfaces have identical
// dimensions. Pixels outside the buffer are sampled by clamping to the
// nearest edge, and alpha is blurred along with color. Radius is in
// working-buffer pixels; implementations clamp it to [1, MaxBlurRadius].
// Apply blocks until dst is complete.
type BlurFilter interface {
	// Name returns the registry name of the filter (e.g., "gaussian").
	Name() string

	// Apply blurs src into dst.
	Apply(dst, src *Surface, radius int) error
}

// FilterFactory creates a BlurFilter instance.
type FilterFactory func() (BlurFilter, error)

// FilterEntry describes a registered blur filter.
type FilterEntry struct {
	// Name is the unique identifier for this filter.
	Name string

	// Priority determines selection order (higher = preferred).
	// Built-in priorities:
	//   - 50: parallel CPU Gaussian
	//   - 10: serial CPU Gaussian
	//   - 5: three-pass box
	//   - 1: bild Gaussian
	Priority int

	// Factory creates filter instances.
	Factory FilterFactory

	// Available reports whether the filter can run on this system.
	Available func() bool
}

// Errors.
var (
	// ErrNoFilterAvailable is returned when no blur filter is registered
	// or available on the current system.
	ErrNoFilterAvailable = errors.New("frost: no blur filter available")

	// ErrNilSurface is returned when a filter receives a nil surface.
	ErrNilSurface = errors.New("frost: nil surface")

	// ErrSurfaceSize is returned when source and destination surfaces
	// differ in size.
	ErrSurfaceSize = errors.New("frost: surface sizes differ")
)

// FilterNotFoundError indicates a named filter is not registered.
type FilterNotFoundError struct {
	Name string
}

func (e *FilterNotFoundError) Error() string {
	return "frost: blur filter not found: " + e.Name
}

// FilterUnavailableError indicates a filter is registered but cannot run
// on this system.
type FilterUnavailableError struct {
	Name string
}

func (e *FilterUnavailableError) Error() string {
	return "frost: blur filter unavailable: " + e.Name
}

// FilterRegistry manages registered blur filters.
// The zero value is ready to use.
type FilterRegistry struct {
	mu      sync.RWMutex
	entries map[string]*FilterEntry
}

// globalRegistry is the default registry, holding the built-in filters.
var globalRegistry = &FilterRegistry{}

// NewFilterRegistry creates an empty registry.
// Most code should use the global registry via RegisterFilter and NewFilter.
func NewFilterRegistry() *FilterRegistry {
	return &FilterRegistry{
		entries: make(map[string]*FilterEntry),
	}
}

// RegisterFilter adds a filter to the global registry.
// If available is nil, the filter is assumed always available.
// Registering an existing name replaces the previous entry.
func RegisterFilter(name string, priority int, factory FilterFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// UnregisterFilter removes a filter from the global registry.
func UnregisterFilter(name string) {
	globalRegistry.Unregister(name)
}

// Filters returns all registered filter names sorted by priority
// (highest first).
func Filters() []string {
	return globalRegistry.List()
}

// AvailableFilters returns the names of available filters sorted by priority.
func AvailableFilters() []string {
	return globalRegistry.Available()
}

// NewFilter creates the best available filter from the global registry.
func NewFilter() (BlurFilter, error) {
	return globalRegistry.NewFilter()
}

// NewFilterByName creates a specific filter from the global registry.
func NewFilterByName(name string) (BlurFilter, error) {
	return globalRegistry.NewFilterByName(name)
}

// Register adds a filter to this registry.
func (r *FilterRegistry) Register(name string, priority int, factory FilterFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*FilterEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &FilterEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a filter from this registry.
func (r *FilterRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// Get returns a copy of the entry for name.
func (r *FilterRegistry) Get(name string) (FilterEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return FilterEntry{}, false
	}
	return *entry, true
}

// List returns all registered filter names sorted by priority.
func (r *FilterRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns the names of available filters sorted by priority.
func (r *FilterRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// NewFilter creates the highest-priority available filter. If a factory
// fails, the next filter is tried.
func (r *FilterRegistry) NewFilter() (BlurFilter, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	var lastErr error
	for _, name := range available {
		f, err := r.NewFilterByName(name)
		if err == nil {
			return f, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoFilterAvailable
}

// NewFilterByName creates a specific filter.
func (r *FilterRegistry) NewFilterByName(name string) (BlurFilter, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &FilterNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &FilterUnavailableError{Name: name}
	}

	return entry.Factory()
}

// sortedNames returns filter names by descending priority, ties broken by
// name. Must be called with lock held.
func (r *FilterRegistry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*FilterEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// checkSurfaces validates the arguments of BlurFilter.Apply.
func checkSurfaces(dst, src *Surface) error {
	if dst == nil || src == nil {
		return ErrNilSurface
	}
	if dst.width != src.width || dst.height != src.height {
		return ErrSurfaceSize
	}
	return nil
}
