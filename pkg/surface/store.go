package surface

import (
	"slices"

	"github.com/philipparndt/goeuclid/pkg/geometry"
)

// Element is a shape held by a Store
type Element struct {
	ID     string
	Kind   Kind
	Points []geometry.Vector2
	Text   string

	classes []string
}

// HasClass reports whether the element carries the class
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// Classes returns the element's classes in the order they were added
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// Store is an in-memory Surface. Front ends paint its layers every frame.
type Store struct {
	elements map[string]*Element
	layers   [layerCount][]*Element
	updates  uint64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{elements: make(map[string]*Element)}
}

// Create adds a shape. A shape whose id already exists is ignored.
func (s *Store) Create(shape Shape) {
	if _, exists := s.elements[shape.ID]; exists {
		return
	}

	e := &Element{
		ID:     shape.ID,
		Kind:   shape.Kind,
		Points: slices.Clone(shape.Points),
		Text:   shape.Text,
	}
	for _, class := range shape.Classes {
		if !e.HasClass(class) {
			e.classes = append(e.classes, class)
		}
	}

	s.elements[shape.ID] = e
	layer := shape.Kind.Layer()
	s.layers[layer] = append(s.layers[layer], e)
}

// Update repositions an existing shape
func (s *Store) Update(id string, points []geometry.Vector2) {
	e, ok := s.elements[id]
	if !ok {
		return
	}

	e.Points = append(e.Points[:0], points...)
	s.updates++
}

// AddClass adds a state class to a shape
func (s *Store) AddClass(id, class string) {
	e, ok := s.elements[id]
	if !ok || e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// RemoveClass removes a state class from a shape
func (s *Store) RemoveClass(id, class string) {
	e, ok := s.elements[id]
	if !ok {
		return
	}
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == class })
}

// Element returns the element with the given id
func (s *Store) Element(id string) (*Element, bool) {
	e, ok := s.elements[id]
	return e, ok
}

// Layer returns the elements of one layer in creation order
func (s *Store) Layer(layer Layer) []*Element {
	if layer < 0 || layer >= layerCount {
		return nil
	}
	return s.layers[layer]
}

// Each calls fn for every element in paint order
func (s *Store) Each(fn func(e *Element)) {
	for _, layer := range s.layers {
		for _, e := range layer {
			fn(e)
		}
	}
}

// Len returns the number of elements
func (s *Store) Len() int {
	return len(s.elements)
}

// Updates returns how many repositioning calls the store has applied
func (s *Store) Updates() uint64 {
	return s.updates
}
