package domain

// ClassInfo holds the metadata extracted from a single compiled class:
// its name, direct supertype, implemented interfaces and the type names of
// every runtime-visible annotation found on the class, its fields and its
// methods. All names are dotted binary names (e.g. "com.example.Greeting").
type ClassInfo struct {
	Name        string
	SuperName   string
	Interfaces  []string
	Annotations []string
}

// HasAnnotation reports whether the class carries the given annotation type.
func (c *ClassInfo) HasAnnotation(name string) bool {
	for _, a := range c.Annotations {
		if a == name {
			return true
		}
	}
	return false
}

// IndexView is the query surface shared by a single TypeIndex and the
// composite assembled from many of them. Downstream annotation scanning only
// ever reads through this interface.
type IndexView interface {
	// Class returns the metadata for the named class, or nil if unknown.
	Class(name string) *ClassInfo
	// ClassesWithAnnotation returns every known class carrying the named
	// annotation type.
	ClassesWithAnnotation(name string) []*ClassInfo
	// NumClasses returns the number of distinct classes known to the view.
	NumClasses() int
}

// TypeIndex is an immutable index over a set of compiled classes.
// Build one through an IndexBuilder.
type TypeIndex struct {
	classes      map[string]*ClassInfo
	byAnnotation map[string][]*ClassInfo
}

var _ IndexView = (*TypeIndex)(nil)

// Class returns the metadata for the named class, or nil if unknown.
func (ti *TypeIndex) Class(name string) *ClassInfo {
	return ti.classes[name]
}

// ClassesWithAnnotation returns every class in this index carrying the named
// annotation type.
func (ti *TypeIndex) ClassesWithAnnotation(name string) []*ClassInfo {
	return ti.byAnnotation[name]
}

// NumClasses returns the number of classes in the index.
func (ti *TypeIndex) NumClasses() int {
	return len(ti.classes)
}

// AnnotationNames returns the distinct annotation type names seen anywhere in
// the index. Order is unspecified.
func (ti *TypeIndex) AnnotationNames() []string {
	names := make([]string, 0, len(ti.byAnnotation))
	for name := range ti.byAnnotation {
		names = append(names, name)
	}
	return names
}

// IndexBuilder accumulates class metadata and produces an immutable TypeIndex.
// Adding the same class name twice keeps the first entry; indexing is
// order-independent per class, so later duplicates carry no new information.
type IndexBuilder struct {
	classes      map[string]*ClassInfo
	byAnnotation map[string][]*ClassInfo
}

// NewIndexBuilder creates an empty IndexBuilder.
func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{
		classes:      make(map[string]*ClassInfo),
		byAnnotation: make(map[string][]*ClassInfo),
	}
}

// Add records one class. Nil entries and unnamed classes are ignored.
func (b *IndexBuilder) Add(info *ClassInfo) {
	if info == nil || info.Name == "" {
		return
	}
	if _, exists := b.classes[info.Name]; exists {
		return
	}
	b.classes[info.Name] = info
	for _, ann := range info.Annotations {
		b.byAnnotation[ann] = append(b.byAnnotation[ann], info)
	}
}

// Build completes the index. The builder must not be used afterwards.
func (b *IndexBuilder) Build() *TypeIndex {
	idx := &TypeIndex{
		classes:      b.classes,
		byAnnotation: b.byAnnotation,
	}
	b.classes = nil
	b.byAnnotation = nil
	return idx
}

// CompositeIndex is a read-only view over several constituent indexes.
// Lookups walk the constituents in input order, first match wins; given a
// fixed input list the result is deterministic.
type CompositeIndex struct {
	views []IndexView
}

var _ IndexView = (*CompositeIndex)(nil)

// NewCompositeIndex assembles a composite from the module index and the
// per-artifact indexes. Nil entries (artifacts whose indexing failed) are
// skipped; the module index is always included, even with no dependencies.
func NewCompositeIndex(moduleIndex IndexView, artifactIndexes ...IndexView) *CompositeIndex {
	views := make([]IndexView, 0, len(artifactIndexes)+1)
	if moduleIndex != nil {
		views = append(views, moduleIndex)
	}
	for _, v := range artifactIndexes {
		if v != nil {
			views = append(views, v)
		}
	}
	return &CompositeIndex{views: views}
}

// Class returns the first constituent's metadata for the named class.
func (ci *CompositeIndex) Class(name string) *ClassInfo {
	for _, v := range ci.views {
		if info := v.Class(name); info != nil {
			return info
		}
	}
	return nil
}

// ClassesWithAnnotation merges the constituents' results, keeping the first
// occurrence of each class name.
func (ci *CompositeIndex) ClassesWithAnnotation(name string) []*ClassInfo {
	var result []*ClassInfo
	seen := make(map[string]struct{})
	for _, v := range ci.views {
		for _, info := range v.ClassesWithAnnotation(name) {
			if _, dup := seen[info.Name]; dup {
				continue
			}
			seen[info.Name] = struct{}{}
			result = append(result, info)
		}
	}
	return result
}

// NumClasses counts the distinct class names across all constituents.
func (ci *CompositeIndex) NumClasses() int {
	seen := make(map[string]struct{})
	for _, v := range ci.views {
		switch idx := v.(type) {
		case *TypeIndex:
			for name := range idx.classes {
				seen[name] = struct{}{}
			}
		default:
			// Nested composites are not produced by the assembler but the
			// count stays correct if one shows up.
			seen = countInto(seen, v)
		}
	}
	return len(seen)
}

func countInto(seen map[string]struct{}, v IndexView) map[string]struct{} {
	ci, ok := v.(*CompositeIndex)
	if !ok {
		return seen
	}
	for _, inner := range ci.views {
		if ti, ok := inner.(*TypeIndex); ok {
			for name := range ti.classes {
				seen[name] = struct{}{}
			}
			continue
		}
		seen = countInto(seen, inner)
	}
	return seen
}
