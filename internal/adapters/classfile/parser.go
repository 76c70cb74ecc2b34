// Package classfile decodes compiled Java class files into type/annotation
// metadata. Only the structures needed for documentation indexing are
// decoded: constant pool, class hierarchy and runtime-visible annotations on
// the class, its fields and its methods.
package classfile

import (
	"encoding/binary"
	"io"
	"slices"
	"strings"

	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/core/ports"
	"go.trai.ch/zerr"
)

const classFileMagic = 0xCAFEBABE

// Constant pool tags, JVMS §4.4.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

const annotationsAttribute = "RuntimeVisibleAnnotations"

var _ ports.ClassParser = (*Parser)(nil)

// Parser implements ports.ClassParser for the JVM class file format.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes one class file from r.
func (p *Parser) Parse(r io.Reader) (*domain.ClassInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read class file")
	}

	cr := &reader{buf: data}

	if cr.u4() != classFileMagic {
		return nil, zerr.Wrap(domain.ErrMalformedClassFile, "bad magic number")
	}
	cr.skip(4) // minor and major version

	pool, err := readConstantPool(cr)
	if err != nil {
		return nil, err
	}

	cr.skip(2) // access flags

	info := &domain.ClassInfo{}

	thisClass := cr.u2()
	info.Name, err = pool.className(thisClass)
	if err != nil {
		return nil, err
	}

	superClass := cr.u2()
	if superClass != 0 { // java.lang.Object has no superclass
		info.SuperName, err = pool.className(superClass)
		if err != nil {
			return nil, err
		}
	}

	ifaceCount := int(cr.u2())
	for range ifaceCount {
		name, err := pool.className(cr.u2())
		if err != nil {
			return nil, err
		}
		info.Interfaces = append(info.Interfaces, name)
	}

	annotations := make(map[string]struct{})

	// Fields and methods share the member_info layout.
	for range 2 {
		memberCount := int(cr.u2())
		for range memberCount {
			cr.skip(6) // access flags, name index, descriptor index
			if err := readAttributes(cr, pool, annotations); err != nil {
				return nil, err
			}
		}
	}

	// Class-level attributes.
	if err := readAttributes(cr, pool, annotations); err != nil {
		return nil, err
	}

	if cr.failed() {
		return nil, zerr.Wrap(domain.ErrMalformedClassFile, "truncated class file")
	}

	for ann := range annotations {
		info.Annotations = append(info.Annotations, ann)
	}
	slices.Sort(info.Annotations)
	return info, nil
}

// constantPool resolves utf8 and class entries by index.
type constantPool struct {
	utf8    map[uint16]string
	classes map[uint16]uint16 // class entry -> utf8 index of the internal name
}

func (cp *constantPool) className(idx uint16) (string, error) {
	nameIdx, ok := cp.classes[idx]
	if !ok {
		return "", zerr.Wrap(domain.ErrMalformedClassFile, "constant pool index is not a class")
	}
	name, ok := cp.utf8[nameIdx]
	if !ok {
		return "", zerr.Wrap(domain.ErrMalformedClassFile, "class name index is not a utf8 entry")
	}
	return internalToBinary(name), nil
}

func (cp *constantPool) annotationType(idx uint16) (string, error) {
	desc, ok := cp.utf8[idx]
	if !ok {
		return "", zerr.Wrap(domain.ErrMalformedClassFile, "annotation type index is not a utf8 entry")
	}
	return descriptorToBinary(desc), nil
}

func readConstantPool(cr *reader) (*constantPool, error) {
	count := int(cr.u2())
	pool := &constantPool{
		utf8:    make(map[uint16]string),
		classes: make(map[uint16]uint16),
	}

	// Entries are numbered 1..count-1; longs and doubles occupy two slots.
	for i := 1; i < count; i++ {
		tag := cr.u1()
		switch tag {
		case tagUtf8:
			length := int(cr.u2())
			pool.utf8[uint16(i)] = string(cr.bytes(length))
		case tagClass:
			pool.classes[uint16(i)] = cr.u2()
		case tagInteger, tagFloat, tagFieldref, tagMethodref, tagInterfaceMethodref,
			tagNameAndType, tagDynamic, tagInvokeDynamic:
			cr.skip(4)
		case tagLong, tagDouble:
			cr.skip(8)
			i++ // phantom second slot
		case tagString, tagMethodType, tagModule, tagPackage:
			cr.skip(2)
		case tagMethodHandle:
			cr.skip(3)
		default:
			return nil, zerr.Wrap(domain.ErrMalformedClassFile, "unknown constant pool tag")
		}
		if cr.failed() {
			return nil, zerr.Wrap(domain.ErrMalformedClassFile, "truncated constant pool")
		}
	}
	return pool, nil
}

// readAttributes walks one attributes table, collecting runtime-visible
// annotation type names into anns.
func readAttributes(cr *reader, pool *constantPool, anns map[string]struct{}) error {
	attrCount := int(cr.u2())
	for range attrCount {
		nameIdx := cr.u2()
		length := int(cr.u4())
		body := cr.bytes(length)
		if cr.failed() {
			return zerr.Wrap(domain.ErrMalformedClassFile, "truncated attribute")
		}
		if pool.utf8[nameIdx] != annotationsAttribute {
			continue
		}
		if err := readAnnotations(&reader{buf: body}, pool, anns); err != nil {
			return err
		}
	}
	return nil
}

func readAnnotations(cr *reader, pool *constantPool, anns map[string]struct{}) error {
	num := int(cr.u2())
	for range num {
		if err := readAnnotation(cr, pool, anns); err != nil {
			return err
		}
	}
	if cr.failed() {
		return zerr.Wrap(domain.ErrMalformedClassFile, "truncated annotations attribute")
	}
	return nil
}

func readAnnotation(cr *reader, pool *constantPool, anns map[string]struct{}) error {
	name, err := pool.annotationType(cr.u2())
	if err != nil {
		return err
	}
	anns[name] = struct{}{}

	pairs := int(cr.u2())
	for range pairs {
		cr.skip(2) // element name index
		if err := skipElementValue(cr, pool, anns); err != nil {
			return err
		}
	}
	return nil
}

// skipElementValue advances past one element_value structure, JVMS §4.7.16.1.
// Nested annotations still contribute their type names.
func skipElementValue(cr *reader, pool *constantPool, anns map[string]struct{}) error {
	tag := cr.u1()
	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's', 'c':
		cr.skip(2)
	case 'e':
		cr.skip(4) // type name and const name indexes
	case '@':
		return readAnnotation(cr, pool, anns)
	case '[':
		num := int(cr.u2())
		for range num {
			if err := skipElementValue(cr, pool, anns); err != nil {
				return err
			}
		}
	default:
		return zerr.Wrap(domain.ErrMalformedClassFile, "unknown element value tag")
	}
	return nil
}

// internalToBinary converts "com/example/Foo" to "com.example.Foo".
func internalToBinary(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// descriptorToBinary converts "Lcom/example/Ann;" to "com.example.Ann".
func descriptorToBinary(desc string) string {
	if strings.HasPrefix(desc, "L") && strings.HasSuffix(desc, ";") {
		desc = desc[1 : len(desc)-1]
	}
	return internalToBinary(desc)
}

// reader is a bounds-checked cursor over a class file. Out-of-range reads
// latch the fail flag and return zero values, so callers check once.
type reader struct {
	buf  []byte
	off  int
	fail bool
}

func (r *reader) failed() bool {
	return r.fail
}

func (r *reader) u1() uint8 {
	if r.off+1 > len(r.buf) {
		r.fail = true
		return 0
	}
	v := r.buf[r.off]
	r.off++
	return v
}

func (r *reader) u2() uint16 {
	if r.off+2 > len(r.buf) {
		r.fail = true
		return 0
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

func (r *reader) u4() uint32 {
	if r.off+4 > len(r.buf) {
		r.fail = true
		return 0
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

func (r *reader) bytes(n int) []byte {
	if n < 0 || r.off+n > len(r.buf) {
		r.fail = true
		return nil
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v
}

func (r *reader) skip(n int) {
	if r.off+n > len(r.buf) {
		r.fail = true
		return
	}
	r.off += n
}
