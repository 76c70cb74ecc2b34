// Package testutil provides shared test helpers for the classdex project.
// Import this in test files to avoid duplicating class file and jar fixture
// construction.
package testutil

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ClassFile describes a synthetic compiled class used as test input.
// All names are binary names with dots; they are converted to the internal
// slash form when the bytes are assembled.
type ClassFile struct {
	Name        string
	SuperName   string
	Interfaces  []string
	Annotations []string
}

// Bytes assembles a minimal but structurally valid class file: magic,
// constant pool, this/super/interfaces, empty member tables and, when
// annotations are present, a RuntimeVisibleAnnotations attribute.
func (c ClassFile) Bytes() []byte {
	var pool bytes.Buffer
	next := uint16(1)

	addUtf8 := func(s string) uint16 {
		pool.WriteByte(1)
		_ = binary.Write(&pool, binary.BigEndian, uint16(len(s)))
		pool.WriteString(s)
		idx := next
		next++
		return idx
	}
	addClass := func(name string) uint16 {
		utf8 := addUtf8(internalName(name))
		pool.WriteByte(7)
		_ = binary.Write(&pool, binary.BigEndian, utf8)
		idx := next
		next++
		return idx
	}

	thisIdx := addClass(c.Name)
	superIdx := uint16(0)
	if c.SuperName != "" {
		superIdx = addClass(c.SuperName)
	}
	ifaceIdxs := make([]uint16, 0, len(c.Interfaces))
	for _, iface := range c.Interfaces {
		ifaceIdxs = append(ifaceIdxs, addClass(iface))
	}
	annoIdxs := make([]uint16, 0, len(c.Annotations))
	for _, anno := range c.Annotations {
		annoIdxs = append(annoIdxs, addUtf8("L"+internalName(anno)+";"))
	}
	var attrNameIdx uint16
	if len(annoIdxs) > 0 {
		attrNameIdx = addUtf8("RuntimeVisibleAnnotations")
	}

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, uint32(0xCAFEBABE))
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))  // minor version
	_ = binary.Write(&buf, binary.BigEndian, uint16(52)) // major version, Java 8
	_ = binary.Write(&buf, binary.BigEndian, next)       // constant pool count
	buf.Write(pool.Bytes())
	_ = binary.Write(&buf, binary.BigEndian, uint16(0x0021)) // ACC_PUBLIC | ACC_SUPER
	_ = binary.Write(&buf, binary.BigEndian, thisIdx)
	_ = binary.Write(&buf, binary.BigEndian, superIdx)
	_ = binary.Write(&buf, binary.BigEndian, uint16(len(ifaceIdxs)))
	for _, idx := range ifaceIdxs {
		_ = binary.Write(&buf, binary.BigEndian, idx)
	}
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // fields
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // methods

	if len(annoIdxs) == 0 {
		_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // attributes
		return buf.Bytes()
	}

	_ = binary.Write(&buf, binary.BigEndian, uint16(1)) // attributes
	_ = binary.Write(&buf, binary.BigEndian, attrNameIdx)
	// num_annotations plus type_index and an empty pair count per annotation
	_ = binary.Write(&buf, binary.BigEndian, uint32(2+4*len(annoIdxs)))
	_ = binary.Write(&buf, binary.BigEndian, uint16(len(annoIdxs)))
	for _, idx := range annoIdxs {
		_ = binary.Write(&buf, binary.BigEndian, idx)
		_ = binary.Write(&buf, binary.BigEndian, uint16(0))
	}
	return buf.Bytes()
}

// WriteClassFile writes the class bytes under dir, mirroring the package
// structure the way a compiler output directory would.
func WriteClassFile(t *testing.T, dir string, class ClassFile) string {
	t.Helper()
	path := dir + "/" + internalName(class.Name) + ".class"
	require.NoError(t, os.MkdirAll(path[:strings.LastIndex(path, "/")], 0o755))
	require.NoError(t, os.WriteFile(path, class.Bytes(), 0o644))
	return path
}

// WriteJar writes a jar archive at path containing the given classes.
func WriteJar(t *testing.T, path string, classes ...ClassFile) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, class := range classes {
		w, err := zw.Create(internalName(class.Name) + ".class")
		require.NoError(t, err)
		_, err = w.Write(class.Bytes())
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func internalName(binary string) string {
	return strings.ReplaceAll(binary, ".", "/")
}
