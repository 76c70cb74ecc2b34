package classfile_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/classdex/internal/adapters/classfile"
	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/testutil"
)

func TestParse_FullClass(t *testing.T) {
	class := testutil.ClassFile{
		Name:       "com.example.GreetingResource",
		SuperName:  "java.lang.Object",
		Interfaces: []string{"java.io.Serializable", "java.lang.Comparable"},
		Annotations: []string{
			"jakarta.ws.rs.Path",
			"jakarta.enterprise.context.ApplicationScoped",
		},
	}

	info, err := classfile.NewParser().Parse(bytes.NewReader(class.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, "com.example.GreetingResource", info.Name)
	assert.Equal(t, "java.lang.Object", info.SuperName)
	assert.Equal(t, []string{"java.io.Serializable", "java.lang.Comparable"}, info.Interfaces)
	// Annotation names come back sorted regardless of declaration order.
	assert.Equal(t, []string{
		"jakarta.enterprise.context.ApplicationScoped",
		"jakarta.ws.rs.Path",
	}, info.Annotations)
}

func TestParse_NoSuperclass(t *testing.T) {
	// java.lang.Object is the only class with super_class zero.
	class := testutil.ClassFile{Name: "java.lang.Object"}

	info, err := classfile.NewParser().Parse(bytes.NewReader(class.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, "java.lang.Object", info.Name)
	assert.Empty(t, info.SuperName)
	assert.Empty(t, info.Interfaces)
	assert.Empty(t, info.Annotations)
}

func TestParse_BadMagic(t *testing.T) {
	data := testutil.ClassFile{Name: "com.example.Foo"}.Bytes()
	data[0] = 0x00

	_, err := classfile.NewParser().Parse(bytes.NewReader(data))
	require.ErrorIs(t, err, domain.ErrMalformedClassFile)
}

func TestParse_Truncated(t *testing.T) {
	data := testutil.ClassFile{
		Name:      "com.example.Foo",
		SuperName: "java.lang.Object",
	}.Bytes()

	_, err := classfile.NewParser().Parse(bytes.NewReader(data[:len(data)-3]))
	require.ErrorIs(t, err, domain.ErrMalformedClassFile)
}

func TestParse_Empty(t *testing.T) {
	_, err := classfile.NewParser().Parse(bytes.NewReader(nil))
	require.ErrorIs(t, err, domain.ErrMalformedClassFile)
}
