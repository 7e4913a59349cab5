// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or use this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBuffer is a Buffer that does not come from bytebufferpool.
type mockBuffer struct{ bytes.Buffer }

func (m *mockBuffer) Set(p []byte)       { m.Buffer.Reset(); m.Buffer.Write(p) }
func (m *mockBuffer) SetString(s string) { m.Buffer.Reset(); m.Buffer.WriteString(s) }

func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "WriteString",
			setup: func(buf Buffer) {
				buf.WriteString(`{"id":null}`)
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, `{"id":null}`, buf.String())
				assert.Equal(t, 11, buf.Len())
			},
		},
		{
			name: "Mixed writes",
			setup: func(buf Buffer) {
				buf.Write([]byte(`"brand=`))
				buf.WriteByte('\\')
				buf.WriteString(`"x`)
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, `"brand=\"x`, buf.String())
			},
		},
		{
			name: "SetString replaces content",
			setup: func(buf Buffer) {
				buf.WriteString("initial")
				buf.SetString("replaced")
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "replaced", buf.String())
			},
		},
		{
			name: "ReadFrom",
			setup: func(buf Buffer) {
				buf.ReadFrom(strings.NewReader("payment_id,flow\n"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, []byte("payment_id,flow\n"), buf.Bytes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

func TestBufferWriteTo(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	buf.WriteString("pay_1,txn_123,att_1,\n")

	var out bytes.Buffer
	n, err := buf.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(21), n)
	assert.Equal(t, "pay_1,txn_123,att_1,\n", out.String())
}

func TestPoolPutNonByteBuffer(t *testing.T) {
	// Must not panic.
	Default.Put(&mockBuffer{})
}

func TestBuild(t *testing.T) {
	got := Build(func(b Buffer) {
		b.WriteString("a")
		b.WriteByte(',')
		b.WriteString("b")
	})
	assert.Equal(t, "a,b", got)

	// A second build starts from an empty buffer.
	got = Build(func(b Buffer) { b.WriteString("c") })
	assert.Equal(t, "c", got)
}

func TestBuildConcurrent(t *testing.T) {
	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	results := make([]string, goroutines)

	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			results[id] = Build(func(b Buffer) {
				for range 10 {
					b.WriteByte('x')
				}
			})
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, strings.Repeat("x", 10), r)
	}
}
