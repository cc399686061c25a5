// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Set(p []byte)
	SetString(s string)
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the buffer pool shared by the logger and by the prober when it
// captures the standard output of external tools.
//
// Example usage for capturing a subprocess:
//
//	buf := gc.Default.Get()
//	defer func() {
//		buf.Reset()
//		gc.Default.Put(buf)
//	}()
//
//	cmd := exec.CommandContext(ctx, "/usr/libexec/java_home", "-v", "1.6+")
//	cmd.Stdout = buf
//	if err := cmd.Run(); err != nil {
//		return err
//	}
//	home := strings.TrimSpace(buf.String())
//
// Bytes returned by Buffer.Bytes alias pool memory; copy them before the
// buffer is put back.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// Copy returns a copy of the buffer contents that stays valid after the
// buffer is returned to the pool.
func Copy(b Buffer) []byte {
	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out
}
