// Package readiness implements the handshake between the host and the
// isolated process: two pipes carrying length-prefixed protobuf wire
// records. Each side blocks in read(2) until the other signals.
package readiness

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"google.golang.org/protobuf/encoding/protowire"

	errs "nsboot/pkg/errors"
)

// MaxFrameSize bounds a single record. Signal refuses larger records and
// Wait treats a larger length prefix as a malformed frame.
const MaxFrameSize = 1 << 20

var (
	// ErrUnexpectedMessage is returned by Expect when a valid frame of the
	// wrong kind arrives.
	ErrUnexpectedMessage = errors.New("unexpected readiness message")
	ErrFrameTooLarge     = errors.New("readiness frame too large")
)

// IsMalformed reports whether err came from an undecodable frame.
func IsMalformed(err error) bool {
	return errors.Is(err, errMalformed)
}

// Endpoint is one side of the channel.
type Endpoint struct {
	r  io.ReadCloser
	w  io.WriteCloser
	br *bufio.Reader

	wmu       sync.Mutex
	closeOnce sync.Once
}

// NewEndpoint reads frames from r and writes frames to w.
func NewEndpoint(r io.ReadCloser, w io.WriteCloser) *Endpoint {
	return &Endpoint{r: r, w: w, br: bufio.NewReader(r)}
}

// Signal writes msg as one frame with a single write.
func (e *Endpoint) Signal(msg Message) error {
	rec := msg.MarshalWire()
	if len(rec) > MaxFrameSize {
		return fmt.Errorf("%w: %s record is %d bytes, limit %d", ErrFrameTooLarge, msg.Kind, len(rec), MaxFrameSize)
	}
	frame := protowire.AppendVarint(make([]byte, 0, len(rec)+binary.MaxVarintLen32), uint64(len(rec)))
	frame = append(frame, rec...)

	e.wmu.Lock()
	defer e.wmu.Unlock()

	if _, err := e.w.Write(frame); err != nil {
		return fmt.Errorf("failed to signal %s: %w", msg.Kind, err)
	}
	return nil
}

// Wait blocks until the peer signals. It returns io.EOF when the peer closed
// its end at a frame boundary.
func (e *Endpoint) Wait() (Message, error) {
	size, err := binary.ReadUvarint(e.br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Message{}, io.EOF
		}
		return Message{}, fmt.Errorf("%w: length prefix: %v", errMalformed, err)
	}
	if size == 0 || size > MaxFrameSize {
		return Message{}, fmt.Errorf("%w: frame size %d", errMalformed, size)
	}

	rec := make([]byte, size)
	if _, err := io.ReadFull(e.br, rec); err != nil {
		return Message{}, fmt.Errorf("%w: truncated frame: %v", errMalformed, err)
	}

	var msg Message
	if err := msg.UnmarshalWire(rec); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// Expect waits for a message of the given kind. An abort from the peer
// yields errs.ErrAborted with the peer's reason.
func (e *Endpoint) Expect(kind Kind) (Message, error) {
	msg, err := e.Wait()
	if err != nil {
		return Message{}, err
	}
	if msg.Kind == KindAbort {
		return msg, fmt.Errorf("%w: %s", errs.ErrAborted, msg.Reason)
	}
	if msg.Kind != kind {
		return msg, fmt.Errorf("%w: got %s, want %s", ErrUnexpectedMessage, msg.Kind, kind)
	}
	return msg, nil
}

// Close releases both pipe ends. It is safe to call more than once.
func (e *Endpoint) Close() error {
	var err error
	e.closeOnce.Do(func() {
		werr := e.w.Close()
		rerr := e.r.Close()
		err = errors.Join(werr, rerr)
	})
	return err
}

// Pipes holds both pipe pairs of one launch until the child is started.
type Pipes struct {
	hostRead   *os.File
	hostWrite  *os.File
	childRead  *os.File
	childWrite *os.File
}

// NewPipes creates the two pipes of one launch. Every descriptor is
// close-on-exec.
func NewPipes() (*Pipes, error) {
	toChildR, toChildW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create host-to-child pipe: %w", err)
	}
	toHostR, toHostW, err := os.Pipe()
	if err != nil {
		toChildR.Close()
		toChildW.Close()
		return nil, fmt.Errorf("failed to create child-to-host pipe: %w", err)
	}
	return &Pipes{
		hostRead:   toHostR,
		hostWrite:  toChildW,
		childRead:  toChildR,
		childWrite: toHostW,
	}, nil
}

// ChildFiles returns the child's ends in descriptor order: the first becomes
// ChildReadFD and the second ChildWriteFD when passed as ExtraFiles.
func (p *Pipes) ChildFiles() []*os.File {
	return []*os.File{p.childRead, p.childWrite}
}

// Host returns the host endpoint.
func (p *Pipes) Host() *Endpoint {
	return NewEndpoint(p.hostRead, p.hostWrite)
}

// CloseChildEnds closes the host's copies of the child's ends. Called once
// the child has started, so the child's exit or exec shows up as EOF.
func (p *Pipes) CloseChildEnds() {
	p.childRead.Close()
	p.childWrite.Close()
}

// Close closes all four descriptors.
func (p *Pipes) Close() {
	p.CloseChildEnds()
	p.hostRead.Close()
	p.hostWrite.Close()
}
