// Package transport frames and relays mazebot wire payloads (grid, path,
// and navigator snapshots from the wire package) between a robot process
// and a base-station process over TCP.
package transport

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MessageType identifies the semantic meaning of a framed message.
type MessageType uint8

const (
	MsgHeartbeat MessageType = 0x01
	MsgConnect   MessageType = 0x02
	MsgAck       MessageType = 0x03

	// MsgSnapshot carries a wire.CombinedToBuffer payload: the robot's
	// current grid, planned path, and navigator state.
	MsgSnapshot MessageType = 0x10

	// MsgCommand carries a single byte command the base station sends to
	// the robot (start, stop, or reset a run).
	MsgCommand MessageType = 0x20
)

// HeaderSize is the fixed framing header: [Type:1][Flags:1][Seq:4][Ack:4][Len:2].
const HeaderSize = 12

const (
	FlagNone    uint8 = 0x00
	FlagNeedAck uint8 = 0x01
)

// Message is one framed unit on the wire.
type Message struct {
	Type    MessageType
	Flags   uint8
	Seq     uint32
	Ack     uint32
	Payload []byte
}

// Encode writes m to w as a length-prefixed frame.
func (m *Message) Encode(w io.Writer) error {
	if len(m.Payload) > 65535 {
		return errors.New("transport: payload exceeds maximum frame size")
	}

	header := make([]byte, HeaderSize)
	header[0] = byte(m.Type)
	header[1] = m.Flags
	binary.BigEndian.PutUint32(header[2:6], m.Seq)
	binary.BigEndian.PutUint32(header[6:10], m.Ack)
	binary.BigEndian.PutUint16(header[10:12], uint16(len(m.Payload)))

	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "writing frame header")
	}
	if len(m.Payload) > 0 {
		if _, err := w.Write(m.Payload); err != nil {
			return errors.Wrap(err, "writing frame payload")
		}
	}
	return nil
}

// Decode reads one framed message from r.
func Decode(r io.Reader) (*Message, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, errors.Wrap(err, "reading frame header")
	}

	payloadLen := binary.BigEndian.Uint16(header[10:12])
	m := &Message{
		Type:  MessageType(header[0]),
		Flags: header[1],
		Seq:   binary.BigEndian.Uint32(header[2:6]),
		Ack:   binary.BigEndian.Uint32(header[6:10]),
	}

	if payloadLen > 0 {
		m.Payload = make([]byte, payloadLen)
		if _, err := io.ReadFull(r, m.Payload); err != nil {
			return nil, errors.Wrap(err, "reading frame payload")
		}
	}
	return m, nil
}

// NewMessage builds a message with FlagNone and no sequencing, for callers
// that manage Seq/Ack themselves.
func NewMessage(t MessageType, payload []byte) *Message {
	return &Message{Type: t, Payload: payload}
}

// NewAckMessage builds an acknowledgment for a received sequence number.
// Link sends one of these automatically whenever an inbound message carries
// FlagNeedAck, so a base station can tell whether a snapshot actually
// reached the robot.
func NewAckMessage(ackSeq uint32) *Message {
	return &Message{Type: MsgAck, Ack: ackSeq}
}
