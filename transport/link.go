package transport

import (
	"crypto/tls"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Role selects which side of the link this process plays.
type Role uint8

const (
	RoleNone Role = iota
	RoleServer
	RoleClient
)

func (r Role) String() string {
	switch r {
	case RoleServer:
		return "server"
	case RoleClient:
		return "client"
	default:
		return "none"
	}
}

// Config holds the link's network configuration.
type Config struct {
	Role Role

	// Address to bind (server) or dial (client).
	Address string

	// TLS is nil for plaintext, debug-only links.
	TLS *tls.Config

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	// HeartbeatInterval governs how often Link sends an unsolicited
	// MsgHeartbeat once connected. Zero disables heartbeats.
	HeartbeatInterval time.Duration
}

// DefaultConfig returns production-safe defaults with TLS left for the
// caller to configure.
func DefaultConfig() *Config {
	return &Config{
		Role:              RoleNone,
		Address:           ":7777",
		ConnectTimeout:    5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Second,
		HeartbeatInterval: 15 * time.Second,
	}
}

// Link is a single-peer framed connection: the robot talks to exactly one
// base station, so there is no peer roster here, unlike a multi-peer
// transport. Received messages are delivered on Inbound; Send is safe to
// call from any goroutine.
type Link struct {
	config   *Config
	listener net.Listener
	conn     net.Conn
	connMu   sync.Mutex

	Inbound chan *Message

	seq     atomic.Uint32
	running atomic.Bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewLink creates a link with the given configuration. Call Start to
// actually bind or dial.
func NewLink(cfg *Config) *Link {
	return &Link{
		config:  cfg,
		Inbound: make(chan *Message, 64),
		stopCh:  make(chan struct{}),
	}
}

// Start binds and accepts (RoleServer) or dials (RoleClient) a connection,
// then begins the background read loop.
func (l *Link) Start() error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}

	switch l.config.Role {
	case RoleServer:
		return l.startServer()
	case RoleClient:
		return l.startClient()
	default:
		return nil
	}
}

func (l *Link) startServer() error {
	var ln net.Listener
	var err error
	if l.config.TLS != nil {
		ln, err = tls.Listen("tcp", l.config.Address, l.config.TLS)
	} else {
		ln, err = net.Listen("tcp", l.config.Address)
	}
	if err != nil {
		l.running.Store(false)
		return errors.Wrap(err, "binding listener")
	}
	l.listener = ln

	l.wg.Add(1)
	go l.acceptLoop()
	return nil
}

func (l *Link) acceptLoop() {
	defer l.wg.Done()
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			select {
			case <-l.stopCh:
				return
			default:
				continue
			}
		}
		l.setConn(conn)
		l.wg.Add(1)
		go l.readLoop(conn)
		l.startHeartbeat()
		return
	}
}

func (l *Link) startClient() error {
	dialer := net.Dialer{Timeout: l.config.ConnectTimeout}
	var conn net.Conn
	var err error
	if l.config.TLS != nil {
		conn, err = tls.DialWithDialer(&dialer, "tcp", l.config.Address, l.config.TLS)
	} else {
		conn, err = dialer.Dial("tcp", l.config.Address)
	}
	if err != nil {
		l.running.Store(false)
		return errors.Wrap(err, "dialing peer")
	}

	l.setConn(conn)
	l.wg.Add(1)
	go l.readLoop(conn)
	l.startHeartbeat()
	return nil
}

// readLoop decodes frames off conn, acknowledging any that request it and
// swallowing heartbeats itself rather than handing them to the caller on
// Inbound. Acks are still delivered, since a caller that set FlagNeedAck
// wants to observe the reply.
func (l *Link) readLoop(conn net.Conn) {
	defer l.wg.Done()
	for {
		msg, err := Decode(conn)
		if err != nil {
			return
		}

		if msg.Flags&FlagNeedAck != 0 {
			l.Send(NewAckMessage(msg.Seq))
		}

		if msg.Type == MsgHeartbeat {
			continue
		}

		select {
		case l.Inbound <- msg:
		case <-l.stopCh:
			return
		}
	}
}

// startHeartbeat launches the background ticker that keeps a base station
// informed the robot is still alive between snapshots. A zero
// HeartbeatInterval disables it.
func (l *Link) startHeartbeat() {
	if l.config.HeartbeatInterval <= 0 {
		return
	}
	l.wg.Add(1)
	go l.heartbeatLoop()
}

func (l *Link) heartbeatLoop() {
	defer l.wg.Done()
	ticker := time.NewTicker(l.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Send(NewMessage(MsgHeartbeat, nil))
		case <-l.stopCh:
			return
		}
	}
}

func (l *Link) setConn(conn net.Conn) {
	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
}

// Send transmits msg over the current connection, stamping Seq from an
// internal counter unless the caller has already set a non-zero Seq. It
// returns an error if no connection is established.
func (l *Link) Send(msg *Message) error {
	l.connMu.Lock()
	conn := l.conn
	l.connMu.Unlock()

	if conn == nil {
		return errors.New("transport: link has no active connection")
	}

	if msg.Seq == 0 {
		msg.Seq = l.seq.Add(1)
	}
	if l.config.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(l.config.WriteTimeout))
	}
	return msg.Encode(conn)
}

// Stop closes the connection and listener, if any, and waits for the
// background goroutines to exit.
func (l *Link) Stop() error {
	if !l.running.CompareAndSwap(true, false) {
		return nil
	}
	close(l.stopCh)

	if l.listener != nil {
		l.listener.Close()
	}
	l.connMu.Lock()
	if l.conn != nil {
		l.conn.Close()
	}
	l.connMu.Unlock()

	l.wg.Wait()
	return nil
}
