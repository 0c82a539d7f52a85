package tpg

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tarm/serial"
)

// Transport is the byte-level connection a Session drives. The protocol
// layer never opens or configures the physical link itself; port path,
// baud rate and read timeout are construction-time concerns of the caller.
type Transport interface {
	Write(b []byte) (int, error)
	// ReadLine returns one line up to and including its terminator.
	ReadLine() ([]byte, error)
	Close() error
}

// Conn is a Transport over a serial port or a TCP socket.
type Conn struct {
	conn io.ReadWriteCloser
	r    *bufio.Reader
}

// ConnConfig carries the serial parameters used when a link string names a
// serial device. The controller ships with 9600 8N1.
type ConnConfig struct {
	Baud        int
	ReadTimeout time.Duration
}

// Connect attaches to a controller via serial device or TCP socket.
// Use socket://[host]:[port] or tcp://[host]:[port] for network links,
// a plain device path (or file://) for direct serial connections.
func Connect(link string, cfg ConnConfig) (*Conn, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, err
	}

	if cfg.Baud == 0 {
		cfg.Baud = 9600
	}

	var conn io.ReadWriteCloser
	if u.Scheme == "socket" || u.Scheme == "tcp" {
		c, err := net.Dial("tcp", u.Host)
		if err != nil {
			return nil, err
		}
		c.(*net.TCPConn).SetKeepAlive(true)
		c.(*net.TCPConn).SetKeepAlivePeriod(30 * time.Second)
		conn = c
	} else if u.Scheme == "file" || u.Scheme == "" {
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		conn, err = serial.OpenPort(&serial.Config{
			Name:        path,
			Baud:        cfg.Baud,
			Size:        8,
			Parity:      serial.ParityNone,
			StopBits:    serial.Stop1,
			ReadTimeout: cfg.ReadTimeout,
		})
		if err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("can not find a valid connection string in %q", link)
	}

	return &Conn{conn: conn, r: bufio.NewReader(conn)}, nil
}

func (c *Conn) Write(b []byte) (int, error) {
	n, err := c.conn.Write(b)
	log.Debugf("Write b='%# x', n=%v, err=%v", b, n, err)
	return n, err
}

// ReadLine reads up to and including the next LF. The terminator stays in
// place so DecodeLine can verify the full CR LF sequence.
func (c *Conn) ReadLine() ([]byte, error) {
	b, err := c.r.ReadBytes(LF)
	log.Debugf("Read b='%# x', err=%v", b, err)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Close closes the underlying serial or network connection. Any blocked
// ReadLine fails with a transport error once the connection is gone.
func (c *Conn) Close() error {
	return c.conn.Close()
}
