/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import (
	"encoding/binary"
	"fmt"
	"net"
)

// TCPCollector accepts IPFIX exporters over a stream transport and yields
// one decoded MessageBuffer per Message, framing the stream on the Message
// Header's own Length field (RFC 7011 §10.2 requires stream transports to
// preserve Message boundaries this way, since TCP gives no datagram
// framing of its own).
type TCPCollector struct {
	ln net.Listener
}

// ListenTCP opens a TCP listener for a TCPCollector.
func ListenTCP(addr string) (*TCPCollector, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening for ipfix exporters: %w", err)
	}
	return &TCPCollector{ln: ln}, nil
}

// Addr returns the address the collector is listening on.
func (c *TCPCollector) Addr() net.Addr { return c.ln.Addr() }

// Close stops accepting connections.
func (c *TCPCollector) Close() error { return c.ln.Close() }

// Accept blocks for the next exporter connection and returns a function
// that reads one Message at a time from it until the connection closes.
func (c *TCPCollector) Accept() (next func() (*MessageBuffer, error), closeConn func() error, err error) {
	conn, err := c.ln.Accept()
	if err != nil {
		return nil, nil, fmt.Errorf("accepting exporter connection: %w", err)
	}
	next = func() (*MessageBuffer, error) {
		return readFramedMessage(conn)
	}
	return next, conn.Close, nil
}

// readFramedMessage reads one Message from a stream connection: first the
// 16-octet header (to learn the total Message length), then the
// announced remainder.
func readFramedMessage(r net.Conn) (*MessageBuffer, error) {
	head := make([]byte, MessageHeaderLength)
	if _, err := readFull(r, head); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint16(head[2:4])
	if int(length) < MessageHeaderLength {
		return nil, MalformedMessage("message length shorter than header")
	}
	rest := make([]byte, int(length)-MessageHeaderLength)
	if _, err := readFull(r, rest); err != nil {
		return nil, err
	}
	full := append(head, rest...)
	return FromBytes(full)
}

// TCPExporter writes finalized Messages to a single long-lived connection
// to a Collecting Process.
type TCPExporter struct {
	conn net.Conn
}

// DialTCP opens an exporter connection to addr.
func DialTCP(addr string) (*TCPExporter, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dialing ipfix collector: %w", err)
	}
	return &TCPExporter{conn: conn}, nil
}

// Send writes a finalized MessageBuffer to the collector.
func (e *TCPExporter) Send(m *MessageBuffer) error {
	_, err := m.WriteMessage(e.conn)
	return err
}

// Close closes the exporter's connection.
func (e *TCPExporter) Close() error { return e.conn.Close() }
