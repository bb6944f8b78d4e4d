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
	"fmt"
	"net"
)

// udpMaxDatagram is large enough for any IPFIX Message a sane MTU
// configuration would produce; UDP gives datagram framing for free, so
// unlike TCPCollector there is no header-length pre-read needed.
const udpMaxDatagram = 65535

// UDPCollector receives one Message per UDP datagram.
type UDPCollector struct {
	conn *net.UDPConn
}

// ListenUDP opens a UDP socket for a UDPCollector.
func ListenUDP(addr string) (*UDPCollector, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolving ipfix collector address: %w", err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("listening for ipfix exporters: %w", err)
	}
	return &UDPCollector{conn: conn}, nil
}

// Close stops listening.
func (c *UDPCollector) Close() error { return c.conn.Close() }

// Receive blocks for the next datagram and decodes it as one Message.
func (c *UDPCollector) Receive() (*MessageBuffer, net.Addr, error) {
	buf := make([]byte, udpMaxDatagram)
	n, addr, err := c.conn.ReadFrom(buf)
	if err != nil {
		return nil, nil, fmt.Errorf("reading ipfix datagram: %w", err)
	}
	m, err := FromBytes(buf[:n])
	if err != nil {
		return nil, addr, err
	}
	return m, addr, nil
}

// UDPExporter sends each finalized Message as its own datagram. Per RFC
// 7011 §10.3.3, exporters over UDP must periodically retransmit active
// templates since there is no transport-level reliability; this type
// leaves that retransmission policy to the caller.
type UDPExporter struct {
	conn *net.UDPConn
}

// DialUDP opens an exporter socket to addr.
func DialUDP(addr string) (*UDPExporter, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolving ipfix collector address: %w", err)
	}
	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return nil, fmt.Errorf("dialing ipfix collector: %w", err)
	}
	return &UDPExporter{conn: conn}, nil
}

// Send writes a finalized MessageBuffer as a single datagram.
func (e *UDPExporter) Send(m *MessageBuffer) error {
	b, err := m.ToBytes()
	if err != nil {
		return err
	}
	if len(b) > udpMaxDatagram {
		return MalformedMessage("message exceeds maximum udp datagram size")
	}
	_, err = e.conn.Write(b)
	return err
}

// Close closes the exporter's socket.
func (e *UDPExporter) Close() error { return e.conn.Close() }
