package utils

import "net"

// LocalIP returns the LAN address of this machine, found by opening a UDP
// socket toward a public resolver and reading the chosen source address.
// No packet is ever sent. Falls back to loopback when the network is
// unreachable.
func LocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "127.0.0.1"
	}

	return addr.IP.String()
}
