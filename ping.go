package main

import (
	"fmt"
	"io"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// Ping sends count ICMP echo requests to host, printing one line per
// reply and a summary of round-trip statistics to out. With privileged
// set it uses raw ICMP sockets (root or CAP_NET_RAW); otherwise it falls
// back to unprivileged UDP echo, which works without elevation on Linux
// and macOS.
func Ping(host string, count int, privileged bool, out io.Writer) error {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return err
	}
	pinger.Count = count
	pinger.Interval = time.Second
	pinger.Timeout = time.Duration(count) * 2 * time.Second
	pinger.SetPrivileged(privileged)

	pinger.OnRecv = func(pkt *probing.Packet) {
		fmt.Fprintf(out, "Reply from %s: seq=%d time=%v\n", pkt.IPAddr, pkt.Seq, pkt.Rtt)
	}
	pinger.OnDuplicateRecv = func(pkt *probing.Packet) {
		fmt.Fprintf(out, "Reply from %s: seq=%d time=%v (DUP!)\n", pkt.IPAddr, pkt.Seq, pkt.Rtt)
	}

	if err := pinger.Run(); err != nil {
		return err
	}

	stats := pinger.Statistics()
	lost := stats.PacketsSent - stats.PacketsRecv
	fmt.Fprintf(out, "\nPing statistics for %s:\n", stats.Addr)
	fmt.Fprintf(out, "    Packets: Sent = %d, Received = %d, Lost = %d (%.0f%% loss)\n",
		stats.PacketsSent, stats.PacketsRecv, lost, stats.PacketLoss)
	if stats.PacketsRecv > 0 {
		fmt.Fprintln(out, "Approximate round trip times in milli-seconds:")
		fmt.Fprintf(out, "    Minimum = %v, Maximum = %v, Average = %v\n",
			stats.MinRtt, stats.MaxRtt, stats.AvgRtt)
	}
	return nil
}
