package main

type Flags struct {
	URL        string `short:"u" long:"url" description:"URL to download"`
	Output     string `long:"to" description:"output file for a download or an extraction"`
	Store      string `short:"s" long:"store" description:"archive file to append the downloaded payload to (a .dqb extension selects the quantum encoding)"`
	Load       string `short:"l" long:"load" description:"archive file to extract an entry from"`
	Take       string `short:"t" long:"take" description:"entry name to extract from the archive"`
	List       string `long:"list" description:"list the entries of the given archive file; a glob pattern argument filters by name" value-name:"DB"`
	PingHost   string `short:"p" long:"ping" description:"host to send ICMP echo requests to"`
	PingCount  int    `short:"c" long:"count" description:"number of echo requests to send (default 4)"`
	Privileged bool   `long:"privileged" description:"use raw ICMP sockets instead of unprivileged UDP echo"`
	Insecure   bool   `long:"insecure" description:"skip TLS certificate verification when downloading"`
	Hash       bool   `long:"sha256" description:"show the SHA-256 hash of the downloaded asset"`
	Verify     string `long:"verify-sha256" description:"verify the downloaded asset checksum against the one provided"`
	Quiet      bool   `short:"q" long:"quiet" description:"only print essential output"`
	Version    bool   `short:"v" long:"version" description:"show version information"`
	Help       bool   `short:"h" long:"help" description:"show this help message"`
}
