package main

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/jessevdk/go-flags"
	pb "github.com/schollz/progressbar/v3"

	"github.com/zvinowanda/catch/dlb"
	"github.com/zvinowanda/catch/home"
)

var Version = "0.1.0"

var opts Flags

func fatal(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
	os.Exit(1)
}

// IsUrl returns true if s is a valid URL.
func IsUrl(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func IsLocalFile(s string) bool {
	_, err := os.Stat(s)
	return err == nil
}

// variantForPath selects the archive encoding from the destination file
// extension: '.dqb' stores quantum entries, anything else (conventionally
// '.dlb') stores standard ones.
func variantForPath(path string) dlb.Variant {
	if strings.HasSuffix(path, ".dqb") {
		return dlb.Quantum
	}
	return dlb.Standard
}

// applyConfig fills in flags the user left unset from the configuration
// file. Explicit flags always win.
func applyConfig(conf *Config) {
	if opts.PingCount <= 0 {
		opts.PingCount = conf.Global.PingCount
	}
	if conf.Global.Quiet {
		opts.Quiet = true
	}
	if opts.Load == "" && opts.Take != "" {
		opts.Load = conf.Global.Database
	}
}

func expand(path string) string {
	expanded, err := home.Expand(path)
	if err != nil {
		fatal(err)
	}
	return expanded
}

func getVerifier() (verifier Verifier, err error) {
	if opts.Verify != "" {
		verifier, err = NewSha256Verifier(opts.Verify)
	} else if opts.Hash {
		verifier = &Sha256Printer{}
	} else {
		verifier = &NoVerifier{}
	}
	return verifier, err
}

// download fetches opts.URL to the output file and, when --store is
// given, appends the fetched bytes to the archive under the output file's
// name.
func download(conf *Config, output io.Writer) {
	if !IsUrl(opts.URL) && !IsLocalFile(opts.URL) {
		fatal(fmt.Sprintf("not a URL or local file: %s", opts.URL))
	}

	outfile := opts.Output
	if outfile == "" {
		outfile = "output.html"
	}
	if conf.Global.Target != "" && !filepath.IsAbs(outfile) {
		outfile = filepath.Join(expand(conf.Global.Target), outfile)
	}
	outfile = expand(outfile)

	fmt.Fprintf(output, "Downloading %s -> %s\n", opts.URL, outfile)

	buf := &bytes.Buffer{}
	err := Download(opts.URL, buf, func(size int64) *pb.ProgressBar {
		var pbout io.Writer = os.Stderr
		if opts.Quiet {
			pbout = io.Discard
		}
		return pb.NewOptions64(size,
			pb.OptionSetWriter(pbout),
			pb.OptionShowBytes(true),
			pb.OptionSetWidth(10),
			pb.OptionThrottle(65*time.Millisecond),
			pb.OptionShowCount(),
			pb.OptionSpinnerType(14),
			pb.OptionFullWidth(),
			pb.OptionSetDescription("Downloading"),
			pb.OptionOnCompletion(func() {
				fmt.Fprint(pbout, "\n")
			}),
			pb.OptionSetTheme(pb.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	})
	if err != nil {
		fatal(fmt.Sprintf("%s (URL: %s)", err, opts.URL))
	}

	body := buf.Bytes()

	verifier, err := getVerifier()
	if err != nil {
		fatal(err)
	}
	if err := verifier.Verify(body); err != nil {
		fatal(err)
	}
	if opts.Verify != "" {
		fmt.Fprintf(output, "Checksum verified\n")
	}

	if err := os.WriteFile(outfile, body, 0644); err != nil {
		fatal(err)
	}
	fmt.Fprintln(output, "Download complete.")

	if opts.Store != "" {
		db := expand(opts.Store)
		if err := dlb.AppendEntry(db, outfile, body, variantForPath(db)); err != nil {
			fatal(err)
		}
		fmt.Fprintf(output, "Stored %s into %s\n", outfile, db)
	}
}

// load extracts the entry named by --take from the archive given by
// --load (or the configured default database) into the --to file.
func load(output io.Writer) {
	if opts.Load == "" {
		fatal("no archive file given (use --load)")
	}
	if opts.Take == "" {
		fatal("no entry name given (use --take)")
	}
	if opts.Output == "" {
		fatal("no output file given (use --to)")
	}

	db := expand(opts.Load)
	out := expand(opts.Output)
	if err := dlb.Extract(db, opts.Take, out); err != nil {
		fatal(err)
	}
	fmt.Fprintf(output, "Extracted %s -> %s\n", opts.Take, out)
}

// list prints name, recorded size, and variant for each entry of the
// archive, optionally filtered by a glob pattern on the entry name.
func list(output io.Writer, args []string) {
	entries, err := dlb.ListEntries(expand(opts.List))
	if err != nil {
		fatal(err)
	}

	var matcher glob.Glob
	if len(args) > 0 {
		matcher, err = glob.Compile(args[0])
		if err != nil {
			fatal(err)
		}
	}

	for _, e := range entries {
		if matcher != nil && !matcher.Match(e.Name) {
			continue
		}
		fmt.Fprintf(output, "%s\t%d\t%s\n", e.Name, e.Size, e.Variant)
	}
}

func main() {
	flagparser := flags.NewParser(&opts, flags.PassDoubleDash|flags.PrintErrors)
	flagparser.Usage = "[OPTIONS]"
	args, err := flagparser.Parse()
	if err != nil {
		os.Exit(1)
	}

	if opts.Version {
		fmt.Println("catch version", Version)
		os.Exit(0)
	}

	if opts.Help {
		flagparser.WriteHelp(os.Stdout)
		os.Exit(0)
	}

	conf, err := InitializeConfig()
	if err != nil {
		fatal(err)
	}
	applyConfig(conf)

	// when --quiet is passed, send non-essential output to io.Discard
	var output io.Writer = os.Stdout
	if opts.Quiet {
		output = io.Discard
	}

	ran := false

	if opts.URL != "" {
		ran = true
		download(conf, output)
	}

	if opts.List != "" {
		ran = true
		list(os.Stdout, args)
	}

	if opts.Take != "" || opts.Load != "" {
		ran = true
		load(output)
	}

	if opts.PingHost != "" {
		ran = true
		if err := Ping(opts.PingHost, opts.PingCount, opts.Privileged, os.Stdout); err != nil {
			fatal(err)
		}
	}

	if !ran {
		flagparser.WriteHelp(os.Stdout)
	}
}
