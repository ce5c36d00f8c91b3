// Copyright 2016 CoreOS, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command zlibdecompress decodes one or more zlib streams from disk,
// writing each input's decompressed bytes alongside it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/coreos/go-zlib/batch"
	"github.com/coreos/go-zlib/capnslog"
	"github.com/coreos/go-zlib/flagutil"
	"github.com/coreos/go-zlib/flate"
	"github.com/coreos/go-zlib/yamlutil"
	"github.com/coreos/go-zlib/zlib"
)

var plog = capnslog.NewPackageLogger("github.com/coreos/go-zlib", "zlibdecompress")

const version = "0.1.0"

func main() {
	var (
		offset     flagutil.OffsetFlag
		size       flagutil.SizeFlag
		workers    int
		configFile string
		verbose    bool
		showVer    bool
	)

	fs := flag.NewFlagSet("zlibdecompress", flag.ExitOnError)
	fs.Var(&offset, "o", "byte offset to begin writing output at")
	fs.Var(&size, "s", "initial output buffer size (e.g. 64k, 4m); grows if undersized")
	fs.IntVar(&workers, "workers", 1, "number of files to decompress concurrently")
	fs.StringVar(&configFile, "config", "", "YAML file of flag defaults")
	fs.BoolVar(&verbose, "v", false, "verbose logging")
	fs.BoolVar(&showVer, "V", false, "print version and exit")

	fs.Parse(os.Args[1:])

	if showVer {
		fmt.Println("zlibdecompress", version)
		return
	}

	capnslog.SetFormatter(capnslog.NewStringFormatter(os.Stderr))
	if verbose {
		capnslog.MustRepoLogger("github.com/coreos/go-zlib").SetGlobalLogLevel(capnslog.DEBUG)
	}

	if configFile != "" {
		raw, err := ioutil.ReadFile(configFile)
		if err != nil {
			plog.Fatalf("reading config %s: %v", configFile, err)
		}
		if err := yamlutil.SetFlagsFromYaml(fs, raw); err != nil {
			plog.Fatalf("applying config %s: %v", configFile, err)
		}
	}

	sources := fs.Args()
	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "usage: zlibdecompress [flags] file...")
		os.Exit(2)
	}

	bufSize := int(size.Bytes())
	if bufSize == 0 {
		bufSize = 1 << 20
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		plog.Notice(capnslog.BaseLogEntry("stopping: finishing in-flight files, skipping the rest"))
		cancel()
	}()

	jobs := make([]batch.Job, len(sources))
	for i, src := range sources {
		src := src
		jobs[i] = batch.Job{
			Name: src,
			Decompress: func() ([]byte, error) {
				return nil, decompressFileTo(src, src+".zdecompressed", int(offset.Offset()), bufSize)
			},
		}
	}

	results := batch.Run(ctx, jobs, workers)

	failed := len(results) < len(sources)
	for _, r := range results {
		if r.Err != nil {
			plog.Errorf("%s: %v", r.Name, r.Err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// decompressFileTo reads src, decompresses it starting at the given output
// offset, and writes the result to dst. The write goes to a temp file in
// dst's directory first, renamed into place only once it's complete, so a
// reader never sees a partially written dst - including if the process is
// killed mid-write.
func decompressFileTo(src, dst string, offset, bufSize int) error {
	out, err := decompressFile(src, offset, bufSize)
	if err != nil {
		return err
	}

	tmp, err := ioutil.TempFile(filepath.Dir(dst), filepath.Base(dst)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	_, writeErr := tmp.Write(out)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmpName)
		if writeErr != nil {
			return writeErr
		}
		return closeErr
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// decompressFile reads src, decompresses it starting at the given output
// offset (the leading offset bytes of the returned slice are left zeroed),
// growing the output buffer and retrying if bufSize was too small.
func decompressFile(src string, offset, bufSize int) ([]byte, error) {
	compressed, err := ioutil.ReadFile(src)
	if err != nil {
		return nil, err
	}

	for {
		out := make([]byte, offset+bufSize)
		n, err := zlib.Decompress(compressed, out[offset:])
		if err == nil {
			return out[:offset+n], nil
		}
		fe, ok := err.(*flate.Error)
		if !ok || fe.Kind != flate.KindOutputOverflow {
			return nil, err
		}
		bufSize *= 2
	}
}
