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

// Command zlibd serves the zlib decompression HTTP service.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-zlib/capnslog"
	"github.com/coreos/go-zlib/flagutil"
	"github.com/coreos/go-zlib/httputil"
	"github.com/coreos/go-zlib/service"
	"github.com/coreos/go-zlib/stop"
)

var plog = capnslog.NewPackageLogger("github.com/coreos/go-zlib", "zlibd")

func main() {
	var (
		addr    string
		maxSize flagutil.SizeFlag
	)

	fs := flag.NewFlagSet("zlibd", flag.ExitOnError)
	fs.StringVar(&addr, "addr", ":8080", "listen address")
	fs.Var(&maxSize, "max-size", "maximum accepted request/response size (e.g. 64m)")
	fs.Parse(os.Args[1:])

	if f, ok := capnslog.NewJournaldFormatter(); ok {
		capnslog.SetFormatter(f)
	} else {
		capnslog.SetFormatter(capnslog.NewGlogFormatter(os.Stderr))
	}

	h := &service.Handler{MaxSize: maxSize.Bytes()}
	mux := &httputil.LoggingMiddleware{Next: h}

	srv := &http.Server{Addr: addr, Handler: mux}

	group := stop.NewGroup()
	group.AddFunc(func() <-chan struct{} {
		done := make(chan struct{})
		go func() {
			defer close(done)
			srv.Shutdown(context.Background())
		}()
		return done
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		plog.Notice(capnslog.BaseLogEntry("shutting down"))
		<-group.Stop()
	}()

	plog.Infof("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
