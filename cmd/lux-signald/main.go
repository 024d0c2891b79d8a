// Command lux-signald serves the schema registry and signal
// constructor over JSON-RPC 2.0 on stdin/stdout. The embedded catalog
// is registered at startup; the registry stays open so clients can
// register additional schemas over the wire.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/luxlabs/go-lux/catalog"
	"github.com/luxlabs/go-lux/rpc"
	"github.com/luxlabs/go-lux/schema"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "lux-signald: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	reg := schema.NewRegistry()
	res, err := catalog.Bootstrap(reg)
	if err != nil {
		return err
	}
	for _, f := range res.Failures {
		fmt.Fprintf(os.Stderr, "lux-signald: catalog: %s\n", f)
	}
	server := rpc.NewServer(reg)
	return server.Serve(ctx, &stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
