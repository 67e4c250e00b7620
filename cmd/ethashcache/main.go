// Command ethashcache builds the ethash verification cache for a block and
// prints a summary, a single record, or the CBOR encoded cache.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-ethashcache/cacheapi"
	"github.com/forestrie/go-ethashcache/ethash"
)

type options struct {
	blockNumber uint64
	record      int64
	cbor        bool
	maxEpochs   uint64
	logLevel    string
}

var errExclusiveOutputs = errors.New("-cbor and -record are exclusive")

// parseOptions reports every failure, with usage, on errOut. The flag package
// does this itself for syntax errors.
func parseOptions(args []string, errOut io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("ethashcache", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Uint64Var(&opts.blockNumber, "block", 0, "block number")
	fs.Int64Var(&opts.record, "record", -1, "print only this record index")
	fs.BoolVar(&opts.cbor, "cbor", false, "write the CBOR encoded cache to stdout")
	fs.Uint64Var(&opts.maxEpochs, "max-epochs", cacheapi.DefaultMaxEpochs, "number of epochs served")
	fs.StringVar(&opts.logLevel, "log-level", "INFO", "log level")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.cbor && opts.record >= 0 {
		fmt.Fprintln(errOut, errExclusiveOutputs)
		fs.Usage()
		return options{}, errExclusiveOutputs
	}
	return opts, nil
}

func run(opts options, out io.Writer, log logger.Logger) error {
	s, err := cacheapi.NewService(cacheapi.Config{MaxEpochs: opts.maxEpochs}, log)
	if err != nil {
		return err
	}

	if opts.cbor {
		req, err := cacheapi.EncodeBlockNumber(opts.blockNumber)
		if err != nil {
			return err
		}
		resp, err := s.MakeCacheCBOR(req)
		if err != nil {
			return err
		}
		_, err = out.Write(resp)
		return err
	}

	cache, err := s.MakeCache(opts.blockNumber)
	if err != nil {
		return err
	}

	if opts.record >= 0 {
		if opts.record >= int64(len(cache)) {
			return fmt.Errorf("record %d out of range, the cache has %d records", opts.record, len(cache))
		}
		_, err = fmt.Fprintln(out, cache[opts.record])
		return err
	}

	seed := ethash.SeedHash(opts.blockNumber)
	_, err = fmt.Fprintf(out, "block %d epoch %d seed %s size %d records %d\n",
		opts.blockNumber, ethash.Epoch(opts.blockNumber), hex.EncodeToString(seed[:]),
		ethash.CacheSize(opts.blockNumber), len(cache))
	return err
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger.New(opts.logLevel)
	log := logger.Sugar.WithServiceName("ethashcache")

	if err := run(opts, os.Stdout, log); err != nil {
		log.Infof("ethashcache: %v", err)
		logger.OnExit()
		os.Exit(1)
	}
	logger.OnExit()
}
