package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudcopper/cardlist/adapters"
	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/cloudcopper/cardlist/domain/errors"
	"github.com/cloudcopper/cardlist/domain/models"
	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/ports"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	stdout     = "-"
)

type options struct {
	count  int
	format string
	seed   int64
	out    string
}

func run(log ports.Logger, fs ports.FS, w io.Writer, opts options) error {
	marshal, err := marshaler(opts.format)
	if err != nil {
		return lib.NewErrorCode(err, errors.RetInvalidArgument)
	}

	provider := adapters.NewLoremContentProvider(log, opts.seed)
	defer provider.Close()
	result, err := cards.Generate(provider, opts.count)
	if errors.Is(err, errors.ErrInvalidArgument) {
		return lib.NewErrorCode(err, errors.RetInvalidArgument)
	}
	if err != nil {
		return lib.NewErrorCode(err, errors.RetGenerateError)
	}
	log.Debug("generated", slog.Int("count", len(result)))

	data, err := marshal(result)
	if err != nil {
		return lib.NewErrorCode(err, errors.RetGenerateError)
	}

	if opts.out == stdout {
		_, err = w.Write(data)
	} else {
		err = lib.WriteFileAtomic(fs, opts.out, data)
	}
	if err != nil {
		return lib.NewErrorCode(err, errors.RetWriteOutputError)
	}
	log.Debug("written", slog.String("out", opts.out), slog.Int("size", len(data)))
	return nil
}

func marshaler(format string) (func(models.Cards) ([]byte, error), error) {
	switch format {
	case formatJSON:
		return func(a models.Cards) ([]byte, error) {
			data, err := json.MarshalIndent(a, "", "  ")
			return append(data, '\n'), err
		}, nil
	case formatYAML:
		return func(a models.Cards) ([]byte, error) {
			return yaml.Marshal(a)
		}, nil
	}
	return nil, fmt.Errorf("%w: format %q", errors.ErrInvalidArgument, format)
}

func exitCode(log ports.Logger, err error) int {
	if err == nil {
		return retNoErrorCode
	}
	code := retGenericErrorCode
	if i, ok := err.(lib.ErrorCode); ok {
		code = i.Code()
	}
	log.Error("exit", slog.Int("code", code), slog.Any("err", err))
	return code
}
