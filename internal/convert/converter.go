// Package convert re-encodes host inventory documents between formats.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/get-eventually/go-textserde/internal/inventory"
	"github.com/get-eventually/go-textserde/logger"
)

// Attribute keys used by the Converter instrumentation.
const (
	ErrorAttribute      attribute.Key = "error"
	FromFormatAttribute attribute.Key = "convert.from"
	ToFormatAttribute   attribute.Key = "convert.to"
	PathAttribute       attribute.Key = "convert.path"
	NumHostsAttribute   attribute.Key = "convert.num_hosts"
)

var (
	// ErrSameFile is returned by ConvertFile when the output file would
	// overwrite an input file.
	ErrSameFile = errors.New("convert: output file is the input file")

	// ErrDuplicateOutput is returned by ConvertFiles when two input files
	// would be written to the same output file.
	ErrDuplicateOutput = errors.New("convert: output files collide")
)

// Converter decodes inventory documents, validates them, and encodes
// them again in another format.
//
// Use New to create a new instance of this type.
type Converter struct {
	logger      logger.Logger
	concurrency int

	tracer   trace.Tracer
	duration metric.Int64Histogram
}

// New returns a new Converter.
//
// An error is returned if metrics could not be registered.
func New(opts ...Option) (*Converter, error) {
	cfg := newConfig(opts...)

	duration, err := cfg.meter().Int64Histogram(
		"textserde.convert.duration.milliseconds",
		metric.WithUnit("ms"),
		metric.WithDescription("Duration in milliseconds of inventory conversions performed."),
	)
	if err != nil {
		return nil, fmt.Errorf("convert.New: failed to register metric: %w", err)
	}

	return &Converter{
		logger:      cfg.Logger,
		concurrency: cfg.Concurrency,
		tracer:      cfg.tracer(),
		duration:    duration,
	}, nil
}

// Convert decodes data as an Inventory encoded with the from Format,
// validates it, and returns it encoded with the to Format.
func (c *Converter) Convert(ctx context.Context, data []byte, from, to inventory.Format) (result []byte, err error) {
	attributes := []attribute.KeyValue{
		FromFormatAttribute.String(string(from)),
		ToFormatAttribute.String(string(to)),
	}

	ctx, span := c.tracer.Start(ctx, "convert.Converter.Convert", trace.WithAttributes(attributes...))
	start := time.Now()

	defer func() {
		attributes := append(attributes, ErrorAttribute.Bool(err != nil))
		c.duration.Record(ctx, time.Since(start).Milliseconds(), metric.WithAttributes(attributes...))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
	}()

	decoder, err := from.Serde()
	if err != nil {
		return nil, fmt.Errorf("convert.Converter: failed to get decoder, %w", err)
	}

	encoder, err := to.Serde()
	if err != nil {
		return nil, fmt.Errorf("convert.Converter: failed to get encoder, %w", err)
	}

	inv, err := decoder.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("convert.Converter: failed to decode %s inventory, %w", from, err)
	}

	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("convert.Converter: %w", err)
	}

	span.SetAttributes(NumHostsAttribute.Int(len(inv.Hosts)))

	if result, err = encoder.Serialize(inv); err != nil {
		return nil, fmt.Errorf("convert.Converter: failed to encode %s inventory, %w", to, err)
	}

	return result, nil
}

// ConvertFile converts the inventory file at path into the to Format,
// and writes it in outDir with the same base name and the Format extension.
//
// The input Format is inferred from the file extension.
// The path of the written file is returned.
func (c *Converter) ConvertFile(ctx context.Context, path string, to inventory.Format, outDir string) (string, error) {
	outPath, _, err := outputPath(path, to, outDir)
	if err != nil {
		return "", err
	}

	if err := c.convertFile(ctx, path, to, outPath); err != nil {
		return "", err
	}

	return outPath, nil
}

// outputPath returns the path ConvertFile writes path to, and its absolute form.
func outputPath(path string, to inventory.Format, outDir string) (string, string, error) {
	if _, err := inventory.FormatFromPath(path); err != nil {
		return "", "", fmt.Errorf("convert.Converter: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+to.Extension())

	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return "", "", fmt.Errorf("convert.Converter: failed to resolve output path, %w", err)
	}

	absIn, err := filepath.Abs(path)
	if err != nil {
		return "", "", fmt.Errorf("convert.Converter: failed to resolve input path, %w", err)
	}

	if absOut == absIn || sameFile(absIn, absOut) {
		return "", "", fmt.Errorf("%w: %s", ErrSameFile, path)
	}

	return outPath, absOut, nil
}

// sameFile reports whether both paths exist and point to the same file,
// as happens through symlinks or on case-insensitive file systems.
func sameFile(a, b string) bool {
	aInfo, err := os.Stat(a)
	if err != nil {
		return false
	}

	bInfo, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(aInfo, bInfo)
}

func (c *Converter) convertFile(ctx context.Context, path string, to inventory.Format, outPath string) error {
	from, err := inventory.FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("convert.Converter: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("convert.Converter: failed to read input file, %w", err)
	}

	result, err := c.Convert(ctx, data, from, to)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	//nolint:gosec,mnd // Inventory files are not secret.
	if err := os.WriteFile(outPath, result, 0o644); err != nil {
		return fmt.Errorf("convert.Converter: failed to write output file, %w", err)
	}

	logger.Debug(c.logger, "inventory file converted",
		logger.With(string(PathAttribute), path),
		logger.With("output", outPath),
	)

	return nil
}

// ConvertFiles converts all the provided inventory files like ConvertFile does,
// running up to the configured concurrency level at the same time.
//
// Output paths are checked before any conversion starts: ErrDuplicateOutput
// is returned if two inputs map to the same output file, and ErrSameFile if
// an output would overwrite one of the inputs.
//
// The first failure cancels the conversions not started yet, and is returned.
// Written paths are returned in the same order as the input paths.
func (c *Converter) ConvertFiles(
	ctx context.Context,
	paths []string,
	to inventory.Format,
	outDir string,
) ([]string, error) {
	outPaths, err := outputPaths(paths, to, outDir)
	if err != nil {
		return nil, err
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.concurrency)

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := c.convertFile(ctx, path, to, outPaths[i]); err != nil {
				logger.Error(c.logger, "failed to convert inventory file",
					logger.With(string(PathAttribute), path),
					logger.Err(err),
				)

				return err
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Info(c.logger, "inventory files converted",
		logger.With("count", len(paths)),
		logger.With(string(ToFormatAttribute), string(to)),
	)

	return outPaths, nil
}

func outputPaths(paths []string, to inventory.Format, outDir string) ([]string, error) {
	inputs := make(map[string]string, len(paths))

	for _, path := range paths {
		absIn, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("convert.Converter: failed to resolve input path, %w", err)
		}

		inputs[absIn] = path
	}

	outPaths := make([]string, len(paths))
	outputs := make(map[string]string, len(paths))

	for i, path := range paths {
		outPath, absOut, err := outputPath(path, to, outDir)
		if err != nil {
			return nil, err
		}

		if other, ok := outputs[absOut]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrDuplicateOutput, other, path, outPath)
		}

		if input, ok := inputs[absOut]; ok {
			return nil, fmt.Errorf("%w: %s overwrites %s", ErrSameFile, path, input)
		}

		outputs[absOut] = path
		outPaths[i] = outPath
	}

	return outPaths, nil
}
