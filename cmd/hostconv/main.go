// Package main contains the entrypoint for hostconv, a tool converting
// host inventory files between JSON, YAML and MessagePack.
//
// Usage:
//
//	HOSTCONV_OUTPUT_FORMAT=json hostconv hosts.yaml other.msgpack
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/get-eventually/go-textserde/internal/convert"
	"github.com/get-eventually/go-textserde/logger/zaplogger"
)

var errNoInput = errors.New("no input files, usage: hostconv FILE...")

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func run(ctx context.Context, args []string) error {
	config, err := ParseConfig()
	if err != nil {
		return fmt.Errorf("hostconv.main: failed to parse config, %v", err)
	}

	if len(args) == 0 {
		return errNoInput
	}

	logger, err := newLogger(config.Debug)
	if err != nil {
		return fmt.Errorf("hostconv.main: failed to initialize logger, %v", err)
	}

	//nolint:errcheck // No need for this error to come up if it happens.
	defer logger.Sync()

	converter, err := convert.New(
		convert.WithLogger(zaplogger.Wrap(logger)),
		convert.WithConcurrency(config.Concurrency),
	)
	if err != nil {
		return fmt.Errorf("hostconv.main: failed to create converter, %v", err)
	}

	outPaths, err := converter.ConvertFiles(ctx, args, config.OutputFormat, config.OutputDir)
	if err != nil {
		return fmt.Errorf("hostconv.main: conversion failed, %w", err)
	}

	for _, outPath := range outPaths {
		fmt.Println(outPath)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx, os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
