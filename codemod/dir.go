package codemod

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sources walks a directory tree under root and returns URLs of matching source files
func (t *Transformer) Sources(ctx context.Context, root string) ([]string, error) {
	object, err := t.fs.Object(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %v: %w", root, err)
	}
	if !object.IsDir() {
		return []string{root}, nil
	}
	var URLs []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return !t.config.Excluded(info.Name()), nil
		}
		if t.config.Matches(info.Name()) {
			URLs = append(URLs, url.Join(baseURL, parent, info.Name()))
		}
		return true, nil
	}
	if err = t.fs.Walk(ctx, root, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %v: %w", root, err)
	}
	sort.Strings(URLs)
	return URLs, nil
}

// TransformDir transforms all matching files under root in parallel, uploading changed ones unless dry run.
// A file failing to transform is recorded in the report and does not stop the others.
func (t *Transformer) TransformDir(ctx context.Context, root string) (*Report, error) {
	started := time.Now()
	URLs, err := t.Sources(ctx, root)
	if err != nil {
		return nil, err
	}
	report := NewReport(root, t.dryRun)
	group, groupCtx := errgroup.WithContext(ctx)
	workers := t.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	group.SetLimit(workers)
	for _, URL := range URLs {
		URL := URL
		group.Go(func() error {
			result, err := t.TransformURL(groupCtx, URL)
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				t.logger.Error("failed to transform file", zap.String("url", URL), zap.Error(err))
				t.metrics.Failed()
				report.Fail(URL, err)
				return nil
			}
			report.Add(result)
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	t.logger.Info("transformation completed",
		zap.String("root", root),
		zap.Int("files", report.Files),
		zap.Int("changed", report.Changed),
		zap.Int("failed", len(report.Failures)),
		zap.Bool("dryRun", t.dryRun),
		zap.Duration("elapsed", time.Since(started)))
	return report, nil
}

// TransformURL downloads, transforms and, unless dry run, uploads a single file
func (t *Transformer) TransformURL(ctx context.Context, URL string) (*Result, error) {
	code, err := t.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	result, err := t.TransformSource(ctx, URL, code)
	if err != nil {
		return nil, err
	}
	if !result.Changed() || t.dryRun {
		return result, nil
	}
	if err = t.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(result.Code)); err != nil {
		return nil, fmt.Errorf("failed to upload %v: %w", URL, err)
	}
	t.logger.Info("rewrote file", zap.String("url", URL), zap.Int("rewrites", result.Rewrites()))
	return result, nil
}
