// Package peinfo reads the language-neutral VS_VERSIONINFO resource of a PE
// image and decodes it into a verinfo.VersionInfo.
//
// Basic usage:
//
//	info, err := peinfo.GetFileVersionInfo(ctx, `C:\Windows\notepad.exe`, nil)
//	if errors.Is(err, types.ErrNoResourceSection) {
//		// image carries no resources at all
//	}
//	fmt.Println(info.FileVersion)
package peinfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/verkit/internal/format"
	"github.com/joshuapare/verkit/internal/logger"
	"github.com/joshuapare/verkit/internal/mmfile"
	"github.com/joshuapare/verkit/internal/peimage"
	"github.com/joshuapare/verkit/pkg/types"
	"github.com/joshuapare/verkit/verinfo"
)

// mapFile maps an image read-only; swapped in tests.
var mapFile = mmfile.Map

// Options tunes a lookup. The zero value is ready to use.
type Options struct {
	// Logger receives debug records; nil uses the process-wide logger.
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o == nil {
		return logger.L
	}
	return logger.Or(o.Logger)
}

// GetFileVersionInfo maps the image at path and decodes its version
// resource. Open and read failures are returned as-is, wrapped with the path.
func GetFileVersionInfo(ctx context.Context, path string, opts *Options) (*verinfo.VersionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, release, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("peinfo: %s: %w", path, err)
	}
	defer func() {
		if rerr := release(); rerr != nil {
			opts.logger().Debug("unmap image", "path", path, "error", rerr)
		}
	}()

	opts.logger().Debug("mapped image", "path", path, "size", len(data))
	return FromReaderAt(ctx, bytes.NewReader(data), opts)
}

// FromReaderAt decodes the version resource of the image readable through r.
func FromReaderAt(ctx context.Context, r io.ReaderAt, opts *Options) (*verinfo.VersionInfo, error) {
	data, err := VersionResource(ctx, r, opts)
	if err != nil {
		return nil, err
	}
	info, err := verinfo.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("peinfo: %w", err)
	}
	opts.logger().Debug("decoded version resource",
		"file_version", info.FileVersion,
		"product_version", info.ProductVersion,
		"strings", len(info.Keys))
	return info, nil
}

// VersionResource returns the raw bytes of the language-neutral RT_VERSION
// resource (type 16, name 1, language 0). The slice is a copy owned by the
// caller.
func VersionResource(ctx context.Context, r io.ReaderAt, opts *Options) ([]byte, error) {
	section, err := ResourceSection(ctx, r, opts)
	if err != nil {
		return nil, err
	}
	data, err := section.FindResource(
		format.ResourceTypeVersion,
		format.ResourceNameVersion,
		format.ResourceLanguageNeutral,
	)
	switch {
	case errors.Is(err, peimage.ErrResourceNotFound):
		return nil, fmt.Errorf("peinfo: %v: %w", err, types.ErrNoNeutralVersionResource)
	case err != nil:
		return nil, fmt.Errorf("peinfo: %w", err)
	}
	opts.logger().Debug("found version resource", "size", len(data))
	return bytes.Clone(data), nil
}

// ResourceSection loads the .rsrc section of the image readable through r.
func ResourceSection(ctx context.Context, r io.ReaderAt, opts *Options) (*peimage.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	section, err := peimage.FindSection(r, format.ResourceSectionName)
	switch {
	case errors.Is(err, peimage.ErrSectionNotFound):
		return nil, fmt.Errorf("peinfo: %v: %w", err, types.ErrNoResourceSection)
	case err != nil:
		return nil, fmt.Errorf("peinfo: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.logger().Debug("found resource section",
		"virtual_address", fmt.Sprintf("%#x", section.VirtualAddress),
		"size", len(section.Data))
	return section, nil
}
