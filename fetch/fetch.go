// Package fetch downloads per-row byte payloads over HTTP and assembles
// them into a byte column.
package fetch

import (
	"context"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/arc/col"
	"github.com/go-faster/arc/internal/compress"
)

// OnError selects behavior for rows that fail to download.
type OnError uint8

const (
	// Raise fails the whole download on the first row error.
	Raise OnError = iota
	// KeepNull records failed rows as nulls and keeps going.
	KeepNull
)

// Options for Download.
type Options struct {
	// Name of the output column. Defaults to the url column's name.
	Name string
	// Limit caps concurrent requests. Defaults to 32.
	Limit int
	// Retries per request on top of the first attempt. Defaults to 2.
	Retries int
	// OnError selects Raise or KeepNull. Defaults to Raise.
	OnError OnError
	// Compressed expects block-framed payloads and decompresses them.
	Compressed bool

	Client *http.Client
	Logger *zap.Logger
}

func (o *Options) setDefaults(urls *col.ColBytes) {
	if o.Name == "" {
		o.Name = urls.Name()
	}
	if o.Limit == 0 {
		o.Limit = 32
	}
	if o.Retries == 0 {
		o.Retries = 2
	}
	if o.Client == nil {
		o.Client = http.DefaultClient
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Download fetches each non-null row of urls with bounded concurrency and
// returns payloads as a Binary column in input order.
//
// A null url row is a null output row. With KeepNull a failed download is
// also a null output row; with Raise it fails the call.
func Download(ctx context.Context, urls *col.ColBytes, opt Options) (*col.ColBytes, error) {
	if opt.Limit < 0 {
		return nil, errors.New("limit must be positive")
	}
	opt.setDefaults(urls)

	ctx, span := otel.Tracer("arc.fetch").Start(ctx, "Download",
		trace.WithAttributes(
			attribute.Int("rows", urls.Len()),
			attribute.Int("limit", opt.Limit),
		),
	)
	defer span.End()

	var (
		results = make([][]byte, urls.Len())
		dec     *compress.Reader
	)
	if opt.Compressed {
		dec = compress.NewReader()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.Limit)
	for i := 0; i < urls.Len(); i++ {
		if !urls.Valid(i) {
			continue
		}
		i, url := i, urls.RowString(i)
		g.Go(func() error {
			body, err := fetchOne(ctx, opt, url)
			if err == nil && opt.Compressed {
				body, err = dec.Decompress(body)
			}
			if err != nil {
				if opt.OnError == KeepNull {
					opt.Logger.Warn("Download failed",
						zap.Int("row", i),
						zap.String("url", url),
						zap.Error(err),
					)
					return nil
				}
				return errors.Wrapf(err, "row %d", i)
			}
			results[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		buf     []byte
		offsets = append(make([]int64, 0, urls.Len()+1), 0)
		valid   = make([]bool, 0, urls.Len())
	)
	for i, b := range results {
		buf = append(buf, b...)
		offsets = append(offsets, int64(len(buf)))
		valid = append(valid, b != nil && urls.Valid(i))
	}
	opt.Logger.Debug("Downloaded",
		zap.Int("rows", urls.Len()),
		zap.String("size", humanize.Bytes(uint64(len(buf)))),
	)

	out, err := col.BytesFromParts(col.Field{Name: opt.Name, Type: col.Binary}, buf, offsets, valid)
	if err != nil {
		return nil, errors.Wrap(err, "assemble")
	}
	return out, nil
}

func fetchOne(ctx context.Context, opt Options, url string) (body []byte, err error) {
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(opt.Retries)),
		ctx,
	)
	id := uuid.New().String()
	err = backoff.Retry(func() error {
		body, err = getOnce(ctx, opt.Client, url, id)
		return err
	}, bo)
	return body, err
}

func getOnce(ctx context.Context, client *http.Client, url, id string) (_ []byte, rerr error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "request"))
	}
	req.Header.Set("X-Request-Id", id)

	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do")
	}
	defer func() {
		rerr = multierr.Append(rerr, res.Body.Close())
	}()

	if res.StatusCode != http.StatusOK {
		err := errors.Errorf("status %s", res.Status)
		if res.StatusCode >= 400 && res.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	return body, nil
}
