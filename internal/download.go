package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/wagoodman/go-progress"

	internalhttp "github.com/binver/binver/internal/http"
	"github.com/binver/binver/internal/log"
)

// DownloadFile fetches a URL to the given path, optionally reporting bytes
// written to a progress manual.
func DownloadFile(ctx context.Context, url, filepath string, prog *progress.Manual) (err error) {
	reader, size, err := DownloadURL(ctx, url)
	if err != nil {
		return err
	}
	defer reader.Close()

	out, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("unable to create %q: %w", filepath, err)
	}
	defer out.Close()

	var w io.Writer = out
	if prog != nil {
		prog.SetTotal(size)
		w = io.MultiWriter(out, progressWriter{prog: prog})
	}

	if _, err := io.Copy(w, reader); err != nil {
		return fmt.Errorf("unable to write %q: %w", filepath, err)
	}

	return nil
}

// DownloadURL opens a reader over the response body for the given URL using
// the retryable HTTP client from the context.
func DownloadURL(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	client := internalhttp.ClientFromContext(ctx)

	resp, err := client.Get(url)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to download %q: %w", url, err)
	}

	log.FromContext(ctx).WithFields("http-status", resp.StatusCode).Tracef("http get %q", url)

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("unexpected status code %d for %q", resp.StatusCode, url)
	}

	return resp.Body, resp.ContentLength, nil
}

type progressWriter struct {
	prog *progress.Manual
}

func (w progressWriter) Write(p []byte) (int, error) {
	w.prog.Add(int64(len(p)))
	return len(p), nil
}
