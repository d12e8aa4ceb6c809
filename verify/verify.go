package verify

import (
	"bufio"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/binver/binver/internal/log"
)

// ChecksumFileToken is the literal token in checksum URL templates that is
// substituted with the manifest file name before any other interpolation the
// download layer performs.
const ChecksumFileToken = "{checksum_file}"

// ErrChecksumMismatch indicates no manifest line matched the computed digest
// of the downloaded file. Missing or unreadable files surface as distinct I/O
// errors, never as a mismatch.
type ErrChecksumMismatch struct {
	DownloadPath string
	ChecksumPath string
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("checksum mismatch: no entry in %q matches %q", e.ChecksumPath, e.DownloadPath)
}

// Checksum computes the SHA-256 digest of the file at downloadPath and scans
// the manifest at checksumPath for a matching line. A line matches when it
// starts with the digest and ends with the download's base name
// ("<digest>  <name>", any separator width), or when it is exactly the bare
// digest. Line order is irrelevant; the first structural match wins.
func Checksum(ctx context.Context, checksumPath, downloadPath string) (bool, error) {
	log.FromContext(ctx).WithFields("asset", downloadPath, "checksums", checksumPath).Debug("verifying checksum of downloaded file")

	digest, err := SHA256Digest(downloadPath)
	if err != nil {
		return false, err
	}

	f, err := os.Open(checksumPath)
	if err != nil {
		return false, fmt.Errorf("unable to open checksum manifest %q: %w", checksumPath, err)
	}
	defer f.Close()

	fileName := filepath.Base(downloadPath)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			// tolerated: mixed-encoding manifests occasionally carry
			// undecodable lines
			continue
		}

		line := string(raw)
		if (strings.HasPrefix(line, digest) && strings.HasSuffix(line, fileName)) || line == digest {
			log.FromContext(ctx).WithFields("digest", digest, "asset", downloadPath).Trace("checksum verified")
			return true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("unable to read checksum manifest %q: %w", checksumPath, err)
	}

	return false, &ErrChecksumMismatch{
		DownloadPath: downloadPath,
		ChecksumPath: checksumPath,
	}
}

// SHA256Digest computes the hex-encoded SHA-256 digest of the full file
// contents in a single pass.
func SHA256Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("unable to open file %q for digest: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("unable to digest file %q: %w", path, err)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// ExpandChecksumURL substitutes the manifest file name into a checksum URL
// template.
func ExpandChecksumURL(template, checksumFile string) string {
	return strings.ReplaceAll(template, ChecksumFileToken, checksumFile)
}
