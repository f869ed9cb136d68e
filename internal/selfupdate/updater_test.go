package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformAsset(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		goarch     string
		wantName   string
		wantBinary string
		wantErr    bool
	}{
		{"darwin amd64", "darwin", "amd64", "prepdeck_Darwin_all.tar.gz", "prepdeck", false},
		{"darwin arm64", "darwin", "arm64", "prepdeck_Darwin_all.tar.gz", "prepdeck", false},
		{"linux amd64", "linux", "amd64", "prepdeck_Linux_x86_64.tar.gz", "prepdeck", false},
		{"linux arm64", "linux", "arm64", "prepdeck_Linux_arm64.tar.gz", "prepdeck", false},
		{"linux 386", "linux", "386", "prepdeck_Linux_i386.tar.gz", "prepdeck", false},
		{"windows amd64", "windows", "amd64", "prepdeck_Windows_x86_64.zip", "prepdeck.exe", false},
		{"windows arm64", "windows", "arm64", "prepdeck_Windows_arm64.zip", "prepdeck.exe", false},
		{"unsupported os", "freebsd", "amd64", "", "", true},
		{"unsupported arch", "linux", "mips", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := platformAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, asset.Name)
			assert.Equal(t, tt.wantBinary, asset.binary)
		})
	}
}

func TestChecksumManifest(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)
	goodHex := hex.EncodeToString(h[:])

	t.Run("parse skips malformed lines", func(t *testing.T) {
		set := parseChecksumManifest([]byte(
			"abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n"))
		assert.Equal(t, checksumSet{
			"file.tar.gz":  "abc123",
			"other.tar.gz": "ghi789",
		}, set)
	})

	t.Run("verify match", func(t *testing.T) {
		set := checksumSet{"file.tar.gz": goodHex}
		assert.NoError(t, set.verify("file.tar.gz", data))
	})

	t.Run("verify mismatch", func(t *testing.T) {
		set := checksumSet{"file.tar.gz": "0000000000000000000000000000000000000000000000000000000000000000"}
		err := set.verify("file.tar.gz", data)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing entry fails closed", func(t *testing.T) {
		err := checksumSet{}.verify("file.tar.gz", data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum found")
	})
}

func TestReleaseAssetExtract(t *testing.T) {
	content := []byte("#!/bin/sh\necho prepdeck")
	asset := releaseAsset{Name: "prepdeck_Darwin_all.tar.gz", binary: "prepdeck"}

	t.Run("tar.gz", func(t *testing.T) {
		got, err := asset.Extract(buildTarGz(t, "prepdeck", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary nested in directory", func(t *testing.T) {
		got, err := asset.Extract(buildTarGz(t, "dist/prepdeck", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := asset.Extract(buildTarGz(t, "other-file", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestReplaceExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "prepdeck")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, replaceExecutable(target, newData))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	// File mode survives the swap.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseServer serves a fake GitHub release: latest-release metadata,
// the archive under the given asset name, and its checksum manifest.
func releaseServer(t *testing.T, tag, assetName string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/prepdeck/prepdeck/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case fmt.Sprintf("/prepdeck/prepdeck/releases/download/%s/%s", tag, assetName):
			if archive == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(archive)
		case fmt.Sprintf("/prepdeck/prepdeck/releases/download/%s/checksums.txt", tag):
			if checksums == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(checksums)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	// Update resolves the asset for the platform it runs on, so the
	// fixture archive is built under that name.
	asset, err := currentPlatformAsset()
	require.NoError(t, err)
	if strings.HasSuffix(asset.Name, ".zip") {
		t.Skip("fixture archive is tar.gz")
	}

	binaryContent := []byte("new-prepdeck-binary")
	archive := buildTarGz(t, asset.binary, binaryContent)
	archiveHash := sha256.Sum256(archive)
	goodChecksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), asset.Name)

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "prepdeck")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		srv := releaseServer(t, "v2.0.0", asset.Name, archive, []byte(goodChecksums))
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0", asset.Name, nil, nil)
		checker := NewChecker(WithBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badChecksums := fmt.Sprintf("0000000000000000000000000000000000000000000000000000000000000000  %s\n", asset.Name)
		srv := releaseServer(t, "v2.0.0", asset.Name, archive, []byte(badChecksums))
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := releaseServer(t, "v2.0.0", asset.Name, nil, nil)
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
