package cardkit

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BackupOptions control the pre-rewrite backup of a card file.
type BackupOptions struct {
	Enabled    bool
	Path       string // relative to the card's directory
	MaxBackups int
	Compress   bool
}

// DefaultBackupOptions mirrors the backupSettings block synthesized into
// every asset config.
func DefaultBackupOptions() BackupOptions {
	return BackupOptions{Enabled: true, Path: "backups", MaxBackups: 5, Compress: true}
}

// BackupOptionsFrom reads a card's own assetGeneration.backupSettings,
// falling back to defaults for anything unset. Cards opt out of backups
// by writing enabled: false.
func BackupOptionsFrom(card Card) BackupOptions {
	opts := DefaultBackupOptions()
	assetGen := subMap(card, "assetGeneration")
	settings, ok := assetGen["backupSettings"].(map[string]any)
	if !ok {
		return opts
	}
	if v, ok := settings["enabled"].(bool); ok {
		opts.Enabled = v
	}
	if v, ok := settings["backupPath"].(string); ok && v != "" {
		opts.Path = v
	}
	if v, ok := asNumber(settings["maxBackups"]); ok && v > 0 {
		opts.MaxBackups = int(v)
	}
	if v, ok := settings["compressBackups"].(bool); ok {
		opts.Compress = v
	}
	return opts
}

// BackupCard copies the card file into its backup directory with a
// timestamped name, pruning the oldest copies beyond MaxBackups.
// Returns the backup path, or "" when backups are disabled or the card
// file does not exist yet.
func BackupCard(path string, now time.Time, opts BackupOptions) (string, error) {
	if !opts.Enabled {
		return "", nil
	}
	src, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open card %s: %w", path, err)
	}
	defer src.Close()

	dir := filepath.Join(filepath.Dir(path), opts.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := fmt.Sprintf("%s.%s.json", stem, now.UTC().Format("20060102T150405"))
	if opts.Compress {
		name += ".gz"
	}
	dst := filepath.Join(dir, name)

	if err := writeBackup(dst, src, opts.Compress); err != nil {
		return "", err
	}
	if err := pruneBackups(dir, stem, opts.MaxBackups); err != nil {
		return dst, err
	}
	return dst, nil
}

func writeBackup(dst string, src io.Reader, compress bool) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create backup %s: %w", dst, err)
	}
	defer out.Close()

	var w io.Writer = out
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(out)
		w = gz
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("write backup %s: %w", dst, err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("close backup %s: %w", dst, err)
		}
	}
	return nil
}

// pruneBackups deletes the oldest backups of one card beyond keep.
// Timestamped names sort chronologically, so lexicographic order is age
// order.
func pruneBackups(dir, stem string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read backup dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), stem+".") {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return nil
	}
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("prune backup %s: %w", name, err)
		}
	}
	return nil
}
