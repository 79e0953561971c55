package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	get "github.com/hashicorp/go-getter"
)

// ErrPackNotFound is returned when a fetched source holds no biome pack.
var ErrPackNotFound = errors.New("biome pack not found")

// packNames are the file names searched for, in order, when a fetched
// source is a directory.
var packNames = []string{"biomes.yaml", "biomes.yml", "biomes.toml", "biomes.json"}

// FetchBiomePack downloads src into dir with go-getter and returns the path
// of the pack file. src is any go-getter source: a local path, an http URL,
// "git::https://host/repo.git//packs" and so on. A directory source must
// contain a biomes.{yaml,yml,toml,json} file or exactly one pack file.
func FetchBiomePack(ctx context.Context, src, dir string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", errors.New("biome pack source must not be empty")
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("fetch biome pack: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("fetch biome pack: %w", err)
	}

	dst := filepath.Join(dir, "pack"+sourceExt(src))
	if err := os.RemoveAll(dst); err != nil {
		return "", fmt.Errorf("fetch biome pack: %w", err)
	}

	client := &get.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: get.ClientModeAny,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch biome pack %s: %w", src, err)
	}

	return locatePack(dst)
}

// sourceExt returns the pack extension of the last path element of src, or
// "" when it has none.
func sourceExt(src string) string {
	s := src
	if i := strings.Index(s, "::"); i >= 0 {
		s = s[i+2:]
	}
	if u, err := url.Parse(s); err == nil && u.Path != "" {
		s = u.Path
	}
	if _, sub, ok := strings.Cut(s, "//"); ok && sub != "" {
		s = sub
	}
	ext := strings.ToLower(path.Ext(s))
	if _, err := FormatOf("pack" + ext); err != nil {
		return ""
	}
	return ext
}

func locatePack(dst string) (string, error) {
	info, err := os.Stat(dst)
	if err != nil {
		return "", fmt.Errorf("fetch biome pack: %w", err)
	}
	if !info.IsDir() {
		if _, err := FormatOf(dst); err != nil {
			return "", err
		}
		return dst, nil
	}

	for _, name := range packNames {
		p := filepath.Join(dst, name)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}
	}

	entries, err := os.ReadDir(dst)
	if err != nil {
		return "", fmt.Errorf("fetch biome pack: %w", err)
	}
	var found []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatOf(e.Name()); err == nil {
			found = append(found, filepath.Join(dst, e.Name()))
		}
	}
	if len(found) != 1 {
		return "", fmt.Errorf("%w in %s (%d candidates)", ErrPackNotFound, dst, len(found))
	}
	return found[0], nil
}
