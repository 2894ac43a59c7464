// Package config provides the configuration loader for sheet.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/sheet/internal/adapters/csstransform"
	"go.trai.ch/sheet/internal/core/domain"
	"go.trai.ch/sheet/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version understood by the loader.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the configuration. path is either a config file or the directory
// from which the search for sheet.yaml walks up.
func (l *Loader) Load(path string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var sheetfile Sheetfile
	if err := l.readAndUnmarshalYAML(configPath, &sheetfile); err != nil {
		return nil, err
	}

	cfg, err := l.build(configPath, &sheetfile)
	if err != nil {
		return nil, zerr.With(err, "config", configPath)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(path string) (string, error) {
	info, err := l.FS.Stat(path)
	if err == nil && !info.IsDir() {
		return path, nil
	}

	currentDir := path
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", path)
}

func (l *Loader) build(configPath string, sf *Sheetfile) (*domain.Config, error) {
	if sf.Version != "" && sf.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unsupported version %q in %s, reading it as version %s",
			sf.Version, domain.ConfigFileName, SupportedVersion))
	}

	root := resolveRoot(configPath, sf.Root)

	opts := domain.DefaultOptions()
	if sf.Minify != nil {
		opts.Minify = *sf.Minify
	}

	mode, err := domain.ParseMode(sf.Mode)
	if err != nil {
		return nil, err
	}
	opts.Mode = mode

	transformers, err := csstransform.Resolve(sf.Transformers)
	if err != nil {
		return nil, err
	}
	opts.Transformers = transformers
	opts.AdditionalCode = sf.AdditionalCode

	autoImport, err := l.buildAutoImport(sf.AutoImport)
	if err != nil {
		return nil, err
	}
	opts.AutoImport = autoImport

	outdir := sf.Outdir
	if outdir == "" {
		outdir = domain.DefaultOutdir
	}

	return &domain.Config{
		Root:        root,
		EntryPoints: resolvePaths(root, sf.EntryPoints),
		Outdir:      resolvePath(root, outdir),
		Options:     opts,
	}, nil
}

var styleNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func (l *Loader) buildAutoImport(dto *AutoImportDTO) (*domain.AutoImport, error) {
	if dto == nil || len(dto.Identifier) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(dto.Identifier))
	bindings := make([]domain.Binding, 0, len(dto.Identifier))
	for i, b := range dto.Identifier {
		if strings.TrimSpace(b.ClassName) == "" || !styleNamePattern.MatchString(b.StyleName) {
			return nil, zerr.With(zerr.With(domain.ErrInvalidBinding, "index", i), "style_name", b.StyleName)
		}
		position, err := domain.ParsePosition(b.Position)
		if err != nil {
			return nil, zerr.With(err, "class_name", b.ClassName)
		}
		if seen[b.ClassName] {
			l.Logger.Warn(fmt.Sprintf("autoImport binding for %q is defined more than once, the first one wins", b.ClassName))
		}
		seen[b.ClassName] = true

		bindings = append(bindings, domain.Binding{
			BaseClass:     b.ClassName,
			StyleProperty: b.StyleName,
			Position:      position,
		})
	}
	return &domain.AutoImport{Bindings: bindings}, nil
}

// readAndUnmarshalYAML reads a YAML file and decodes it strictly into target.
// An empty file decodes to the zero value.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Sheetfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

func resolvePaths(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	res := make([]string, len(paths))
	for i, p := range paths {
		res[i] = resolvePath(base, p)
	}
	return res
}
