package compare

import (
	"context"
	"errors"
	"io/fs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sdejongh/comparefiles/pkg/logging"
	"github.com/sdejongh/comparefiles/pkg/models"
	"github.com/sdejongh/comparefiles/pkg/storage"
)

// Options configures a Comparator. Zero values select the defaults.
type Options struct {
	// PrefixSize is the number of leading bytes hashed by the prefix check
	PrefixSize int64
	// BlockSize is the read size of the full pass
	BlockSize int
	// Parallel hashes both files of a phase concurrently
	Parallel bool
	// Logger receives debug events; nil discards them
	Logger logging.Logger
}

// Comparator decides whether two files are byte-identical.
// It keeps no state between calls and is safe for concurrent use once
// configured.
type Comparator struct {
	backend    storage.Backend
	hasher     *Hasher
	prefixSize int64
	parallel   bool
	logger     logging.Logger
}

// NewComparator creates a comparator reading files through backend
func NewComparator(backend storage.Backend, opts Options) *Comparator {
	if opts.PrefixSize < 1 {
		opts.PrefixSize = DefaultPrefixSize
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNullLogger()
	}
	return &Comparator{
		backend:    backend,
		hasher:     NewHasher(backend, opts.BlockSize),
		prefixSize: opts.PrefixSize,
		parallel:   opts.Parallel,
		logger:     opts.Logger,
	}
}

// Hasher returns the underlying hasher, e.g. to install a progress callback
func (c *Comparator) Hasher() *Hasher {
	return c.hasher
}

type compareConfig struct {
	knownDigest *models.Digest
	singlePass  bool
}

// CompareOption adjusts a single Compare call
type CompareOption func(*compareConfig)

// WithKnownDigest supplies the full digest of the second file.
// The second file is then validated but never read.
func WithKnownDigest(d models.Digest) CompareOption {
	return func(cfg *compareConfig) {
		cfg.knownDigest = &d
	}
}

// WithSinglePass skips the prefix check and goes straight to full hashing
func WithSinglePass() CompareOption {
	return func(cfg *compareConfig) {
		cfg.singlePass = true
	}
}

// Compare reports whether the files at pathA and pathB are identical.
//
// Both paths must be existing regular files; otherwise an *InvalidInputError
// is returned before any content is read. Unless single-pass mode is
// requested or a known digest is supplied, the first PrefixSize bytes of each
// file are hashed and differing prefixes yield NoMatch immediately. A matching
// prefix is always re-verified with a full hash. I/O failures while hashing
// are returned as *FileAccessError.
//
// ctx carries logging metadata only; a hash pass runs to completion.
func (c *Comparator) Compare(ctx context.Context, pathA, pathB string, opts ...CompareOption) (models.ComparisonResult, error) {
	var cfg compareConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	log := c.logger.WithFields(logging.Fields{
		"comparison_id": uuid.NewString(),
		"file_a":        pathA,
		"file_b":        pathB,
	})

	if err := c.validate(ctx, pathA); err != nil {
		log.Debug(ctx, "input rejected", logging.Fields{"path": pathA, "error": err.Error()})
		return models.NoMatch(), err
	}
	if err := c.validate(ctx, pathB); err != nil {
		log.Debug(ctx, "input rejected", logging.Fields{"path": pathB, "error": err.Error()})
		return models.NoMatch(), err
	}

	if !cfg.singlePass && cfg.knownDigest == nil {
		prefixA, prefixB, err := c.hashPair(ctx, pathA, pathB, func(ctx context.Context, path string) (models.Digest, error) {
			return c.hasher.HashPrefix(ctx, path, c.prefixSize)
		})
		if err != nil {
			return models.NoMatch(), err
		}
		if prefixA != prefixB {
			log.Debug(ctx, "prefix digests differ", logging.Fields{
				"prefix_size": c.prefixSize,
				"prefix_a":    prefixA.String(),
				"prefix_b":    prefixB.String(),
			})
			return models.NoMatch(), nil
		}
		log.Debug(ctx, "prefix digests match, verifying full content", logging.Fields{
			"prefix_size": c.prefixSize,
		})
	}

	var digestA, digestB models.Digest
	if cfg.knownDigest != nil {
		var err error
		digestA, err = c.hasher.HashFull(ctx, pathA)
		if err != nil {
			return models.NoMatch(), err
		}
		digestB = *cfg.knownDigest
	} else {
		var err error
		digestA, digestB, err = c.hashPair(ctx, pathA, pathB, c.hasher.HashFull)
		if err != nil {
			return models.NoMatch(), err
		}
	}

	if digestA != digestB {
		log.Debug(ctx, "full digests differ", logging.Fields{
			"digest_a":     digestA.String(),
			"digest_b":     digestB.String(),
			"known_digest": cfg.knownDigest != nil,
		})
		return models.NoMatch(), nil
	}

	log.Debug(ctx, "files are identical", logging.Fields{"digest": digestA.String()})
	return models.Match(digestA), nil
}

// validate checks that path names an existing regular file without following links
func (c *Comparator) validate(ctx context.Context, path string) error {
	info, err := c.backend.Lstat(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &InvalidInputError{Path: path, Reason: ReasonNotExist}
		}
		return &FileAccessError{Path: path, Op: "stat", Err: err}
	}
	if info.IsSymlink {
		return &InvalidInputError{Path: path, Reason: ReasonIsSymlink}
	}
	if info.IsDir {
		return &InvalidInputError{Path: path, Reason: ReasonIsDir}
	}
	return nil
}

type hashFunc func(ctx context.Context, path string) (models.Digest, error)

// hashPair hashes A then B, or both at once in parallel mode
func (c *Comparator) hashPair(ctx context.Context, pathA, pathB string, hash hashFunc) (models.Digest, models.Digest, error) {
	var digestA, digestB models.Digest

	if !c.parallel {
		var err error
		if digestA, err = hash(ctx, pathA); err != nil {
			return digestA, digestB, err
		}
		digestB, err = hash(ctx, pathB)
		return digestA, digestB, err
	}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		digestA, err = hash(ctx, pathA)
		return err
	})
	g.Go(func() error {
		var err error
		digestB, err = hash(ctx, pathB)
		return err
	})
	err := g.Wait()
	return digestA, digestB, err
}
