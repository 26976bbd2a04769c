package logo

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cristianadrielbraun/qrstudio/internal/logger"
)

var (
	ErrUnsupportedSource = errors.New("unsupported logo source")
	ErrTooLarge          = errors.New("logo exceeds size limit")
	ErrForbiddenHost     = errors.New("logo host is not publicly routable")
)

const (
	DefaultTimeout  = 5 * time.Second
	DefaultMaxBytes = 2 << 20
)

// Options configures a Loader.
type Options struct {
	Dir      string // local logos are resolved inside this directory
	Timeout  time.Duration
	MaxBytes int64
	Cache    Cache
	// Client overrides the HTTP client. The default one refuses to connect
	// to loopback, private and link-local addresses.
	Client *http.Client
	// AllowPrivateHosts lets the default client reach internal addresses.
	AllowPrivateHosts bool
}

// Loader resolves a logo source into an image.
type Loader struct {
	dir      string
	timeout  time.Duration
	maxBytes int64
	cache    Cache
	client   *http.Client
	group    singleflight.Group
	log      *logger.Logger
}

func NewLoader(opts Options) *Loader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.Client == nil {
		opts.Client = newClient(opts.AllowPrivateHosts)
	}
	return &Loader{
		dir:      opts.Dir,
		timeout:  opts.Timeout,
		maxBytes: opts.MaxBytes,
		cache:    opts.Cache,
		client:   opts.Client,
		log:      logger.Named("logo"),
	}
}

// Load fetches and decodes source. Every failure comes back as a Failed
// result; the caller decides whether to continue without a logo.
func (l *Loader) Load(ctx context.Context, source string) Result {
	source = strings.TrimSpace(source)
	if source == "" {
		return Failed(fmt.Errorf("%w: empty source", ErrUnsupportedSource))
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	data, err := l.fetch(ctx, source)
	if err != nil {
		l.log.Debugw("logo fetch failed", "source", short(source), "error", err)
		return Failed(err)
	}

	img, err := Decode(data)
	if err != nil {
		l.log.Debugw("logo decode failed", "source", short(source), "error", err)
		return Failed(err)
	}
	return Loaded(img)
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "data:"):
		return l.decodeDataURI(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.fetchRemote(ctx, source)
	default:
		return l.readLocal(source)
	}
}

func (l *Loader) fetchRemote(ctx context.Context, source string) ([]byte, error) {
	key := cacheKey(source)
	if l.cache != nil {
		if data, ok := l.cache.Get(ctx, key); ok {
			return data, nil
		}
	}

	// Identical URLs requested at the same time (preview keystrokes) share one
	// download. It runs detached from any single caller, so a cancelled
	// request only stops waiting and the others still get the logo.
	ch := l.group.DoChan(key, func() (interface{}, error) {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()

		data, err := l.download(dctx, source)
		if err != nil {
			return nil, err
		}
		if l.cache != nil {
			l.cache.Set(dctx, key, data)
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch logo: %w", ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.([]byte), nil
	}
}

func (l *Loader) download(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch logo: unexpected status %d", resp.StatusCode)
	}

	return l.readLimited(resp.Body)
}

func (l *Loader) readLocal(source string) ([]byte, error) {
	if l.dir == "" {
		return nil, fmt.Errorf("%w: local logos are disabled", ErrUnsupportedSource)
	}
	name := strings.TrimPrefix(source, "/uploads/")
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q escapes the upload directory", ErrUnsupportedSource, source)
	}

	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()
	return l.readLimited(f)
}

// decodeDataURI handles data:[<mediatype>][;base64],<payload>.
func (l *Loader) decodeDataURI(source string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(source, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: malformed data uri", ErrUnsupportedSource)
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		var err error
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode data uri: %w", err)
		}
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("decode data uri: %w", err)
		}
		data = []byte(unescaped)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

func (l *Loader) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

func cacheKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// short keeps data URIs out of the logs.
func short(source string) string {
	if len(source) > 64 {
		return source[:64] + "..."
	}
	return source
}
