// Report destinations: local files and S3 objects.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/osfs"
)

// S3Config contains S3 authentication configuration
type S3Config struct {
	AccessKey string
	SecretKey string
	Region    string
	Endpoint  string // Optional: custom S3-compatible endpoint
}

// urlScheme represents the scheme of a destination
type urlScheme string

const (
	schemeFile  urlScheme = "file"
	schemeS3    urlScheme = "s3"
	schemeHTTP  urlScheme = "http"
	schemeHTTPS urlScheme = "https"
	schemeLocal urlScheme = "local" // no scheme, local path
)

// detectScheme detects the URL scheme from a path string
func detectScheme(path string) urlScheme {
	lowerPath := strings.ToLower(path)
	switch {
	case strings.HasPrefix(lowerPath, "s3://"):
		return schemeS3
	case strings.HasPrefix(lowerPath, "https://"):
		return schemeHTTPS
	case strings.HasPrefix(lowerPath, "http://"):
		return schemeHTTP
	case strings.HasPrefix(lowerPath, "file://"):
		return schemeFile
	default:
		return schemeLocal
	}
}

// Opener opens report destinations.
type Opener struct {
	// FS receives local reports; WorkDir resolves relative paths against it.
	FS      billy.Filesystem
	WorkDir string

	S3      *S3Config
	Archive *Archive

	// uploader replaces the S3 client in tests.
	uploader func(ctx context.Context, bucket, key string, body []byte) error
}

// NewOpener returns an Opener writing local reports to the operating system
// filesystem.
func NewOpener() *Opener {
	wd, err := os.Getwd()
	if err != nil {
		wd = string(filepath.Separator)
	}
	return &Opener{
		FS:      osfs.New(string(filepath.Separator)),
		WorkDir: wd,
	}
}

// openWriter opens a writer for the given URL/path
func (o *Opener) openWriter(dest string) (io.WriteCloser, error) {
	scheme := detectScheme(dest)

	switch scheme {
	case schemeLocal, schemeFile:
		localPath := dest
		if scheme == schemeFile {
			localPath = dest[len("file://"):]
		}
		return o.createLocal(localPath)

	case schemeHTTP, schemeHTTPS:
		return nil, fmt.Errorf("HTTP/HTTPS does not support writing")

	case schemeS3:
		return o.openS3Writer(dest)

	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s", dest)
	}
}

func (o *Opener) createLocal(localPath string) (io.WriteCloser, error) {
	if o.FS == nil {
		return nil, fmt.Errorf("no filesystem configured for %s", localPath)
	}
	if !filepath.IsAbs(localPath) && o.WorkDir != "" {
		localPath = filepath.Join(o.WorkDir, localPath)
	}
	return o.FS.Create(localPath)
}

// parseS3URL parses s3://bucket/key into bucket and key parts
func parseS3URL(url string) (bucket, key string, err error) {
	p := url[len("s3://"):]
	parts := strings.SplitN(p, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid S3 URL: %s", url)
	}
	return parts[0], parts[1], nil
}

// getS3Client creates an S3 client with the given configuration
func getS3Client(ctx context.Context, cfg *S3Config) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error

	// Set region if provided
	if cfg != nil && cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	// Set explicit credentials if provided
	if cfg != nil && cfg.AccessKey != "" && cfg.SecretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		opts = append(opts, config.WithCredentialsProvider(creds))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if cfg != nil && cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // For S3-compatible services
		})
	}

	return s3.NewFromConfig(awsCfg, clientOpts...), nil
}

// s3Writer buffers a report and uploads it on Close
type s3Writer struct {
	ctx    context.Context
	upload func(ctx context.Context, bucket, key string, body []byte) error
	bucket string
	key    string
	buffer bytes.Buffer
	closed bool
}

func (w *s3Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		return 0, fmt.Errorf("writer is closed")
	}
	return w.buffer.Write(p)
}

func (w *s3Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.upload(w.ctx, w.bucket, w.key, w.buffer.Bytes()); err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// openS3Writer opens a writer for an S3 object
func (o *Opener) openS3Writer(url string) (io.WriteCloser, error) {
	bucket, key, err := parseS3URL(url)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	upload := o.uploader
	if upload == nil {
		client, err := getS3Client(ctx, o.S3)
		if err != nil {
			return nil, err
		}
		upload = func(ctx context.Context, bucket, key string, body []byte) error {
			_, err := client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:      aws.String(bucket),
				Key:         aws.String(key),
				Body:        bytes.NewReader(body),
				ContentType: aws.String("text/html; charset=utf-8"),
			})
			return err
		}
	}

	return &s3Writer{
		ctx:    ctx,
		upload: upload,
		bucket: bucket,
		key:    key,
	}, nil
}

// archiveName is the file name a destination is archived under.
func archiveName(dest string) string {
	switch detectScheme(dest) {
	case schemeS3, schemeFile, schemeHTTP, schemeHTTPS:
		return path.Base(dest)
	default:
		return filepath.Base(dest)
	}
}
