// Package publish uploads rendered pages to remote hosts over FTP.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/rs/zerolog/log"
)

const defaultPort = "21"

// ErrUnsafeArgument is returned when a value would break the FTP command line
var ErrUnsafeArgument = errors.New("ftp argument contains a line break")

// Conn is the part of an FTP session used for publishing
type Conn interface {
	Login(user, password string) error
	ChangeDir(path string) error
	Stor(path string, r io.Reader) error
	Quit() error
}

// Dialer opens an FTP session to addr ("host:port")
type Dialer func(ctx context.Context, addr string, timeout time.Duration) (Conn, error)

// DialFTP is the Dialer backed by jlaffaye/ftp
func DialFTP(ctx context.Context, addr string, timeout time.Duration) (Conn, error) {
	conn, err := ftp.Dial(addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Target describes where a page goes
type Target struct {
	Host       string
	Username   string
	Password   string
	RemotePath string
}

// Result is a successful publish
type Result struct {
	Message    string `json:"message"`
	RemotePath string `json:"remote_path"`
}

// FTPPublisher stores documents on FTP servers
type FTPPublisher struct {
	dial    Dialer
	timeout time.Duration
}

// NewFTPPublisher creates a publisher. A nil dial uses DialFTP.
func NewFTPPublisher(dial Dialer, timeout time.Duration) *FTPPublisher {
	if dial == nil {
		dial = DialFTP
	}
	return &FTPPublisher{dial: dial, timeout: timeout}
}

// Address appends the default FTP port when host has none
func Address(host string) string {
	host = strings.TrimSpace(host)
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(strings.Trim(host, "[]"), defaultPort)
}

// Publish logs in, changes to the remote directory unless it is the root,
// and stores content as filename.
func (p *FTPPublisher) Publish(ctx context.Context, target Target, filename string, content []byte) (*Result, error) {
	for _, arg := range []string{target.Username, target.Password, target.RemotePath, filename} {
		if strings.ContainsAny(arg, "\r\n") {
			return nil, ErrUnsafeArgument
		}
	}

	conn, err := p.dial(ctx, Address(target.Host), p.timeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target.Host, err)
	}
	defer func() {
		if qerr := conn.Quit(); qerr != nil {
			log.Debug().Err(qerr).Str("host", target.Host).Msg("ftp quit")
		}
	}()

	if err := conn.Login(target.Username, target.Password); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	remoteDir := target.RemotePath
	if remoteDir == "" {
		remoteDir = "/"
	}
	if remoteDir != "/" {
		if err := conn.ChangeDir(remoteDir); err != nil {
			return nil, fmt.Errorf("cwd %s: %w", remoteDir, err)
		}
	}

	if err := conn.Stor(filename, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("stor %s: %w", filename, err)
	}

	log.Info().Str("host", target.Host).Str("path", remoteDir).Str("file", filename).Msg("📤 Page published via FTP")

	return &Result{
		Message:    fmt.Sprintf("Page uploaded successfully to %s/%s", target.Host, filename),
		RemotePath: joinRemote(remoteDir, filename),
	}, nil
}

func joinRemote(dir, filename string) string {
	if dir == "/" {
		return "/" + filename
	}
	return strings.TrimRight(dir, "/") + "/" + filename
}
