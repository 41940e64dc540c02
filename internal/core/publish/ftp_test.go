package publish

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	calls    []string
	stored   map[string]string
	loginErr error
	quit     bool
}

func (f *fakeConn) Login(user, password string) error {
	f.calls = append(f.calls, "login "+user+":"+password)
	return f.loginErr
}

func (f *fakeConn) ChangeDir(path string) error {
	f.calls = append(f.calls, "cwd "+path)
	return nil
}

func (f *fakeConn) Stor(path string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.calls = append(f.calls, "stor "+path)
	f.stored[path] = string(b)
	return nil
}

func (f *fakeConn) Quit() error {
	f.quit = true
	return nil
}

func fakeDialer(conn *fakeConn, gotAddr *string) Dialer {
	return func(_ context.Context, addr string, _ time.Duration) (Conn, error) {
		*gotAddr = addr
		return conn, nil
	}
}

func TestPublish_Root(t *testing.T) {
	conn := &fakeConn{stored: map[string]string{}}
	var addr string
	p := NewFTPPublisher(fakeDialer(conn, &addr), time.Second)

	res, err := p.Publish(context.Background(), Target{Host: "ftp.example.com", Username: "u", Password: "p", RemotePath: "/"}, "My_Page.html", []byte("<html>"))
	require.NoError(t, err)

	require.Equal(t, "ftp.example.com:21", addr)
	require.Equal(t, []string{"login u:p", "stor My_Page.html"}, conn.calls)
	require.Equal(t, "<html>", conn.stored["My_Page.html"])
	require.True(t, conn.quit)
	require.Equal(t, "Page uploaded successfully to ftp.example.com/My_Page.html", res.Message)
	require.Equal(t, "/My_Page.html", res.RemotePath)
}

func TestPublish_ChangesDir(t *testing.T) {
	conn := &fakeConn{stored: map[string]string{}}
	var addr string
	p := NewFTPPublisher(fakeDialer(conn, &addr), time.Second)

	res, err := p.Publish(context.Background(), Target{Host: "ftp.example.com:2121", RemotePath: "/public_html/"}, "a.html", nil)
	require.NoError(t, err)
	require.Equal(t, "ftp.example.com:2121", addr)
	require.Equal(t, "cwd /public_html/", conn.calls[1])
	require.Equal(t, "/public_html/a.html", res.RemotePath)
}

func TestPublish_RejectsLineBreaks(t *testing.T) {
	for _, target := range []struct {
		name     string
		target   Target
		filename string
	}{
		{"filename", Target{Host: "h", Username: "u"}, "promo\r\nDELE index.html"},
		{"remote path", Target{Host: "h", Username: "u", RemotePath: "/www\nRMD /"}, "a.html"},
		{"username", Target{Host: "h", Username: "u\r\nDELE x"}, "a.html"},
	} {
		t.Run(target.name, func(t *testing.T) {
			conn := &fakeConn{stored: map[string]string{}}
			var addr string
			p := NewFTPPublisher(fakeDialer(conn, &addr), time.Second)

			_, err := p.Publish(context.Background(), target.target, target.filename, []byte("<html>"))
			require.ErrorIs(t, err, ErrUnsafeArgument)
			require.Empty(t, addr)
			require.Empty(t, conn.calls)
		})
	}
}

func TestPublish_LoginFailure(t *testing.T) {
	conn := &fakeConn{stored: map[string]string{}, loginErr: errors.New("530 Login incorrect.")}
	var addr string
	p := NewFTPPublisher(fakeDialer(conn, &addr), time.Second)

	_, err := p.Publish(context.Background(), Target{Host: "h"}, "a.html", nil)
	require.ErrorContains(t, err, "530 Login incorrect.")
	require.True(t, conn.quit)
	require.Empty(t, conn.stored)
}

func TestPublish_DialFailure(t *testing.T) {
	p := NewFTPPublisher(func(context.Context, string, time.Duration) (Conn, error) {
		return nil, errors.New("connection refused")
	}, time.Second)

	_, err := p.Publish(context.Background(), Target{Host: "h"}, "a.html", nil)
	require.ErrorContains(t, err, "connection refused")
}

func TestAddress(t *testing.T) {
	require.Equal(t, "example.com:21", Address("example.com"))
	require.Equal(t, "example.com:990", Address("example.com:990"))
	require.Equal(t, "[::1]:21", Address("::1"))
}
