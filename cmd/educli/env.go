package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	goEdu "github.com/MrEthical07/goEdu"
	"github.com/MrEthical07/goEdu/internal/logging"
	"github.com/MrEthical07/goEdu/transport"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	isTerminalFunc   = term.IsTerminal   // mockable

	errNotSignedIn = errors.New("not signed in, run `educli login`")
)

// env carries the process streams and the lazily built client.
type env struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	client *goEdu.Client
}

func newEnv(in io.Reader, out, errOut io.Writer) *env {
	return &env{in: in, out: out, errOut: errOut}
}

// open builds the client from --config, EDU_* variables and the global flags.
func (e *env) open(c *cli.Context) (*goEdu.Client, error) {
	if e.client != nil {
		return e.client, nil
	}

	cfg, err := goEdu.LoadConfig(c.String("config"))
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if v := c.String("base-url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := c.String("profile"); v != "" {
		cfg.Session.Profile = v
	}

	switch {
	case c.String("redis-addr") != "":
		cfg.Session.Backend = goEdu.BackendRedis
		cfg.Session.RedisAddr = c.String("redis-addr")
	case c.String("session-dir") != "" || cfg.Session.Backend == goEdu.BackendMemory || cfg.Session.Backend == "":
		dir := c.String("session-dir")
		if dir == "" {
			dir = cfg.Session.Dir
		}
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, errors.Wrap(err, "locate session directory")
			}
			dir = filepath.Join(base, "educli")
		}
		cfg.Session.Backend = goEdu.BackendFile
		cfg.Session.Dir = filepath.Join(dir, cfg.Session.Profile)
	}

	log, err := logging.New(logging.Config{Level: c.String("log-level"), Format: logging.FormatConsole}, e.errOut)
	if err != nil {
		return nil, err
	}

	client, err := goEdu.New().
		WithConfig(cfg).
		WithLogger(log).
		WithNavigator(e.navigator()).
		Build()
	if err != nil {
		return nil, errors.Wrap(err, "build client")
	}
	e.client = client
	return client, nil
}

func (e *env) close() error {
	if e.client == nil {
		return nil
	}
	err := e.client.Close()
	e.client = nil
	return err
}

// navigator tells the user to sign in again; a terminal has no login page.
func (e *env) navigator() transport.Navigator {
	return transport.NavigatorFunc(func(context.Context, string) {
		fmt.Fprintln(e.errOut, "session expired, run `educli login`")
	})
}

// password returns --password, or prompts without echo on a terminal, or reads
// one line from a piped stdin.
func (e *env) password(c *cli.Context, prompt string) (string, error) {
	if c.IsSet("password") {
		return c.String("password"), nil
	}

	if f, ok := e.in.(*os.File); ok && isTerminalFunc(int(f.Fd())) {
		fmt.Fprint(e.errOut, prompt)
		pwd, err := readPasswordFunc(int(f.Fd()))
		fmt.Fprintln(e.errOut)
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}
		return string(pwd), nil
	}

	line, err := bufio.NewReader(e.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "read password")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
