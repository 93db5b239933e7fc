package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/service"
	"ttrack/internal/session"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd implements the whoami command.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the signed-in identity" }
func (c *WhoamiCmd) Usage() string     { return "ttrack whoami [common flags]" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, sessions *session.Manager, svc service.Backend, args []string, out, errOut io.Writer) int {
	sess := sessions.Current()
	if sess == nil {
		fmt.Fprintln(errOut, "error: not logged in (run: ttrack login)")
		return exitcode.AuthError
	}

	fmt.Fprintf(out, "username: %s\n", sess.Username)
	if sess.Email != "" {
		fmt.Fprintf(out, "email:    %s\n", sess.Email)
	}
	if exp, ok := tokenExpiry(sess.BearerToken()); ok {
		fmt.Fprintf(out, "token expires: %s\n", exp.Format(time.RFC3339))
	}
	return exitcode.Success
}

// tokenExpiry decodes the stored JWT without verifying it, purely to
// display the expiry. The token's validity is the backend's concern.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
